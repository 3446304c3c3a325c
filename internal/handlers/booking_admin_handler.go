package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jackpyp/massage-shop-web/internal/dto"
	"github.com/jackpyp/massage-shop-web/internal/forms"
	"github.com/jackpyp/massage-shop-web/internal/httperr"
	"github.com/jackpyp/massage-shop-web/internal/middleware"
	ucBooking "github.com/jackpyp/massage-shop-web/internal/usecase/booking"
	ucShop "github.com/jackpyp/massage-shop-web/internal/usecase/shop"
)

const genericBookingError = "Could not save booking, please try again later"

// ======================================================
// HANDLER
// ======================================================

type BookingAdminHandler struct {
	listVisible *ucBooking.ListVisible
	create      *ucBooking.Create
	update      *ucBooking.Update
	delete      *ucBooking.Delete
	listShops   *ucShop.List
}

func NewBookingAdminHandler(
	listVisible *ucBooking.ListVisible,
	create *ucBooking.Create,
	update *ucBooking.Update,
	delete *ucBooking.Delete,
	listShops *ucShop.List,
) *BookingAdminHandler {
	return &BookingAdminHandler{
		listVisible: listVisible,
		create:      create,
		update:      update,
		delete:      delete,
		listShops:   listShops,
	}
}

// bookingDialog drives the shared create/edit form. Closed unless a query
// parameter or a failed submit opens it; failures keep it open with the
// posted values and an error annotation.
type bookingDialog struct {
	Open      bool
	Mode      string // "create" or "edit"
	BookingID string
	Form      ucBooking.FormInput
	Errors    forms.Errors
	Message   string
}

func closedBookingDialog() bookingDialog {
	return bookingDialog{Form: ucBooking.FormInput{ServiceMinute: "60"}, Errors: forms.Errors{}}
}

// ======================================================
// PAGE
// ======================================================

func (h *BookingAdminHandler) Page(c *gin.Context) {
	dialog := closedBookingDialog()

	if c.Query("create") != "" {
		dialog.Open = true
		dialog.Mode = "create"
	}
	if editID := c.Query("edit"); editID != "" {
		dialog.Open = true
		dialog.Mode = "edit"
		dialog.BookingID = editID
	}

	h.render(c, http.StatusOK, dialog)
}

// render refetches the authoritative list on every page build; the local
// state is never trusted after a mutation.
func (h *BookingAdminHandler) render(c *gin.Context, status int, dialog bookingDialog) {
	user := middleware.CurrentUser(c)
	token := middleware.Token(c)

	bookings, err := h.listVisible.Execute(c.Request.Context(), token, user)
	if err != nil {
		c.HTML(status, "backoffice_booking", gin.H{
			"User":       user,
			"Rows":       nil,
			"Shops":      nil,
			"Error":      "Could not load bookings, please try again later",
			"FlashError": c.Query("errorMessage"),
			"Dialog":     closedBookingDialog(),
		})
		return
	}

	rows := dto.BookingRows(bookings)

	// Prefill the edit dialog from the fetched row.
	if dialog.Open && dialog.Mode == "edit" && dialog.Form.BookingDate == "" {
		for _, row := range rows {
			if row.ID == dialog.BookingID {
				dialog.Form = ucBooking.FormInput{
					BookingDate:   row.BookingDate,
					ServiceMinute: strconv.Itoa(row.ServiceMinute),
					ShopID:        row.ShopID,
				}
				break
			}
		}
	}

	// The shop select is dialog furniture; an empty list is not fatal.
	shops, err := h.listShops.Execute(c.Request.Context(), token)
	if err != nil {
		shops = nil
	}

	c.HTML(status, "backoffice_booking", gin.H{
		"User":       user,
		"Rows":       rows,
		"Shops":      shops,
		"Error":      "",
		"FlashError": c.Query("errorMessage"),
		"Dialog":     dialog,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingAdminHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	form := ucBooking.FormInput{
		BookingDate:   c.PostForm("bookingDate"),
		ServiceMinute: c.PostForm("serviceMinute"),
		ShopID:        c.PostForm("shopId"),
	}

	_, err := h.create.Execute(c.Request.Context(), middleware.Token(c), ucBooking.CreateInput{
		Form:   form,
		UserID: user.ID,
	})
	if err != nil {
		dialog := bookingDialog{
			Open:   true,
			Mode:   "create",
			Form:   form,
			Errors: forms.Errors{},
		}

		if ve, ok := forms.AsValidation(err); ok {
			dialog.Errors = ve.Fields
		} else if httperr.IsBookingLimit(err) {
			dialog.Message = apiMessage(err)
		} else {
			dialog.Message = genericBookingError
		}

		h.render(c, http.StatusUnprocessableEntity, dialog)
		return
	}

	c.Redirect(http.StatusSeeOther, "/back-office/booking")
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingAdminHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	bookingID := c.Param("id")

	form := ucBooking.FormInput{
		BookingDate:   c.PostForm("bookingDate"),
		ServiceMinute: c.PostForm("serviceMinute"),
	}

	_, err := h.update.Execute(c.Request.Context(), middleware.Token(c), ucBooking.UpdateInput{
		BookingID: bookingID,
		Form:      form,
		UserID:    user.ID,
	})
	if err != nil {
		dialog := bookingDialog{
			Open:      true,
			Mode:      "edit",
			BookingID: bookingID,
			Form:      form,
			Errors:    forms.Errors{},
		}

		if ve, ok := forms.AsValidation(err); ok {
			dialog.Errors = ve.Fields
		} else {
			dialog.Message = genericBookingError
		}

		h.render(c, http.StatusUnprocessableEntity, dialog)
		return
	}

	c.Redirect(http.StatusSeeOther, "/back-office/booking")
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingAdminHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	bookingID := c.Param("id")

	err := h.delete.Execute(c.Request.Context(), middleware.Token(c), user.ID, bookingID)
	if err != nil {
		msg := url.QueryEscape("Failed to delete booking, please try again")
		c.Redirect(http.StatusSeeOther, "/back-office/booking?errorMessage="+msg)
		return
	}

	c.Redirect(http.StatusSeeOther, "/back-office/booking")
}

// --------- Helpers ---------

func apiMessage(err error) string {
	var ae *httperr.APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return genericBookingError
}
