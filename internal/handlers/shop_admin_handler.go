package handlers

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jackpyp/massage-shop-web/internal/forms"
	"github.com/jackpyp/massage-shop-web/internal/middleware"
	ucShop "github.com/jackpyp/massage-shop-web/internal/usecase/shop"
)

const genericShopError = "Could not save shop, please try again later"

// ======================================================
// HANDLER
// ======================================================

// PictureUploader turns an uploaded file into a public URL. nil when media
// storage is not configured; the picture URL field is then the only way in.
type PictureUploader interface {
	UploadShopPicture(ctx context.Context, r io.Reader) (string, error)
}

type ShopAdminHandler struct {
	list     *ucShop.List
	create   *ucShop.Create
	update   *ucShop.Update
	delete   *ucShop.Delete
	uploader PictureUploader
}

func NewShopAdminHandler(
	list *ucShop.List,
	create *ucShop.Create,
	update *ucShop.Update,
	delete *ucShop.Delete,
	uploader PictureUploader,
) *ShopAdminHandler {
	return &ShopAdminHandler{
		list:     list,
		create:   create,
		update:   update,
		delete:   delete,
		uploader: uploader,
	}
}

type shopDialog struct {
	Open    bool
	Mode    string // "create" or "edit"
	ShopID  string
	Form    ucShop.FormInput
	Errors  forms.Errors
	Message string
}

func closedShopDialog() shopDialog {
	return shopDialog{Errors: forms.Errors{}}
}

// ======================================================
// PAGE
// ======================================================

func (h *ShopAdminHandler) Page(c *gin.Context) {
	dialog := closedShopDialog()

	if c.Query("create") != "" {
		dialog.Open = true
		dialog.Mode = "create"
	}
	if editID := c.Query("edit"); editID != "" {
		dialog.Open = true
		dialog.Mode = "edit"
		dialog.ShopID = editID
	}

	h.render(c, http.StatusOK, dialog)
}

func (h *ShopAdminHandler) render(c *gin.Context, status int, dialog shopDialog) {
	user := middleware.CurrentUser(c)

	shops, err := h.list.Execute(c.Request.Context(), middleware.Token(c))
	if err != nil {
		c.HTML(status, "backoffice_shop", gin.H{
			"User":          user,
			"Shops":         nil,
			"Error":         "Could not load shops, please try again later",
			"FlashError":    c.Query("errorMessage"),
			"Dialog":        closedShopDialog(),
			"UploadEnabled": h.uploader != nil,
		})
		return
	}

	// Opening the edit dialog resets the form to the selected record.
	if dialog.Open && dialog.Mode == "edit" && dialog.Form == (ucShop.FormInput{}) {
		for _, s := range shops {
			if s.ID == dialog.ShopID {
				dialog.Form = ucShop.FormInput{
					Name:       s.Name,
					Address:    s.Address,
					PriceLevel: strconv.Itoa(s.PriceLevel),
					Province:   s.Province,
					Postalcode: s.Postalcode,
					Tel:        s.Tel,
					Picture:    s.Picture,
				}
				break
			}
		}
	}

	c.HTML(status, "backoffice_shop", gin.H{
		"User":          user,
		"Shops":         shops,
		"Error":         "",
		"FlashError":    c.Query("errorMessage"),
		"Dialog":        dialog,
		"UploadEnabled": h.uploader != nil,
	})
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *ShopAdminHandler) Create(c *gin.Context) {
	h.submit(c, "create", "")
}

func (h *ShopAdminHandler) Update(c *gin.Context) {
	h.submit(c, "edit", c.Param("id"))
}

// submit is the one code path behind both dialog modes, so create and edit
// cannot drift apart in validation or error handling.
func (h *ShopAdminHandler) submit(c *gin.Context, mode, shopID string) {
	user := middleware.CurrentUser(c)
	token := middleware.Token(c)

	form := ucShop.FormInput{
		Name:       c.PostForm("name"),
		Address:    c.PostForm("address"),
		PriceLevel: c.PostForm("priceLevel"),
		Province:   c.PostForm("province"),
		Postalcode: c.PostForm("postalcode"),
		Tel:        c.PostForm("tel"),
		Picture:    c.PostForm("picture"),
	}

	dialog := shopDialog{
		Open:   true,
		Mode:   mode,
		ShopID: shopID,
		Form:   form,
		Errors: forms.Errors{},
	}

	if uploaded, ok := h.storePicture(c); ok {
		form.Picture = uploaded
		dialog.Form.Picture = uploaded
	}

	var err error
	if mode == "edit" {
		_, err = h.update.Execute(c.Request.Context(), token, user.ID, shopID, form)
	} else {
		_, err = h.create.Execute(c.Request.Context(), token, user.ID, form)
	}

	if err != nil {
		if ve, ok := forms.AsValidation(err); ok {
			dialog.Errors = ve.Fields
		} else {
			dialog.Message = genericShopError
		}
		h.render(c, http.StatusUnprocessableEntity, dialog)
		return
	}

	c.Redirect(http.StatusSeeOther, "/back-office/shop")
}

// storePicture uploads an attached picture file, if any. Returns the public
// URL and whether one replaced the form value.
func (h *ShopAdminHandler) storePicture(c *gin.Context) (string, bool) {
	if h.uploader == nil {
		return "", false
	}

	header, err := c.FormFile("pictureFile")
	if err != nil || header == nil {
		return "", false
	}

	file, err := header.Open()
	if err != nil {
		return "", false
	}
	defer file.Close()

	uploaded, err := h.uploader.UploadShopPicture(c.Request.Context(), file)
	if err != nil {
		return "", false
	}
	return uploaded, true
}

// ======================================================
// DELETE
// ======================================================

func (h *ShopAdminHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	shopID := c.Param("id")

	err := h.delete.Execute(c.Request.Context(), middleware.Token(c), user.ID, shopID)
	if err != nil {
		msg := url.QueryEscape("Failed to delete shop, please try again")
		c.Redirect(http.StatusSeeOther, "/back-office/shop?errorMessage="+msg)
		return
	}

	c.Redirect(http.StatusSeeOther, "/back-office/shop")
}

