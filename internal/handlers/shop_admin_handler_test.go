package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jackpyp/massage-shop-web/internal/audit"
	"github.com/jackpyp/massage-shop-web/internal/httperr"
	"github.com/jackpyp/massage-shop-web/internal/models"
	ucShop "github.com/jackpyp/massage-shop-web/internal/usecase/shop"
	"github.com/jackpyp/massage-shop-web/internal/web"
)

func shopRouter(shopGW *stubShopGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)

	auditor := audit.NewDispatcher(audit.LogSink{})
	h := NewShopAdminHandler(
		ucShop.NewList(shopGW),
		ucShop.NewCreate(shopGW, auditor),
		ucShop.NewUpdate(shopGW, auditor),
		ucShop.NewDelete(shopGW, auditor),
		nil,
	)

	admin := &models.User{ID: "admin-1", Name: "Admin", Role: models.RoleAdmin}

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())

	grp := r.Group("/back-office/shop", asUser(admin))
	grp.GET("", h.Page)
	grp.POST("", h.Create)
	grp.POST("/:id", h.Update)
	grp.POST("/:id/delete", h.Delete)
	return r
}

func sampleShops() []models.Shop {
	return []models.Shop{
		{ID: "s1", Name: "Lotus Spa", Address: "12 Sukhumvit Rd", PriceLevel: 2, Province: "Bangkok", Postalcode: "10110", Tel: "021234567"},
		{ID: "s2", Name: "Orchid Wellness", Address: "45 Nimman Rd", PriceLevel: 3, Province: "Chiang Mai", Postalcode: "50200", Tel: "053987654"},
		{ID: "s3", Name: "Sea Breeze", Address: "8 Beach Rd", PriceLevel: 1, Province: "Phuket", Postalcode: "83000", Tel: "076555000"},
	}
}

func validShopForm() url.Values {
	return url.Values{
		"name":       {"Lotus Spa"},
		"address":    {"12 Sukhumvit Rd"},
		"priceLevel": {"2"},
		"province":   {"Bangkok"},
		"postalcode": {"10110"},
		"tel":        {"021234567"},
		"picture":    {"https://cdn.example.com/lotus.jpg"},
	}
}

// --------- Page ---------

func TestShopPageRendersEveryShopField(t *testing.T) {
	r := shopRouter(&stubShopGateway{shops: sampleShops()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/back-office/shop", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	for _, s := range sampleShops() {
		assert.Contains(t, body, s.Name)
		assert.Contains(t, body, s.Address)
		assert.Contains(t, body, s.Province)
		assert.Contains(t, body, s.Tel)
	}
	assert.Contains(t, body, "★★★") // Orchid Wellness, price level 3
}

func TestShopPageEditDialogPrefillsTheRecord(t *testing.T) {
	r := shopRouter(&stubShopGateway{shops: sampleShops()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/back-office/shop?edit=s2", nil))

	body := w.Body.String()
	assert.Contains(t, body, `value="Orchid Wellness"`)
	assert.Contains(t, body, `value="50200"`)
	assert.Contains(t, body, `action="/back-office/shop/s2"`)
}

// --------- Create ---------

func TestCreateShopSubmitsParsedForm(t *testing.T) {
	shopGW := &stubShopGateway{}
	r := shopRouter(shopGW)

	w := postForm(r, "/back-office/shop", validShopForm())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/back-office/shop", w.Header().Get("Location"))
	assert.Equal(t, 1, shopGW.createCalls)
	assert.Equal(t, "Lotus Spa", shopGW.lastCreate.Name)
	assert.Equal(t, 2, shopGW.lastCreate.PriceLevel)
	assert.Equal(t, "10110", shopGW.lastCreate.Postalcode)
}

func TestCreateShopRejectsBadPostalcodeBeforeNetwork(t *testing.T) {
	shopGW := &stubShopGateway{}
	r := shopRouter(shopGW)

	form := validShopForm()
	form.Set("postalcode", "101")

	w := postForm(r, "/back-office/shop", form)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 0, shopGW.createCalls)
	body := w.Body.String()
	assert.Contains(t, body, "field-error")
	// The rest of what was typed survives the round trip.
	assert.Contains(t, body, `value="12 Sukhumvit Rd"`)
}

func TestCreateShopAPIFailureKeepsDialogOpen(t *testing.T) {
	shopGW := &stubShopGateway{createErr: httperr.NewAPIError(http.StatusInternalServerError, "boom")}
	r := shopRouter(shopGW)

	w := postForm(r, "/back-office/shop", validShopForm())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), genericShopError)
}

// --------- Update ---------

func TestUpdateShopSharesCreateValidation(t *testing.T) {
	shopGW := &stubShopGateway{shops: sampleShops()}
	r := shopRouter(shopGW)

	form := validShopForm()
	form.Set("tel", "not-a-number")

	w := postForm(r, "/back-office/shop/s1", form)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 0, shopGW.updateCalls)
}

// --------- Delete ---------

func TestDeleteShopTargetsExactlyThatShop(t *testing.T) {
	shopGW := &stubShopGateway{shops: sampleShops()}
	r := shopRouter(shopGW)

	w := postForm(r, "/back-office/shop/s2/delete", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/back-office/shop", w.Header().Get("Location"))
	assert.Equal(t, 1, shopGW.deleteCalls)
	assert.Equal(t, "s2", shopGW.deletedID)
}

func TestDeleteShopFailureIsSurfaced(t *testing.T) {
	shopGW := &stubShopGateway{deleteErr: httperr.NewAPIError(http.StatusInternalServerError, "boom")}
	r := shopRouter(shopGW)

	w := postForm(r, "/back-office/shop/s2/delete", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), url.QueryEscape("Failed to delete shop, please try again"))
}
