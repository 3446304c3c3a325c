package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jackpyp/massage-shop-web/internal/middleware"
	ucShop "github.com/jackpyp/massage-shop-web/internal/usecase/shop"
)

type HomeHandler struct {
	listShops *ucShop.List
}

func NewHomeHandler(listShops *ucShop.List) *HomeHandler {
	return &HomeHandler{listShops: listShops}
}

// Page renders the public shop grid. A failed fetch shows an inline error
// instead of an empty catalog.
func (h *HomeHandler) Page(c *gin.Context) {
	user := middleware.CurrentUser(c)

	shops, err := h.listShops.Execute(c.Request.Context(), middleware.Token(c))
	if err != nil {
		c.HTML(http.StatusOK, "home", gin.H{
			"User":  user,
			"Shops": nil,
			"Error": "Could not load shops, please try again later",
		})
		return
	}

	c.HTML(http.StatusOK, "home", gin.H{
		"User":  user,
		"Shops": shops,
		"Error": "",
	})
}
