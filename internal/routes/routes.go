package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jackpyp/massage-shop-web/internal/audit"
	"github.com/jackpyp/massage-shop-web/internal/handlers"
	"github.com/jackpyp/massage-shop-web/internal/infra/restapi"
	"github.com/jackpyp/massage-shop-web/internal/middleware"
	"github.com/jackpyp/massage-shop-web/internal/session"
	ucBooking "github.com/jackpyp/massage-shop-web/internal/usecase/booking"
	ucShop "github.com/jackpyp/massage-shop-web/internal/usecase/shop"
)

func RegisterRoutes(
	r *gin.Engine,
	api *restapi.Client,
	sessions *session.Manager,
	auditor *audit.Dispatcher,
	uploader handlers.PictureUploader,
) {

	// ======================================================
	// USE CASES
	// ======================================================
	listShopsUC := ucShop.NewList(api)
	createShopUC := ucShop.NewCreate(api, auditor)
	updateShopUC := ucShop.NewUpdate(api, auditor)
	deleteShopUC := ucShop.NewDelete(api, auditor)

	listBookingsUC := ucBooking.NewListVisible(api)
	createBookingUC := ucBooking.NewCreate(api, auditor)
	updateBookingUC := ucBooking.NewUpdate(api, auditor)
	deleteBookingUC := ucBooking.NewDelete(api, auditor)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(api, sessions)
	homeHandler := handlers.NewHomeHandler(listShopsUC)

	bookingHandler := handlers.NewBookingAdminHandler(
		listBookingsUC,
		createBookingUC,
		updateBookingUC,
		deleteBookingUC,
		listShopsUC,
	)

	shopHandler := handlers.NewShopAdminHandler(
		listShopsUC,
		createShopUC,
		updateShopUC,
		deleteShopUC,
		uploader,
	)

	// ======================================================
	// PUBLIC (no session)
	// ======================================================
	r.GET("/auth", authHandler.LoginPage)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.POST("/logout", authHandler.Logout)

	// ======================================================
	// SIGNED-IN PAGES
	// ======================================================
	private := r.Group("/")
	private.Use(middleware.NoStore())
	private.Use(middleware.RequireSession(sessions, api))
	{
		private.GET("", homeHandler.Page)

		private.GET("/back-office/booking", bookingHandler.Page)
		private.POST("/back-office/booking", bookingHandler.Create)
		private.POST("/back-office/booking/:id", bookingHandler.Update)
		private.POST("/back-office/booking/:id/delete", bookingHandler.Delete)

		// Shop management is an admin affordance only; the platform API is
		// the real authorization boundary.
		adminShop := private.Group("/back-office/shop")
		adminShop.Use(middleware.RequireAdmin())
		{
			adminShop.GET("", shopHandler.Page)
			adminShop.POST("", shopHandler.Create)
			adminShop.POST("/:id", shopHandler.Update)
			adminShop.POST("/:id/delete", shopHandler.Delete)
		}
	}
}
