package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetHotel(c *ginext.Context)
	ListRates(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	MyBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ListUpcomingBookings(c *ginext.Context)
	EditBooking(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	RecordPayment(c *ginext.Context)
	GetStats(c *ginext.Context)
	UpsertRate(c *ginext.Context)
	ListUsers(c *ginext.Context)
	ChangeUserRole(c *ginext.Context)
	ExportBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authenticate, requireStaff, requireAdmin ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public
		api.GET("/hotel", h.GetHotel)
		api.GET("/rates", h.ListRates)
		api.POST("/reservations", h.CreateReservation)

		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// Authenticated
		authed := api.Group("", authenticate)
		{
			authed.GET("/my/bookings", h.MyBookings)
			authed.GET("/bookings/:id", h.GetBooking)
		}

		// Staff
		staff := api.Group("", authenticate, requireStaff)
		{
			staff.GET("/bookings", h.ListBookings)
			staff.GET("/bookings/upcoming", h.ListUpcomingBookings)
			staff.PUT("/bookings/:id", h.EditBooking)
			staff.DELETE("/bookings/:id", h.DeleteBooking)
			staff.POST("/bookings/:id/confirm", h.ConfirmBooking)
			staff.POST("/bookings/:id/payments", h.RecordPayment)
			staff.GET("/stats", h.GetStats)
		}

		// Admin
		admin := api.Group("/admin", authenticate, requireAdmin)
		{
			admin.PUT("/rates", h.UpsertRate)
			admin.GET("/users", h.ListUsers)
			admin.PUT("/users/:id/role", h.ChangeUserRole)
			admin.GET("/bookings/export", h.ExportBookings)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
