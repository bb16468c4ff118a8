package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBusiness(c *ginext.Context)
	GetBusiness(c *ginext.Context)
	CreateRoom(c *ginext.Context)
	ListRooms(c *ginext.Context)
	UpdateRoom(c *ginext.Context)
	CreateTable(c *ginext.Context)
	ListTables(c *ginext.Context)
	UpdateTable(c *ginext.Context)
	BusinessAvailability(c *ginext.Context)
	RoomAvailability(c *ginext.Context)
	TableAvailability(c *ginext.Context)
	BusinessOccupancy(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	UpdateReservation(c *ginext.Context)
	ConfirmReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	CompleteReservation(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Businesses
		api.POST("/businesses", h.CreateBusiness)
		api.GET("/businesses/:id", h.GetBusiness)

		// Rooms
		api.POST("/businesses/:id/rooms", h.CreateRoom)
		api.GET("/businesses/:id/rooms", h.ListRooms)
		api.PATCH("/rooms/:id", h.UpdateRoom)

		// Tables
		api.POST("/businesses/:id/tables", h.CreateTable)
		api.GET("/businesses/:id/tables", h.ListTables)
		api.PATCH("/tables/:id", h.UpdateTable)

		// Availability
		api.GET("/businesses/:id/availability", h.BusinessAvailability)
		api.GET("/rooms/:id/availability", h.RoomAvailability)
		api.GET("/tables/:id/availability", h.TableAvailability)
		api.GET("/businesses/:id/occupancy", h.BusinessOccupancy)

		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.PATCH("/reservations/:id", h.UpdateReservation)
		api.POST("/reservations/:id/confirm", h.ConfirmReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/complete", h.CompleteReservation)
		api.GET("/businesses/:id/reservations", h.ListReservations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
