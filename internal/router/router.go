package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListClasses(c *ginext.Context)
	GetClass(c *ginext.Context)
	GetDecision(c *ginext.Context)
	BookClass(c *ginext.Context)
	CancelBooking(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Classes
		api.GET("/classes", h.ListClasses)
		api.GET("/classes/:id", h.GetClass)
		api.GET("/classes/:id/decision", h.GetDecision)

		// Bookings
		api.POST("/classes/:id/book", h.BookClass)
		api.DELETE("/bookings/:id", h.CancelBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
