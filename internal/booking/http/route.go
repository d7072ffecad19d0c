package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddleware gin.HandlerFunc) {
	bookings := g.Group("/bookings")
	{
		bookings.GET("/availability", h.Availability)
		bookings.POST("", h.Create)

		admin := bookings.Group("")
		admin.Use(adminMiddleware)
		{
			admin.GET("", h.List)
			admin.PATCH("/:id", h.UpdateStatus)
			admin.DELETE("/:id", h.Cancel)
		}
	}

	checkout := g.Group("/checkout")
	{
		checkout.POST("", h.Checkout)
		checkout.GET("/verify", h.Verify)
	}

	// Webhook deliveries are authenticated by signature, not by JWT.
	g.POST("/webhook/payment", h.Webhook)
}
