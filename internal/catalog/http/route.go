package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddleware gin.HandlerFunc) {
	inventory := g.Group("/inventory")
	{
		inventory.GET("", h.ReadInventory)
		inventory.PATCH("", adminMiddleware, h.ReplaceInventory)
	}

	settings := g.Group("/settings")
	{
		settings.GET("", h.ReadSettings)
		settings.PATCH("", adminMiddleware, h.UpdateSettings)
	}
}
