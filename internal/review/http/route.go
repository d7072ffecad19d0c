package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddleware gin.HandlerFunc) {
	reviews := g.Group("/reviews")
	{
		reviews.GET("", h.List)
		reviews.POST("", h.Create)
		reviews.PATCH("/:id", adminMiddleware, h.Moderate)
		reviews.DELETE("/:id", adminMiddleware, h.Delete)
	}
}
