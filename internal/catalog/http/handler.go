package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jetwave/jetski-booking-backend/internal/catalog"
	"github.com/jetwave/jetski-booking-backend/internal/pkg/response"
)

type Handler struct {
	service catalog.Service
}

func NewHandler(service catalog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ReadInventory(c *gin.Context) {
	inv, err := h.service.ReadInventory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewInventoryResponse(inv))
}

// ReplaceInventory overwrites the submitted collections wholesale. A shorter
// list drops the missing records; that is the bulk-edit contract, not a bug.
func (h *Handler) ReplaceInventory(c *gin.Context) {
	var body ReplaceInventoryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inventory payload", "details": err.Error()})
		return
	}

	inv, err := h.service.BulkReplaceInventory(c.Request.Context(), body.toServiceRequest())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewInventoryResponse(inv))
}

func (h *Handler) ReadSettings(c *gin.Context) {
	settings, err := h.service.ReadSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": NewSettingsDTO(settings)})
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var body UpdateSettingsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings payload"})
		return
	}

	settings, err := h.service.UpdateSettings(c.Request.Context(), body.toPatch())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": NewSettingsDTO(settings)})
}
