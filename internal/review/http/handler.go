package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jetwave/jetski-booking-backend/internal/pkg/response"
	"github.com/jetwave/jetski-booking-backend/internal/review"
)

type Handler struct {
	service review.Service
}

func NewHandler(service review.Service) *Handler {
	return &Handler{service: service}
}

// List returns approved reviews; with ?all=true (admin) it includes
// unapproved ones awaiting moderation.
func (h *Handler) List(c *gin.Context) {
	includeUnapproved := c.Query("all") == "true"

	reviews, err := h.service.List(c.Request.Context(), includeUnapproved)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReviewResponse, len(reviews))
	for i, rv := range reviews {
		items[i] = NewReviewResponse(rv)
	}
	c.JSON(http.StatusOK, gin.H{"reviews": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateReviewRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	rv, err := h.service.Create(c.Request.Context(), review.CreateRequest{
		CustomerName: body.CustomerName,
		Rating:       body.Rating,
		Comment:      body.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": NewReviewResponse(rv)})
}

func (h *Handler) Moderate(c *gin.Context) {
	var body ModerateReviewRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Approved == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing approved flag"})
		return
	}

	rv, err := h.service.SetApproved(c.Request.Context(), c.Param("id"), *body.Approved)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": NewReviewResponse(rv)})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
