package http

import (
	"github.com/jetwave/jetski-booking-backend/internal/review"
)

type CreateReviewRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment" binding:"required"`
}

type ModerateReviewRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type ReviewResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Date         string `json:"date"`
	Approved     bool   `json:"approved"`
}

func NewReviewResponse(rv *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:           rv.ID,
		CustomerName: rv.CustomerName,
		Rating:       rv.Rating,
		Comment:      rv.Comment,
		Date:         rv.Date,
		Approved:     rv.Approved,
	}
}
