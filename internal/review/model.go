package review

import (
	"net/http"

	"github.com/jetwave/jetski-booking-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "review not found")

// Review is a customer review. New reviews start unapproved and only show
// publicly after moderation.
type Review struct {
	ID           string
	CustomerName string
	Rating       int // 1..5
	Comment      string
	Date         string // YYYY-MM-DD
	Approved     bool
}
