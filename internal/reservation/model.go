package reservation

import (
	"net/http"
	"time"

	"github.com/jetwave/jetski-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "booking not found")
	ErrConflict      = apperror.New(http.StatusConflict, "this slot is no longer available")
	ErrInvalidStatus = apperror.New(http.StatusBadRequest, "invalid booking status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Reservation is one customer's claim on one unit for one interval on one
// day. Its interval is [StartTime, StartTime + duration of its duration
// class); TotalPrice is fixed at creation and never recomputed.
type Reservation struct {
	ID              string
	UnitID          string
	Date            string // YYYY-MM-DD
	DurationClassID string
	StartTime       string // HH:MM
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	TotalPrice      float64
	Status          Status
	CreatedAt       time.Time
	IsManual        bool
	WaiverRef       string
	SessionID       string // external payment session reference, if any
}

// Filter narrows ledger queries; empty fields match everything.
type Filter struct {
	UnitID string
	Date   string
	Status Status
}
