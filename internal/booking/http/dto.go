package http

import (
	"time"

	"github.com/jetwave/jetski-booking-backend/internal/booking"
	"github.com/jetwave/jetski-booking-backend/internal/reservation"
)

// AvailabilityRequest defines query parameters for the start-time listing.
// UnitID may be a concrete unit id or "__all__" for the intersection across
// every available unit.
type AvailabilityRequest struct {
	UnitID          string `form:"jetSkiId" binding:"required"`
	Date            string `form:"date" binding:"required"`
	DurationClassID string `form:"timeSlotId" binding:"required"`
}

type AvailabilityResponse struct {
	AvailableTimes []string `json:"availableTimes"`
}

type CreateBookingRequest struct {
	UnitID          string `json:"jetSkiId" binding:"required"`
	Date            string `json:"date" binding:"required"`
	DurationClassID string `json:"timeSlotId" binding:"required"`
	StartTime       string `json:"startTime" binding:"required"`
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerEmail   string `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string `json:"customerPhone"`
	IsManual        bool   `json:"isManual"`
	WaiverRef       string `json:"waiverRef"`
}

func (r *CreateBookingRequest) toServiceRequest() booking.CreateRequest {
	return booking.CreateRequest{
		UnitID:          r.UnitID,
		Date:            r.Date,
		DurationClassID: r.DurationClassID,
		StartTime:       r.StartTime,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		IsManual:        r.IsManual,
		WaiverRef:       r.WaiverRef,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

type BookingResponse struct {
	ID            string    `json:"id"`
	JetSkiID      string    `json:"jetSkiId"`
	Date          string    `json:"date"`
	TimeSlotID    string    `json:"timeSlotId"`
	StartTime     string    `json:"startTime"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	IsManual      bool      `json:"isManual"`
	WaiverRef     string    `json:"waiverRef,omitempty"`
}

func NewBookingResponse(res *reservation.Reservation) BookingResponse {
	return BookingResponse{
		ID:            res.ID,
		JetSkiID:      res.UnitID,
		Date:          res.Date,
		TimeSlotID:    res.DurationClassID,
		StartTime:     res.StartTime,
		CustomerName:  res.CustomerName,
		CustomerEmail: res.CustomerEmail,
		CustomerPhone: res.CustomerPhone,
		TotalPrice:    res.TotalPrice,
		Status:        string(res.Status),
		CreatedAt:     res.CreatedAt,
		IsManual:      res.IsManual,
		WaiverRef:     res.WaiverRef,
	}
}

// CreateBookingResponse reports a direct booking. Booking is the primary
// record; TotalPrice is the group total when several units were booked.
type CreateBookingResponse struct {
	Booking    BookingResponse `json:"booking"`
	TotalPrice float64         `json:"totalPrice"`
}

// CheckoutResponse reports a deferred booking. In "no-payment" mode the
// checkout fields are empty and the holds were created directly confirmed.
type CheckoutResponse struct {
	Mode        string   `json:"mode"`
	BookingID   string   `json:"bookingId"`
	BookingIDs  []string `json:"allBookingIds"`
	SessionID   string   `json:"sessionId,omitempty"`
	CheckoutURL string   `json:"checkoutUrl,omitempty"`
	TotalPrice  float64  `json:"totalPrice"`
}

type VerifyRequest struct {
	SessionID string `form:"session_id"`
	BookingID string `form:"booking_id" binding:"required"`
}
