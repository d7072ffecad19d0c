package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jetwave/jetski-booking-backend/internal/booking"
	"github.com/jetwave/jetski-booking-backend/internal/payment"
	"github.com/jetwave/jetski-booking-backend/internal/pkg/response"
	"github.com/jetwave/jetski-booking-backend/internal/reservation"
)

type Handler struct {
	service  booking.Service
	provider payment.Provider
}

func NewHandler(service booking.Service, provider payment.Provider) *Handler {
	return &Handler{service: service, provider: provider}
}

// Availability lists bookable start times for a unit/date/duration-class.
func (h *Handler) Availability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing date, jetSkiId or timeSlotId"})
		return
	}

	times, err := h.service.AvailableStartTimes(c.Request.Context(), req.UnitID, req.Date, req.DurationClassID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, AvailabilityResponse{AvailableTimes: times})
}

// List returns every reservation in the ledger (admin).
func (h *Handler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(records))
	for i, res := range records {
		items[i] = NewBookingResponse(res)
	}
	c.JSON(http.StatusOK, gin.H{"bookings": items})
}

// Create books directly in confirmed status (no payment step).
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	result, err := h.service.Create(c.Request.Context(), body.toServiceRequest())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateBookingResponse{
		Booking:    NewBookingResponse(result.Primary),
		TotalPrice: result.TotalPrice,
	})
}

// Checkout creates pending holds and a hosted payment session.
func (h *Handler) Checkout(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	result, err := h.service.CreateDeferred(c.Request.Context(), body.toServiceRequest())
	if err != nil {
		response.Error(c, err)
		return
	}

	status := http.StatusOK
	if result.Mode == "no-payment" {
		status = http.StatusCreated
	}
	c.JSON(status, CheckoutResponse{
		Mode:        result.Mode,
		BookingID:   result.PrimaryID,
		BookingIDs:  result.ReservationIDs,
		SessionID:   result.SessionID,
		CheckoutURL: result.CheckoutURL,
		TotalPrice:  result.TotalPrice,
	})
}

// Verify confirms a reservation once its payment session reports paid; used
// by the post-checkout success page.
func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing booking ID"})
		return
	}

	res, err := h.service.VerifySession(c.Request.Context(), req.SessionID, req.BookingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": NewBookingResponse(res)})
}

// Webhook receives payment-provider events and reconciles them into ledger
// status transitions.
func (h *Handler) Webhook(c *gin.Context) {
	if !h.provider.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments are not configured"})
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable payload"})
		return
	}
	if err := h.provider.VerifyWebhook(payload, c.GetHeader("X-Webhook-Signature")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook signature"})
		return
	}

	event, err := payment.ParseEvent(payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	switch event.Type {
	case payment.EventCompleted:
		err = h.service.ConfirmPayment(ctx, event.ReservationIDs)
	case payment.EventExpired:
		err = h.service.ExpirePayment(ctx, event.ReservationIDs)
	default:
		// Unrelated event types are acknowledged and dropped.
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

// UpdateStatus transitions a reservation's lifecycle status (admin).
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var body UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking status"})
		return
	}

	res, err := h.service.SetStatus(c.Request.Context(), id, reservation.Status(body.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": NewBookingResponse(res)})
}

// Cancel cancels a pending or confirmed reservation (admin), freeing its
// interval for other customers.
func (h *Handler) Cancel(c *gin.Context) {
	res, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": NewBookingResponse(res)})
}
