package payment

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jetwave/jetski-booking-backend/internal/pkg/apperror"
)

var ErrBadEvent = apperror.New(http.StatusBadRequest, "malformed webhook event")

type EventType string

const (
	EventCompleted EventType = "checkout.session.completed"
	EventExpired   EventType = "checkout.session.expired"
)

// Event is a webhook delivery reduced to what the booking orchestrator
// needs: which reservations the session referenced and whether the payment
// completed or the session expired.
type Event struct {
	Type           EventType
	SessionID      string
	PrimaryID      string
	ReservationIDs []string
}

// rawEvent matches the provider's checkout-session event envelope.
type rawEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string `json:"id"`
			Metadata struct {
				BookingID     string `json:"bookingId"`
				AllBookingIDs string `json:"allBookingIds"`
			} `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// ParseEvent decodes a verified webhook payload. Events of unrelated types
// parse into an Event with an empty reservation list; callers ignore those.
func ParseEvent(payload []byte) (*Event, error) {
	var raw rawEvent
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, apperror.Wrap(fmt.Errorf("decode webhook payload: %w", err), http.StatusBadRequest, "malformed webhook event")
	}

	ev := &Event{
		Type:      EventType(raw.Type),
		SessionID: raw.Data.Object.ID,
		PrimaryID: raw.Data.Object.Metadata.BookingID,
	}

	if all := raw.Data.Object.Metadata.AllBookingIDs; all != "" {
		for _, id := range strings.Split(all, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ev.ReservationIDs = append(ev.ReservationIDs, id)
			}
		}
	} else if ev.PrimaryID != "" {
		ev.ReservationIDs = []string{ev.PrimaryID}
	}

	return ev, nil
}
