// Package payment defines the contract with the external hosted-checkout
// provider. The provider itself is an external collaborator: this package
// only models session creation, session lookup and webhook events, so the
// booking orchestrator can drive its two-phase pending→confirmed/cancelled
// transitions without knowing which provider is wired in.
package payment

import (
	"context"
	"net/http"

	"github.com/jetwave/jetski-booking-backend/internal/pkg/apperror"
)

var (
	ErrDisabled = apperror.New(http.StatusServiceUnavailable, "payments are not configured")
)

// Session is an externally hosted checkout session holding the customer's
// payment for one booking request.
type Session struct {
	ID  string
	URL string
}

// SessionRequest describes the checkout session to create. The reservation
// ids ride along as opaque metadata and come back in webhook events.
type SessionRequest struct {
	CustomerEmail  string
	Label          string // duration class label, e.g. "1 Hour"
	Description    string // e.g. "Wave Runner 1 on 2026-07-04 at 10:00"
	UnitCount      int
	PricePerUnit   float64
	PrimaryID      string
	ReservationIDs []string
}

// Provider is the hosted-checkout integration point.
type Provider interface {
	// Enabled reports whether the provider is configured. When false the
	// deferred-payment flow degrades to direct no-payment booking.
	Enabled() bool

	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)

	// CheckSession reports whether the session has been paid.
	CheckSession(ctx context.Context, sessionID string) (bool, error)

	// VerifyWebhook authenticates a raw webhook delivery before it is parsed.
	VerifyWebhook(payload []byte, signature string) error
}

// Disabled is the Provider used when no payment configuration is present.
type Disabled struct{}

func NewDisabled() Disabled { return Disabled{} }

func (Disabled) Enabled() bool { return false }

func (Disabled) CreateSession(context.Context, SessionRequest) (*Session, error) {
	return nil, ErrDisabled
}

func (Disabled) CheckSession(context.Context, string) (bool, error) {
	return false, ErrDisabled
}

func (Disabled) VerifyWebhook([]byte, string) error {
	return ErrDisabled
}
