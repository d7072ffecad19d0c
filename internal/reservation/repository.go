package reservation

import "context"

// Repository is the reservation ledger. Create is a pure write: no
// availability check happens here; that belongs to the availability engine
// and the booking orchestrator.
type Repository interface {
	Create(ctx context.Context, res *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, error)

	// UpdateStatus updates a reservation's status in place and returns the
	// updated record, or ErrNotFound for an unknown id.
	UpdateStatus(ctx context.Context, id string, status Status) (*Reservation, error)

	// UpdateSessionRef attaches an external payment-session reference to the
	// given reservations.
	UpdateSessionRef(ctx context.Context, ids []string, sessionID string) error

	// DeleteMany removes records by id. Used to roll back provisional holds
	// when external payment-session creation fails; unknown ids are skipped.
	DeleteMany(ctx context.Context, ids []string) error
}
