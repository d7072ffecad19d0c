package review

import "context"

type Repository interface {
	Create(ctx context.Context, rv *Review) error
	List(ctx context.Context, approvedOnly bool) ([]*Review, error)
	SetApproved(ctx context.Context, id string, approved bool) (*Review, error)
	Delete(ctx context.Context, id string) error
}
