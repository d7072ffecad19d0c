package review

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CreateRequest struct {
	CustomerName string
	Rating       int
	Comment      string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Review, error)
	List(ctx context.Context, includeUnapproved bool) ([]*Review, error)
	SetApproved(ctx context.Context, id string, approved bool) (*Review, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Review, error) {
	rating := req.Rating
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	rv := &Review{
		ID:           "rv-" + uuid.NewString(),
		CustomerName: req.CustomerName,
		Rating:       rating,
		Comment:      req.Comment,
		Date:         time.Now().UTC().Format("2006-01-02"),
		Approved:     false,
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *service) List(ctx context.Context, includeUnapproved bool) ([]*Review, error) {
	return s.repo.List(ctx, !includeUnapproved)
}

func (s *service) SetApproved(ctx context.Context, id string, approved bool) (*Review, error) {
	return s.repo.SetApproved(ctx, id, approved)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
