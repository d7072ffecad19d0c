package review

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	reviews []*Review
}

func defaultReviews() []*Review {
	return []*Review{
		{
			ID:           "r-1",
			CustomerName: "Mike T.",
			Rating:       5,
			Comment:      "Amazing experience! The jet skis were in great condition and the staff was super helpful. Will definitely come back!",
			Date:         "2026-02-10",
			Approved:     true,
		},
		{
			ID:           "r-2",
			CustomerName: "Sarah L.",
			Rating:       5,
			Comment:      "Perfect way to spend a sunny afternoon. Booking online was so easy and we got right on the water. Highly recommend!",
			Date:         "2026-02-05",
			Approved:     true,
		},
		{
			ID:           "r-3",
			CustomerName: "Jason R.",
			Rating:       4,
			Comment:      "Great fun! The 1-hour ride was just the right amount of time. Only wish they had more jet skis so the wait was shorter on busy days.",
			Date:         "2026-01-28",
			Approved:     true,
		},
		{
			ID:           "r-4",
			CustomerName: "Emily K.",
			Rating:       5,
			Comment:      "Took my kids for the first time and they LOVED it. Super safe, well-maintained equipment. 10/10!",
			Date:         "2026-01-20",
			Approved:     true,
		},
	}
}

// NewMemoryRepository creates an in-memory review store seeded with the
// default sample reviews.
func NewMemoryRepository() Repository {
	return &memoryRepository{reviews: defaultReviews()}
}

func (r *memoryRepository) Create(_ context.Context, rv *Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rv
	r.reviews = append(r.reviews, &cp)
	return nil
}

func (r *memoryRepository) List(_ context.Context, approvedOnly bool) ([]*Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Review
	for _, rv := range r.reviews {
		if approvedOnly && !rv.Approved {
			continue
		}
		cp := *rv
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryRepository) SetApproved(_ context.Context, id string, approved bool) (*Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rv := range r.reviews {
		if rv.ID == id {
			rv.Approved = approved
			cp := *rv
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rv := range r.reviews {
		if rv.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
