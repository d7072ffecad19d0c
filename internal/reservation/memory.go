package reservation

import (
	"context"
	"sync"
)

// memoryRepository keeps the ledger in process memory, guarded by a single
// RWMutex. Creation order is preserved for listing.
type memoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*Reservation
	order []string
}

// NewMemoryRepository creates an empty in-memory reservation ledger.
func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[string]*Reservation)}
}

func (r *memoryRepository) Create(_ context.Context, res *Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[res.ID]; exists {
		return ErrConflict
	}
	cp := *res
	r.byID[res.ID] = &cp
	r.order = append(r.order, res.ID)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *memoryRepository) List(_ context.Context, filter Filter) ([]*Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Reservation
	for _, id := range r.order {
		res, ok := r.byID[id]
		if !ok {
			continue
		}
		if filter.UnitID != "" && res.UnitID != filter.UnitID {
			continue
		}
		if filter.Date != "" && res.Date != filter.Date {
			continue
		}
		if filter.Status != "" && res.Status != filter.Status {
			continue
		}
		cp := *res
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryRepository) UpdateStatus(_ context.Context, id string, status Status) (*Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	res.Status = status
	cp := *res
	return &cp, nil
}

func (r *memoryRepository) UpdateSessionRef(_ context.Context, ids []string, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if res, ok := r.byID[id]; ok {
			res.SessionID = sessionID
		}
	}
	return nil
}

func (r *memoryRepository) DeleteMany(_ context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		delete(r.byID, id)
	}
	kept := r.order[:0]
	for _, id := range r.order {
		if _, ok := r.byID[id]; ok {
			kept = append(kept, id)
		}
	}
	r.order = kept
	return nil
}
