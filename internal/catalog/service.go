package catalog

import "context"

// ReplaceRequest carries the collections to overwrite; nil slices are left
// untouched so the admin UI can edit one table at a time.
type ReplaceRequest struct {
	Units           []*Unit
	DurationClasses []*DurationClass
	BlackoutDates   []*BlackoutDate
}

// Inventory is the full catalog snapshot returned to clients.
type Inventory struct {
	Units           []*Unit
	DurationClasses []*DurationClass
	BlackoutDates   []*BlackoutDate
}

type Service interface {
	ReadInventory(ctx context.Context) (*Inventory, error)
	BulkReplaceInventory(ctx context.Context, req ReplaceRequest) (*Inventory, error)
	ReadSettings(ctx context.Context) (*Settings, error)
	UpdateSettings(ctx context.Context, patch SettingsPatch) (*Settings, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ReadInventory(ctx context.Context) (*Inventory, error) {
	units, err := s.repo.ListUnits(ctx)
	if err != nil {
		return nil, err
	}
	classes, err := s.repo.ListDurationClasses(ctx)
	if err != nil {
		return nil, err
	}
	dates, err := s.repo.ListBlackoutDates(ctx)
	if err != nil {
		return nil, err
	}
	return &Inventory{Units: units, DurationClasses: classes, BlackoutDates: dates}, nil
}

func (s *service) BulkReplaceInventory(ctx context.Context, req ReplaceRequest) (*Inventory, error) {
	if req.Units != nil {
		if err := s.repo.ReplaceUnits(ctx, req.Units); err != nil {
			return nil, err
		}
	}
	if req.DurationClasses != nil {
		if err := s.repo.ReplaceDurationClasses(ctx, req.DurationClasses); err != nil {
			return nil, err
		}
	}
	if req.BlackoutDates != nil {
		if err := s.repo.ReplaceBlackoutDates(ctx, req.BlackoutDates); err != nil {
			return nil, err
		}
	}
	return s.ReadInventory(ctx)
}

func (s *service) ReadSettings(ctx context.Context) (*Settings, error) {
	return s.repo.GetSettings(ctx)
}

func (s *service) UpdateSettings(ctx context.Context, patch SettingsPatch) (*Settings, error) {
	return s.repo.UpdateSettings(ctx, patch)
}
