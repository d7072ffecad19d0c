package catalog

import (
	"context"
	"sync"
)

// memoryRepository keeps the whole catalog in process memory. It backs tests
// and deployments without a database, and is seeded with the default fleet
// and pricing menu.
type memoryRepository struct {
	mu       sync.RWMutex
	units    []*Unit
	classes  []*DurationClass
	dates    []*BlackoutDate
	settings Settings
}

func defaultUnits() []*Unit {
	return []*Unit{
		{
			ID:          "js-1",
			Name:        "Wave Runner 1",
			Description: "Yamaha EX Sport — Perfect for beginners and families. Stable, easy to handle, and a blast on the water!",
			Image:       "/jetski1.svg",
			Status:      UnitAvailable,
		},
		{
			ID:          "js-2",
			Name:        "Wave Runner 2",
			Description: "Sea-Doo Spark — Lightweight and agile, great for thrill-seekers who love speed and tight turns.",
			Image:       "/jetski2.svg",
			Status:      UnitAvailable,
		},
	}
}

func defaultDurationClasses() []*DurationClass {
	return []*DurationClass{
		{ID: "ts-15", Label: "15 Minutes", DurationMinutes: 15, WeekdayPrice: 35, WeekendPrice: 45},
		{ID: "ts-30", Label: "30 Minutes", DurationMinutes: 30, WeekdayPrice: 60, WeekendPrice: 75},
		{ID: "ts-60", Label: "1 Hour", DurationMinutes: 60, WeekdayPrice: 100, WeekendPrice: 125},
		{ID: "ts-120", Label: "2 Hours", DurationMinutes: 120, WeekdayPrice: 175, WeekendPrice: 220},
	}
}

func defaultSettings() Settings {
	return Settings{
		BusinessName:        "Jet's Ski Rentals",
		BusinessPhone:       "(850) 276-6063",
		BusinessEmail:       "info@getwetwithjet.com",
		BusinessAddress:     "Coastal Florida",
		OperatingHoursStart: "09:00",
		OperatingHoursEnd:   "18:00",
	}
}

// NewMemoryRepository creates an in-memory catalog seeded with the default
// fleet, pricing menu and business settings.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		units:    defaultUnits(),
		classes:  defaultDurationClasses(),
		settings: defaultSettings(),
	}
}

func (r *memoryRepository) ListUnits(_ context.Context) ([]*Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Unit, len(r.units))
	for i, u := range r.units {
		cp := *u
		out[i] = &cp
	}
	return out, nil
}

func (r *memoryRepository) GetUnit(_ context.Context, id string) (*Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.units {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrUnitNotFound
}

func (r *memoryRepository) ReplaceUnits(_ context.Context, units []*Unit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units = make([]*Unit, len(units))
	for i, u := range units {
		cp := *u
		r.units[i] = &cp
	}
	return nil
}

func (r *memoryRepository) ListDurationClasses(_ context.Context) ([]*DurationClass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*DurationClass, len(r.classes))
	for i, dc := range r.classes {
		cp := *dc
		out[i] = &cp
	}
	return out, nil
}

func (r *memoryRepository) GetDurationClass(_ context.Context, id string) (*DurationClass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, dc := range r.classes {
		if dc.ID == id {
			cp := *dc
			return &cp, nil
		}
	}
	return nil, ErrDurationClassNotFound
}

func (r *memoryRepository) ReplaceDurationClasses(_ context.Context, classes []*DurationClass) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes = make([]*DurationClass, len(classes))
	for i, dc := range classes {
		cp := *dc
		r.classes[i] = &cp
	}
	return nil
}

func (r *memoryRepository) ListBlackoutDates(_ context.Context) ([]*BlackoutDate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*BlackoutDate, len(r.dates))
	for i, bd := range r.dates {
		cp := *bd
		out[i] = &cp
	}
	return out, nil
}

func (r *memoryRepository) ReplaceBlackoutDates(_ context.Context, dates []*BlackoutDate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dates = make([]*BlackoutDate, len(dates))
	for i, bd := range dates {
		cp := *bd
		r.dates[i] = &cp
	}
	return nil
}

func (r *memoryRepository) GetSettings(_ context.Context) (*Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := r.settings
	return &cp, nil
}

func (r *memoryRepository) UpdateSettings(_ context.Context, patch SettingsPatch) (*Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	applySettingsPatch(&r.settings, patch)
	cp := r.settings
	return &cp, nil
}

func applySettingsPatch(s *Settings, patch SettingsPatch) {
	if patch.BusinessName != nil {
		s.BusinessName = *patch.BusinessName
	}
	if patch.BusinessPhone != nil {
		s.BusinessPhone = *patch.BusinessPhone
	}
	if patch.BusinessEmail != nil {
		s.BusinessEmail = *patch.BusinessEmail
	}
	if patch.BusinessAddress != nil {
		s.BusinessAddress = *patch.BusinessAddress
	}
	if patch.OperatingHoursStart != nil {
		s.OperatingHoursStart = *patch.OperatingHoursStart
	}
	if patch.OperatingHoursEnd != nil {
		s.OperatingHoursEnd = *patch.OperatingHoursEnd
	}
}
