package catalog

import "context"

// Repository stores the rentable-unit catalog, the duration-class menu, the
// blackout-date list and the business settings. Replace operations are
// whole-collection overwrites: a replace with a shorter list drops the
// missing records. This mirrors the administrative bulk-edit workflow where
// inventory and pricing are edited as full tables.
type Repository interface {
	ListUnits(ctx context.Context) ([]*Unit, error)
	GetUnit(ctx context.Context, id string) (*Unit, error)
	ReplaceUnits(ctx context.Context, units []*Unit) error

	ListDurationClasses(ctx context.Context) ([]*DurationClass, error)
	GetDurationClass(ctx context.Context, id string) (*DurationClass, error)
	ReplaceDurationClasses(ctx context.Context, classes []*DurationClass) error

	ListBlackoutDates(ctx context.Context) ([]*BlackoutDate, error)
	ReplaceBlackoutDates(ctx context.Context, dates []*BlackoutDate) error

	GetSettings(ctx context.Context) (*Settings, error)
	UpdateSettings(ctx context.Context, patch SettingsPatch) (*Settings, error)
}
