package catalog

import (
	"net/http"

	"github.com/jetwave/jetski-booking-backend/internal/pkg/apperror"
)

var (
	ErrUnitNotFound          = apperror.New(http.StatusNotFound, "jet ski not found")
	ErrDurationClassNotFound = apperror.New(http.StatusBadRequest, "invalid time slot")
)

type UnitStatus string

const (
	UnitAvailable   UnitStatus = "available"
	UnitMaintenance UnitStatus = "maintenance"
)

// Unit is a single rentable jet ski. Units are created at catalog seeding or
// administration time and never deleted in normal operation; only their
// status changes.
type Unit struct {
	ID          string
	Name        string
	Description string
	Image       string
	Status      UnitStatus
}

// DurationClass is a named rental length with date-dependent pricing
// (the "time slot" menu shown to customers).
type DurationClass struct {
	ID              string
	Label           string
	DurationMinutes int
	WeekdayPrice    float64
	WeekendPrice    float64
}

// BlackoutDate marks a calendar day on which no unit may be booked.
type BlackoutDate struct {
	ID     string
	Date   string // YYYY-MM-DD
	Reason string
}

// Settings holds business contact info and the daily operating-hours window
// within which start times may be offered.
type Settings struct {
	BusinessName        string
	BusinessPhone       string
	BusinessEmail       string
	BusinessAddress     string
	OperatingHoursStart string // HH:MM
	OperatingHoursEnd   string // HH:MM
}

// SettingsPatch is a partial settings update; nil fields are left unchanged.
type SettingsPatch struct {
	BusinessName        *string
	BusinessPhone       *string
	BusinessEmail       *string
	BusinessAddress     *string
	OperatingHoursStart *string
	OperatingHoursEnd   *string
}
