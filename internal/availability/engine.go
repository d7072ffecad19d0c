package availability

import (
	"context"
	"errors"

	"github.com/jetwave/jetski-booking-backend/internal/catalog"
	"github.com/jetwave/jetski-booking-backend/internal/pkg/timeutil"
	"github.com/jetwave/jetski-booking-backend/internal/reservation"
)

// Granularity is the fixed spacing, in minutes, between candidate start times.
const Granularity = 15

// Engine answers availability questions from the current catalog and ledger
// state. It owns no state of its own: every call is a pure recomputation
// from the two stores, so results for one unit/date/duration are identical
// whether the stores are in-memory or database-backed.
type Engine struct {
	catalog catalog.Repository
	ledger  reservation.Repository
}

func NewEngine(catalogRepo catalog.Repository, ledger reservation.Repository) *Engine {
	return &Engine{catalog: catalogRepo, ledger: ledger}
}

// daySnapshot is one unit's bookable state for a single date.
type daySnapshot struct {
	unit      *catalog.Unit
	blackout  bool
	durations map[string]int // duration class id -> minutes
	existing  []*reservation.Reservation
}

func (e *Engine) snapshot(ctx context.Context, unitID, date string) (*daySnapshot, error) {
	unit, err := e.catalog.GetUnit(ctx, unitID)
	if err != nil {
		if errors.Is(err, catalog.ErrUnitNotFound) {
			return &daySnapshot{}, nil
		}
		return nil, err
	}

	dates, err := e.catalog.ListBlackoutDates(ctx)
	if err != nil {
		return nil, err
	}
	blackout := false
	for _, bd := range dates {
		if bd.Date == date {
			blackout = true
			break
		}
	}

	classes, err := e.catalog.ListDurationClasses(ctx)
	if err != nil {
		return nil, err
	}
	durations := make(map[string]int, len(classes))
	for _, dc := range classes {
		durations[dc.ID] = dc.DurationMinutes
	}

	existing, err := e.ledger.List(ctx, reservation.Filter{UnitID: unitID, Date: date})
	if err != nil {
		return nil, err
	}

	return &daySnapshot{
		unit:      unit,
		blackout:  blackout,
		durations: durations,
		existing:  existing,
	}, nil
}

// free reports whether [start, start+durationMinutes) is bookable against
// the snapshot. Overlap is half-open: a reservation ending exactly when
// another starts does not conflict.
func (s *daySnapshot) free(startMinute, durationMinutes int) bool {
	if s.unit == nil || s.unit.Status != catalog.UnitAvailable {
		return false
	}
	if s.blackout {
		return false
	}

	requestEnd := startMinute + durationMinutes
	for _, b := range s.existing {
		if b.Status == reservation.StatusCancelled {
			continue
		}
		minutes, ok := s.durations[b.DurationClassID]
		if !ok {
			continue
		}
		bookedStart, err := timeutil.TimeToMinutes(b.StartTime)
		if err != nil {
			continue
		}
		bookedEnd := bookedStart + minutes
		if startMinute < bookedEnd && requestEnd > bookedStart {
			return false
		}
	}
	return true
}

// IsAvailable reports whether the given unit can be booked on date for the
// interval [startTime, startTime+durationMinutes). A unit in maintenance, an
// unknown unit, or a blacked-out date is never available.
func (e *Engine) IsAvailable(ctx context.Context, unitID, date, startTime string, durationMinutes int) (bool, error) {
	startMinute, err := timeutil.TimeToMinutes(startTime)
	if err != nil {
		return false, err
	}
	snap, err := e.snapshot(ctx, unitID, date)
	if err != nil {
		return false, err
	}
	return snap.free(startMinute, durationMinutes), nil
}

// StartTimes enumerates, in ascending order, every bookable "HH:MM" start
// for the unit on date at the fixed 15-minute granularity. A rental must fit
// entirely within operating hours: no candidate t with
// t+durationMinutes > closing time is ever offered.
func (e *Engine) StartTimes(ctx context.Context, unitID, date string, durationMinutes int) ([]string, error) {
	settings, err := e.catalog.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	open, err := timeutil.TimeToMinutes(settings.OperatingHoursStart)
	if err != nil {
		return nil, err
	}
	closing, err := timeutil.TimeToMinutes(settings.OperatingHoursEnd)
	if err != nil {
		return nil, err
	}

	snap, err := e.snapshot(ctx, unitID, date)
	if err != nil {
		return nil, err
	}

	times := []string{}
	for t := open; t+durationMinutes <= closing; t += Granularity {
		if snap.free(t, durationMinutes) {
			times = append(times, timeutil.MinutesToTime(t))
		}
	}
	return times, nil
}

// CommonStartTimes returns the set intersection of each unit's individually
// available start times, preserving ascending order. Used for "book every
// available unit at once" requests.
func (e *Engine) CommonStartTimes(ctx context.Context, unitIDs []string, date string, durationMinutes int) ([]string, error) {
	if len(unitIDs) == 0 {
		return []string{}, nil
	}

	common, err := e.StartTimes(ctx, unitIDs[0], date, durationMinutes)
	if err != nil {
		return nil, err
	}
	for _, unitID := range unitIDs[1:] {
		times, err := e.StartTimes(ctx, unitID, date, durationMinutes)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]bool, len(times))
		for _, t := range times {
			seen[t] = true
		}
		kept := common[:0]
		for _, t := range common {
			if seen[t] {
				kept = append(kept, t)
			}
		}
		common = kept
	}
	return common, nil
}
