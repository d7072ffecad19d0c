package availability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetwave/jetski-booking-backend/internal/catalog"
	"github.com/jetwave/jetski-booking-backend/internal/reservation"
)

const testDate = "2026-07-06" // a Monday

func newTestEngine(t *testing.T) (*Engine, catalog.Repository, reservation.Repository) {
	t.Helper()
	catalogRepo := catalog.NewMemoryRepository()
	ledger := reservation.NewMemoryRepository()
	return NewEngine(catalogRepo, ledger), catalogRepo, ledger
}

func seedReservation(t *testing.T, ledger reservation.Repository, unitID, startTime string, status reservation.Status) {
	t.Helper()
	err := ledger.Create(context.Background(), &reservation.Reservation{
		ID:              fmt.Sprintf("bk-%s-%s-%s", unitID, startTime, status),
		UnitID:          unitID,
		Date:            testDate,
		DurationClassID: "ts-60",
		StartTime:       startTime,
		CustomerName:    "Test Customer",
		CustomerEmail:   "test@example.com",
		Status:          status,
		CreatedAt:       time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestStartTimesFullDay(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	times, err := engine.StartTimes(context.Background(), "js-1", testDate, 60)
	require.NoError(t, err)

	// Operating hours 09:00-18:00 at 15-minute spacing. A one-hour rental
	// must end by closing, so the last candidate is 17:00.
	require.Len(t, times, 33)
	assert.Equal(t, "09:00", times[0])
	assert.Equal(t, "17:00", times[len(times)-1])
}

func TestStartTimesRentalMustFitWithinHours(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	times, err := engine.StartTimes(context.Background(), "js-1", testDate, 120)
	require.NoError(t, err)

	require.NotEmpty(t, times)
	assert.Equal(t, "16:00", times[len(times)-1])
	assert.NotContains(t, times, "16:15")
	assert.NotContains(t, times, "17:00")
}

func TestStartTimesExcludesOverlaps(t *testing.T) {
	engine, _, ledger := newTestEngine(t)
	seedReservation(t, ledger, "js-1", "10:00", reservation.StatusConfirmed)

	times, err := engine.StartTimes(context.Background(), "js-1", testDate, 60)
	require.NoError(t, err)

	// Touching endpoints do not conflict: a rental ending at 10:00 and one
	// starting at 11:00 are both fine.
	assert.Contains(t, times, "09:00")
	assert.Contains(t, times, "11:00")

	for _, blocked := range []string{"09:15", "09:30", "09:45", "10:00", "10:15", "10:30", "10:45"} {
		assert.NotContains(t, times, blocked, "start %s overlaps the 10:00 booking", blocked)
	}
}

func TestStartTimesPendingBlocksCancelledDoesNot(t *testing.T) {
	engine, _, ledger := newTestEngine(t)
	seedReservation(t, ledger, "js-1", "10:00", reservation.StatusPending)
	seedReservation(t, ledger, "js-1", "14:00", reservation.StatusCancelled)

	times, err := engine.StartTimes(context.Background(), "js-1", testDate, 60)
	require.NoError(t, err)

	assert.NotContains(t, times, "10:00", "pending holds occupy the slot")
	assert.Contains(t, times, "14:00", "cancelled bookings free the slot")
}

func TestStartTimesUnitInMaintenance(t *testing.T) {
	engine, catalogRepo, _ := newTestEngine(t)

	ctx := context.Background()
	units, err := catalogRepo.ListUnits(ctx)
	require.NoError(t, err)
	units[0].Status = catalog.UnitMaintenance
	require.NoError(t, catalogRepo.ReplaceUnits(ctx, units))

	times, err := engine.StartTimes(ctx, units[0].ID, testDate, 60)
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestStartTimesUnknownUnit(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	times, err := engine.StartTimes(context.Background(), "js-404", testDate, 60)
	require.NoError(t, err)
	require.NotNil(t, times)
	assert.Empty(t, times)
}

func TestStartTimesBlackoutDate(t *testing.T) {
	engine, catalogRepo, _ := newTestEngine(t)

	ctx := context.Background()
	err := catalogRepo.ReplaceBlackoutDates(ctx, []*catalog.BlackoutDate{
		{ID: "bd-1", Date: testDate, Reason: "Storm warning"},
	})
	require.NoError(t, err)

	times, err := engine.StartTimes(ctx, "js-1", testDate, 60)
	require.NoError(t, err)
	assert.Empty(t, times)

	// Other days are unaffected.
	times, err = engine.StartTimes(ctx, "js-1", "2026-07-07", 60)
	require.NoError(t, err)
	assert.NotEmpty(t, times)
}

func TestIsAvailableTouchingEndpoints(t *testing.T) {
	engine, _, ledger := newTestEngine(t)
	seedReservation(t, ledger, "js-1", "10:00", reservation.StatusConfirmed)

	tests := []struct {
		name      string
		startTime string
		want      bool
	}{
		{name: "Ends exactly at booking start", startTime: "09:00", want: true},
		{name: "Starts exactly at booking end", startTime: "11:00", want: true},
		{name: "Same start", startTime: "10:00", want: false},
		{name: "Overlaps head", startTime: "09:30", want: false},
		{name: "Overlaps tail", startTime: "10:45", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := engine.IsAvailable(context.Background(), "js-1", testDate, tt.startTime, 60)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestCommonStartTimes(t *testing.T) {
	engine, _, ledger := newTestEngine(t)

	// js-1 is busy 10:00-11:00, js-2 is busy 11:00-12:00. The intersection
	// must exclude anything overlapping either booking.
	seedReservation(t, ledger, "js-1", "10:00", reservation.StatusConfirmed)
	seedReservation(t, ledger, "js-2", "11:00", reservation.StatusConfirmed)

	common, err := engine.CommonStartTimes(context.Background(), []string{"js-1", "js-2"}, testDate, 60)
	require.NoError(t, err)

	assert.Contains(t, common, "09:00")
	assert.Contains(t, common, "12:00")
	assert.NotContains(t, common, "10:00")
	assert.NotContains(t, common, "10:30")
	assert.NotContains(t, common, "11:00")
	assert.NotContains(t, common, "11:45")

	// Result stays in ascending order.
	for i := 1; i < len(common); i++ {
		assert.Less(t, common[i-1], common[i])
	}
}

func TestCommonStartTimesNoUnits(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	common, err := engine.CommonStartTimes(context.Background(), nil, testDate, 60)
	require.NoError(t, err)
	require.NotNil(t, common)
	assert.Empty(t, common)
}
