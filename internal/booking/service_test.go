package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetwave/jetski-booking-backend/internal/availability"
	"github.com/jetwave/jetski-booking-backend/internal/catalog"
	"github.com/jetwave/jetski-booking-backend/internal/payment"
	"github.com/jetwave/jetski-booking-backend/internal/reservation"
)

const (
	weekday = "2026-07-06" // Monday
	weekend = "2026-07-04" // Saturday
)

// stubProvider is a scriptable payment.Provider for exercising the deferred
// checkout flow without an external service.
type stubProvider struct {
	enabled   bool
	session   *payment.Session
	createErr error
	paid      bool
	checkErr  error
}

func (p *stubProvider) Enabled() bool { return p.enabled }

func (p *stubProvider) CreateSession(_ context.Context, _ payment.SessionRequest) (*payment.Session, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	return p.session, nil
}

func (p *stubProvider) CheckSession(_ context.Context, _ string) (bool, error) {
	if p.checkErr != nil {
		return false, p.checkErr
	}
	return p.paid, nil
}

func (p *stubProvider) VerifyWebhook(_ []byte, _ string) error { return nil }

func newTestService(provider payment.Provider) (Service, reservation.Repository, catalog.Repository) {
	catalogRepo := catalog.NewMemoryRepository()
	ledger := reservation.NewMemoryRepository()
	engine := availability.NewEngine(catalogRepo, ledger)
	if provider == nil {
		provider = payment.NewDisabled()
	}
	return NewService(engine, catalogRepo, ledger, provider), ledger, catalogRepo
}

func validRequest() CreateRequest {
	return CreateRequest{
		UnitID:          "js-1",
		Date:            weekday,
		DurationClassID: "ts-60",
		StartTime:       "10:00",
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		CustomerPhone:   "555-0100",
	}
}

func TestCreateConfirmedBooking(t *testing.T) {
	svc, _, _ := newTestService(nil)

	result, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, result.Reservations, 1)
	res := result.Primary
	assert.Equal(t, "js-1", res.UnitID)
	assert.Equal(t, reservation.StatusConfirmed, res.Status)
	assert.Equal(t, 100.0, res.TotalPrice, "ts-60 weekday price")
	assert.Equal(t, 100.0, result.TotalPrice)
	assert.Regexp(t, `^bk-`, res.ID)
}

func TestCreateWeekendPricing(t *testing.T) {
	svc, _, _ := newTestService(nil)

	req := validRequest()
	req.Date = weekend

	result, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 125.0, result.TotalPrice, "ts-60 weekend price")
}

func TestCreateSecondOverlappingAttemptRejected(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	// Same unit, same day, overlapping interval.
	req := validRequest()
	req.StartTime = "10:30"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// A touching interval right after is fine.
	req.StartTime = "11:00"
	_, err = svc.Create(ctx, req)
	assert.NoError(t, err)
}

func TestCancelFreesSlot(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, first.Primary.ID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCancelled, cancelled.Status)

	// The exact same slot can be booked again.
	_, err = svc.Create(ctx, validRequest())
	assert.NoError(t, err)
}

func TestCancelAlreadyFinalized(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	result, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, result.Primary.ID)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, result.Primary.ID)
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
}

func TestCreateAllUnits(t *testing.T) {
	svc, _, _ := newTestService(nil)

	req := validRequest()
	req.UnitID = AllUnits

	result, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, result.Reservations, 2)
	assert.Equal(t, 200.0, result.TotalPrice, "per-unit price times unit count")

	seen := map[string]bool{}
	for _, res := range result.Reservations {
		seen[res.UnitID] = true
		assert.Equal(t, 100.0, res.TotalPrice)
	}
	assert.True(t, seen["js-1"])
	assert.True(t, seen["js-2"])
}

func TestCreateAllUnitsLegacyAlias(t *testing.T) {
	svc, _, _ := newTestService(nil)

	req := validRequest()
	req.UnitID = "both"

	result, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, result.Reservations, 2)
}

func TestCreateAllUnitsAllOrNothing(t *testing.T) {
	svc, ledger, _ := newTestService(nil)
	ctx := context.Background()

	// js-2 already has an overlapping booking, so the group attempt must
	// fail without holding js-1 either.
	req := validRequest()
	req.UnitID = "js-2"
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	req = validRequest()
	req.UnitID = AllUnits
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	records, err := ledger.List(ctx, reservation.Filter{UnitID: "js-1"})
	require.NoError(t, err)
	assert.Empty(t, records, "no partial group booking may remain")
}

func TestCreateAllUnitsSkipsMaintenance(t *testing.T) {
	svc, _, catalogRepo := newTestService(nil)
	ctx := context.Background()

	units, err := catalogRepo.ListUnits(ctx)
	require.NoError(t, err)
	units[1].Status = catalog.UnitMaintenance
	require.NoError(t, catalogRepo.ReplaceUnits(ctx, units))

	req := validRequest()
	req.UnitID = AllUnits
	result, err := svc.Create(ctx, req)
	require.NoError(t, err)

	require.Len(t, result.Reservations, 1)
	assert.Equal(t, "js-1", result.Primary.UnitID)
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*CreateRequest)
		want   error
	}{
		{name: "Missing name", mutate: func(r *CreateRequest) { r.CustomerName = "" }, want: ErrMissingFields},
		{name: "Missing email", mutate: func(r *CreateRequest) { r.CustomerEmail = "" }, want: ErrMissingFields},
		{name: "Missing unit", mutate: func(r *CreateRequest) { r.UnitID = "" }, want: ErrMissingFields},
		{name: "Missing date", mutate: func(r *CreateRequest) { r.Date = "" }, want: ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	req := validRequest()
	req.Date = "07/04/2026"
	_, err := svc.Create(ctx, req)
	assert.Error(t, err)

	req = validRequest()
	req.StartTime = "25:00"
	_, err = svc.Create(ctx, req)
	assert.Error(t, err)
}

func TestDeferredNoPaymentFallback(t *testing.T) {
	svc, ledger, _ := newTestService(payment.NewDisabled())
	ctx := context.Background()

	result, err := svc.CreateDeferred(ctx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, "no-payment", result.Mode)
	assert.Empty(t, result.CheckoutURL)
	require.Len(t, result.ReservationIDs, 1)

	res, err := ledger.GetByID(ctx, result.ReservationIDs[0])
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, res.Status, "no-payment bookings confirm immediately")
}

func TestDeferredCreatesPendingHolds(t *testing.T) {
	provider := &stubProvider{
		enabled: true,
		session: &payment.Session{ID: "cs_test_123", URL: "https://checkout.example.com/cs_test_123"},
	}
	svc, ledger, _ := newTestService(provider)
	ctx := context.Background()

	result, err := svc.CreateDeferred(ctx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, "payment", result.Mode)
	assert.Equal(t, "cs_test_123", result.SessionID)
	assert.Equal(t, "https://checkout.example.com/cs_test_123", result.CheckoutURL)

	res, err := ledger.GetByID(ctx, result.PrimaryID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusPending, res.Status)
	assert.Equal(t, "cs_test_123", res.SessionID)

	// The pending hold occupies the slot.
	_, err = svc.Create(ctx, validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestDeferredSessionFailureRollsBack(t *testing.T) {
	provider := &stubProvider{enabled: true, createErr: errors.New("provider down")}
	svc, ledger, _ := newTestService(provider)
	ctx := context.Background()

	_, err := svc.CreateDeferred(ctx, validRequest())
	require.Error(t, err)

	records, err := ledger.List(ctx, reservation.Filter{})
	require.NoError(t, err)
	assert.Empty(t, records, "failed checkout must leave no holds behind")
}

func TestConfirmPayment(t *testing.T) {
	provider := &stubProvider{enabled: true, session: &payment.Session{ID: "cs_1", URL: "https://pay"}}
	svc, ledger, _ := newTestService(provider)
	ctx := context.Background()

	result, err := svc.CreateDeferred(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.ConfirmPayment(ctx, result.ReservationIDs))

	res, err := ledger.GetByID(ctx, result.PrimaryID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, res.Status)
}

func TestExpirePaymentNeverDemotesConfirmed(t *testing.T) {
	provider := &stubProvider{enabled: true, session: &payment.Session{ID: "cs_1", URL: "https://pay"}}
	svc, ledger, _ := newTestService(provider)
	ctx := context.Background()

	result, err := svc.CreateDeferred(ctx, validRequest())
	require.NoError(t, err)
	require.NoError(t, svc.ConfirmPayment(ctx, result.ReservationIDs))

	// A late expiry signal for an already-paid booking is a no-op.
	require.NoError(t, svc.ExpirePayment(ctx, result.ReservationIDs))

	res, err := ledger.GetByID(ctx, result.PrimaryID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, res.Status)
}

func TestExpirePaymentCancelsPending(t *testing.T) {
	provider := &stubProvider{enabled: true, session: &payment.Session{ID: "cs_1", URL: "https://pay"}}
	svc, ledger, _ := newTestService(provider)
	ctx := context.Background()

	result, err := svc.CreateDeferred(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.ExpirePayment(ctx, result.ReservationIDs))

	res, err := ledger.GetByID(ctx, result.PrimaryID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCancelled, res.Status)

	// The slot opens back up.
	_, err = svc.Create(ctx, validRequest())
	assert.NoError(t, err)
}

func TestVerifySessionConfirmsPaid(t *testing.T) {
	provider := &stubProvider{
		enabled: true,
		session: &payment.Session{ID: "cs_1", URL: "https://pay"},
		paid:    true,
	}
	svc, _, _ := newTestService(provider)
	ctx := context.Background()

	result, err := svc.CreateDeferred(ctx, validRequest())
	require.NoError(t, err)

	res, err := svc.VerifySession(ctx, result.SessionID, result.PrimaryID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, res.Status)
}

func TestVerifySessionCheckFailureIsNotFatal(t *testing.T) {
	provider := &stubProvider{
		enabled:  true,
		session:  &payment.Session{ID: "cs_1", URL: "https://pay"},
		checkErr: errors.New("provider timeout"),
	}
	svc, _, _ := newTestService(provider)
	ctx := context.Background()

	result, err := svc.CreateDeferred(ctx, validRequest())
	require.NoError(t, err)

	res, err := svc.VerifySession(ctx, result.SessionID, result.PrimaryID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusPending, res.Status, "webhook settles it later")
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	result, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, result.Primary.ID, reservation.Status("teleported"))
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}

func TestAvailableStartTimesAllUnitsIntersection(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	// Book js-1 at 10:00 and js-2 at 11:00; the group view must offer
	// neither window.
	req := validRequest()
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	req = validRequest()
	req.UnitID = "js-2"
	req.StartTime = "11:00"
	_, err = svc.Create(ctx, req)
	require.NoError(t, err)

	times, err := svc.AvailableStartTimes(ctx, AllUnits, weekday, "ts-60")
	require.NoError(t, err)
	assert.Contains(t, times, "09:00")
	assert.Contains(t, times, "12:00")
	assert.NotContains(t, times, "10:00")
	assert.NotContains(t, times, "11:00")
}

func TestAvailableStartTimesUnknownDurationClass(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.AvailableStartTimes(context.Background(), "js-1", weekday, "ts-999")
	assert.ErrorIs(t, err, catalog.ErrDurationClassNotFound)
}
