package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jetwave/jetski-booking-backend/internal/availability"
	"github.com/jetwave/jetski-booking-backend/internal/catalog"
	"github.com/jetwave/jetski-booking-backend/internal/payment"
	"github.com/jetwave/jetski-booking-backend/internal/pkg/apperror"
	"github.com/jetwave/jetski-booking-backend/internal/pkg/timeutil"
	"github.com/jetwave/jetski-booking-backend/internal/reservation"
)

var (
	ErrSlotUnavailable  = apperror.New(http.StatusConflict, "this slot is no longer available")
	ErrMissingFields    = apperror.New(http.StatusBadRequest, "missing required fields")
	ErrNoUnitsAvailable = apperror.New(http.StatusConflict, "no jet skis are currently available")
	ErrAlreadyFinalized = apperror.New(http.StatusConflict, "booking is already cancelled or completed")
)

// AllUnits requests every currently-available unit at once. The legacy
// client sends "both" for the same thing; both spellings are accepted.
const AllUnits = "__all__"

func isAllUnits(unitID string) bool {
	return unitID == AllUnits || unitID == "both"
}

// CreateRequest is a validated booking attempt for one slot, possibly
// against every available unit at once.
type CreateRequest struct {
	UnitID          string // unit id or AllUnits
	Date            string // YYYY-MM-DD
	DurationClassID string
	StartTime       string // HH:MM
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	IsManual        bool
	WaiverRef       string
}

// CreateResult is the outcome of a direct booking. Each unit gets its own
// reservation record carrying its per-unit price; TotalPrice is the group
// total and Primary the record used as the external reference.
type CreateResult struct {
	Reservations []*reservation.Reservation
	Primary      *reservation.Reservation
	TotalPrice   float64
}

// DeferredResult is the outcome of a deferred-payment booking. When the
// payment provider is not configured the flow degrades to a direct booking
// and Mode is "no-payment" with CheckoutURL empty.
type DeferredResult struct {
	ReservationIDs []string
	PrimaryID      string
	SessionID      string
	CheckoutURL    string
	Mode           string // "payment" or "no-payment"
	TotalPrice     float64
}

type Service interface {
	// AvailableStartTimes lists bookable "HH:MM" starts for a unit (or the
	// intersection across all available units) on a date for a duration class.
	AvailableStartTimes(ctx context.Context, unitID, date, durationClassID string) ([]string, error)

	// Create books directly in confirmed status (walk-in / no-payment path).
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)

	// CreateDeferred creates pending holds and an external payment session.
	// If session creation fails every hold is rolled back.
	CreateDeferred(ctx context.Context, req CreateRequest) (*DeferredResult, error)

	// ConfirmPayment and ExpirePayment reconcile webhook events into ledger
	// status transitions.
	ConfirmPayment(ctx context.Context, reservationIDs []string) error
	ExpirePayment(ctx context.Context, reservationIDs []string) error

	// VerifySession confirms a pending reservation once its payment session
	// reports paid, and returns the current record either way.
	VerifySession(ctx context.Context, sessionID, reservationID string) (*reservation.Reservation, error)

	Cancel(ctx context.Context, id string) (*reservation.Reservation, error)
	SetStatus(ctx context.Context, id string, status reservation.Status) (*reservation.Reservation, error)
	GetByID(ctx context.Context, id string) (*reservation.Reservation, error)
	List(ctx context.Context) ([]*reservation.Reservation, error)
}

type service struct {
	engine   *availability.Engine
	catalog  catalog.Repository
	ledger   reservation.Repository
	provider payment.Provider

	// mu serializes the check-then-create section so concurrent attempts on
	// the same slot cannot both pass the availability check within one
	// process. Across processes the ledger's database exclusion constraint
	// rejects the losing writer, which surfaces as ErrSlotUnavailable.
	mu sync.Mutex
}

func NewService(
	engine *availability.Engine,
	catalogRepo catalog.Repository,
	ledger reservation.Repository,
	provider payment.Provider,
) Service {
	return &service{
		engine:   engine,
		catalog:  catalogRepo,
		ledger:   ledger,
		provider: provider,
	}
}

func (s *service) AvailableStartTimes(ctx context.Context, unitID, date, durationClassID string) ([]string, error) {
	dc, err := s.catalog.GetDurationClass(ctx, durationClassID)
	if err != nil {
		return nil, err
	}

	if isAllUnits(unitID) {
		unitIDs, err := s.availableUnitIDs(ctx)
		if err != nil {
			return nil, err
		}
		return s.engine.CommonStartTimes(ctx, unitIDs, date, dc.DurationMinutes)
	}
	return s.engine.StartTimes(ctx, unitID, date, dc.DurationMinutes)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	return s.createRecords(ctx, req, reservation.StatusConfirmed)
}

func (s *service) CreateDeferred(ctx context.Context, req CreateRequest) (*DeferredResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	// Without a configured provider there is nothing to defer to: book
	// directly, like the original's no-payment fallback.
	if !s.provider.Enabled() {
		result, err := s.createRecords(ctx, req, reservation.StatusConfirmed)
		if err != nil {
			return nil, err
		}
		return &DeferredResult{
			ReservationIDs: ids(result.Reservations),
			PrimaryID:      result.Primary.ID,
			Mode:           "no-payment",
			TotalPrice:     result.TotalPrice,
		}, nil
	}

	// Pending holds reserve the slot against concurrent attempts while the
	// customer completes checkout.
	result, err := s.createRecords(ctx, req, reservation.StatusPending)
	if err != nil {
		return nil, err
	}
	holdIDs := ids(result.Reservations)

	dc, err := s.catalog.GetDurationClass(ctx, req.DurationClassID)
	if err != nil {
		s.rollback(ctx, holdIDs)
		return nil, err
	}

	session, err := s.provider.CreateSession(ctx, payment.SessionRequest{
		CustomerEmail:  req.CustomerEmail,
		Label:          dc.Label,
		Description:    s.describe(ctx, result.Reservations, req),
		UnitCount:      len(result.Reservations),
		PricePerUnit:   result.Primary.TotalPrice,
		PrimaryID:      result.Primary.ID,
		ReservationIDs: holdIDs,
	})
	if err != nil {
		s.rollback(ctx, holdIDs)
		return nil, apperror.Wrap(err, http.StatusBadGateway, err.Error())
	}

	if err := s.ledger.UpdateSessionRef(ctx, holdIDs, session.ID); err != nil {
		log.Printf("failed to record session ref %s: %v", session.ID, err)
	}

	return &DeferredResult{
		ReservationIDs: holdIDs,
		PrimaryID:      result.Primary.ID,
		SessionID:      session.ID,
		CheckoutURL:    session.URL,
		Mode:           "payment",
		TotalPrice:     result.TotalPrice,
	}, nil
}

func (s *service) ConfirmPayment(ctx context.Context, reservationIDs []string) error {
	for _, id := range reservationIDs {
		res, err := s.ledger.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if res.Status != reservation.StatusPending {
			continue
		}
		if _, err := s.ledger.UpdateStatus(ctx, id, reservation.StatusConfirmed); err != nil {
			return err
		}
	}
	return nil
}

// ExpirePayment cancels every referenced reservation that is still pending.
// Records already confirmed or cancelled are left untouched: a late expiry
// signal must never demote a paid booking.
func (s *service) ExpirePayment(ctx context.Context, reservationIDs []string) error {
	for _, id := range reservationIDs {
		res, err := s.ledger.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if res.Status != reservation.StatusPending {
			continue
		}
		if _, err := s.ledger.UpdateStatus(ctx, id, reservation.StatusCancelled); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) VerifySession(ctx context.Context, sessionID, reservationID string) (*reservation.Reservation, error) {
	res, err := s.ledger.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if s.provider.Enabled() && sessionID != "" && res.Status == reservation.StatusPending {
		paid, err := s.provider.CheckSession(ctx, sessionID)
		if err != nil {
			// Verification failure is not fatal; the webhook will settle it.
			log.Printf("session %s verification failed: %v", sessionID, err)
			return res, nil
		}
		if paid {
			return s.ledger.UpdateStatus(ctx, reservationID, reservation.StatusConfirmed)
		}
	}
	return res, nil
}

func (s *service) Cancel(ctx context.Context, id string) (*reservation.Reservation, error) {
	res, err := s.ledger.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status != reservation.StatusPending && res.Status != reservation.StatusConfirmed {
		return nil, ErrAlreadyFinalized
	}
	return s.ledger.UpdateStatus(ctx, id, reservation.StatusCancelled)
}

func (s *service) SetStatus(ctx context.Context, id string, status reservation.Status) (*reservation.Reservation, error) {
	if !reservation.ValidStatus(status) {
		return nil, reservation.ErrInvalidStatus
	}
	return s.ledger.UpdateStatus(ctx, id, status)
}

func (s *service) GetByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	return s.ledger.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*reservation.Reservation, error) {
	return s.ledger.List(ctx, reservation.Filter{})
}

// createRecords re-validates availability for every target unit and, only if
// all pass, writes one reservation per unit (all-or-nothing). The whole
// check-then-create section runs under the service mutex.
func (s *service) createRecords(ctx context.Context, req CreateRequest, status reservation.Status) (*CreateResult, error) {
	dc, err := s.catalog.GetDurationClass(ctx, req.DurationClassID)
	if err != nil {
		return nil, err
	}

	weekend, err := timeutil.IsWeekend(req.Date)
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusBadRequest, "invalid booking date")
	}
	pricePerUnit := dc.WeekdayPrice
	if weekend {
		pricePerUnit = dc.WeekendPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var unitIDs []string
	if isAllUnits(req.UnitID) {
		unitIDs, err = s.availableUnitIDs(ctx)
		if err != nil {
			return nil, err
		}
		if len(unitIDs) == 0 {
			return nil, ErrNoUnitsAvailable
		}
	} else {
		unitIDs = []string{req.UnitID}
	}

	for _, unitID := range unitIDs {
		ok, err := s.engine.IsAvailable(ctx, unitID, req.Date, req.StartTime, dc.DurationMinutes)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrSlotUnavailable
		}
	}

	now := time.Now().UTC()
	created := make([]*reservation.Reservation, 0, len(unitIDs))
	for _, unitID := range unitIDs {
		res := &reservation.Reservation{
			ID:              newBookingID(),
			UnitID:          unitID,
			Date:            req.Date,
			DurationClassID: req.DurationClassID,
			StartTime:       req.StartTime,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			TotalPrice:      pricePerUnit,
			Status:          status,
			CreatedAt:       now,
			IsManual:        req.IsManual,
			WaiverRef:       req.WaiverRef,
		}
		if err := s.ledger.Create(ctx, res); err != nil {
			s.rollback(ctx, ids(created))
			if errors.Is(err, reservation.ErrConflict) {
				return nil, ErrSlotUnavailable
			}
			return nil, err
		}
		created = append(created, res)
	}

	return &CreateResult{
		Reservations: created,
		Primary:      created[0],
		TotalPrice:   pricePerUnit * float64(len(created)),
	}, nil
}

func (s *service) availableUnitIDs(ctx context.Context) ([]string, error) {
	units, err := s.catalog.ListUnits(ctx)
	if err != nil {
		return nil, err
	}
	var unitIDs []string
	for _, u := range units {
		if u.Status == catalog.UnitAvailable {
			unitIDs = append(unitIDs, u.ID)
		}
	}
	return unitIDs, nil
}

// rollback removes provisional records. Best effort: a failure here is
// logged, not returned, so the original error still reaches the caller.
func (s *service) rollback(ctx context.Context, recordIDs []string) {
	if len(recordIDs) == 0 {
		return
	}
	if err := s.ledger.DeleteMany(ctx, recordIDs); err != nil {
		log.Printf("rollback of reservations %v failed: %v", recordIDs, err)
	}
}

func (s *service) describe(ctx context.Context, records []*reservation.Reservation, req CreateRequest) string {
	names := make([]string, 0, len(records))
	for _, res := range records {
		if unit, err := s.catalog.GetUnit(ctx, res.UnitID); err == nil {
			names = append(names, unit.Name)
		} else {
			names = append(names, "Jet Ski")
		}
	}
	return fmt.Sprintf("%s on %s at %s", strings.Join(names, " & "), req.Date, req.StartTime)
}

func validate(req CreateRequest) error {
	if req.UnitID == "" || req.Date == "" || req.DurationClassID == "" ||
		req.StartTime == "" || req.CustomerName == "" || req.CustomerEmail == "" {
		return ErrMissingFields
	}
	if _, err := timeutil.ParseDate(req.Date); err != nil {
		return apperror.Wrap(err, http.StatusBadRequest, "invalid booking date")
	}
	if _, err := timeutil.TimeToMinutes(req.StartTime); err != nil {
		return apperror.Wrap(err, http.StatusBadRequest, "invalid start time")
	}
	return nil
}

func ids(records []*reservation.Reservation) []string {
	out := make([]string, len(records))
	for i, res := range records {
		out[i] = res.ID
	}
	return out
}

func newBookingID() string {
	return "bk-" + uuid.NewString()
}
