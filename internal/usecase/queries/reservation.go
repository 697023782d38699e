package queries

import (
	"context"
	"strings"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/errs"
)

var ErrInvalidListDate = errs.New("'date' must be a date in YYYY-MM-DD format.")

type ReservationReadStore interface {
	// FindByID returns nil, nil when the reservation does not exist.
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	FindByDate(ctx context.Context, date time.Time) ([]*ReservationView, error)
	FindByMobileDigits(ctx context.Context, digits string) ([]*ReservationView, error)
}

// ListReservationsParams selects a date listing when Date is set, otherwise a
// phone search when MobileNumber is set, otherwise today's listing in the
// restaurant's zone.
type ListReservationsParams struct {
	Date         string
	MobileNumber string
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	List(ctx context.Context, params ListReservationsParams) ([]*ReservationView, error)
	ListByDate(ctx context.Context, date time.Time) ([]*ReservationView, error)
	SearchByPhone(ctx context.Context, fragment string) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store  ReservationReadStore
	policy *reservation.BookingPolicy
	clock  clock.Clock
}

func NewReservationQueries(store ReservationReadStore, policy *reservation.BookingPolicy, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{
		store:  store,
		policy: policy,
		clock:  clock,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}
	if view == nil {
		return nil, errs.Mark(errs.Newf("Reservation %d cannot be found.", id), errs.ErrNotFound)
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, params ListReservationsParams) ([]*ReservationView, error) {
	if d := strings.TrimSpace(params.Date); d != "" {
		date, err := reservation.ParseDate(d)
		if err != nil {
			return nil, errs.Mark(ErrInvalidListDate, errs.ErrValidation)
		}
		return q.ListByDate(ctx, date)
	}
	if params.MobileNumber != "" {
		return q.SearchByPhone(ctx, params.MobileNumber)
	}
	return q.ListByDate(ctx, q.policy.Today(q.clock.Now()))
}

func (q *reservationQueriesImpl) ListByDate(ctx context.Context, date time.Time) ([]*ReservationView, error) {
	views, err := q.store.FindByDate(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}
	return views, nil
}

func (q *reservationQueriesImpl) SearchByPhone(ctx context.Context, fragment string) ([]*ReservationView, error) {
	// A fragment without digits normalizes to "", which every number contains.
	views, err := q.store.FindByMobileDigits(ctx, reservation.NormalizePhone(fragment))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}
	return views, nil
}
