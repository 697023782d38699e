package shared

import (
	"context"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/table"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one open transaction.
type Tx interface {
	Reservations() ReservationRepository
	Tables() TableRepository
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
	// FindByIDForUpdate locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error)
	Update(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
}

type TableRepository interface {
	Create(ctx context.Context, t *table.Table) (*table.Table, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*table.Table, error)
	// FindByReservationIDForUpdate returns nil, nil when no table holds the reservation.
	FindByReservationIDForUpdate(ctx context.Context, reservationID int64) (*table.Table, error)
	// Seat fails with a CONFLICT kind when the table was taken concurrently.
	Seat(ctx context.Context, t *table.Table) (*table.Table, error)
	Release(ctx context.Context, t *table.Table) (*table.Table, error)
}
