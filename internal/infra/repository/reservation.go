package repository

import (
	"context"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/infra/repository/converter"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
	GetReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, reservationID int64) (sqlc.Reservations, error)
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (sqlc.Reservations, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return converter.ReservationFromInfra(row), nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return converter.ReservationFromInfra(row), nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update reservation", err)
	}
	return converter.ReservationFromInfra(row), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := r.queries.UpdateReservationStatus(ctx, r.db, converter.ReservationToStatusParams(res))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update reservation status", err)
	}
	return converter.ReservationFromInfra(row), nil
}
