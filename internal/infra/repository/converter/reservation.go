package converter

import (
	"restaurant-reservations/internal/domain/reservation"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		FirstName:       res.FirstName(),
		LastName:        res.LastName(),
		MobileNumber:    res.MobileNumber(),
		ReservationDate: pgconv.DateToPgtype(res.Date()),
		ReservationTime: pgconv.MinutesToPgtype(res.Time().Minutes()),
		People:          int32(res.People()), // #nosec G115 -- BookingPolicy caps people at MaxPartySize
		Status:          res.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	return sqlc.UpdateReservationParams{
		ReservationID:   res.ID(),
		FirstName:       res.FirstName(),
		LastName:        res.LastName(),
		MobileNumber:    res.MobileNumber(),
		ReservationDate: pgconv.DateToPgtype(res.Date()),
		ReservationTime: pgconv.MinutesToPgtype(res.Time().Minutes()),
		People:          int32(res.People()), // #nosec G115 -- BookingPolicy caps people at MaxPartySize
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToStatusParams(res *reservation.Reservation) sqlc.UpdateReservationStatusParams {
	return sqlc.UpdateReservationStatusParams{
		ReservationID: res.ID(),
		Status:        res.Status().String(),
		UpdatedAt:     pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromInfra(row sqlc.Reservations) *reservation.Reservation {
	minutes := pgconv.MinutesFromPgtype(row.ReservationTime)
	return reservation.Reconstruct(
		row.ReservationID,
		row.FirstName,
		row.LastName,
		row.MobileNumber,
		pgconv.DateFromPgtype(row.ReservationDate),
		reservation.NewTimeOfDay(minutes/60, minutes%60),
		int(row.People),
		reservation.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
