package commands

import (
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/table"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/errs"
)

var ErrTableNameTaken = errs.New("Table name already exists.")

var validationErrors = []error{
	reservation.ErrMissingData,
	reservation.ErrMissingFields,
	reservation.ErrInvalidPeople,
	reservation.ErrInvalidDate,
	reservation.ErrInvalidTime,
	reservation.ErrClosedDay,
	reservation.ErrPastReservation,
	reservation.ErrOutsideHours,
	reservation.ErrInvalidInitialStatus,
	reservation.ErrUnknownStatus,
	table.ErrMissingData,
	table.ErrInvalidName,
	table.ErrMissingCapacity,
	table.ErrInvalidCapacity,
	table.ErrMissingReservation,
	table.ErrAlreadyOccupied,
	table.ErrNotOccupied,
}

var conflictErrors = []error{
	reservation.ErrInvalidTransition,
	reservation.ErrNotEditable,
	table.ErrCapacityExceeded,
	table.ErrOccupied,
}

// classify attaches the error class the handler maps to a status code.
// Errors that already carry a class are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, class := range []error{errs.ErrValidation, errs.ErrNotFound, errs.ErrConflict, errs.ErrStorage} {
		if errs.Is(err, class) {
			return err
		}
	}
	for _, e := range validationErrors {
		if errs.Is(err, e) {
			return errs.Mark(err, errs.ErrValidation)
		}
	}
	for _, e := range conflictErrors {
		if errs.Is(err, e) {
			return errs.Mark(err, errs.ErrConflict)
		}
	}
	return errs.Mark(err, errs.ErrStorage)
}

func notFound(format string, args ...any) error {
	return errs.Mark(errs.Newf(format, args...), errs.ErrNotFound)
}

func occupied(tableID int64) error {
	return errs.Mark(errs.Mark(errs.Newf("Table %d is occupied.", tableID), table.ErrOccupied), errs.ErrConflict)
}

// alreadySeated reports a reservation another table took between the lock and the update.
func alreadySeated(reservationID int64) error {
	return errs.Mark(
		errs.Mark(errs.Newf("Reservation %d is already seated.", reservationID), reservation.ErrAlreadySeated),
		errs.ErrConflict,
	)
}

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
