package reservation

import "restaurant-reservations/internal/pkg/errs"

// The text of each sentinel is the message returned to API callers.
var (
	ErrMissingData          = errs.New("Missing data.")
	ErrMissingFields        = errs.New("Missing required data to make a reservation.")
	ErrInvalidPeople        = errs.New("Invalid number of people.")
	ErrInvalidDate          = errs.New("'reservation_date' must be a date.")
	ErrInvalidTime          = errs.New("'reservation_time' must be a valid time in HH:mm format.")
	ErrClosedDay            = errs.New("The restaurant is closed on that day. Please choose another date.")
	ErrPastReservation      = errs.New("Reservations cannot be made for any day prior to today. Please choose a today or a future date.")
	ErrOutsideHours         = errs.New("Reservation time is outside of business hours.")
	ErrInvalidInitialStatus = errs.New("Invalid reservation status.")
	ErrUnknownStatus        = errs.New("Invalid status.")

	ErrInvalidTransition = errs.New("Invalid reservation status transition.")
	ErrFinished          = errs.New("Reservation is in a finished status.")
	ErrStatusLocked      = errs.New("Reservation status cannot be changed.")
	ErrAlreadySeated     = errs.New("Reservation is already seated.")
	ErrNotEditable       = errs.New("Only booked reservations can be edited.")
)

// transitionError carries a specific reason and is always an ErrInvalidTransition.
func transitionError(reason error, format string, args ...any) error {
	return errs.Mark(errs.Mark(errs.Newf(format, args...), reason), ErrInvalidTransition)
}
