package reservation

import (
	"time"
)

type Reservation struct {
	id           int64
	firstName    string
	lastName     string
	mobileNumber string
	date         time.Time
	timeOfDay    TimeOfDay
	people       int
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

// NewReservation builds an unsaved reservation from a validated booking.
// The id is assigned by storage.
func NewReservation(b Booking, now time.Time) *Reservation {
	r := &Reservation{
		status:    StatusBooked,
		createdAt: now,
	}
	r.apply(b, now)
	return r
}

// Reconstruct rebuilds a reservation from stored state without re-running booking rules.
func Reconstruct(
	id int64,
	firstName, lastName, mobileNumber string,
	date time.Time,
	timeOfDay TimeOfDay,
	people int,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		mobileNumber: mobileNumber,
		date:         date,
		timeOfDay:    timeOfDay,
		people:       people,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) FirstName() string    { return r.firstName }
func (r *Reservation) LastName() string     { return r.lastName }
func (r *Reservation) MobileNumber() string { return r.mobileNumber }
func (r *Reservation) Date() time.Time      { return r.date }
func (r *Reservation) Time() TimeOfDay      { return r.timeOfDay }
func (r *Reservation) People() int          { return r.people }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reservation) apply(b Booking, now time.Time) {
	r.firstName = b.FirstName
	r.lastName = b.LastName
	r.mobileNumber = b.MobileNumber
	r.date = b.Date
	r.timeOfDay = b.Time
	r.people = b.People
	r.updatedAt = now
}

// Edit overwrites every mutable field. Only booked reservations can be edited.
func (r *Reservation) Edit(b Booking, now time.Time) error {
	if r.status != StatusBooked {
		return transitionError(ErrNotEditable, "Reservation %d is %s and can no longer be edited.", r.id, r.status)
	}
	r.apply(b, now)
	return nil
}

// TransitionTo moves the reservation along the lifecycle.
func (r *Reservation) TransitionTo(next Status, now time.Time) error {
	switch {
	case r.status == StatusFinished:
		return transitionError(ErrFinished, "Reservation %d is in a finished status.", r.id)
	case r.status != StatusBooked && r.status != StatusSeated:
		return transitionError(ErrStatusLocked, "Reservation %d status is %s.", r.id, r.status)
	case r.status == StatusSeated && next == StatusSeated:
		return transitionError(ErrAlreadySeated, "Reservation %d is already seated.", r.id)
	case !r.status.CanTransitionTo(next):
		return transitionError(ErrInvalidTransition, "Cannot change reservation %d from %s to %s.", r.id, r.status, next)
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) Seat(now time.Time) error   { return r.TransitionTo(StatusSeated, now) }
func (r *Reservation) Finish(now time.Time) error { return r.TransitionTo(StatusFinished, now) }
func (r *Reservation) Cancel(now time.Time) error { return r.TransitionTo(StatusCancelled, now) }
