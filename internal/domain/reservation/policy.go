package reservation

import (
	"slices"
	"strings"
	"time"

	"restaurant-reservations/internal/pkg/errs"
)

// BookingInput is an unvalidated booking request.
type BookingInput struct {
	FirstName       string
	LastName        string
	MobileNumber    string
	ReservationDate string
	ReservationTime string
	People          PartySize
	Status          string
}

func (in BookingInput) isEmpty() bool {
	return in == BookingInput{}
}

func (in BookingInput) missingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
		{"mobile_number", in.MobileNumber},
		{"reservation_date", in.ReservationDate},
		{"reservation_time", in.ReservationTime},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if !in.People.Present {
		missing = append(missing, "people")
	}
	return missing
}

// Booking is a booking that passed every policy rule.
type Booking struct {
	FirstName    string
	LastName     string
	MobileNumber string
	Date         time.Time
	Time         TimeOfDay
	People       int
}

// BookingPolicy holds the rules that gate a booking: the restaurant's zone,
// business hours (both ends inclusive) and the weekdays it is closed.
type BookingPolicy struct {
	location   *time.Location
	open       TimeOfDay
	close      TimeOfDay
	closedDays []time.Weekday
}

func NewBookingPolicy(loc *time.Location, open, close TimeOfDay, closedDays []time.Weekday) (*BookingPolicy, error) {
	if loc == nil {
		return nil, errs.New("booking policy requires a location")
	}
	if close.Minutes() < open.Minutes() {
		return nil, errs.Newf("closing time %s is before opening time %s", close, open)
	}
	return &BookingPolicy{
		location:   loc,
		open:       open,
		close:      close,
		closedDays: slices.Clone(closedDays),
	}, nil
}

// DefaultBookingPolicy is New York time, 10:30 to 21:30, closed on Tuesdays.
func DefaultBookingPolicy() *BookingPolicy {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		loc = time.FixedZone("EST", -5*60*60)
	}
	return &BookingPolicy{
		location:   loc,
		open:       NewTimeOfDay(10, 30),
		close:      NewTimeOfDay(21, 30),
		closedDays: []time.Weekday{time.Tuesday},
	}
}

func (p *BookingPolicy) Location() *time.Location { return p.location }

// Today is the current calendar day in the restaurant's zone, as midnight UTC.
func (p *BookingPolicy) Today(now time.Time) time.Time {
	y, m, d := now.In(p.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate applies the booking rules in a fixed order; the first failure wins.
func (p *BookingPolicy) Validate(in BookingInput, now time.Time) (Booking, error) {
	if in.isEmpty() {
		return Booking{}, ErrMissingData
	}
	if missing := in.missingFields(); len(missing) > 0 {
		return Booking{}, &MissingFieldsError{Fields: missing}
	}
	if !in.People.Integer || in.People.Value <= 0 || in.People.Value > MaxPartySize {
		return Booking{}, ErrInvalidPeople
	}

	date, err := ParseDate(strings.TrimSpace(in.ReservationDate))
	if err != nil {
		return Booking{}, err
	}
	tod, err := ParseTimeOfDay(strings.TrimSpace(in.ReservationTime))
	if err != nil {
		return Booking{}, err
	}

	if slices.Contains(p.closedDays, date.Weekday()) {
		return Booking{}, errs.Mark(
			errs.Newf("The restaurant is closed on %ss. Please choose another date.", date.Weekday()),
			ErrClosedDay,
		)
	}

	at := time.Date(date.Year(), date.Month(), date.Day(), tod.Hour(), tod.Minute(), 0, 0, p.location)
	if at.Before(now) {
		return Booking{}, ErrPastReservation
	}

	if tod.Minutes() < p.open.Minutes() || tod.Minutes() > p.close.Minutes() {
		return Booking{}, errs.Mark(
			errs.Newf("Restaurant reservations hours are %s to %s.", p.open.Clock(), p.close.Clock()),
			ErrOutsideHours,
		)
	}

	if in.Status != "" && Status(in.Status) != StatusBooked {
		return Booking{}, errs.Mark(
			errs.Newf("Reservation status is %q. Invalid reservation status.", in.Status),
			ErrInvalidInitialStatus,
		)
	}

	return Booking{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		MobileNumber: strings.TrimSpace(in.MobileNumber),
		Date:         date,
		Time:         tod,
		People:       in.People.Value,
	}, nil
}

// MissingFieldsError lists the booking fields that were absent or blank.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrMissingFields.Error() + " Fields required: " + strings.Join(e.Fields, ", ") + "."
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}
