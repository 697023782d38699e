package reservation

import (
	"slices"

	"restaurant-reservations/internal/pkg/errs"
)

type Status string

const (
	StatusBooked    Status = "booked"
	StatusSeated    Status = "seated"
	StatusFinished  Status = "finished"
	StatusCancelled Status = "cancelled"
)

// transitions is the whole reservation lifecycle. Anything not listed is denied,
// including staying in the same state.
var transitions = map[Status][]Status{
	StatusBooked: {StatusSeated, StatusCancelled},
	StatusSeated: {StatusFinished},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusSeated, StatusFinished, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusFinished || s == StatusCancelled
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", errs.Mark(errs.Newf("Invalid status: %s", s), ErrUnknownStatus)
	}
	return status, nil
}
