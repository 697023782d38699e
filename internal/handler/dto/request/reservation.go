package request

import (
	"encoding/json"
	"strconv"
	"strings"

	"restaurant-reservations/internal/domain/reservation"
)

type ReservationPayload struct {
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	MobileNumber    string          `json:"mobile_number"`
	ReservationDate string          `json:"reservation_date"`
	ReservationTime string          `json:"reservation_time"`
	People          json.RawMessage `json:"people" swaggertype:"integer"`
	Status          string          `json:"status,omitempty"`
}

// ReservationRequest is the body of create and edit: {"data": {...}}.
type ReservationRequest struct {
	Data *ReservationPayload `json:"data"`
}

func (r *ReservationRequest) ToDomain() reservation.BookingInput {
	if r.Data == nil {
		return reservation.BookingInput{}
	}
	return reservation.BookingInput{
		FirstName:       r.Data.FirstName,
		LastName:        r.Data.LastName,
		MobileNumber:    r.Data.MobileNumber,
		ReservationDate: r.Data.ReservationDate,
		ReservationTime: r.Data.ReservationTime,
		People:          partySize(r.Data.People),
		Status:          r.Data.Status,
	}
}

// partySize accepts only a JSON integer that fits the people column; anything else is reported as a non-integer.
func partySize(raw json.RawMessage) reservation.PartySize {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return reservation.PartySize{}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return reservation.PartySize{Present: true}
	}
	return reservation.Party(int(n))
}

type StatusPayload struct {
	Status string `json:"status"`
}

type StatusRequest struct {
	Data *StatusPayload `json:"data"`
}

func (r *StatusRequest) Status() string {
	if r.Data == nil {
		return ""
	}
	return strings.TrimSpace(r.Data.Status)
}
