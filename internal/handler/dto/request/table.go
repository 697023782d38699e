package request

import (
	"encoding/json"
	"strconv"
	"strings"

	"restaurant-reservations/internal/domain/table"
	"restaurant-reservations/internal/pkg/errs"
)

type TablePayload struct {
	TableName     string          `json:"table_name"`
	Capacity      json.RawMessage `json:"capacity" swaggertype:"integer"`
	ReservationID json.RawMessage `json:"reservation_id,omitempty" swaggertype:"integer"`
}

// CreateTableRequest is the body of table creation: {"data": {...}}.
type CreateTableRequest struct {
	Data *TablePayload `json:"data"`
}

// Validate checks the request in order: payload, name, capacity, occupancy.
func (r *CreateTableRequest) Validate() (string, int, error) {
	if r.Data == nil {
		return "", 0, errs.Mark(table.ErrMissingData, errs.ErrValidation)
	}

	name := strings.TrimSpace(r.Data.TableName)
	if len([]rune(name)) <= 1 {
		return "", 0, errs.Mark(table.ErrInvalidName, errs.ErrValidation)
	}

	if isAbsent(r.Data.Capacity) {
		return "", 0, errs.Mark(table.ErrMissingCapacity, errs.ErrValidation)
	}
	capacity, err := strconv.ParseInt(strings.TrimSpace(string(r.Data.Capacity)), 10, 32)
	if err != nil || capacity <= 0 {
		return "", 0, errs.Mark(table.ErrInvalidCapacity, errs.ErrValidation)
	}

	if !isAbsent(r.Data.ReservationID) {
		return "", 0, errs.Mark(table.ErrAlreadyOccupied, errs.ErrValidation)
	}

	return name, int(capacity), nil
}

type SeatPayload struct {
	ReservationID json.RawMessage `json:"reservation_id" swaggertype:"integer"`
}

// SeatRequest is the body of a seat call: {"data": {"reservation_id": 1}}.
type SeatRequest struct {
	Data *SeatPayload `json:"data"`
}

var ErrInvalidReservationID = errs.New("'reservation_id' must be a positive integer.")

// ReservationID accepts a JSON integer or a string holding one.
func (r *SeatRequest) ReservationID() (int64, error) {
	if r.Data == nil {
		return 0, errs.Mark(table.ErrMissingData, errs.ErrValidation)
	}
	if isAbsent(r.Data.ReservationID) {
		return 0, errs.Mark(table.ErrMissingReservation, errs.ErrValidation)
	}

	s := strings.TrimSpace(string(r.Data.ReservationID))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Mark(ErrInvalidReservationID, errs.ErrValidation)
	}
	return id, nil
}

func isAbsent(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}
