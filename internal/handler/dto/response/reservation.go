package response

import (
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/usecase/queries"
)

// DataResponse wraps every successful payload under "data".
type DataResponse[T any] struct {
	Data T `json:"data"`
}

func Data[T any](v T) DataResponse[T] {
	return DataResponse[T]{Data: v}
}

type ReservationResponse struct {
	ReservationID   int64     `json:"reservation_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	MobileNumber    string    `json:"mobile_number"`
	ReservationDate string    `json:"reservation_date"`
	ReservationTime string    `json:"reservation_time"`
	People          int       `json:"people"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ReservationID:   v.ID,
		FirstName:       v.FirstName,
		LastName:        v.LastName,
		MobileNumber:    v.MobileNumber,
		ReservationDate: v.ReservationDate.Format(reservation.DateLayout),
		ReservationTime: v.ReservationTime,
		People:          v.People,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromReservationList(items []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(items))
	for i, it := range items {
		res[i] = FromReservationView(it)
	}
	return res
}

type StatusResponse struct {
	Status string `json:"status"`
}
