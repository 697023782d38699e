package queries

import (
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/table"
)

// ReservationView represents read-optimized reservation data
type ReservationView struct {
	ID              int64
	FirstName       string
	LastName        string
	MobileNumber    string
	ReservationDate time.Time
	ReservationTime string
	People          int
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableView represents read-optimized table data
type TableView struct {
	ID            int64
	Name          string
	Capacity      int
	ReservationID *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (v *TableView) IsOccupied() bool {
	return v.ReservationID != nil
}

func ReservationViewFromDomain(r *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:              r.ID(),
		FirstName:       r.FirstName(),
		LastName:        r.LastName(),
		MobileNumber:    r.MobileNumber(),
		ReservationDate: r.Date(),
		ReservationTime: r.Time().String(),
		People:          r.People(),
		Status:          r.Status().String(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

func TableViewFromDomain(t *table.Table) *TableView {
	return &TableView{
		ID:            t.ID(),
		Name:          t.Name(),
		Capacity:      t.Capacity(),
		ReservationID: t.ReservationID(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}
