//go:build unit || e2e

package builder

import (
	"encoding/json"
	"strconv"
	"time"

	domreservation "restaurant-reservations/internal/domain/reservation"
	reqdto "restaurant-reservations/internal/handler/dto/request"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// FutureWednesday is an open day far enough ahead to never be in the past.
const FutureWednesday = "2035-01-03"

type ReservationBuilder struct {
	ID           int64
	FirstName    string
	LastName     string
	MobileNumber string
	Date         string
	Time         string
	People       int
	Status       domreservation.Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2034, 12, 1, 15, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:           1,
		FirstName:    "Rick",
		LastName:     "Sanchez",
		MobileNumber: "202-555-0164",
		Date:         FutureWednesday,
		Time:         "13:30",
		People:       2,
		Status:       domreservation.StatusBooked,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithStatus(s domreservation.Status) *ReservationBuilder {
	r.Status = s
	return r
}

func (r *ReservationBuilder) WithPeople(n int) *ReservationBuilder {
	r.People = n
	return r
}

func (r *ReservationBuilder) WithSchedule(date, clock string) *ReservationBuilder {
	r.Date = date
	r.Time = clock
	return r
}

func (r *ReservationBuilder) WithMobileNumber(m string) *ReservationBuilder {
	r.MobileNumber = m
	return r
}

func (r *ReservationBuilder) BuildInput() domreservation.BookingInput {
	return domreservation.BookingInput{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		MobileNumber:    r.MobileNumber,
		ReservationDate: r.Date,
		ReservationTime: r.Time,
		People:          domreservation.Party(r.People),
	}
}

// BuildDomain rebuilds a stored reservation with the builder's id and status.
func (r *ReservationBuilder) BuildDomain() *domreservation.Reservation {
	date, err := domreservation.ParseDate(r.Date)
	if err != nil {
		panic(err)
	}
	tod, err := domreservation.ParseTimeOfDay(r.Time)
	if err != nil {
		panic(err)
	}
	return domreservation.Reconstruct(
		r.ID, r.FirstName, r.LastName, r.MobileNumber,
		date, tod, r.People, r.Status, r.CreatedAt, r.UpdatedAt,
	)
}

func (r *ReservationBuilder) BuildInfra() sqlc.Reservations {
	d := r.BuildDomain()
	return sqlc.Reservations{
		ReservationID:   r.ID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		MobileNumber:    r.MobileNumber,
		ReservationDate: pgconv.DateToPgtype(d.Date()),
		ReservationTime: pgconv.MinutesToPgtype(d.Time().Minutes()),
		People:          int32(r.People),
		Status:          string(r.Status),
		CreatedAt:       pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
		MobileDigits:    pgtype.Text{String: domreservation.NormalizePhone(r.MobileNumber), Valid: true},
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return queries.ReservationViewFromDomain(r.BuildDomain())
}

func (r *ReservationBuilder) BuildPayload() *reqdto.ReservationPayload {
	return &reqdto.ReservationPayload{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		MobileNumber:    r.MobileNumber,
		ReservationDate: r.Date,
		ReservationTime: r.Time,
		People:          json.RawMessage(strconv.Itoa(r.People)),
	}
}

func (r *ReservationBuilder) BuildRequestDTO() reqdto.ReservationRequest {
	return reqdto.ReservationRequest{Data: r.BuildPayload()}
}
