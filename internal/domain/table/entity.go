package table

import (
	"math"
	"strings"
	"time"

	"restaurant-reservations/internal/pkg/errs"
)

var (
	ErrMissingData        = errs.New("Missing request data.")
	ErrInvalidName        = errs.New("Invalid table_name. It must be longer than one character.")
	ErrMissingCapacity    = errs.New("Missing table capacity.")
	ErrInvalidCapacity    = errs.New("Invalid capacity. Capacity must be a positive number.")
	ErrMissingReservation = errs.New("Missing reservation_id.")
	ErrAlreadyOccupied    = errs.New("Table is already occupied.")
	ErrCapacityExceeded   = errs.New("Party size exceeds table capacity.")
	ErrOccupied           = errs.New("Table is occupied.")
	ErrNotOccupied        = errs.New("Table is not occupied")
)

// MaxCapacity is the largest capacity the capacity column (INTEGER) can hold.
const MaxCapacity = math.MaxInt32

// Table is a dining table. reservationID is a weak reference: it is set only
// while the table is occupied and never owns the reservation.
type Table struct {
	id            int64
	name          string
	capacity      int
	reservationID *int64
	createdAt     time.Time
	updatedAt     time.Time
}

func NewTable(name string, capacity int, now time.Time) (*Table, error) {
	n := strings.TrimSpace(name)
	if len([]rune(n)) <= 1 {
		return nil, ErrInvalidName
	}
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, ErrInvalidCapacity
	}
	return &Table{
		name:      n,
		capacity:  capacity,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id int64, name string, capacity int, reservationID *int64, createdAt, updatedAt time.Time) *Table {
	return &Table{
		id:            id,
		name:          name,
		capacity:      capacity,
		reservationID: reservationID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (t *Table) ID() int64             { return t.id }
func (t *Table) Name() string          { return t.name }
func (t *Table) Capacity() int         { return t.capacity }
func (t *Table) ReservationID() *int64 { return t.reservationID }
func (t *Table) IsOccupied() bool      { return t.reservationID != nil }
func (t *Table) CreatedAt() time.Time  { return t.createdAt }
func (t *Table) UpdatedAt() time.Time  { return t.updatedAt }

// Seat checks capacity before occupancy and then binds the reservation.
func (t *Table) Seat(reservationID int64, people int, now time.Time) error {
	if people > t.capacity {
		return ErrCapacityExceeded
	}
	if t.IsOccupied() {
		return errs.Mark(errs.Newf("Table %d is occupied.", t.id), ErrOccupied)
	}
	id := reservationID
	t.reservationID = &id
	t.updatedAt = now
	return nil
}

// Release clears the reference and returns the reservation that was seated.
func (t *Table) Release(now time.Time) (int64, error) {
	if !t.IsOccupied() {
		return 0, ErrNotOccupied
	}
	id := *t.reservationID
	t.reservationID = nil
	t.updatedAt = now
	return id, nil
}
