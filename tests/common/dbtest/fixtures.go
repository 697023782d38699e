//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can run
// inside a test transaction as well as against the shared pool.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ReservationRow is the minimal column set needed to insert a fixture row.
type ReservationRow struct {
	FirstName    string
	LastName     string
	MobileNumber string
	Date         string
	Time         string
	People       int
	Status       string
}

func DefaultReservationRow() ReservationRow {
	return ReservationRow{
		FirstName:    "Rick",
		LastName:     "Sanchez",
		MobileNumber: "202-555-0164",
		Date:         "2035-01-03",
		Time:         "13:30",
		People:       2,
		Status:       "booked",
	}
}

// CreateTestReservation inserts a row directly, bypassing booking rules, so
// tests can arrange past dates or non-initial statuses.
func CreateTestReservation(t *testing.T, db Querier, row ReservationRow) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO reservations (first_name, last_name, mobile_number, reservation_date, reservation_time, people, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4::date, $5::time, $6, $7, now(), now())
		RETURNING reservation_id`,
		row.FirstName, row.LastName, row.MobileNumber, row.Date, row.Time, row.People, row.Status,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestTable(t *testing.T, db Querier, name string, capacity int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO tables (table_name, capacity, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		RETURNING table_id`,
		name, capacity,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

// SeatTestTable links a table and a reservation without going through the API.
func SeatTestTable(t *testing.T, db Querier, tableID, reservationID int64) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "UPDATE tables SET reservation_id = $2 WHERE table_id = $1", tableID, reservationID)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "UPDATE reservations SET status = 'seated' WHERE reservation_id = $1", reservationID)
	require.NoError(t, err)
}

func ReservationStatus(t *testing.T, db Querier, reservationID int64) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE reservation_id = $1", reservationID).Scan(&status)
	require.NoError(t, err)
	return status
}

// TableOccupant returns the reservation seated at the table, or nil when free.
func TableOccupant(t *testing.T, db Querier, tableID int64) *int64 {
	t.Helper()

	var reservationID *int64
	err := db.QueryRow(context.Background(), "SELECT reservation_id FROM tables WHERE table_id = $1", tableID).Scan(&reservationID)
	require.NoError(t, err)
	return reservationID
}

// resetStatement clears seating first so the reservation foreign key never blocks.
const resetStatement = "TRUNCATE tables, reservations RESTART IDENTITY CASCADE"

// ResetDB empties the floor plan and the reservation book and restarts their ids.
func ResetDB(db Querier) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.Exec(ctx, resetStatement); err != nil {
		return fmt.Errorf("reset reservation tables: %w", err)
	}
	return nil
}
