//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	created = time.Date(2034, 12, 1, 15, 0, 0, 0, time.UTC)
	later   = created.Add(time.Hour)
)

func storedReservation(status reservation.Status) *reservation.Reservation {
	return reservation.Reconstruct(
		7, "Rick", "Sanchez", "202-555-0164",
		time.Date(2035, 1, 3, 0, 0, 0, 0, time.UTC), reservation.NewTimeOfDay(13, 30),
		2, status, created, created,
	)
}

func TestNewReservation(t *testing.T) {
	b, err := reservation.DefaultBookingPolicy().Validate(validInput(), sunday)
	require.NoError(t, err)

	r := reservation.NewReservation(b, created)

	assert.Zero(t, r.ID())
	assert.Equal(t, reservation.StatusBooked, r.Status())
	assert.Equal(t, "Rick", r.FirstName())
	assert.Equal(t, 2, r.People())
	assert.Equal(t, "10:30", r.Time().String())
	assert.Equal(t, created, r.CreatedAt())
	assert.Equal(t, created, r.UpdatedAt())
}

func TestReservation_TransitionTo(t *testing.T) {
	testCases := []struct {
		name    string
		from    reservation.Status
		to      reservation.Status
		errIs   error
		message string
	}{
		{name: "booked→seated OK", from: reservation.StatusBooked, to: reservation.StatusSeated},
		{name: "booked→cancelled OK", from: reservation.StatusBooked, to: reservation.StatusCancelled},
		{name: "seated→finished OK", from: reservation.StatusSeated, to: reservation.StatusFinished},
		{
			name: "finished→booked NG", from: reservation.StatusFinished, to: reservation.StatusBooked,
			errIs: reservation.ErrFinished, message: "Reservation 7 is in a finished status.",
		},
		{
			name: "finished→finished NG", from: reservation.StatusFinished, to: reservation.StatusFinished,
			errIs: reservation.ErrFinished,
		},
		{
			name: "cancelled→booked NG", from: reservation.StatusCancelled, to: reservation.StatusBooked,
			errIs: reservation.ErrStatusLocked, message: "Reservation 7 status is cancelled.",
		},
		{
			name: "seated→seated NG", from: reservation.StatusSeated, to: reservation.StatusSeated,
			errIs: reservation.ErrAlreadySeated, message: "Reservation 7 is already seated.",
		},
		{
			name: "booked→finished NG", from: reservation.StatusBooked, to: reservation.StatusFinished,
			errIs: reservation.ErrInvalidTransition, message: "Cannot change reservation 7 from booked to finished.",
		},
		{
			name: "booked→booked NG", from: reservation.StatusBooked, to: reservation.StatusBooked,
			errIs: reservation.ErrInvalidTransition,
		},
		{
			name: "seated→cancelled NG", from: reservation.StatusSeated, to: reservation.StatusCancelled,
			errIs: reservation.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := storedReservation(tc.from)

			err := r.TransitionTo(tc.to, later)

			if tc.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.to, r.Status())
				assert.Equal(t, later, r.UpdatedAt())
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
			assert.True(t, errs.Is(err, reservation.ErrInvalidTransition))
			if tc.message != "" {
				assert.Equal(t, tc.message, err.Error())
			}
			assert.Equal(t, tc.from, r.Status(), "status must not change on failure")
			assert.Equal(t, created, r.UpdatedAt())
		})
	}
}

func TestReservation_Edit(t *testing.T) {
	in := validInput()
	in.FirstName = "Morty"
	in.People = reservation.Party(5)
	b, err := reservation.DefaultBookingPolicy().Validate(in, sunday)
	require.NoError(t, err)

	t.Run("bookedは編集可能", func(t *testing.T) {
		r := storedReservation(reservation.StatusBooked)
		require.NoError(t, r.Edit(b, later))

		assert.Equal(t, int64(7), r.ID())
		assert.Equal(t, "Morty", r.FirstName())
		assert.Equal(t, 5, r.People())
		assert.Equal(t, reservation.StatusBooked, r.Status())
		assert.Equal(t, created, r.CreatedAt())
		assert.Equal(t, later, r.UpdatedAt())
	})

	t.Run("booked以外は編集不可", func(t *testing.T) {
		for _, s := range []reservation.Status{reservation.StatusSeated, reservation.StatusFinished, reservation.StatusCancelled} {
			r := storedReservation(s)
			err := r.Edit(b, later)
			require.Error(t, err, s)
			assert.True(t, errs.Is(err, reservation.ErrNotEditable))
			assert.Equal(t, "Rick", r.FirstName())
		}
	})
}
