//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/usecase/shared"
	sharedmock "restaurant-reservations/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	// Sunday noon in New York; builders book the following Wednesday.
	fixedNow = time.Date(2034, 12, 31, 17, 0, 0, 0, time.UTC)
)

type txMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reservations *sharedmock.MockReservationRepository
	tables       *sharedmock.MockTableRepository
	clock        *clock.MockClock
	policy       *reservation.BookingPolicy
}

// newTxMocks wires a unit of work that runs the callback once against mock repositories.
func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		tables:       sharedmock.NewMockTableRepository(ctrl),
		clock:        clock.NewMockClock(fixedNow),
		policy:       reservation.DefaultBookingPolicy(),
	}
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Tables().Return(m.tables).AnyTimes()
	return m
}

func (m *txMocks) expectWithin() {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).Times(1)
}

func repoNotFound() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows)
}

func repoConflict() error {
	return infra.WrapRepoErr("conflict", pgx.ErrNoRows, infra.KindConflict)
}

func repoDuplicate(constraint string) error {
	return infra.WrapRepoErr("duplicate", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}

func repoFailure() error {
	return infra.WrapRepoErr("failure", errDBConnectionLost)
}
