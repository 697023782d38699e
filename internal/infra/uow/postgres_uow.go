package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"restaurant-reservations/internal/infra/repository"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries      = 3
	backoffBase     = 100 * time.Millisecond
	rollbackTimeout = 5 * time.Second
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// retryPolicy bounds how often a seating or status change is replayed after
// Postgres aborts it for a serialization failure or deadlock.
type retryPolicy struct {
	retries int
	base    time.Duration
}

var defaultRetry = retryPolicy{retries: maxRetries, base: backoffBase}

type PostgresUoW struct {
	db    TxBeginner
	q     *sqlc.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) *PostgresUoW {
	return &PostgresUoW{db: pool, q: q, retry: defaultRetry}
}

// Within runs fn in a READ COMMITTED transaction. Callers take row locks
// explicitly, table before reservation, so two seat requests never deadlock
// on each other; a deadlock against other writers is retried.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.runOnce(ctx, opts, fn)
		if err == nil || !isRetryableError(err) {
			return err
		}
		if attempt == u.retry.retries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := calculateBackoff(attempt, u.retry.base)
		slog.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// runOnce owns one transaction from begin to commit or rollback.
func (u *PostgresUoW) runOnce(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.db.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, q: u.q})
	if err == nil {
		err = pgxTx.Commit(ctx)
		if err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	rollback(ctx, pgxTx)
	return err
}

// rollback detaches from ctx so a cancelled request still releases its row locks.
func rollback(ctx context.Context, tx pgx.Tx) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()

	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", err.Error())
	}
}

// calculateBackoff doubles base per attempt and adds up to 20% jitter.
func calculateBackoff(attempt int, base time.Duration) time.Duration {
	wait := base << attempt
	if spread := int64(wait / 5); spread > 0 {
		wait += time.Duration(rand.Int64N(spread)) // #nosec G404 -- jitter, not a secret
	}
	return wait
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

// pgTx hands out repositories bound to one transaction, built on first use.
type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	reservations shared.ReservationRepository
	tables       shared.TableRepository
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservations == nil {
		t.reservations = repository.NewReservationRepository(t.q, t.dbtx)
	}
	return t.reservations
}

func (t *pgTx) Tables() shared.TableRepository {
	if t.tables == nil {
		t.tables = repository.NewTableRepository(t.q, t.dbtx)
	}
	return t.tables
}
