//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx implements only what the unit of work calls; anything else panics.
type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed && f.commitErr == nil {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs      []*fakeTx
	beginErr error
}

func (b *fakeBeginner) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

// fastRetry keeps the retry count but shrinks the waits.
var fastRetry = retryPolicy{retries: maxRetries, base: time.Millisecond}

func newTestUoW(b TxBeginner) *PostgresUoW {
	return &PostgresUoW{db: b, q: sqlc.New(), retry: fastRetry}
}

var errSerialization = &pgconn.PgError{Code: pgErrCodeSerializationFailure}

func TestWithin_CommitsOnSuccess(t *testing.T) {
	b := &fakeBeginner{}
	u := newTestUoW(b)

	err := u.Within(context.Background(), func(_ context.Context, tx shared.Tx) error {
		assert.NotNil(t, tx.Reservations())
		assert.NotNil(t, tx.Tables())
		assert.Same(t, tx.Tables(), tx.Tables())
		return nil
	})

	require.NoError(t, err)
	require.Len(t, b.txs, 1)
	assert.True(t, b.txs[0].committed)
	assert.False(t, b.txs[0].rolledBack)
}

func TestWithin_RollsBackOnError(t *testing.T) {
	b := &fakeBeginner{}
	u := newTestUoW(b)
	sentinel := errors.New("domain rule broken")

	err := u.Within(context.Background(), func(context.Context, shared.Tx) error { return sentinel })

	require.ErrorIs(t, err, sentinel)
	require.Len(t, b.txs, 1, "non-retryable errors must not retry")
	assert.False(t, b.txs[0].committed)
	assert.True(t, b.txs[0].rolledBack)
}

func TestWithin_RetriesSerializationFailure(t *testing.T) {
	b := &fakeBeginner{}
	u := newTestUoW(b)

	calls := 0
	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		calls++
		if calls == 1 {
			return errSerialization
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, b.txs, 2)
	assert.True(t, b.txs[0].rolledBack)
	assert.True(t, b.txs[1].committed)
}

func TestWithin_GivesUpAfterMaxRetries(t *testing.T) {
	b := &fakeBeginner{}
	u := newTestUoW(b)

	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		return &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
	})

	require.Error(t, err)
	assert.True(t, errs.Is(err, errMaxRetriesExceeded))
	assert.Len(t, b.txs, maxRetries+1)
}

func TestWithin_StopsRetryingWhenContextEnds(t *testing.T) {
	b := &fakeBeginner{}
	u := newTestUoW(b)

	u.retry.base = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	err := u.Within(ctx, func(context.Context, shared.Tx) error {
		cancel()
		return errSerialization
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, b.txs, 1)
}

func TestWithin_CommitFailureIsReported(t *testing.T) {
	commitErr := errors.New("connection reset")
	b := &failingCommitBeginner{err: commitErr}
	u := newTestUoW(b)

	err := u.Within(context.Background(), func(context.Context, shared.Tx) error { return nil })

	require.ErrorIs(t, err, commitErr)
	assert.True(t, errs.Is(err, errTransactionCommit))
	require.NotNil(t, b.tx)
	assert.True(t, b.tx.rolledBack)
}

func TestWithin_BeginFailure(t *testing.T) {
	b := &fakeBeginner{beginErr: errors.New("pool closed")}
	u := newTestUoW(b)

	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		t.Fatal("fn must not run without a transaction")
		return nil
	})

	assert.True(t, errs.Is(err, errTransactionBegin))
}

type failingCommitBeginner struct {
	err error
	tx  *fakeTx
}

func (b *failingCommitBeginner) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	b.tx = &fakeTx{commitErr: b.err}
	return b.tx, nil
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := range 4 {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5)
	}
}

func TestNewPostgresUoWUsesDefaultRetry(t *testing.T) {
	u := NewPostgresUoW(nil, sqlc.New())
	assert.Equal(t, defaultRetry, u.retry)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(errSerialization))
	assert.True(t, isRetryableError(errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "seat")))
	assert.False(t, isRetryableError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isRetryableError(errors.New("plain")))
}
