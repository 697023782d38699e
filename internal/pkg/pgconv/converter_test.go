//go:build unit

package pgconv

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestDateConversion(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 23:30 in New York is already the next day in UTC; the calendar day must follow the input zone.
	late := time.Date(2035, 1, 3, 23, 30, 0, 0, ny)
	assert.Equal(t, pgtype.Date{Time: time.Date(2035, 1, 3, 0, 0, 0, 0, time.UTC), Valid: true}, DateToPgtype(late))

	assert.Equal(t, time.Date(2035, 1, 3, 0, 0, 0, 0, time.UTC), DateFromPgtype(DateToPgtype(late)))
	assert.True(t, DateFromPgtype(pgtype.Date{}).IsZero())
}

func TestMinutesConversion(t *testing.T) {
	assert.Equal(t, 13*60+30, MinutesFromPgtype(MinutesToPgtype(13*60+30)))
	assert.Equal(t, 0, MinutesFromPgtype(pgtype.Time{}))

	withSeconds := pgtype.Time{Microseconds: int64((10*time.Hour + 30*time.Minute + 59*time.Second) / time.Microsecond), Valid: true}
	assert.Equal(t, 10*60+30, MinutesFromPgtype(withSeconds))
}

func TestInt64PtrConversion(t *testing.T) {
	assert.Nil(t, Int64PtrFromPgtype(pgtype.Int8{}))
	assert.Equal(t, pgtype.Int8{}, Int64PtrToPgtype(nil))

	v := int64(7)
	got := Int64PtrFromPgtype(Int64PtrToPgtype(&v))
	if assert.NotNil(t, got) {
		assert.Equal(t, v, *got)
	}
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(sql.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("lookup: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(nil))
	assert.False(t, IsNoRows(sql.ErrConnDone))
}
