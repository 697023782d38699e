//go:build unit || e2e

package builder

import (
	"encoding/json"
	"strconv"
	"time"

	domtable "restaurant-reservations/internal/domain/table"
	reqdto "restaurant-reservations/internal/handler/dto/request"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type TableBuilder struct {
	ID            int64
	Name          string
	Capacity      int
	ReservationID *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewTableBuilder() *TableBuilder {
	now := time.Date(2034, 12, 1, 15, 0, 0, 0, time.UTC)
	return &TableBuilder{
		ID:        1,
		Name:      "Bar #1",
		Capacity:  4,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *TableBuilder) With(mutate func(*TableBuilder)) *TableBuilder {
	mutate(b)
	return b
}

func (b *TableBuilder) WithID(id int64) *TableBuilder {
	b.ID = id
	return b
}

func (b *TableBuilder) WithCapacity(c int) *TableBuilder {
	b.Capacity = c
	return b
}

func (b *TableBuilder) OccupiedBy(reservationID int64) *TableBuilder {
	b.ReservationID = &reservationID
	return b
}

func (b *TableBuilder) BuildDomain() *domtable.Table {
	var rid *int64
	if b.ReservationID != nil {
		v := *b.ReservationID
		rid = &v
	}
	return domtable.Reconstruct(b.ID, b.Name, b.Capacity, rid, b.CreatedAt, b.UpdatedAt)
}

func (b *TableBuilder) BuildInfra() sqlc.Tables {
	row := sqlc.Tables{
		TableID:   b.ID,
		TableName: b.Name,
		Capacity:  int32(b.Capacity),
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
	if b.ReservationID != nil {
		row.ReservationID = pgtype.Int8{Int64: *b.ReservationID, Valid: true}
	}
	return row
}

func (b *TableBuilder) BuildView() *queries.TableView {
	return queries.TableViewFromDomain(b.BuildDomain())
}

func (b *TableBuilder) BuildCreateRequestDTO() reqdto.CreateTableRequest {
	return reqdto.CreateTableRequest{
		Data: &reqdto.TablePayload{
			TableName: b.Name,
			Capacity:  json.RawMessage(strconv.Itoa(b.Capacity)),
		},
	}
}

func SeatRequestDTO(reservationID int64) reqdto.SeatRequest {
	return reqdto.SeatRequest{
		Data: &reqdto.SeatPayload{ReservationID: json.RawMessage(strconv.FormatInt(reservationID, 10))},
	}
}
