package response

import (
	"time"

	"restaurant-reservations/internal/usecase/queries"
)

type TableResponse struct {
	TableID       int64     `json:"table_id"`
	TableName     string    `json:"table_name"`
	Capacity      int       `json:"capacity"`
	ReservationID *int64    `json:"reservation_id"`
	Occupied      bool      `json:"occupied"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromTableView(v *queries.TableView) *TableResponse {
	return &TableResponse{
		TableID:       v.ID,
		TableName:     v.Name,
		Capacity:      v.Capacity,
		ReservationID: v.ReservationID,
		Occupied:      v.IsOccupied(),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromTableList(items []*queries.TableView) []*TableResponse {
	res := make([]*TableResponse, len(items))
	for i, it := range items {
		res[i] = FromTableView(it)
	}
	return res
}
