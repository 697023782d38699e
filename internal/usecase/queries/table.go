package queries

import (
	"context"

	"restaurant-reservations/internal/pkg/errs"
)

type TableReadStore interface {
	FindAll(ctx context.Context) ([]*TableView, error)
	// FindByID returns nil, nil when the table does not exist.
	FindByID(ctx context.Context, id int64) (*TableView, error)
}

type TableQueries interface {
	List(ctx context.Context) ([]*TableView, error)
	GetByID(ctx context.Context, id int64) (*TableView, error)
}

type tableQueriesImpl struct {
	store TableReadStore
}

func NewTableQueries(store TableReadStore) TableQueries {
	return &tableQueriesImpl{store: store}
}

func (q *tableQueriesImpl) List(ctx context.Context) ([]*TableView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}
	return views, nil
}

func (q *tableQueriesImpl) GetByID(ctx context.Context, id int64) (*TableView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorage)
	}
	if view == nil {
		return nil, errs.Mark(errs.Newf("Table %d cannot be found.", id), errs.ErrNotFound)
	}
	return view, nil
}
