package commands

import (
	"context"

	"restaurant-reservations/internal/domain/table"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/usecase/queries"
	"restaurant-reservations/internal/usecase/shared"
)

type TableCommands interface {
	Create(ctx context.Context, name string, capacity int) (*queries.TableView, error)
	Seat(ctx context.Context, tableID, reservationID int64) (*queries.TableView, error)
	Unseat(ctx context.Context, tableID int64) (*queries.TableView, error)
}

type tableCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTableCommands(uow shared.UnitOfWork, clock clock.Clock) TableCommands {
	return &tableCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (c *tableCommandsImpl) Create(ctx context.Context, name string, capacity int) (*queries.TableView, error) {
	t, err := table.NewTable(name, capacity, c.clock.Now())
	if err != nil {
		return nil, classify(err)
	}

	var created *table.Table
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err = tx.Tables().Create(ctx, t)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintName(err) == infra.ConstraintTableName {
			return nil, errs.Mark(errs.Mark(errs.Newf("Table name %q already exists.", t.Name()), ErrTableNameTaken), errs.ErrConflict)
		}
		return nil, classify(err)
	}

	return queries.TableViewFromDomain(created), nil
}

// Seat binds a reservation to a table and marks it seated in one transaction.
// The table row is locked first, then the reservation row.
func (c *tableCommandsImpl) Seat(ctx context.Context, tableID, reservationID int64) (*queries.TableView, error) {
	now := c.clock.Now()

	var seated *table.Table
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Tables().FindByIDForUpdate(ctx, tableID)
		if err != nil {
			if isNotFound(err) {
				return notFound("Table %d cannot be found.", tableID)
			}
			return err
		}

		res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			if isNotFound(err) {
				return notFound("Reservation %d not found.", reservationID)
			}
			return err
		}

		if err := t.Seat(res.ID(), res.People(), now); err != nil {
			return err
		}
		if err := res.Seat(now); err != nil {
			return err
		}

		seated, err = tx.Tables().Seat(ctx, t)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintName(err) == infra.ConstraintSeatedReservation:
				return alreadySeated(reservationID)
			case infra.IsKind(err, infra.KindConflict), infra.IsKind(err, infra.KindDuplicateKey):
				return occupied(tableID)
			}
			return err
		}

		_, err = tx.Reservations().UpdateStatus(ctx, res)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	return queries.TableViewFromDomain(seated), nil
}

// Unseat frees the table and finishes the reservation it held, in one transaction.
func (c *tableCommandsImpl) Unseat(ctx context.Context, tableID int64) (*queries.TableView, error) {
	now := c.clock.Now()

	var released *table.Table
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Tables().FindByIDForUpdate(ctx, tableID)
		if err != nil {
			if isNotFound(err) {
				return notFound("Table %d cannot be found.", tableID)
			}
			return err
		}

		reservationID, err := t.Release(now)
		if err != nil {
			return err
		}

		res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			if isNotFound(err) {
				return notFound("Reservation %d not found.", reservationID)
			}
			return err
		}
		if err := res.Finish(now); err != nil {
			return err
		}

		released, err = tx.Tables().Release(ctx, t)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return table.ErrNotOccupied
			}
			return err
		}

		_, err = tx.Reservations().UpdateStatus(ctx, res)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	return queries.TableViewFromDomain(released), nil
}
