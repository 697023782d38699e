package commands

import (
	"context"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/usecase/queries"
	"restaurant-reservations/internal/usecase/shared"
)

type ReservationCommands interface {
	Create(ctx context.Context, in reservation.BookingInput) (*queries.ReservationView, error)
	Edit(ctx context.Context, id int64, in reservation.BookingInput) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, id int64, status string) (reservation.Status, error)
}

type reservationCommandsImpl struct {
	uow    shared.UnitOfWork
	policy *reservation.BookingPolicy
	clock  clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, policy *reservation.BookingPolicy, clock clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:    uow,
		policy: policy,
		clock:  clock,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, in reservation.BookingInput) (*queries.ReservationView, error) {
	now := c.clock.Now()
	booking, err := c.policy.Validate(in, now)
	if err != nil {
		return nil, classify(err)
	}

	var created *reservation.Reservation
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().Create(ctx, reservation.NewReservation(booking, now))
		if err != nil {
			return err
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	return queries.ReservationViewFromDomain(created), nil
}

func (c *reservationCommandsImpl) Edit(ctx context.Context, id int64, in reservation.BookingInput) (*queries.ReservationView, error) {
	now := c.clock.Now()
	booking, err := c.policy.Validate(in, now)
	if err != nil {
		return nil, classify(err)
	}

	var updated *reservation.Reservation
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return notFound("Reservation %d cannot be found.", id)
			}
			return err
		}
		if err := res.Edit(booking, now); err != nil {
			return err
		}
		updated, err = tx.Reservations().Update(ctx, res)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	return queries.ReservationViewFromDomain(updated), nil
}

// UpdateStatus moves a reservation along its lifecycle. Finishing a seated
// reservation also frees the table holding it. A missing reservation is
// reported before an unknown status.
func (c *reservationCommandsImpl) UpdateStatus(ctx context.Context, id int64, status string) (reservation.Status, error) {
	now := c.clock.Now()
	var result reservation.Status
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Tables are locked before reservations everywhere.
		held, err := tx.Tables().FindByReservationIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return notFound("Reservation %d cannot be found.", id)
			}
			return err
		}

		next, err := reservation.ParseStatus(status)
		if err != nil {
			return err
		}
		if err := res.TransitionTo(next, now); err != nil {
			return err
		}

		if next == reservation.StatusFinished {
			if held == nil {
				// A seat may have committed between the two lookups.
				if held, err = tx.Tables().FindByReservationIDForUpdate(ctx, id); err != nil {
					return err
				}
			}
			if held != nil {
				if _, err := held.Release(now); err != nil {
					return err
				}
				if _, err := tx.Tables().Release(ctx, held); err != nil {
					return err
				}
			}
		}

		saved, err := tx.Reservations().UpdateStatus(ctx, res)
		if err != nil {
			return err
		}
		result = saved.Status()
		return nil
	})
	if err != nil {
		return "", classify(err)
	}

	return result, nil
}

