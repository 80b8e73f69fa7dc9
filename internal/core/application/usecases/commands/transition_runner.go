package commands

import (
	"context"

	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/clock"
)

// decideFunc mutates the loaded order and returns the change it made.
type decideFunc func(o *order.Order) (order.StatusChange, error)

// transitionRunner holds the shared read, compare-and-swap, append and notify
// sequence used by every command that changes order status.
type transitionRunner struct {
	uowFactory OrderUoWFactory
	hook       StatusChangeHook
	clock      clock.Clock
}

func (r transitionRunner) run(ctx context.Context, orderID int64, decide decideFunc) (*order.Order, error) {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()

	current, err := orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	expected := current.Status()
	change, err := decide(current)
	if err != nil {
		return nil, err
	}

	if err = orders.UpdateStatus(ctx, current, expected); err != nil {
		return nil, err
	}

	if err = orders.AppendStatusChange(ctx, change); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	r.hook.StatusChanged(current, change)
	return current, nil
}
