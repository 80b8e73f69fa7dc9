package commands

import (
	"context"
	"errors"
	"fmt"

	"retail/internal/core/domain/model/order"
	"retail/internal/core/ports"
	"retail/internal/pkg/clock"
	"retail/internal/pkg/errs"
)

// statusChanger is satisfied by ChangeOrderStatusCommandHandler.
type statusChanger interface {
	Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error)
}

// ExpirePendingOrdersCommandHandler finds stale PENDING web orders and cancels
// each through the regular status change path with the system actor.
//
// Every order is cancelled in its own transaction. Orders that moved on in the
// meantime are skipped; other failures are collected and returned together.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	changer    statusChanger
	clock      clock.Clock
}

func NewExpirePendingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	changer statusChanger,
	clk clock.Clock,
) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		changer:    changer,
		clock:      clk,
	}
}

// Handle returns how many orders were cancelled.
func (h ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	channel := order.Web
	status := order.Pending
	cutoff := h.clock.Now().Add(-cmd.TTL())

	stale, err := h.uowFactory.Create().OrderRepository().List(ctx, ports.OrderFilter{
		Channel:       &channel,
		Status:        &status,
		CreatedBefore: &cutoff,
	})
	if err != nil {
		return 0, err
	}

	expired := 0
	var errList []error
	for _, o := range stale {
		if ctx.Err() != nil {
			errList = append(errList, ctx.Err())
			break
		}

		change, cmdErr := NewChangeOrderStatusCommand(o.ID(), order.Cancelled, order.SystemActor)
		if cmdErr != nil {
			errList = append(errList, cmdErr)
			continue
		}

		_, err = h.changer.Handle(ctx, change)
		switch {
		case err == nil:
			expired++
		case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrConcurrencyConflict):
		default:
			errList = append(errList, fmt.Errorf("expire order %d: %w", o.ID(), err))
		}
	}

	return expired, errors.Join(errList...)
}
