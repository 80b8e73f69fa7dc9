package commands

import (
	"context"

	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/clock"
)

// ChangeOrderStatusCommandHandler is the only writer of order status.
//
// The stored status is read, the transition is checked by the aggregate, and
// the new status is written with a compare-and-swap on the status that was
// read. The change record is appended in the same transaction. The hook is
// called after commit, so a slow notifier never holds a transaction open.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, hook, clock.NewSystem())
//	cmd, _ := NewChangeOrderStatusCommand(42, order.Processing, "maria")
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // edge not in the state machine
//	case errors.Is(err, errs.ErrConcurrencyConflict):
//	    // someone else changed the order first; reload and decide again
//	}
type ChangeOrderStatusCommandHandler struct {
	transitions transitionRunner
}

// NewChangeOrderStatusCommandHandler creates a handler for explicit status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	hook StatusChangeHook,
	clk clock.Clock,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		transitions: transitionRunner{uowFactory: uowFactory, hook: hook, clock: clk},
	}
}

// Handle applies the requested transition and returns the updated order.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.transitions.run(ctx, cmd.OrderID(), func(o *order.Order) (order.StatusChange, error) {
		return o.ChangeStatus(cmd.Target(), cmd.Actor(), h.transitions.clock.Now())
	})
}
