package commands

import (
	"context"

	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/services"
	"retail/internal/pkg/clock"
)

// VoidOrderCommandHandler cancels a PENDING order and voids a PROCESSING or
// COMPLETED one. Orders already in a terminal status yield errs.ErrInvalidTransition.
type VoidOrderCommandHandler struct {
	transitions transitionRunner
	canceller   services.OrderCanceller
}

func NewVoidOrderCommandHandler(
	uowFactory OrderUoWFactory,
	hook StatusChangeHook,
	clk clock.Clock,
) VoidOrderCommandHandler {
	return VoidOrderCommandHandler{
		transitions: transitionRunner{uowFactory: uowFactory, hook: hook, clock: clk},
		canceller:   services.NewOrderCanceller(),
	}
}

// Handle withdraws the order and returns it in its new terminal status.
func (h VoidOrderCommandHandler) Handle(ctx context.Context, cmd VoidOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.transitions.run(ctx, cmd.OrderID(), func(o *order.Order) (order.StatusChange, error) {
		return h.canceller.Withdraw(o, cmd.Actor(), h.transitions.clock.Now())
	})
}
