package commands

import (
	"context"
	"errors"

	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/clock"
	"retail/internal/pkg/errs"
)

// CreateOrderCommandHandler persists a new PENDING order after checking that
// its customer exists. The total is computed by the Order aggregate.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock.NewSystem())
//	created, err := handler.Handle(ctx, cmd)
//	if errs.IsValidation(err) {
//	    // unknown customer or malformed line items
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, clk clock.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle creates the order inside one transaction and returns it with its
// store-assigned identifier. An unknown customer is a validation failure.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		cmd.Channel(), cmd.CustomerRef(), cmd.LineItems(), cmd.PaymentRef(), h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err = uow.CustomerRepository().Get(ctx, cmd.CustomerRef())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewValueIsInvalidErrorWithCause("customer_ref", err)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
