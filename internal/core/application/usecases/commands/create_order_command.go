package commands

import (
	"errors"
	"fmt"

	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order for an existing customer.
//
// Example:
//
//	price, _ := kernel.ParseMoney("24.99")
//	item, _ := order.NewLineItem(1001, 2, price)
//	cmd, err := NewCreateOrderCommand(order.Web, customerID, []order.LineItem{item}, "PAY-77")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	channel     order.Channel
	customerRef int64
	lineItems   []order.LineItem
	paymentRef  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. Channel and payment
// reference pairing is checked here so the error surfaces before any I/O.
func NewCreateOrderCommand(
	channel order.Channel,
	customerRef int64,
	lineItems []order.LineItem,
	paymentRef string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setChannel(channel, paymentRef),
		cmd.setCustomerRef(customerRef),
		cmd.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Channel() order.Channel {
	return c.channel
}

func (c CreateOrderCommand) CustomerRef() int64 {
	return c.customerRef
}

func (c CreateOrderCommand) LineItems() []order.LineItem {
	items := make([]order.LineItem, len(c.lineItems))
	copy(items, c.lineItems)
	return items
}

func (c CreateOrderCommand) PaymentRef() string {
	return c.paymentRef
}

func (c *CreateOrderCommand) setChannel(channel order.Channel, paymentRef string) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	if err := channel.ValidatePaymentRef(paymentRef); err != nil {
		return err
	}

	c.channel = channel
	c.paymentRef = paymentRef
	return nil
}

func (c *CreateOrderCommand) setCustomerRef(customerRef int64) error {
	if customerRef <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer_ref", fmt.Errorf("%d is not greater than 0", customerRef))
	}

	c.customerRef = customerRef
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []order.LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("line_items")
	}

	c.lineItems = make([]order.LineItem, len(lineItems))
	copy(c.lineItems, lineItems)
	return nil
}
