package commands

import (
	"errors"
	"fmt"
	"strings"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrVoidOrderCommandIsNotConstructed = errors.New(
	"VoidOrderCommand must be created via NewVoidOrderCommand constructor",
)

// VoidOrderCommand withdraws an order. The resulting status depends on how far
// the order has progressed and is chosen by services.OrderCanceller.
type VoidOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	actor   string

	guard guard.ConstructorGuard
}

func NewVoidOrderCommand(orderID int64, actor string) (VoidOrderCommand, error) {
	cmd := VoidOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	var errList []error
	if orderID <= 0 {
		errList = append(errList,
			errs.NewValueIsInvalidErrorWithCause("order_id", fmt.Errorf("%d is not greater than 0", orderID)))
	}
	if strings.TrimSpace(actor) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("actor"))
	}
	if err := errors.Join(errList...); err != nil {
		return VoidOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = strings.TrimSpace(actor)
	return cmd, nil
}

func (c VoidOrderCommand) Validate() error {
	return c.guard.Validate(ErrVoidOrderCommandIsNotConstructed)
}

func (c VoidOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c VoidOrderCommand) Actor() string {
	return c.actor
}
