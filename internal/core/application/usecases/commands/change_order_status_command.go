package commands

import (
	"errors"
	"fmt"
	"strings"

	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand asks for one edge of the status state machine to be
// applied to an order on behalf of actor.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	target  order.Status
	actor   string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates the identifiers. Whether the transition
// is allowed is decided by the handler against the stored status.
func NewChangeOrderStatusCommand(orderID int64, target order.Status, actor string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c ChangeOrderStatusCommand) Actor() string {
	return c.actor
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order_id", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *ChangeOrderStatusCommand) setActor(actor string) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
