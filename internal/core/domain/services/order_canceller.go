package services

import (
	"fmt"
	"time"

	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"
)

// OrderCanceller withdraws an order with the terminal status that matches its stage.
//
// Business rules:
//   - A PENDING order has not been worked on and is CANCELLED
//   - A PROCESSING or COMPLETED order is VOIDED
//   - DELIVERED, CANCELLED and VOIDED orders cannot be withdrawn
//
// Example usage:
//
//	change, err := services.NewOrderCanceller().Withdraw(o, "maria", now)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // order already final
//	}
type OrderCanceller struct{}

// NewOrderCanceller creates a new OrderCanceller instance.
func NewOrderCanceller() OrderCanceller {
	return OrderCanceller{}
}

// TargetFor returns the terminal status a withdrawal of an order in current leads to.
// For orders that cannot be withdrawn the error names the status the withdrawal
// would have produced at that stage: CANCELLED for an already cancelled order,
// VOIDED otherwise.
func (OrderCanceller) TargetFor(current order.Status) (order.Status, error) {
	switch current {
	case order.Pending:
		return order.Cancelled, nil
	case order.Processing, order.Completed:
		return order.Voided, nil
	case order.Cancelled:
		return order.Unknown, notWithdrawable(current, order.Cancelled)
	case order.Unknown, order.Delivered, order.Voided:
	}

	return order.Unknown, notWithdrawable(current, order.Voided)
}

func notWithdrawable(current, attempted order.Status) error {
	return errs.NewInvalidTransitionErrorWithCause(
		current.String(), attempted.String(),
		fmt.Errorf("%s orders cannot be withdrawn", current),
	)
}

// Withdraw applies the withdrawal transition to o and returns the change record.
func (c OrderCanceller) Withdraw(o *order.Order, actor string, at time.Time) (order.StatusChange, error) {
	if err := o.Validate(); err != nil {
		return order.StatusChange{}, err
	}

	target, err := c.TargetFor(o.Status())
	if err != nil {
		return order.StatusChange{}, err
	}

	return o.ChangeStatus(target, actor, at)
}
