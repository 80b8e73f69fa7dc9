package queries

import (
	"errors"
	"fmt"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order with its status history for the admin view.
type GetOrderQuery struct {
	orderID int64
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"order_id", fmt.Errorf("%d is not greater than 0", orderID))
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// OrderDetailsResponse is an order together with its history, oldest change first.
type OrderDetailsResponse struct {
	Order   OrderResponse
	History []StatusChangeResponse
}
