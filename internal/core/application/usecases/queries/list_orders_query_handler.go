package queries

import (
	"context"
)

// ListOrdersQueryHandler returns matching orders in insertion order.
type ListOrdersQueryHandler struct {
	orders OrderReader
}

func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.orders.List(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(found))
	for _, o := range found {
		orders = append(orders, NewOrderResponse(o))
	}
	return orders, nil
}
