package queries

import (
	"context"
)

type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns errs.ErrObjectNotFound for unknown orders.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	history, err := h.orders.History(ctx, o.ID())
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	return OrderDetailsResponse{
		Order:   NewOrderResponse(o),
		History: newStatusChangeResponses(history),
	}, nil
}
