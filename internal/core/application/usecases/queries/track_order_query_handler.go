package queries

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"
)

// TrackOrderQueryHandler resolves a storefront key to a WEB order.
//
// Resolution order:
//   - A key made only of digits is tried as an order id
//   - A key containing '@' is an email address (case-insensitive)
//   - Anything else, and numeric keys that matched no web order, is a phone number
//
// Contact keys select the customer's most recent WEB order. IN_PERSON orders
// are never visible here, so they are reported as not found.
type TrackOrderQueryHandler struct {
	orders    OrderReader
	customers CustomerFinder
}

func NewTrackOrderQueryHandler(orders OrderReader, customers CustomerFinder) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{orders: orders, customers: customers}
}

func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	o, err := h.resolve(ctx, query.Key())
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

func (h TrackOrderQueryHandler) resolve(ctx context.Context, key string) (*order.Order, error) {
	if isDigits(key) {
		o, err := h.byOrderID(ctx, key)
		if err == nil || !errors.Is(err, errs.ErrObjectNotFound) {
			return o, err
		}
	}

	var (
		c   *customer.Customer
		err error
	)
	if strings.Contains(key, "@") {
		c, err = h.customers.FindByEmail(ctx, customer.NormalizeEmail(key))
	} else {
		phone := customer.NormalizePhone(key)
		if strings.TrimPrefix(phone, "+") == "" {
			return nil, errs.NewObjectNotFoundError("order", key)
		}
		c, err = h.customers.FindByPhone(ctx, phone)
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewObjectNotFoundError("order", key)
	}
	if err != nil {
		return nil, err
	}

	o, err := h.orders.LatestForCustomer(ctx, c.ID(), order.Web)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewObjectNotFoundError("order", key)
	}
	return o, err
}

func (h TrackOrderQueryHandler) byOrderID(ctx context.Context, key string) (*order.Order, error) {
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil || id <= 0 {
		return nil, errs.NewObjectNotFoundError("order", key)
	}

	o, err := h.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Channel() != order.Web {
		return nil, errs.NewObjectNotFoundError("order", key)
	}
	return o, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
