// Package queries contains read operations for the admin and storefront views.
// Queries never change state and read the same order store the commands write to.
package queries

import (
	"context"
	"time"

	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/core/ports"
)

type (
	// OrderReader is the read side of ports.OrderRepository.
	OrderReader interface {
		Get(ctx context.Context, id int64) (*order.Order, error)
		List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error)
		LatestForCustomer(ctx context.Context, customerRef int64, channel order.Channel) (*order.Order, error)
		History(ctx context.Context, orderID int64) ([]order.StatusChange, error)
	}

	// CustomerFinder resolves storefront contact keys to customers.
	CustomerFinder interface {
		FindByEmail(ctx context.Context, email string) (*customer.Customer, error)
		FindByPhone(ctx context.Context, phone string) (*customer.Customer, error)
	}
)

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID                 int64
	Channel            order.Channel
	CustomerRef        int64
	CreatedAt          time.Time
	TotalAmount        kernel.Money
	Status             order.Status
	LineItems          []LineItemResponse
	ExternalPaymentRef string
}

type LineItemResponse struct {
	ProductRef int64
	Quantity   int
	UnitPrice  kernel.Money
	Subtotal   kernel.Money
}

// StatusChangeResponse is one entry of an order history.
type StatusChangeResponse struct {
	PreviousStatus order.Status
	NewStatus      order.Status
	ChangedAt      time.Time
	Actor          string
}

// NewOrderResponse maps an order aggregate to its read model.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		items = append(items, LineItemResponse{
			ProductRef: item.ProductRef(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			Subtotal:   item.Subtotal(),
		})
	}

	return OrderResponse{
		ID:                 o.ID(),
		Channel:            o.Channel(),
		CustomerRef:        o.CustomerRef(),
		CreatedAt:          o.CreatedAt(),
		TotalAmount:        o.TotalAmount(),
		Status:             o.Status(),
		LineItems:          items,
		ExternalPaymentRef: o.ExternalPaymentRef(),
	}
}

func newStatusChangeResponses(changes []order.StatusChange) []StatusChangeResponse {
	history := make([]StatusChangeResponse, 0, len(changes))
	for _, change := range changes {
		history = append(history, StatusChangeResponse{
			PreviousStatus: change.PreviousStatus(),
			NewStatus:      change.NewStatus(),
			ChangedAt:      change.ChangedAt(),
			Actor:          change.Actor(),
		})
	}
	return history
}
