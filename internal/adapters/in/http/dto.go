package http

import (
	"time"

	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewLineItem struct {
	ProductRef int64           `json:"product_ref"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

type NewOrder struct {
	Channel            string        `json:"channel"`
	CustomerRef        int64         `json:"customer_ref"`
	LineItems          []NewLineItem `json:"line_items"`
	ExternalPaymentRef string        `json:"external_payment_ref"`
}

type StatusChangeRequest struct {
	Status string `json:"status"`
}

type NewCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type LineItem struct {
	ProductRef int64  `json:"product_ref"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Subtotal   string `json:"subtotal"`
}

type Order struct {
	ID                 int64      `json:"id"`
	Channel            string     `json:"channel"`
	CustomerRef        int64      `json:"customer_ref"`
	CreatedAt          time.Time  `json:"created_at"`
	TotalAmount        string     `json:"total_amount"`
	Status             string     `json:"status"`
	LineItems          []LineItem `json:"line_items"`
	ExternalPaymentRef string     `json:"external_payment_ref,omitempty"`
}

type StatusChange struct {
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	ChangedAt      time.Time `json:"changed_at"`
	Actor          string    `json:"actor"`
}

type OrderDetails struct {
	Order   Order          `json:"order"`
	History []StatusChange `json:"history"`
}

type OrderStats struct {
	Total       int            `json:"total"`
	TotalAmount string         `json:"total_amount"`
	ByStatus    map[string]int `json:"by_status"`
	ByChannel   map[string]int `json:"by_channel"`
}

type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toOrder(o queries.OrderResponse) Order {
	items := make([]LineItem, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		items = append(items, LineItem{
			ProductRef: item.ProductRef,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.String(),
			Subtotal:   item.Subtotal.String(),
		})
	}

	return Order{
		ID:                 o.ID,
		Channel:            o.Channel.String(),
		CustomerRef:        o.CustomerRef,
		CreatedAt:          o.CreatedAt,
		TotalAmount:        o.TotalAmount.String(),
		Status:             o.Status.String(),
		LineItems:          items,
		ExternalPaymentRef: o.ExternalPaymentRef,
	}
}

func toOrderFromAggregate(o *order.Order) Order {
	return toOrder(queries.NewOrderResponse(o))
}

func toOrderDetails(d queries.OrderDetailsResponse) OrderDetails {
	history := make([]StatusChange, 0, len(d.History))
	for _, change := range d.History {
		history = append(history, StatusChange{
			PreviousStatus: change.PreviousStatus.String(),
			NewStatus:      change.NewStatus.String(),
			ChangedAt:      change.ChangedAt,
			Actor:          change.Actor,
		})
	}

	return OrderDetails{Order: toOrder(d.Order), History: history}
}

func toOrderStats(s queries.GetOrderStatsQueryResponse) OrderStats {
	stats := OrderStats{
		Total:       s.Total,
		TotalAmount: s.TotalAmount.String(),
		ByStatus:    make(map[string]int, len(s.ByStatus)),
		ByChannel:   make(map[string]int, len(s.ByChannel)),
	}
	for status, count := range s.ByStatus {
		stats.ByStatus[status.String()] = count
	}
	for channel, count := range s.ByChannel {
		stats.ByChannel[channel.String()] = count
	}
	return stats
}

func toCustomer(c *customer.Customer) Customer {
	return Customer{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt(),
	}
}
