package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Notification is the outbound message published after an order changes status.
type Notification struct {
	ID             uuid.UUID `json:"id"`
	OrderID        int64     `json:"order_id"`
	CustomerRef    int64     `json:"customer_ref"`
	Channel        string    `json:"channel"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Message        string    `json:"message"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Notifier delivers notifications to customers through some transport.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
