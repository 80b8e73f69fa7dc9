package services

import (
	"fmt"

	"retail/internal/core/domain/model/order"
)

// StatusMessages renders the text sent to a customer after a transition.
type StatusMessages struct {
	templates map[order.Status]string
}

// NewStatusMessages returns the default English templates.
func NewStatusMessages() StatusMessages {
	return StatusMessages{
		templates: map[order.Status]string{
			order.Pending:    "Your order has been received",
			order.Processing: "Your order is being prepared",
			order.Completed:  "Your order is ready",
			order.Delivered:  "Your order has been delivered",
			order.Cancelled:  "Your order has been cancelled",
			order.Voided:     "Your order has been voided",
		},
	}
}

// MessageFor returns the template for status, or a generic text for statuses
// without one.
func (m StatusMessages) MessageFor(status order.Status) string {
	if msg, ok := m.templates[status]; ok {
		return msg
	}
	return fmt.Sprintf("Your order status changed to %s", status)
}
