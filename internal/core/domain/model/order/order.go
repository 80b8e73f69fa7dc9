package order

import (
	"errors"
	"fmt"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoID is returned when a transition is attempted on an order the
	// store has not assigned an identifier to yet.
	ErrOrderHasNoID = errors.New("order has no identifier yet")
)

// Order represents a retail order in the system. It is the aggregate root that
// manages the order lifecycle from intake to a terminal status.
//
// Order follows these invariants:
//   - Channel, customer, creation time, line items and total never change
//   - Total equals the sum of line item subtotals at creation
//   - Channel and external payment reference are paired (see Channel.ValidatePaymentRef)
//   - Status changes only through ChangeStatus, following the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is assigned by the order store on first persist
	id int64

	channel     Channel
	customerRef int64
	createdAt   time.Time
	totalAmount kernel.Money
	lineItems   []LineItem
	paymentRef  string

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a factory
	isConstructed bool
}

// NewOrder creates a new PENDING order without an identifier. The total amount
// is computed from the line items.
//
// Example:
//
//	price, _ := kernel.ParseMoney("48.74")
//	item, _ := order.NewLineItem(17, 2, price)
//	o, err := order.NewOrder(order.Web, customerID, []order.LineItem{item}, "PAY-1", now)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	channel Channel,
	customerRef int64,
	lineItems []LineItem,
	paymentRef string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setChannel(channel, paymentRef),
		o.setCustomerRef(customerRef),
		o.setCreatedAt(createdAt),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	o.totalAmount = sumSubtotals(o.lineItems)
	return o, nil
}

// RestoreOrder rebuilds a persisted order. The stored total is trusted and not
// recomputed from the line items.
func RestoreOrder(
	id int64,
	channel Channel,
	customerRef int64,
	createdAt time.Time,
	totalAmount kernel.Money,
	status Status,
	lineItems []LineItem,
	paymentRef string,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.AssignID(id),
		o.setChannel(channel, paymentRef),
		o.setCustomerRef(customerRef),
		o.setCreatedAt(createdAt),
		o.setLineItems(lineItems),
		totalAmount.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.totalAmount = totalAmount
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// AssignID sets the store-assigned identifier. It can be called only once.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	if o.id != 0 && o.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("order already has id %d", o.id))
	}
	o.id = id
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Channel() Channel {
	return o.channel
}

func (o *Order) CustomerRef() int64 {
	return o.customerRef
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// LineItems returns a copy of the line items in their original order.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// ExternalPaymentRef returns the payment reference, empty for IN_PERSON orders.
func (o *Order) ExternalPaymentRef() string {
	return o.paymentRef
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus moves the order to target and returns the change record to append.
//
// This method enforces the following business rules:
//   - The order must have a store-assigned identifier
//   - (current, target) must be an edge of the Status state machine
//   - Terminal statuses accept no transition
//
// On error the order is left unchanged.
func (o *Order) ChangeStatus(target Status, actor string, at time.Time) (StatusChange, error) {
	if o.id == 0 {
		return StatusChange{}, ErrOrderHasNoID
	}

	previous := o.status
	next, err := previous.TransitionTo(target)
	if err != nil {
		return StatusChange{}, err
	}

	change, err := RestoreStatusChange(o.id, previous, next, at, actor)
	if err != nil {
		return StatusChange{}, err
	}

	o.status = next
	return change, nil
}

func (o *Order) setChannel(channel Channel, paymentRef string) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	if err := channel.ValidatePaymentRef(paymentRef); err != nil {
		return err
	}
	o.channel = channel
	o.paymentRef = paymentRef
	return nil
}

func (o *Order) setCustomerRef(customerRef int64) error {
	if customerRef <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer_ref is invalid",
			fmt.Errorf("%d is not greater than 0", customerRef),
		)
	}
	o.customerRef = customerRef
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("line_items")
	}
	for i, item := range lineItems {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("line item %d: %w", i, err)
		}
	}
	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}

func sumSubtotals(items []LineItem) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
