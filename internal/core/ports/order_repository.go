// Package ports defines the contracts between the order domain and infrastructure.
// Repositories, the unit of work and the outbound notifier live here so that
// use cases depend on interfaces and adapters can be swapped in tests.
package ports

import (
	"context"
	"time"

	"retail/internal/core/domain/model/order"
)

// OrderFilter narrows a listing. Nil fields do not constrain the result and
// set fields are AND-combined.
type OrderFilter struct {
	Channel       *order.Channel
	Status        *order.Status
	CustomerRef   *int64
	CreatedBefore *time.Time
}

// OrderRepository defines the persistence contract for order aggregates and
// their status history. Orders are never deleted.
type OrderRepository interface {
	// Add persists a new order with its line items and assigns the store identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items.
	// Returns errs.ErrObjectNotFound when no order has the identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// List returns orders matching the filter in insertion (id) order.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// LatestForCustomer returns the most recently created order of a customer
	// on the given channel.
	LatestForCustomer(ctx context.Context, customerRef int64, channel order.Channel) (*order.Order, error)

	// UpdateStatus writes the aggregate's current status only if the stored
	// status still equals expected.
	//
	// Returns errs.ErrObjectNotFound for unknown orders and
	// errs.ErrConcurrencyConflict when another writer changed the status first.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// AppendStatusChange stores a change record. Records are never updated.
	AppendStatusChange(ctx context.Context, change order.StatusChange) error

	// History returns the change records of an order, oldest first.
	History(ctx context.Context, orderID int64) ([]order.StatusChange, error)
}
