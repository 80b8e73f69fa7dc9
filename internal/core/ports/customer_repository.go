package ports

import (
	"context"

	"retail/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers.
// Lookups return errs.ErrObjectNotFound when nothing matches.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id int64) (*customer.Customer, error)

	// FindByEmail expects a normalized (lower-case) address.
	FindByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// FindByPhone expects a normalized number (digits with optional leading '+').
	FindByPhone(ctx context.Context, phone string) (*customer.Customer, error)
}
