package commands

import (
	"context"
	"errors"
	"fmt"

	"retail/internal/core/domain/model/customer"
	"retail/internal/pkg/clock"
	"retail/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers customers. Email and phone must be
// unique since they are tracking keys.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	clock      clock.Clock
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory, clk clock.Clock) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle persists the customer and returns it with its assigned identifier.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := customer.NewCustomer(cmd.Name(), cmd.Email(), cmd.Phone(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customers := uow.CustomerRepository()

	if created.Email() != "" {
		if err = ensureUnused("email", created.Email(), func() error {
			_, findErr := customers.FindByEmail(ctx, created.Email())
			return findErr
		}); err != nil {
			return nil, err
		}
	}
	if created.Phone() != "" {
		if err = ensureUnused("phone", created.Phone(), func() error {
			_, findErr := customers.FindByPhone(ctx, created.Phone())
			return findErr
		}); err != nil {
			return nil, err
		}
	}

	if err = customers.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func ensureUnused(param, value string, find func() error) error {
	err := find()
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	case err != nil:
		return err
	default:
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is already registered", value))
	}
}
