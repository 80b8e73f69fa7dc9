package commands

import (
	"errors"
	"strings"

	"retail/internal/core/domain/model/customer"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer that orders can reference. At
// least one contact is required so the storefront can find the customer's orders.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name  string
	email string
	phone string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand normalizes contacts; full validation happens in
// customer.NewCustomer.
func NewCreateCustomerCommand(name, email, phone string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		name:  strings.TrimSpace(name),
		email: customer.NormalizeEmail(email),
		phone: customer.NormalizePhone(phone),
		guard: guard.NewConstructorGuard(),
	}

	var errList []error
	if cmd.name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if cmd.email == "" && cmd.phone == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email or phone"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() string {
	return c.name
}

func (c CreateCustomerCommand) Email() string {
	return c.email
}

func (c CreateCustomerCommand) Phone() string {
	return c.phone
}
