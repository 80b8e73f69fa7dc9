// Package customer models the clients orders are placed for. Customers carry
// the contact data the storefront uses to find a web order.
package customer

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"retail/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer is identified by a store-assigned numeric id. Email and phone are
// optional, but at least one of them is required so the customer can track orders.
type Customer struct {
	id        int64
	name      string
	email     string
	phone     string
	createdAt time.Time

	isConstructed bool
}

// NewCustomer creates a customer without an identifier. Email is lower-cased and
// phone is normalised with NormalizePhone.
func NewCustomer(name, email, phone string, createdAt time.Time) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setName(name),
		c.setContact(email, phone),
		c.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a persisted customer.
func RestoreCustomer(id int64, name, email, phone string, createdAt time.Time) (*Customer, error) {
	c, err := NewCustomer(name, email, phone, createdAt)
	if err != nil {
		return nil, err
	}
	if err = c.AssignID(id); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// AssignID sets the store-assigned identifier.
func (c *Customer) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	c.id = id
	return nil
}

func (c *Customer) ID() int64 {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone keeps digits and a leading plus sign, so "+34 600-12-34-56"
// and "+34600123456" compare equal.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for i, r := range phone {
		if unicode.IsDigit(r) || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setContact(email, phone string) error {
	email = NormalizeEmail(email)
	phone = NormalizePhone(phone)

	if email == "" && phone == "" {
		return errs.NewValueIsRequiredErrorWithCause("contact", errors.New("email or phone must be provided"))
	}

	if email != "" {
		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			return errs.NewValueIsInvalidErrorWithCause("email is invalid", fmt.Errorf("%q is not an address", email))
		}
	}

	if phone != "" && len(strings.TrimPrefix(phone, "+")) < 6 {
		return errs.NewValueIsInvalidErrorWithCause("phone is invalid", fmt.Errorf("%q is too short", phone))
	}

	c.email = email
	c.phone = phone
	return nil
}

func (c *Customer) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	c.createdAt = createdAt
	return nil
}
