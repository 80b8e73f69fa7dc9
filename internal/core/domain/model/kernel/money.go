package kernel

import (
	"errors"
	"fmt"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every amount is rounded to.
const MoneyScale = 2

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, ParseMoney or ZeroMoney")

// Money is a non-negative amount in the store currency, rounded half away from
// zero to MoneyScale decimals. It wraps shopspring/decimal so arithmetic never
// goes through float64.
//
// Example:
//
//	price, _ := kernel.ParseMoney("48.74")
//	subtotal := price.Multiply(2) // 97.48
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates Money from a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount: amount.Round(MoneyScale),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ParseMoney creates Money from its decimal string representation, e.g. "19.99".
func ParseMoney(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate ensures the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Multiply returns the amount times quantity, rounded to MoneyScale.
func (m Money) Multiply(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(MoneyScale),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual compares amounts numerically, so 1.5 equals 1.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String formats the amount with exactly MoneyScale decimals.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
