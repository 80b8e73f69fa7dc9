package order

import (
	"errors"
	"fmt"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

// MaxQuantity bounds a single line item.
const MaxQuantity = 10000

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")

// LineItem is one product row of an order. Line items are part of the creation
// snapshot and never change afterwards.
type LineItem struct {
	productRef int64
	quantity   int
	unitPrice  kernel.Money
	subtotal   kernel.Money
	guard      guard.ConstructorGuard
}

// NewLineItem creates a line item whose subtotal is quantity × unitPrice.
func NewLineItem(productRef int64, quantity int, unitPrice kernel.Money) (LineItem, error) {
	item := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductRef(productRef),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	item.subtotal = unitPrice.Multiply(quantity)
	return item, nil
}

// RestoreLineItem rebuilds a persisted line item. The stored subtotal is kept as is.
func RestoreLineItem(productRef int64, quantity int, unitPrice, subtotal kernel.Money) (LineItem, error) {
	item := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductRef(productRef),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		subtotal.Validate(),
	); err != nil {
		return LineItem{}, err
	}

	item.subtotal = subtotal
	return item, nil
}

func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

func (li LineItem) ProductRef() int64 {
	return li.productRef
}

func (li LineItem) Quantity() int {
	return li.quantity
}

func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

func (li LineItem) Subtotal() kernel.Money {
	return li.subtotal
}

func (li *LineItem) setProductRef(productRef int64) error {
	if productRef <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"product_ref is invalid",
			fmt.Errorf("%d is not greater than 0", productRef),
		)
	}
	li.productRef = productRef
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	li.unitPrice = unitPrice
	return nil
}
