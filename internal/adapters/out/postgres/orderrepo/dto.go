// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"errors"
	"fmt"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and channel are stored by name so the table reads well in SQL.
type OrderDTO struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement"`
	Channel            string          `gorm:"type:text;not null"`
	CustomerID         int64           `gorm:"not null;index"`
	CreatedAt          time.Time       `gorm:"not null"`
	TotalAmount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status             string          `gorm:"type:text;not null"`
	ExternalPaymentRef *string         `gorm:"type:text"`
	LineItems          []LineItemDTO   `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one row of order_line_items. Position keeps the original order.
type LineItemDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	OrderID    int64           `gorm:"not null"`
	Position   int             `gorm:"not null"`
	ProductRef int64           `gorm:"not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Subtotal   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// StatusChangeDTO is one row of the append-only order_status_changes table.
type StatusChangeDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	OrderID        int64     `gorm:"not null"`
	PreviousStatus string    `gorm:"type:text;not null"`
	NewStatus      string    `gorm:"type:text;not null"`
	ChangedAt      time.Time `gorm:"not null"`
	Actor          string    `gorm:"type:text;not null"`
}

func (StatusChangeDTO) TableName() string {
	return "order_status_changes"
}

// fromDomain converts an order domain aggregate to its database representation.
// The identifier is left to the database when the order is new.
func fromDomain(aggregate *order.Order) OrderDTO {
	var paymentRef *string
	if ref := aggregate.ExternalPaymentRef(); ref != "" {
		paymentRef = &ref
	}

	items := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for i, item := range aggregate.LineItems() {
		items = append(items, LineItemDTO{
			OrderID:    aggregate.ID(),
			Position:   i,
			ProductRef: item.ProductRef(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Decimal(),
			Subtotal:   item.Subtotal().Decimal(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID(),
		Channel:            aggregate.Channel().String(),
		CustomerID:         aggregate.CustomerRef(),
		CreatedAt:          aggregate.CreatedAt(),
		TotalAmount:        aggregate.TotalAmount().Decimal(),
		Status:             aggregate.Status().String(),
		ExternalPaymentRef: paymentRef,
		LineItems:          items,
	}
}

// toDomain converts a database DTO with preloaded line items to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	channel, err := order.ParseChannel(dto.Channel)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, fmt.Errorf("order %d: %w", dto.ID, itemErr)
		}
		items = append(items, item)
	}

	paymentRef := ""
	if dto.ExternalPaymentRef != nil {
		paymentRef = *dto.ExternalPaymentRef
	}

	return order.RestoreOrder(dto.ID, channel, dto.CustomerID, dto.CreatedAt.UTC(), total, status, items, paymentRef)
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	unitPrice, priceErr := kernel.NewMoney(dto.UnitPrice)
	subtotal, subtotalErr := kernel.NewMoney(dto.Subtotal)
	if err := errors.Join(priceErr, subtotalErr); err != nil {
		return order.LineItem{}, err
	}

	return order.RestoreLineItem(dto.ProductRef, dto.Quantity, unitPrice, subtotal)
}

func statusChangeFromDomain(change order.StatusChange) StatusChangeDTO {
	return StatusChangeDTO{
		OrderID:        change.OrderID(),
		PreviousStatus: change.PreviousStatus().String(),
		NewStatus:      change.NewStatus().String(),
		ChangedAt:      change.ChangedAt(),
		Actor:          change.Actor(),
	}
}

func statusChangeToDomain(dto StatusChangeDTO) (order.StatusChange, error) {
	previous, prevErr := order.ParseStatus(dto.PreviousStatus)
	next, nextErr := order.ParseStatus(dto.NewStatus)
	if err := errors.Join(prevErr, nextErr); err != nil {
		return order.StatusChange{}, err
	}

	return order.RestoreStatusChange(dto.OrderID, previous, next, dto.ChangedAt.UTC(), dto.Actor)
}
