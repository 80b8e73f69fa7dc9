// Package customerrepo persists customers with GORM.
package customerrepo

import (
	"time"

	"retail/internal/core/domain/model/customer"
)

// CustomerDTO maps a customer to the customers table. Missing contacts are
// stored as NULL so the unique indexes ignore them.
type CustomerDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:text;not null"`
	Email     *string   `gorm:"type:text;uniqueIndex"`
	Phone     *string   `gorm:"type:text;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     nullable(c.Email()),
		Phone:     nullable(c.Phone()),
		CreatedAt: c.CreatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreCustomer(dto.ID, dto.Name, value(dto.Email), value(dto.Phone), dto.CreatedAt.UTC())
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
