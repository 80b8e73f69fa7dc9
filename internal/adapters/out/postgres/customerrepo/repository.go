package customerrepo

import (
	"context"
	"errors"

	"retail/internal/adapters/out/postgres/pgerrs"
	"retail/internal/core/domain/model/customer"
	"retail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the customer and assigns the generated identifier. A duplicate
// email or phone is reported as an invalid value.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("contact", err)
		}
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	return r.first(ctx, "customer", id, "id = ?", id)
}

func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	return r.first(ctx, "customer", email, "email = ?", email)
}

func (r *GormCustomerRepository) FindByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	return r.first(ctx, "customer", phone, "phone = ?", phone)
}

func (r *GormCustomerRepository) first(
	ctx context.Context,
	param string,
	key any,
	where string,
	args ...any,
) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).Where(where, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}

	return toDomain(dto)
}
