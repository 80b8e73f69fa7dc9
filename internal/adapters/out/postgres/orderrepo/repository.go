package orderrepo

import (
	"context"
	"errors"

	"retail/internal/adapters/out/postgres/pgerrs"
	"retail/internal/core/domain/model/order"
	"retail/internal/core/ports"
	"retail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and its line items and assigns the generated identifier.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapWriteError(err, aggregate.ID())
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.withLineItems(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// List retrieves orders matching every set field of filter, ordered by id.
func (r *GormOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := r.withLineItems(ctx)
	if filter.Channel != nil {
		query = query.Where("channel = ?", filter.Channel.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CustomerRef != nil {
		query = query.Where("customer_id = ?", *filter.CustomerRef)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}

	var dtos []OrderDTO
	if err := query.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// LatestForCustomer returns the customer's newest order on channel.
func (r *GormOrderRepository) LatestForCustomer(
	ctx context.Context,
	customerRef int64,
	channel order.Channel,
) (*order.Order, error) {
	var dto OrderDTO
	err := r.withLineItems(ctx).
		Where("customer_id = ? AND channel = ?", customerRef, channel.String()).
		Order("created_at DESC, id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", customerRef)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus performs the conditional update
//
//	UPDATE orders SET status = <new> WHERE id = <id> AND status = <expected>
//
// When no row matches, the order is counted to tell a missing order from a lost race.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID(), expected.String()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return mapWriteError(result.Error, aggregate.ID())
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", aggregate.ID()).Count(&count).Error; err != nil {
			return mapWriteError(err, aggregate.ID())
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID())
		}
		return errs.NewConcurrencyConflictError("order", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AppendStatusChange inserts a history record.
func (r *GormOrderRepository) AppendStatusChange(ctx context.Context, change order.StatusChange) error {
	if err := change.Validate(); err != nil {
		return err
	}

	dto := statusChangeFromDomain(change)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapWriteError(err, change.OrderID())
	}

	return nil
}

// History returns the records of an order ordered by changed_at, then insertion.
func (r *GormOrderRepository) History(ctx context.Context, orderID int64) ([]order.StatusChange, error) {
	var dtos []StatusChangeDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("changed_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	changes := make([]order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		change, convErr := statusChangeToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		changes = append(changes, change)
	}

	return changes, nil
}

func (r *GormOrderRepository) withLineItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("LineItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

// mapWriteError turns driver failures into domain errors where one applies.
func mapWriteError(err error, orderID int64) error {
	switch {
	case pgerrs.IsConflict(err):
		return errs.NewConcurrencyConflictErrorWithCause("order", orderID, err)
	case pgerrs.IsForeignKeyViolation(err):
		return errs.NewValueIsInvalidErrorWithCause("customer_ref", err)
	case pgerrs.IsCheckViolation(err):
		return errs.NewValueIsInvalidErrorWithCause("order", err)
	default:
		return err
	}
}
