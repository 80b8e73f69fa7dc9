package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

// SystemActor is recorded when a transition is not triggered by an employee.
const SystemActor = "system"

var ErrStatusChangeIsNotConstructed = errors.New(
	"StatusChange must be created via Order.ChangeStatus or RestoreStatusChange",
)

// StatusChange is the append-only record of one applied transition.
type StatusChange struct {
	orderID        int64
	previousStatus Status
	newStatus      Status
	changedAt      time.Time
	actor          string
	guard          guard.ConstructorGuard
}

// RestoreStatusChange rebuilds a persisted change record.
func RestoreStatusChange(
	orderID int64,
	previousStatus, newStatus Status,
	changedAt time.Time,
	actor string,
) (StatusChange, error) {
	var errList []error

	if orderID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"order_id is invalid", fmt.Errorf("%d is not greater than 0", orderID)))
	}
	errList = append(errList, previousStatus.Validate(), newStatus.Validate())
	if changedAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("changed_at"))
	}
	if strings.TrimSpace(actor) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("actor"))
	}

	if err := errors.Join(errList...); err != nil {
		return StatusChange{}, err
	}

	return StatusChange{
		orderID:        orderID,
		previousStatus: previousStatus,
		newStatus:      newStatus,
		changedAt:      changedAt,
		actor:          actor,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c StatusChange) Validate() error {
	return c.guard.Validate(ErrStatusChangeIsNotConstructed)
}

func (c StatusChange) OrderID() int64 {
	return c.orderID
}

func (c StatusChange) PreviousStatus() Status {
	return c.previousStatus
}

func (c StatusChange) NewStatus() Status {
	return c.newStatus
}

func (c StatusChange) ChangedAt() time.Time {
	return c.changedAt
}

func (c StatusChange) Actor() string {
	return c.actor
}
