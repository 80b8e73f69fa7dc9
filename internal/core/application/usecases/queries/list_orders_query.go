package queries

import (
	"errors"
	"fmt"

	"retail/internal/core/ports"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery is the admin listing. Any combination of channel, status and
// customer may be given; unset fields do not filter.
//
// Example:
//
//	web := order.Web
//	query, _ := NewListOrdersQuery(ports.OrderFilter{Channel: &web})
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter ports.OrderFilter
	guard  guard.ConstructorGuard
}

func NewListOrdersQuery(filter ports.OrderFilter) (ListOrdersQuery, error) {
	if err := validateFilter(filter); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() ports.OrderFilter {
	return q.filter
}

func validateFilter(filter ports.OrderFilter) error {
	var errList []error
	if filter.Channel != nil {
		errList = append(errList, filter.Channel.Validate())
	}
	if filter.Status != nil {
		errList = append(errList, filter.Status.Validate())
	}
	if filter.CustomerRef != nil && *filter.CustomerRef <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"customer_ref", fmt.Errorf("%d is not greater than 0", *filter.CustomerRef)))
	}
	return errors.Join(errList...)
}
