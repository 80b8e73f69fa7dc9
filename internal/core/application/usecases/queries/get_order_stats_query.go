package queries

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/core/ports"
	"retail/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery aggregates the orders an admin listing with the same
// filter would return.
type GetOrderStatsQuery struct {
	filter ports.OrderFilter
	guard  guard.ConstructorGuard
}

func NewGetOrderStatsQuery(filter ports.OrderFilter) (GetOrderStatsQuery, error) {
	if err := validateFilter(filter); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return GetOrderStatsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

func (q GetOrderStatsQuery) Filter() ports.OrderFilter {
	return q.filter
}

// GetOrderStatsQueryResponse holds dashboard counters. Every status and channel
// is present in the maps, with zero when no order matches.
type GetOrderStatsQueryResponse struct {
	Total       int
	TotalAmount kernel.Money
	ByStatus    map[order.Status]int
	ByChannel   map[order.Channel]int
}
