package queries

import (
	"context"
	"strings"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler counts orders per status and channel with a single
// grouped query.
//
// Example:
//
//	handler := NewGetOrderStatsQueryHandler(db)
//	query, _ := NewGetOrderStatsQuery(ports.OrderFilter{})
//	stats, err := handler.Handle(ctx, query)
//	fmt.Printf("%d orders, %d pending\n", stats.Total, stats.ByStatus[order.Pending])
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	stats := GetOrderStatsQueryResponse{
		TotalAmount: kernel.ZeroMoney(),
		ByStatus:    make(map[order.Status]int),
		ByChannel:   make(map[order.Channel]int),
	}
	for _, s := range order.Statuses() {
		stats.ByStatus[s] = 0
	}
	for _, c := range order.Channels() {
		stats.ByChannel[c] = 0
	}

	var (
		conditions []string
		args       []any
	)
	filter := query.Filter()
	if filter.Channel != nil {
		conditions = append(conditions, "channel = ?")
		args = append(args, filter.Channel.String())
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status.String())
	}
	if filter.CustomerRef != nil {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, *filter.CustomerRef)
	}
	if filter.CreatedBefore != nil {
		conditions = append(conditions, "created_at < ?")
		args = append(args, *filter.CreatedBefore)
	}

	sql := `
		SELECT
			status,
			channel,
			COUNT(*),
			COALESCE(SUM(total_amount), 0)::text
		FROM orders`
	if len(conditions) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	sql += "\n\t\tGROUP BY status, channel"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var (
			rawStatus, rawChannel, rawAmount string
			count                            int
		)
		if err = rows.Scan(&rawStatus, &rawChannel, &count, &rawAmount); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}

		status, parseErr := order.ParseStatus(rawStatus)
		if parseErr != nil {
			return GetOrderStatsQueryResponse{}, parseErr
		}
		channel, parseErr := order.ParseChannel(rawChannel)
		if parseErr != nil {
			return GetOrderStatsQueryResponse{}, parseErr
		}
		amount, parseErr := decimal.NewFromString(rawAmount)
		if parseErr != nil {
			return GetOrderStatsQueryResponse{}, parseErr
		}

		stats.Total += count
		stats.ByStatus[status] += count
		stats.ByChannel[channel] += count
		total = total.Add(amount)
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	stats.TotalAmount, err = kernel.NewMoney(total)
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return stats, nil
}
