// Package lognotifier writes notifications to the application log. It is the
// default transport when no broker is configured.
package lognotifier

import (
	"context"
	"log/slog"

	"retail/internal/core/ports"
)

type Notifier struct {
	logger *slog.Logger
}

func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger.With("component", "log_notifier")}
}

func (n *Notifier) Notify(ctx context.Context, notification ports.Notification) error {
	n.logger.InfoContext(ctx, notification.Message,
		"notification_id", notification.ID.String(),
		"order_id", notification.OrderID,
		"customer_ref", notification.CustomerRef,
		"channel", notification.Channel,
		"previous_status", notification.PreviousStatus,
		"new_status", notification.NewStatus,
		"occurred_at", notification.OccurredAt,
	)
	return nil
}
