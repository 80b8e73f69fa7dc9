// Package notifications turns committed status transitions into outbound
// customer notifications.
//
// The hook never blocks the caller: each notification is built from the
// committed change and delivered on its own goroutine with a context detached
// from the request and bounded by a timeout. Delivery errors are logged and
// counted, never returned.
package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/services"
	"retail/internal/core/ports"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a single delivery attempt.
const DefaultTimeout = 5 * time.Second

// Recorder receives counters about transitions and deliveries.
type Recorder interface {
	TransitionApplied(from, to order.Status)
	NotificationFailed()
}

// Hook implements commands.StatusChangeHook.
type Hook struct {
	notifier ports.Notifier
	messages services.StatusMessages
	recorder Recorder
	logger   *slog.Logger
	timeout  time.Duration
	wg       sync.WaitGroup
}

// NewHook creates a hook that publishes through notifier. A non-positive
// timeout falls back to DefaultTimeout.
func NewHook(notifier ports.Notifier, recorder Recorder, logger *slog.Logger, timeout time.Duration) *Hook {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Hook{
		notifier: notifier,
		messages: services.NewStatusMessages(),
		recorder: recorder,
		logger:   logger.With("component", "notification_hook"),
		timeout:  timeout,
	}
}

// StatusChanged records the transition and schedules the notification.
func (h *Hook) StatusChanged(o *order.Order, change order.StatusChange) {
	h.recorder.TransitionApplied(change.PreviousStatus(), change.NewStatus())

	n := ports.Notification{
		ID:             uuid.New(),
		OrderID:        change.OrderID(),
		CustomerRef:    o.CustomerRef(),
		Channel:        o.Channel().String(),
		PreviousStatus: change.PreviousStatus().String(),
		NewStatus:      change.NewStatus().String(),
		Message:        h.messages.MessageFor(change.NewStatus()),
		OccurredAt:     change.ChangedAt(),
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.deliver(n)
	}()
}

// Wait blocks until every scheduled notification has finished.
func (h *Hook) Wait() {
	h.wg.Wait()
}

func (h *Hook) deliver(n ports.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			h.fail(ctx, n, fmt.Errorf("notifier panicked: %v", r))
		}
	}()

	if err := h.notifier.Notify(ctx, n); err != nil {
		h.fail(ctx, n, err)
		return
	}

	h.logger.DebugContext(ctx, "Notification sent",
		"notification_id", n.ID.String(),
		"order_id", n.OrderID,
		"status", n.NewStatus,
	)
}

func (h *Hook) fail(ctx context.Context, n ports.Notification, err error) {
	h.recorder.NotificationFailed()
	h.logger.ErrorContext(ctx, "Notification delivery failed",
		"notification_id", n.ID.String(),
		"order_id", n.OrderID,
		"status", n.NewStatus,
		"error", err,
	)
}
