package cmd

import (
	"fmt"
	"log/slog"

	"retail/internal/adapters/out/kafka"
	"retail/internal/adapters/out/lognotifier"
	"retail/internal/adapters/out/stan"
	"retail/internal/core/ports"
)

// NewNotifier builds the transport selected by Config.Notifier. The returned
// close function releases the transport and is never nil.
func NewNotifier(cfg Config, logger *slog.Logger) (ports.Notifier, func() error, error) {
	switch cfg.Notifier {
	case NotifierKafka:
		n := kafka.NewNotifier(kafka.NewWriter(cfg.KafkaHost, cfg.KafkaOrderChangedTopic))
		return n, n.Close, nil
	case NotifierStan:
		conn, err := stan.Connect(cfg.StanClusterID, cfg.StanClientID, cfg.StanURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to nats streaming: %w", err)
		}
		n := stan.NewNotifier(conn, cfg.StanSubject)
		return n, n.Close, nil
	case NotifierLog, "":
		return lognotifier.NewNotifier(logger), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown notifier %q", cfg.Notifier)
	}
}
