// Package stan publishes order notifications to NATS Streaming.
package stan

import (
	"context"
	"encoding/json"
	"fmt"

	"retail/internal/core/ports"

	stan "github.com/nats-io/stan.go"
)

type publisher interface {
	PublishAsync(subject string, data []byte, ah stan.AckHandler) (string, error)
	Close() error
}

// Notifier publishes every notification as JSON on one subject and waits for
// the server ack or the context, whichever comes first.
type Notifier struct {
	conn    publisher
	subject string
}

// Connect opens a streaming connection for clientID on clusterID at url.
func Connect(clusterID, clientID, url string) (stan.Conn, error) {
	conn, err := stan.Connect(clusterID, clientID, stan.NatsURL(url))
	if err != nil {
		return nil, fmt.Errorf("stan connect: %w", err)
	}
	return conn, nil
}

func NewNotifier(conn publisher, subject string) *Notifier {
	return &Notifier{conn: conn, subject: subject}
}

func (n *Notifier) Notify(ctx context.Context, notification ports.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	acked := make(chan error, 1)
	if _, err = n.conn.PublishAsync(n.subject, payload, func(_ string, ackErr error) {
		acked <- ackErr
	}); err != nil {
		return err
	}

	select {
	case err = <-acked:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *Notifier) Close() error {
	return n.conn.Close()
}
