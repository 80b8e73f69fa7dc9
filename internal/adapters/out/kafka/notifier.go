// Package kafka publishes order notifications to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"retail/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Notifier writes one JSON message per notification, keyed by order id so
// the notifications of an order stay on one partition and in order.
type Notifier struct {
	writer messageWriter
}

// NewWriter builds a hash-balanced writer for brokersCSV ("host1:9092,host2:9092").
func NewWriter(brokersCSV, topic string) *kafka.Writer {
	var brokers []string
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func NewNotifier(writer messageWriter) *Notifier {
	return &Notifier{writer: writer}
}

func (n *Notifier) Notify(ctx context.Context, notification ports.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(notification.OrderID, 10)),
		Value: payload,
		Time:  notification.OccurredAt,
	})
}

func (n *Notifier) Close() error {
	return n.writer.Close()
}
