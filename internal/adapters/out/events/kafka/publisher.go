// Package kafka publishes order events to a Kafka topic keyed by order id.
package kafka

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"grocery/internal/adapters/out/events"
	"grocery/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

var ErrNoBrokers = errors.New("kafka: no brokers configured")

const writeTimeout = 5 * time.Second

// Writer is the part of *kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer Writer
	logger *slog.Logger
}

// NewPublisher creates a publisher writing to topic on the comma separated
// brokers.
func NewPublisher(brokersCSV, topic string, logger *slog.Logger) (*Publisher, error) {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return NewPublisherWithWriter(writer, logger), nil
}

func NewPublisherWithWriter(writer Writer, logger *slog.Logger) *Publisher {
	return &Publisher{writer: writer, logger: logger.With("component", "kafka-publisher")}
}

func (p *Publisher) Publish(ctx context.Context, evt order.Event) {
	key, body, err := events.Encode(evt)
	if err != nil {
		p.logger.ErrorContext(ctx, "encode order event", "type", evt.Type, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   key,
		Value: body,
		Time:  evt.OccurredAt.UTC(),
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(evt.Type)},
		},
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "publish order event",
			"type", evt.Type, "order_id", evt.OrderID.String(), "error", err)
	}
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
