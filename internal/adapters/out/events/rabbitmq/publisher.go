// Package rabbitmq publishes order events to a durable topic exchange. The
// routing key is the event type, e.g. "order.accepted".
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"grocery/internal/adapters/out/events"
	"grocery/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	dialAttempts   = 5
	publishTimeout = 5 * time.Second
)

var ErrEmptyExchange = errors.New("rabbitmq: exchange name cannot be empty")

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
	logger   *slog.Logger
}

// Dial connects with retries, opens a channel and declares the exchange.
func Dial(ctx context.Context, url, exchange string, logger *slog.Logger) (*Publisher, error) {
	if exchange == "" {
		return nil, ErrEmptyExchange
	}
	publisher := NewPublisherWithChannel(nil, exchange, logger)

	var (
		conn *amqp.Connection
		err  error
	)
	for attempt := range dialAttempts {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}

		wait := time.Duration(attempt*attempt)*time.Second + time.Second
		publisher.logger.WarnContext(ctx, "rabbitmq dial failed, retrying", "in", wait, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq after %d attempts: %w", dialAttempts, err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	publisher.conn = conn
	publisher.channel = channel
	return publisher, nil
}

func NewPublisherWithChannel(channel Channel, exchange string, logger *slog.Logger) *Publisher {
	return &Publisher{channel: channel, exchange: exchange, logger: logger.With("component", "rabbitmq-publisher")}
}

func (p *Publisher) Publish(ctx context.Context, evt order.Event) {
	_, body, err := events.Encode(evt)
	if err != nil {
		p.logger.ErrorContext(ctx, "encode order event", "type", evt.Type, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, p.exchange, string(evt.Type), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    evt.OrderID.String(),
		Timestamp:    evt.OccurredAt.UTC(),
		Type:         string(evt.Type),
		Body:         body,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "publish order event",
			"type", evt.Type, "order_id", evt.OrderID.String(), "error", err)
	}
}

func (p *Publisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
