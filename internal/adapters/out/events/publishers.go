package events

import (
	"context"
	"log/slog"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

// Fanout delivers every event to each publisher in turn.
type Fanout []ports.OrderEventPublisher

func (f Fanout) Publish(ctx context.Context, evt order.Event) {
	for _, p := range f {
		p.Publish(ctx, evt)
	}
}

// LogPublisher writes events to the log. It is the sink when no broker is
// configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "order-events")}
}

func (p *LogPublisher) Publish(ctx context.Context, evt order.Event) {
	attrs := []any{"type", evt.Type, "order_id", evt.OrderID.String(), "status", evt.Status.String()}
	if evt.ShopID != nil {
		attrs = append(attrs, "shop_id", evt.ShopID.Int64())
	}
	p.logger.InfoContext(ctx, "order event", attrs...)
}

// MetricsPublisher counts events by type.
type MetricsPublisher struct {
	events *prometheus.CounterVec
}

func NewMetricsPublisher(registerer prometheus.Registerer) (*MetricsPublisher, error) {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grocery",
		Subsystem: "orders",
		Name:      "events_total",
		Help:      "Committed order lifecycle events by type.",
	}, []string{"type"})

	if err := registerer.Register(events); err != nil {
		return nil, err
	}
	return &MetricsPublisher{events: events}, nil
}

func (p *MetricsPublisher) Publish(_ context.Context, evt order.Event) {
	p.events.WithLabelValues(string(evt.Type)).Inc()
}
