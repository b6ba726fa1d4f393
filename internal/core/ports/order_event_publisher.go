package ports

import (
	"context"

	"grocery/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes. Delivery is best
// effort: implementations log failures and never fail the caller.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event order.Event)
}
