package order

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
)

// EventType names a lifecycle change published to other systems.
type EventType string

const (
	EventCreated  EventType = "order.created"
	EventAccepted EventType = "order.accepted"
	EventDeclined EventType = "order.declined"
	EventExpired  EventType = "order.expired"
)

// Event describes a committed change of an order.
type Event struct {
	Type       EventType
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	Status     Status
	ShopID     *kernel.ShopID
	ShopName   string
	Purged     bool
	OccurredAt time.Time
}

func NewCreatedEvent(o *Order) Event {
	return newEvent(EventCreated, o, nil, o.CreatedAt())
}

// NewAcceptedEvent must be called on an Accepted order.
func NewAcceptedEvent(o *Order) Event {
	evt := newEvent(EventAccepted, o, o.AssignedShopID(), time.Time{})
	if at := o.AcceptedAt(); at != nil {
		evt.OccurredAt = *at
	}
	evt.ShopName = o.AssignedShopName()
	return evt
}

func NewDeclinedEvent(o *Order, shopID kernel.ShopID, at time.Time) Event {
	return newEvent(EventDeclined, o, &shopID, at)
}

func NewExpiredEvent(o *Order, purged bool, at time.Time) Event {
	evt := newEvent(EventExpired, o, nil, at)
	evt.Purged = purged
	return evt
}

func newEvent(t EventType, o *Order, shopID *kernel.ShopID, at time.Time) Event {
	return Event{
		Type:       t,
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		Status:     o.Status(),
		ShopID:     shopID,
		OccurredAt: at,
	}
}
