// Package events turns committed order changes into broker messages. The
// concrete brokers live in the kafka and rabbitmq subpackages; this package
// holds the shared JSON message and the publishers that wrap them.
package events

import (
	"encoding/json"
	"time"

	"grocery/internal/core/domain/model/order"
)

// Message is the JSON body sent to every broker.
type Message struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	Status     string    `json:"status"`
	ShopID     *int64    `json:"shopId,omitempty"`
	ShopName   string    `json:"shopName,omitempty"`
	Purged     bool      `json:"purged,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewMessage(evt order.Event) Message {
	msg := Message{
		Type:       string(evt.Type),
		OrderID:    evt.OrderID.String(),
		CustomerID: evt.CustomerID.String(),
		Status:     evt.Status.String(),
		ShopName:   evt.ShopName,
		Purged:     evt.Purged,
		OccurredAt: evt.OccurredAt.UTC(),
	}
	if evt.ShopID != nil {
		id := evt.ShopID.Int64()
		msg.ShopID = &id
	}
	return msg
}

// Encode returns the partition key (the order id) and the JSON body.
func Encode(evt order.Event) (key []byte, body []byte, err error) {
	body, err = json.Marshal(NewMessage(evt))
	if err != nil {
		return nil, nil, err
	}
	return []byte(evt.OrderID.String()), body, nil
}
