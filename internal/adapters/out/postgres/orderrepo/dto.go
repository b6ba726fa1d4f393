// Package orderrepo maps order aggregates to the orders and order_items tables.
package orderrepo

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. DeclinedBy holds the declined shop
// set as a bigint array in insertion order.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerName     string          `gorm:"type:varchar(255);not null"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt        time.Time       `gorm:"type:timestamptz;not null;index;autoCreateTime:false"`
	Status           int             `gorm:"type:smallint;not null;index"`
	DeclinedBy       pq.Int64Array   `gorm:"type:bigint[];not null;default:'{}'"`
	AssignedShopID   *int64          `gorm:"index"`
	AssignedShopName string          `gorm:"type:varchar(255)"`
	AcceptedAt       *time.Time      `gorm:"type:timestamptz"`
	Items            []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Position keeps the lines in the order the
// customer placed them.
type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey;autoIncrement:false"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Quantity  int             `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	state := o.State()
	orderID := state.ID.Bytes()

	items := make([]OrderItemDTO, 0, len(state.Items))
	for i, item := range state.Items {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			Position:  i,
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	declined := make(pq.Int64Array, 0, len(state.DeclinedBy))
	for _, id := range state.DeclinedBy {
		declined = append(declined, id.Int64())
	}

	var assigned *int64
	if state.AssignedShopID != nil {
		raw := state.AssignedShopID.Int64()
		assigned = &raw
	}

	return OrderDTO{
		ID:               orderID,
		CustomerID:       state.CustomerID.Bytes(),
		CustomerName:     state.CustomerName,
		TotalAmount:      state.TotalAmount,
		CreatedAt:        state.CreatedAt,
		Status:           int(state.Status),
		DeclinedBy:       declined,
		AssignedShopID:   assigned,
		AssignedShopName: state.AssignedShopName,
		AcceptedAt:       state.AcceptedAt,
		Items:            items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.UnitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	declined := make([]kernel.ShopID, 0, len(dto.DeclinedBy))
	for _, raw := range dto.DeclinedBy {
		declined = append(declined, kernel.ShopID(raw))
	}

	var assigned *kernel.ShopID
	if dto.AssignedShopID != nil {
		shopID := kernel.ShopID(*dto.AssignedShopID)
		assigned = &shopID
	}

	var acceptedAt *time.Time
	if dto.AcceptedAt != nil {
		at := dto.AcceptedAt.UTC()
		acceptedAt = &at
	}

	return order.RestoreOrder(order.State{
		ID:               id,
		CustomerID:       customerID,
		CustomerName:     dto.CustomerName,
		Items:            items,
		TotalAmount:      dto.TotalAmount,
		CreatedAt:        dto.CreatedAt.UTC(),
		Status:           order.Status(dto.Status),
		DeclinedBy:       declined,
		AssignedShopID:   assigned,
		AssignedShopName: dto.AssignedShopName,
		AcceptedAt:       acceptedAt,
	})
}
