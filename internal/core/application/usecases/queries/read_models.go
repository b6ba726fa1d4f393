package queries

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/shop"

	"github.com/shopspring/decimal"
)

type OrderItemView struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// OrderView is the read model of an order shared by all order queries.
type OrderView struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	CustomerName     string
	Items            []OrderItemView
	TotalAmount      decimal.Decimal
	Status           order.Status
	CreatedAt        time.Time
	DeclinedBy       []kernel.ShopID
	AssignedShopID   *kernel.ShopID
	AssignedShopName string
	AcceptedAt       *time.Time

	// WindowEndsAt is set by ListVisibleOrders only: the instant the
	// requesting shop loses the order unless it acts.
	WindowEndsAt *time.Time
}

func newOrderView(o *order.Order) OrderView {
	items := make([]OrderItemView, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemView{
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderView{
		ID:               o.ID(),
		CustomerID:       o.CustomerID(),
		CustomerName:     o.CustomerName(),
		Items:            items,
		TotalAmount:      o.TotalAmount(),
		Status:           o.Status(),
		CreatedAt:        o.CreatedAt(),
		DeclinedBy:       o.DeclinedBy(),
		AssignedShopID:   o.AssignedShopID(),
		AssignedShopName: o.AssignedShopName(),
		AcceptedAt:       o.AcceptedAt(),
	}
}

func newOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	return views
}

type ShopView struct {
	ID           kernel.ShopID
	Name         string
	PriorityRank int
}

type StockItemView struct {
	ID       int
	Name     string
	Price    decimal.Decimal
	Stock    int
	ImageURL string
}

func newStockItemViews(s *shop.Shop) []StockItemView {
	inventory := s.Inventory()
	views := make([]StockItemView, 0, len(inventory))
	for _, item := range inventory {
		views = append(views, StockItemView{
			ID:       item.ID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Stock:    item.Stock(),
			ImageURL: item.ImageURL(),
		})
	}
	return views
}
