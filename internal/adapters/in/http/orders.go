package http

import (
	"grocery/internal/adapters/in/http/api"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
)

func orderFromDomain(o *order.Order) api.Order {
	items := make([]api.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, api.OrderItem{Name: item.Name(), Price: item.UnitPrice(), Quantity: item.Quantity()})
	}

	return api.Order{
		Id:         o.ID().Bytes(),
		UserId:     o.CustomerID().Bytes(),
		UserName:   o.CustomerName(),
		Items:      items,
		Total:      o.TotalAmount(),
		Status:     statusName(o.Status()),
		CreatedAt:  o.CreatedAt(),
		DeclinedBy: shopIDs(o.DeclinedBy()),
		AcceptedBy: shopIDPtr(o.AssignedShopID()),
		ShopName:   o.AssignedShopName(),
		AcceptedAt: o.AcceptedAt(),
	}
}

func toOrders(views []queries.OrderView) []api.Order {
	orders := make([]api.Order, 0, len(views))
	for _, v := range views {
		items := make([]api.OrderItem, 0, len(v.Items))
		for _, item := range v.Items {
			items = append(items, api.OrderItem{Name: item.Name, Price: item.UnitPrice, Quantity: item.Quantity})
		}

		orders = append(orders, api.Order{
			Id:           v.ID.Bytes(),
			UserId:       v.CustomerID.Bytes(),
			UserName:     v.CustomerName,
			Items:        items,
			Total:        v.TotalAmount,
			Status:       statusName(v.Status),
			CreatedAt:    v.CreatedAt,
			DeclinedBy:   shopIDs(v.DeclinedBy),
			AcceptedBy:   shopIDPtr(v.AssignedShopID),
			ShopName:     v.AssignedShopName,
			AcceptedAt:   v.AcceptedAt,
			WindowEndsAt: v.WindowEndsAt,
		})
	}
	return orders
}

func shopIDs(ids []kernel.ShopID) []int64 {
	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Int64())
	}
	return raw
}

func shopIDPtr(id *kernel.ShopID) *int64 {
	if id == nil {
		return nil
	}
	raw := id.Int64()
	return &raw
}
