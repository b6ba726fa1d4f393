package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type Error struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SendOTPRequest struct {
	Phone string `json:"phone"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Otp   string `json:"otp"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type User struct {
	Id     openapi_types.UUID `json:"id"`
	Phone  string             `json:"phone"`
	Name   string             `json:"name"`
	Role   string             `json:"role"`
	ShopId *int64             `json:"shopId"`
}

type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

type NewOrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type NewOrder struct {
	UserId   openapi_types.UUID `json:"userId"`
	UserName string             `json:"userName"`
	Items    []NewOrderItem     `json:"items"`
	Total    *decimal.Decimal   `json:"total,omitempty"`
}

type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type Order struct {
	Id           openapi_types.UUID `json:"id"`
	UserId       openapi_types.UUID `json:"userId"`
	UserName     string             `json:"userName"`
	Items        []OrderItem        `json:"items"`
	Total        decimal.Decimal    `json:"total"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	DeclinedBy   []int64            `json:"declinedBy"`
	AcceptedBy   *int64             `json:"acceptedBy,omitempty"`
	ShopName     string             `json:"shopName,omitempty"`
	AcceptedAt   *time.Time         `json:"acceptedAt,omitempty"`
	WindowEndsAt *time.Time         `json:"windowEndsAt,omitempty"`
}

type OrderResponse struct {
	Success bool  `json:"success"`
	Order   Order `json:"order"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

type ShopAction struct {
	ShopId   int64  `json:"shopId"`
	ShopName string `json:"shopName,omitempty"`
}

type Shop struct {
	Id       int64  `json:"id"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

type ShopsResponse struct {
	Shops []Shop `json:"shops"`
}

type StockItem struct {
	Id    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
	Image string          `json:"image,omitempty"`
}

type ItemsResponse struct {
	Items []StockItem `json:"items"`
}

type InventoryResponse struct {
	Inventory []StockItem `json:"inventory"`
}

type StockUpdate struct {
	Stock int `json:"stock"`
}

type StockItemResponse struct {
	Success bool      `json:"success"`
	Item    StockItem `json:"item"`
}
