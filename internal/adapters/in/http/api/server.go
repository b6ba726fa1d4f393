package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface is implemented by the HTTP adapter, one method per
// operation of openapi.yaml.
type ServerInterface interface {
	// (POST /api/send-otp)
	SendOTP(ctx echo.Context) error
	// (POST /api/verify-otp)
	VerifyOTP(ctx echo.Context) error
	// (POST /api/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/orders/user/{userId})
	ListCustomerOrders(ctx echo.Context, userId openapi_types.UUID) error
	// (GET /api/orders/pending/{shopId})
	ListVisibleOrders(ctx echo.Context, shopId int64) error
	// (GET /api/orders/shop/{shopId})
	ListAcceptedOrders(ctx echo.Context, shopId int64) error
	// (PATCH /api/orders/{orderId}/accept)
	AcceptOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (PATCH /api/orders/{orderId}/decline)
	DeclineOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/shops)
	GetShops(ctx echo.Context) error
	// (GET /api/items)
	GetCatalog(ctx echo.Context) error
	// (GET /api/shops/{shopId}/inventory)
	GetShopInventory(ctx echo.Context, shopId int64) error
	// (PATCH /api/shops/{shopId}/inventory/{itemId})
	UpdateStock(ctx echo.Context, shopId int64, itemId int) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) SendOTP(ctx echo.Context) error {
	return w.Handler.SendOTP(ctx)
}

func (w *ServerInterfaceWrapper) VerifyOTP(ctx echo.Context) error {
	return w.Handler.VerifyOTP(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListCustomerOrders(ctx echo.Context) error {
	var userId openapi_types.UUID
	if err := bindPathParam(ctx, "userId", &userId); err != nil {
		return err
	}
	return w.Handler.ListCustomerOrders(ctx, userId)
}

func (w *ServerInterfaceWrapper) ListVisibleOrders(ctx echo.Context) error {
	var shopId int64
	if err := bindPathParam(ctx, "shopId", &shopId); err != nil {
		return err
	}
	return w.Handler.ListVisibleOrders(ctx, shopId)
}

func (w *ServerInterfaceWrapper) ListAcceptedOrders(ctx echo.Context) error {
	var shopId int64
	if err := bindPathParam(ctx, "shopId", &shopId); err != nil {
		return err
	}
	return w.Handler.ListAcceptedOrders(ctx, shopId)
}

func (w *ServerInterfaceWrapper) AcceptOrder(ctx echo.Context) error {
	var orderId openapi_types.UUID
	if err := bindPathParam(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.AcceptOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) DeclineOrder(ctx echo.Context) error {
	var orderId openapi_types.UUID
	if err := bindPathParam(ctx, "orderId", &orderId); err != nil {
		return err
	}
	return w.Handler.DeclineOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetShops(ctx echo.Context) error {
	return w.Handler.GetShops(ctx)
}

func (w *ServerInterfaceWrapper) GetCatalog(ctx echo.Context) error {
	return w.Handler.GetCatalog(ctx)
}

func (w *ServerInterfaceWrapper) GetShopInventory(ctx echo.Context) error {
	var shopId int64
	if err := bindPathParam(ctx, "shopId", &shopId); err != nil {
		return err
	}
	return w.Handler.GetShopInventory(ctx, shopId)
}

func (w *ServerInterfaceWrapper) UpdateStock(ctx echo.Context) error {
	var shopId int64
	if err := bindPathParam(ctx, "shopId", &shopId); err != nil {
		return err
	}
	var itemId int
	if err := bindPathParam(ctx, "itemId", &itemId); err != nil {
		return err
	}
	return w.Handler.UpdateStock(ctx, shopId, itemId)
}

func bindPathParam(ctx echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.POST("/api/send-otp", w.SendOTP)
	router.POST("/api/verify-otp", w.VerifyOTP)
	router.POST("/api/orders", w.CreateOrder)
	router.GET("/api/orders/user/:userId", w.ListCustomerOrders)
	router.GET("/api/orders/pending/:shopId", w.ListVisibleOrders)
	router.GET("/api/orders/shop/:shopId", w.ListAcceptedOrders)
	router.PATCH("/api/orders/:orderId/accept", w.AcceptOrder)
	router.PATCH("/api/orders/:orderId/decline", w.DeclineOrder)
	router.GET("/api/shops", w.GetShops)
	router.GET("/api/items", w.GetCatalog)
	router.GET("/api/shops/:shopId/inventory", w.GetShopInventory)
	router.PATCH("/api/shops/:shopId/inventory/:itemId", w.UpdateStock)
}
