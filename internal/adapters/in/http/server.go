package http

import (
	"net/http"
	"strings"

	"grocery/internal/adapters/in/http/api"
	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/shop"
	"grocery/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ api.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the HTTP adapter exposes.
type Handlers struct {
	SendOTP      commands.SendOTPCommandHandler
	VerifyOTP    commands.VerifyOTPCommandHandler
	CreateOrder  commands.CreateOrderCommandHandler
	AcceptOrder  commands.AcceptOrderCommandHandler
	DeclineOrder commands.DeclineOrderCommandHandler
	UpdateStock  commands.UpdateStockCommandHandler

	ListVisibleOrders  queries.ListVisibleOrdersQueryHandler
	ListAcceptedOrders queries.ListAcceptedOrdersQueryHandler
	ListCustomerOrders queries.ListCustomerOrdersQueryHandler
	GetShops           queries.GetShopsQueryHandler
	GetShopInventory   queries.GetShopInventoryQueryHandler
	GetCatalog         queries.GetCatalogQueryHandler
}

// Server implements api.ServerInterface on top of the use case handlers.
type Server struct {
	handlers Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// SendOTP handles POST /api/send-otp.
func (s *Server) SendOTP(ctx echo.Context) error {
	var body api.SendOTPRequest
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewSendOTPCommand(body.Phone)
	if err != nil {
		return err
	}

	if err = s.handlers.SendOTP.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, api.MessageResponse{Success: true, Message: "OTP sent"})
}

// VerifyOTP handles POST /api/verify-otp.
func (s *Server) VerifyOTP(ctx echo.Context) error {
	var body api.VerifyOTPRequest
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewVerifyOTPCommand(body.Phone, body.Otp, body.Name, user.Role(body.Role))
	if err != nil {
		return err
	}

	u, err := s.handlers.VerifyOTP.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, api.UserResponse{Success: true, User: toUser(u)})
}

// CreateOrder handles POST /api/orders. A total sent by the client is
// ignored; the order total is derived from its lines.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body api.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	customerID, err := kernel.UUIDFromBytes(body.UserId[:])
	if err != nil {
		return err
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		lines = append(lines, commands.OrderLine{Name: item.Name, UnitPrice: item.Price, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, body.UserName, lines)
	if err != nil {
		return err
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, api.OrderResponse{Success: true, Order: orderFromDomain(o)})
}

// ListCustomerOrders handles GET /api/orders/user/{userId}.
func (s *Server) ListCustomerOrders(ctx echo.Context, userId openapi_types.UUID) error {
	customerID, err := kernel.UUIDFromBytes(userId[:])
	if err != nil {
		return err
	}

	query, err := queries.NewListCustomerOrdersQuery(customerID)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, api.OrdersResponse{Orders: toOrders(views)})
}

// ListVisibleOrders handles GET /api/orders/pending/{shopId}.
func (s *Server) ListVisibleOrders(ctx echo.Context, shopId int64) error {
	query, err := queries.NewListVisibleOrdersQuery(kernel.ShopID(shopId))
	if err != nil {
		return err
	}

	views, err := s.handlers.ListVisibleOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, api.OrdersResponse{Orders: toOrders(views)})
}

// ListAcceptedOrders handles GET /api/orders/shop/{shopId}.
func (s *Server) ListAcceptedOrders(ctx echo.Context, shopId int64) error {
	query, err := queries.NewListAcceptedOrdersQuery(kernel.ShopID(shopId))
	if err != nil {
		return err
	}

	views, err := s.handlers.ListAcceptedOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, api.OrdersResponse{Orders: toOrders(views)})
}

// AcceptOrder handles PATCH /api/orders/{orderId}/accept. The shop name
// stored on the order is the registered one, not the one in the body.
func (s *Server) AcceptOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body api.ShopAction
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptOrderCommand(id, kernel.ShopID(body.ShopId))
	if err != nil {
		return err
	}

	o, err := s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, api.OrderResponse{Success: true, Order: orderFromDomain(o)})
}

// DeclineOrder handles PATCH /api/orders/{orderId}/decline.
func (s *Server) DeclineOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body api.ShopAction
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeclineOrderCommand(id, kernel.ShopID(body.ShopId))
	if err != nil {
		return err
	}

	if err = s.handlers.DeclineOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, api.MessageResponse{Success: true, Message: "Order declined"})
}

// GetShops handles GET /api/shops.
func (s *Server) GetShops(ctx echo.Context) error {
	views, err := s.handlers.GetShops.Handle(ctx.Request().Context(), queries.NewGetShopsQuery())
	if err != nil {
		return err
	}

	shops := make([]api.Shop, 0, len(views))
	for _, v := range views {
		shops = append(shops, api.Shop{Id: v.ID.Int64(), Name: v.Name, Priority: v.PriorityRank})
	}

	return ctx.JSON(http.StatusOK, api.ShopsResponse{Shops: shops})
}

// GetCatalog handles GET /api/items.
func (s *Server) GetCatalog(ctx echo.Context) error {
	views, err := s.handlers.GetCatalog.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, api.ItemsResponse{Items: toStockItems(views)})
}

// GetShopInventory handles GET /api/shops/{shopId}/inventory.
func (s *Server) GetShopInventory(ctx echo.Context, shopId int64) error {
	query, err := queries.NewGetShopInventoryQuery(kernel.ShopID(shopId))
	if err != nil {
		return err
	}

	views, err := s.handlers.GetShopInventory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, api.InventoryResponse{Inventory: toStockItems(views)})
}

// UpdateStock handles PATCH /api/shops/{shopId}/inventory/{itemId}.
func (s *Server) UpdateStock(ctx echo.Context, shopId int64, itemId int) error {
	var body api.StockUpdate
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewUpdateStockCommand(kernel.ShopID(shopId), itemId, body.Stock)
	if err != nil {
		return err
	}

	item, err := s.handlers.UpdateStock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, api.StockItemResponse{Success: true, Item: stockItemFromDomain(item)})
}

func invalidBody(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
}

func stockItemFromDomain(item shop.StockItem) api.StockItem {
	return api.StockItem{
		Id:    item.ID(),
		Name:  item.Name(),
		Price: item.Price(),
		Stock: item.Stock(),
		Image: item.ImageURL(),
	}
}

func toStockItems(views []queries.StockItemView) []api.StockItem {
	items := make([]api.StockItem, 0, len(views))
	for _, v := range views {
		items = append(items, api.StockItem{Id: v.ID, Name: v.Name, Price: v.Price, Stock: v.Stock, Image: v.ImageURL})
	}
	return items
}

func toUser(u *user.User) api.User {
	var shopID *int64
	if id := u.ShopID(); id != nil {
		raw := id.Int64()
		shopID = &raw
	}

	return api.User{
		Id:     u.ID().Bytes(),
		Phone:  u.Phone(),
		Name:   u.Name(),
		Role:   string(u.Role()),
		ShopId: shopID,
	}
}

func statusName(status interface{ String() string }) string {
	return strings.ToLower(status.String())
}
