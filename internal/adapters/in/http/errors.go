package http

import (
	"errors"
	"log/slog"
	"net/http"

	"grocery/internal/adapters/in/http/api"
	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/shop"
	"grocery/internal/core/domain/services"
	"grocery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error kinds reported in the "kind" field of an error response.
const (
	KindOrderNotFound         = "OrderNotFound"
	KindShopNotFound          = "ShopNotFound"
	KindAlreadyAccepted       = "AlreadyAccepted"
	KindShopIneligible        = "ShopIneligible"
	KindInsufficientInventory = "InsufficientInventory"
	KindInvalidInput          = "InvalidInput"
	KindInternal              = "Internal"
)

// classify maps a use case error onto an HTTP status and an error kind.
func classify(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errs.IsObjectNotFound(err, "order"):
		return http.StatusNotFound, KindOrderNotFound
	case errs.IsObjectNotFound(err, "shop"), errors.Is(err, commands.ErrNoShopsRegistered):
		return http.StatusNotFound, KindShopNotFound
	case errors.Is(err, order.ErrOrderIsNotPending):
		return http.StatusConflict, KindAlreadyAccepted
	case errors.Is(err, services.ErrShopIneligible):
		return http.StatusConflict, KindShopIneligible
	case errors.Is(err, shop.ErrInsufficientInventory):
		return http.StatusConflict, KindInsufficientInventory
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errs.IsObjectNotFound(err, "stock item"),
		errors.Is(err, commands.ErrInvalidOTP):
		return http.StatusBadRequest, KindInvalidInput
	case errors.As(err, &httpErr):
		switch {
		case httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed:
			return httpErr.Code, KindInvalidInput
		case httpErr.Code < http.StatusInternalServerError:
			return http.StatusBadRequest, KindInvalidInput
		}
	}
	return http.StatusInternalServerError, KindInternal
}

// NewErrorHandler renders every error returned by a handler as an
// api.Error envelope. Internal errors are logged and their details hidden.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code, kind := classify(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}

		if code == http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Request failed",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"error", err,
			)
			message = http.StatusText(http.StatusInternalServerError)
		}

		body := api.Error{Success: false, Code: code, Kind: kind, Message: message}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, body)
		}
		if writeErr != nil {
			logger.Error("Failed to write error response", "error", writeErr)
		}
	}
}
