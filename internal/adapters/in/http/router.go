package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"grocery/internal/adapters/in/http/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RouterConfig carries what NewRouter needs besides the handlers.
type RouterConfig struct {
	Logger     *slog.Logger
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds the echo instance serving the grocery API, liveness,
// prometheus metrics and the swagger UI.
func NewRouter(server api.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := NewRequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	metrics, err := NewHTTPMetrics(cfg.Registerer)
	if err != nil {
		return nil, err
	}

	if err = registerSwaggerDoc(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(NewRequestLogger(cfg.Logger))
	e.Use(metrics.Middleware())
	e.Use(middleware.CORS())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api.RegisterHandlers(e, server)
	return e, nil
}

type swaggerDoc []byte

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

var (
	swaggerOnce sync.Once
	swaggerErr  error
)

// registerSwaggerDoc hands the embedded document to swag once per process;
// swag.Register panics on a second registration.
func registerSwaggerDoc() error {
	swaggerOnce.Do(func() {
		doc, err := api.SpecJSON()
		if err != nil {
			swaggerErr = fmt.Errorf("render swagger doc: %w", err)
			return
		}
		swag.Register(swag.Name, swaggerDoc(doc))
	})
	return swaggerErr
}
