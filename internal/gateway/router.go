package gateway

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/shopmesh/platform/internal/api"
	"github.com/shopmesh/platform/internal/api/handler"
	"github.com/shopmesh/platform/internal/infrastructure/config"
)

// NewRouter builds the gateway's Echo instance: the proxied route surface
// plus health, metadata, and metrics endpoints.
func NewRouter(cfg *config.Gateway, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RateLimiter(
		echomiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimitRPS))))
	e.Use(echoprometheus.NewMiddleware("gateway"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Proxied routes ---
	proxy := NewProxy(cfg.UsersServiceURL, cfg.ProductsServiceURL, cfg.ProxyTimeout, log)
	for _, rt := range proxyRoutes() {
		e.Add(rt.method, rt.path, proxy.Forward(rt))
	}

	healthHandler := handler.NewHealthHandler("api-gateway", nil, map[string]any{
		"backends": map[string]string{
			"users":    cfg.UsersServiceURL,
			"products": cfg.ProductsServiceURL,
		},
	})
	e.GET("/health", healthHandler.Health)

	metaHandler := handler.NewMetaHandler("api-gateway",
		"Routes client requests to the users and products services.",
		[]string{
			"GET /api/users",
			"POST /api/users",
			"GET /api/users/:id",
			"PUT /api/users/:id",
			"DELETE /api/users/:id",
			"GET /api/products",
			"POST /api/products",
			"GET /api/products/:id",
			"PUT /api/products/:id",
			"DELETE /api/products/:id",
			"GET /health",
			"GET /metrics",
		})
	e.GET("/", metaHandler.Meta)

	// Anything outside the defined surface is a plain 404 with the path echoed.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Not found",
			"path":  c.Request().URL.Path,
		})
	})

	return e
}
