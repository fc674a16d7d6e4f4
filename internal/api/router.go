package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/shopmesh/platform/internal/api/handler"
	"github.com/shopmesh/platform/internal/core/service"
	"github.com/shopmesh/platform/internal/store"
)

// NewUsersRouter builds the Echo instance for the users service with all
// routes registered and the seeded store wired in.
func NewUsersRouter(log zerolog.Logger) *echo.Echo {
	e := newEcho("users", log)

	// --- Dependencies ---
	userStore := store.NewUserStore()
	userService := service.NewUserService(userStore, log)
	userHandler := handler.NewUserHandler(userService)

	// --- Routes ---
	e.GET("/users", userHandler.List)
	e.POST("/users", userHandler.Create)
	e.GET("/users/:id", userHandler.Get)
	e.PUT("/users/:id", userHandler.Update)
	e.DELETE("/users/:id", userHandler.Delete)
	e.GET("/stats/users", userHandler.Stats)

	healthHandler := handler.NewHealthHandler("users-service",
		map[string]handler.CountFunc{"userCount": userStore.Count}, nil)
	e.GET("/health", healthHandler.Health)

	metaHandler := handler.NewMetaHandler("users-service",
		"User directory: CRUD, role filtering, and directory statistics.",
		[]string{
			"GET /users",
			"POST /users",
			"GET /users/:id",
			"PUT /users/:id",
			"DELETE /users/:id",
			"GET /stats/users",
			"GET /health",
			"GET /metrics",
		})
	e.GET("/", metaHandler.Meta)

	return e
}

// NewProductsRouter builds the Echo instance for the products service with
// all routes registered and the seeded store wired in.
func NewProductsRouter(log zerolog.Logger) *echo.Echo {
	e := newEcho("products", log)

	// --- Dependencies ---
	productStore := store.NewProductStore()
	productService := service.NewProductService(productStore, log)
	productHandler := handler.NewProductHandler(productService)

	// --- Routes ---
	e.GET("/products", productHandler.List)
	e.POST("/products", productHandler.Create)
	e.GET("/products/:id", productHandler.Get)
	e.PUT("/products/:id", productHandler.Update)
	e.DELETE("/products/:id", productHandler.Delete)
	e.PATCH("/products/:id/stock", productHandler.SetStock)
	e.GET("/search", productHandler.Search)
	e.GET("/categories", productHandler.Categories)
	e.GET("/stats/products", productHandler.Stats)

	healthHandler := handler.NewHealthHandler("products-service",
		map[string]handler.CountFunc{"productCount": productStore.Count}, nil)
	e.GET("/health", healthHandler.Health)

	metaHandler := handler.NewMetaHandler("products-service",
		"Product catalog: CRUD, filtering, search, categories, and statistics.",
		[]string{
			"GET /products",
			"POST /products",
			"GET /products/:id",
			"PUT /products/:id",
			"DELETE /products/:id",
			"PATCH /products/:id/stock",
			"GET /search",
			"GET /categories",
			"GET /stats/products",
			"GET /health",
			"GET /metrics",
		})
	e.GET("/", metaHandler.Meta)

	return e
}

// newEcho applies the middleware stack shared by both resource services.
func newEcho(subsystem string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware(subsystem))
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
