package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopmesh/platform/internal/core/domain"
	"github.com/shopmesh/platform/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products. All supplied filters are combined with AND.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Case-insensitive exact category match"
// @Param        minPrice  query     number  false  "Inclusive lower price bound"
// @Param        maxPrice  query     number  false  "Inclusive upper price bound"
// @Param        limit     query     int     false  "Truncate to first N records after filtering"
// @Success      200       {object}  listProductsResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter := ports.ListProductsFilter{Category: c.QueryParam("category")}
	// Non-numeric bounds and limits are treated the same as absent ones.
	if min, err := strconv.ParseFloat(c.QueryParam("minPrice"), 64); err == nil {
		filter.MinPrice = &min
	}
	if max, err := strconv.ParseFloat(c.QueryParam("maxPrice"), 64); err == nil {
		filter.MaxPrice = &max
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		filter.Limit = limit
	}

	products, err := h.service.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listProductsResponse{Count: len(products), Products: products})
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by ID
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  productNotFoundResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, productNotFoundResponse{Error: "Product not found", ProductID: id})
	}

	product, err := h.service.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, productNotFoundResponse{Error: "Product not found", ProductID: id})
		}
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// Search handles GET /search. The q parameter is required.
//
// @Summary      Search the catalog
// @Tags         products
// @Produce      json
// @Param        q    query     string  true  "Substring matched against name, description, and category"
// @Success      200  {object}  searchProductsResponse
// @Failure      400  {object}  map[string]string
// @Router       /search [get]
func (h *ProductHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	products, err := h.service.SearchProducts(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, searchProductsResponse{
		Query:    query,
		Count:    len(products),
		Products: products,
	})
}

// Categories handles GET /categories.
//
// @Summary      List distinct categories with counts and average prices
// @Tags         products
// @Produce      json
// @Success      200  {array}  categoryResponse
// @Router       /categories [get]
func (h *ProductHandler) Categories(c echo.Context) error {
	categories, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, categoryResponse{
			Name:         cat.Name,
			Count:        cat.Count,
			AveragePrice: cat.AveragePrice,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product fields"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /products/:id. Only supplied fields are overwritten;
// description "" and stock 0 count as supplied.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Product ID"
// @Param        body  body      updateProductRequest  true  "Fields to overwrite"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  productNotFoundResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, productNotFoundResponse{Error: "Product not found", ProductID: id})
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name != nil && *req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name must not be empty")
	}
	if req.Category != nil && *req.Category == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "category must not be empty")
	}
	if req.Stock != nil && *req.Stock < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "stock must not be negative")
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), id, ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, productNotFoundResponse{Error: "Product not found", ProductID: id})
		}
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id, returning the removed record.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  productNotFoundResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, productNotFoundResponse{Error: "Product not found", ProductID: id})
	}

	product, err := h.service.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, productNotFoundResponse{Error: "Product not found", ProductID: id})
		}
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// SetStock handles PATCH /products/:id/stock. Quantity is an absolute value;
// zero is valid, absent is not.
//
// @Summary      Set a product's stock level
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Product ID"
// @Param        body  body      setStockRequest  true  "Absolute stock quantity"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  productNotFoundResponse
// @Router       /products/{id}/stock [patch]
func (h *ProductHandler) SetStock(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, productNotFoundResponse{Error: "Product not found", ProductID: id})
	}

	var req setStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if *req.Quantity < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity must not be negative")
	}

	product, err := h.service.SetStock(c.Request().Context(), id, *req.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, productNotFoundResponse{Error: "Product not found", ProductID: id})
		}
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// Stats handles GET /stats/products.
//
// @Summary      Catalog statistics
// @Tags         products
// @Produce      json
// @Success      200  {object}  productStatsResponse
// @Router       /stats/products [get]
func (h *ProductHandler) Stats(c echo.Context) error {
	stats, err := h.service.ProductStats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productStatsResponse{
		Total:        stats.Total,
		TotalValue:   stats.TotalValue,
		AveragePrice: stats.AveragePrice,
		TotalStock:   stats.TotalStock,
		ByCategory:   stats.ByCategory,
	})
}
