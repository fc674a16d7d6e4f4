package handler

import "github.com/shopmesh/platform/internal/core/domain"

// --- Request types ---

type createProductRequest struct {
	Name        string  `json:"name"     validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"    validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Stock       int     `json:"stock"    validate:"omitempty,gte=0"`
}

// updateProductRequest distinguishes "absent" from "zero" via pointer fields:
// description "" and stock 0 are valid updates, a nil pointer keeps the prior
// value.
type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
}

// setStockRequest requires quantity to be present; zero is a valid quantity.
type setStockRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// --- Response types ---

type listProductsResponse struct {
	Count    int              `json:"count"`
	Products []domain.Product `json:"products"`
}

type searchProductsResponse struct {
	Query    string           `json:"query"`
	Count    int              `json:"count"`
	Products []domain.Product `json:"products"`
}

type productNotFoundResponse struct {
	Error     string `json:"error"`
	ProductID int    `json:"productId"`
}

type categoryResponse struct {
	Name         string `json:"name"`
	Count        int    `json:"count"`
	AveragePrice string `json:"averagePrice"`
}

type productStatsResponse struct {
	Total        int            `json:"total"`
	TotalValue   string         `json:"totalValue"`
	AveragePrice string         `json:"averagePrice"`
	TotalStock   int            `json:"totalStock"`
	ByCategory   map[string]int `json:"byCategory"`
}
