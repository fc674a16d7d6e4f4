package gateway

import "net/http"

// proxyRoute is one row of the gateway's declarative routing table. Every
// route is processed by the same forwarder; the row carries the backend, the
// target path template, and the error texts that differ per operation.
type proxyRoute struct {
	method  string
	path    string // gateway path
	backend string // backend key: "users" or "products"
	target  string // backend path template, :id substituted from the request
	// fail completes "Failed to <fail>" on connection or backend failure.
	fail string
	// notFound is the generic body text relayed on a backend 404.
	notFound string
}

// proxyRoutes is the complete proxied surface of the gateway.
func proxyRoutes() []proxyRoute {
	return []proxyRoute{
		{http.MethodGet, "/api/users", "users", "/users", "fetch users", "User not found"},
		{http.MethodPost, "/api/users", "users", "/users", "create user", "User not found"},
		{http.MethodGet, "/api/users/:id", "users", "/users/:id", "fetch user", "User not found"},
		{http.MethodPut, "/api/users/:id", "users", "/users/:id", "update user", "User not found"},
		{http.MethodDelete, "/api/users/:id", "users", "/users/:id", "delete user", "User not found"},

		{http.MethodGet, "/api/products", "products", "/products", "fetch products", "Product not found"},
		{http.MethodPost, "/api/products", "products", "/products", "create product", "Product not found"},
		{http.MethodGet, "/api/products/:id", "products", "/products/:id", "fetch product", "Product not found"},
		{http.MethodPut, "/api/products/:id", "products", "/products/:id", "update product", "Product not found"},
		{http.MethodDelete, "/api/products/:id", "products", "/products/:id", "delete product", "Product not found"},
	}
}
