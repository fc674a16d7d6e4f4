package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CountFunc reports a live collection size for the health payload.
type CountFunc func(ctx context.Context) (int, error)

// HealthHandler handles GET /health. The payload always carries status,
// service name, timestamp, and uptime; callers add service-specific counts
// and static fields.
type HealthHandler struct {
	service string
	started time.Time
	counts  map[string]CountFunc
	extra   map[string]any
}

func NewHealthHandler(service string, counts map[string]CountFunc, extra map[string]any) *HealthHandler {
	return &HealthHandler{
		service: service,
		started: time.Now(),
		counts:  counts,
		extra:   extra,
	}
}

func (h *HealthHandler) Health(c echo.Context) error {
	resp := map[string]any{
		"status":    "healthy",
		"service":   h.service,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.started).Seconds(),
	}
	for name, count := range h.counts {
		n, err := count(c.Request().Context())
		if err != nil {
			return err
		}
		resp[name] = n
	}
	for name, v := range h.extra {
		resp[name] = v
	}
	return c.JSON(http.StatusOK, resp)
}

// MetaHandler handles GET / with service metadata and the route surface.
type MetaHandler struct {
	service     string
	description string
	endpoints   []string
}

func NewMetaHandler(service, description string, endpoints []string) *MetaHandler {
	return &MetaHandler{service: service, description: description, endpoints: endpoints}
}

func (h *MetaHandler) Meta(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service":     h.service,
		"description": h.description,
		"endpoints":   h.endpoints,
	})
}
