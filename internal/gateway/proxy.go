// Package gateway implements the stateless API gateway: a declarative route
// table processed by one generic forwarder that relays backend responses and
// translates backend failures.
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopmesh/platform/internal/api/metrics"
)

// Proxy forwards gateway requests to the configured backends. It holds no
// mutable state; any number of gateway instances can run side by side.
type Proxy struct {
	backends map[string]string // backend key → base URL, no trailing slash
	client   *http.Client
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewProxy builds a Proxy. timeout bounds each outbound call so a hung
// backend cannot block the gateway indefinitely.
func NewProxy(usersURL, productsURL string, timeout time.Duration, logger zerolog.Logger) *Proxy {
	return &Proxy{
		backends: map[string]string{
			"users":    strings.TrimRight(usersURL, "/"),
			"products": strings.TrimRight(productsURL, "/"),
		},
		client:  &http.Client{},
		timeout: timeout,
		logger:  logger,
	}
}

// Forward returns the echo handler for one routing-table row. It issues an
// equivalent outbound request (method, path, query string, and body
// unchanged) and relays the response, translating 404s and failures per the
// row's error texts.
func (p *Proxy) Forward(rt proxyRoute) echo.HandlerFunc {
	return func(c echo.Context) error {
		target := strings.Replace(rt.target, ":id", c.Param("id"), 1)
		u := p.backends[rt.backend] + target
		if q := c.Request().URL.RawQuery; q != "" {
			u += "?" + q
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), p.timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, rt.method, u, c.Request().Body)
		if err != nil {
			return p.failure(c, rt, err)
		}
		if ct := c.Request().Header.Get(echo.HeaderContentType); ct != "" {
			req.Header.Set(echo.HeaderContentType, ct)
		}

		resp, err := p.client.Do(req)
		if err != nil {
			metrics.ProxyFailuresTotal.WithLabelValues(rt.backend).Inc()
			return p.failure(c, rt, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			metrics.ProxyFailuresTotal.WithLabelValues(rt.backend).Inc()
			return p.failure(c, rt, err)
		}

		metrics.ProxyRequestsTotal.WithLabelValues(rt.backend, codeClass(resp.StatusCode)).Inc()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			// Backend-specific detail is dropped in favour of the generic body.
			return c.JSON(http.StatusNotFound, map[string]string{"error": rt.notFound})
		case resp.StatusCode >= http.StatusBadRequest:
			return p.failure(c, rt, fmt.Errorf("backend responded with status %d", resp.StatusCode))
		}

		contentType := resp.Header.Get(echo.HeaderContentType)
		if contentType == "" {
			contentType = echo.MIMEApplicationJSON
		}
		return c.Blob(resp.StatusCode, contentType, body)
	}
}

// failure renders the generic 500 envelope for a route. Connection errors,
// timeouts, cancellations, and non-404 backend errors all end here.
func (p *Proxy) failure(c echo.Context, rt proxyRoute, err error) error {
	p.logger.Error().
		Err(err).
		Str("backend", rt.backend).
		Str("method", rt.method).
		Str("path", rt.path).
		Msg("proxy request failed")

	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error":   "Failed to " + rt.fail,
		"message": err.Error(),
	})
}

func codeClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}
