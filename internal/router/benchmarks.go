package router

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/mvelja/benchtab/internal/catalog"
	"github.com/mvelja/benchtab/internal/report"
	"github.com/mvelja/benchtab/pkg/server"
)

// CatalogRouter exposes the fetched benchmark catalog over HTTP.
type CatalogRouter struct {
	e       *echo.Echo
	catalog *catalog.Catalog
	health  server.HealthChecker
}

func NewCatalogRouter(e *echo.Echo, c *catalog.Catalog, health server.HealthChecker) *CatalogRouter {
	return &CatalogRouter{
		e:       e,
		catalog: c,
		health:  health,
	}
}

func (r *CatalogRouter) Bind() {
	r.e.GET("/benchmarks/:type", r.benchmarksHandler)
	r.e.GET("/metrics", r.metricsHandler)
	r.e.GET("/healthz", r.healthHandler)
}

func (r *CatalogRouter) benchmarksHandler(c echo.Context) error {
	typ := c.Param("type")
	// Type names carry spaces; the router matches on the escaped path.
	if unescaped, err := url.PathUnescape(typ); err == nil {
		typ = unescaped
	}

	entries, headers, err := r.catalog.Query(c.Request().Context(), typ)
	if err != nil {
		var unknown *catalog.UnknownTypeError
		if errors.As(err, &unknown) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": unknown.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch benchmarks"})
	}

	return c.JSON(http.StatusOK, report.Build(typ, entries, headers))
}

func (r *CatalogRouter) metricsHandler(c echo.Context) error {
	names, err := r.catalog.ListAllMetrics(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list metrics"})
	}
	return c.JSON(http.StatusOK, map[string][]string{"metrics": names})
}

func (r *CatalogRouter) healthHandler(c echo.Context) error {
	if !r.health.Healthy(c.Request().Context()) {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
