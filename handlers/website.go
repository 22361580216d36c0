package handlers

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"advocacia_elite/db"
	"advocacia_elite/services"
	"advocacia_elite/templates/pages"

	"github.com/labstack/echo/v4"
)

// Health reports liveness, the content database and how many page states
// are mounted
func (s *Site) Health(c echo.Context) error {
	status, code := "ok", http.StatusOK
	database := "ok"
	if err := db.Ping(c.Request().Context()); err != nil {
		c.Logger().Errorf("Health check database ping failed: %v", err)
		status, code = "degraded", http.StatusServiceUnavailable
		database = "unavailable"
	}

	return c.JSON(code, map[string]interface{}{
		"status":   status,
		"database": database,
		"pages":    s.registry.Len(),
		"media":    s.media.Name(),
	})
}

// Media serves content images through the configured provider
func (s *Site) Media(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")

	reader, contentType, err := s.media.Get(c.Request().Context(), key)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidMediaKey) && !errors.Is(err, os.ErrNotExist) {
			c.Logger().Errorf("Failed to read media %s: %v", key, err)
		}
		return echo.NewHTTPError(http.StatusNotFound, "media not found")
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")
	return c.Stream(http.StatusOK, contentType, reader)
}

// ErrorHandler renders the not found page for page requests and falls back
// to echo's default handler for everything else
func (s *Site) ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if isNotFound(err) && !isFragmentRequest(c) {
			if rerr := render(c, http.StatusNotFound, pages.NotFound(s.catalog, s.year())); rerr != nil {
				c.Logger().Errorf("Failed to render not found page: %v", rerr)
			}
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

// isFragmentRequest reports whether the request expects a fragment or data
// rather than a full page
func isFragmentRequest(c echo.Context) bool {
	req := c.Request()
	if req.Header.Get("HX-Request") == "true" {
		return true
	}
	path := req.URL.Path
	return strings.HasPrefix(path, "/htmx/") ||
		strings.HasPrefix(path, "/media/") ||
		strings.HasPrefix(path, "/static/")
}
