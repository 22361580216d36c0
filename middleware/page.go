package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	PageKeyName contextKey = "page_id"

	// PageHeader carries the page id on HTMX requests
	PageHeader = "X-Page-ID"
	// PageQueryParam carries the page id where no header can be set, as on
	// the event stream URL
	PageQueryParam = "page"
)

// NewPageID mints the id of one rendered landing page
func NewPageID() string {
	return uuid.NewString()
}

// Page middleware reads the id of the page a request acts on. Ids that are
// not UUIDs are ignored.
func Page() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(PageHeader)
			if raw == "" {
				raw = c.QueryParam(PageQueryParam)
			}
			if parsed, err := uuid.Parse(raw); err == nil {
				c.Set(string(PageKeyName), parsed.String())
			}
			return next(c)
		}
	}
}

// GetPageID retrieves the page id from the Echo context
func GetPageID(c echo.Context) string {
	if id, ok := c.Get(string(PageKeyName)).(string); ok {
		return id
	}
	return ""
}
