package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
)

const (
	CSRFKey contextKey = "csrf"

	// CSRFHeader carries the token on HTMX requests
	CSRFHeader = "X-CSRF-Token"
)

// GetCSRFToken retrieves the CSRF token from the Echo context
// This token must be sent with every HTMX request that changes state
func GetCSRFToken(c echo.Context) string {
	token := c.Get("csrf")
	if token == nil {
		return ""
	}
	if tokenStr, ok := token.(string); ok {
		return tokenStr
	}
	return ""
}

// CSRFToContext copies the token set by echo's CSRF middleware into the
// request context so views can embed it. It must run after the CSRF middleware.
func CSRFToContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := GetCSRFToken(c); token != "" {
				ctx := context.WithValue(c.Request().Context(), CSRFKey, token)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}

// GetCSRFTokenFromContext retrieves the token stored by CSRFToContext
func GetCSRFTokenFromContext(ctx context.Context) string {
	if val, ok := ctx.Value(CSRFKey).(string); ok {
		return val
	}
	return ""
}
