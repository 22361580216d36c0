package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	VisitorKeyName contextKey = "visitor_id"

	// VisitorCookieName identifies the browser across requests of one visit
	VisitorCookieName = "visitor"
)

// VisitorConfig configures the visitor cookie
type VisitorConfig struct {
	Secure bool
	MaxAge time.Duration
}

// Visitor middleware assigns every browser a random visitor ID cookie. The
// ID keys the per-visitor rate limits; page state is keyed by page id.
func Visitor(config VisitorConfig) echo.MiddlewareFunc {
	if config.MaxAge <= 0 {
		config.MaxAge = 24 * time.Hour
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(VisitorCookieName); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					id = parsed.String()
				}
			}

			if id == "" {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     VisitorCookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   int(config.MaxAge.Seconds()),
					HttpOnly: true,
					Secure:   config.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(string(VisitorKeyName), id)
			ctx := context.WithValue(c.Request().Context(), VisitorKeyName, id)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetVisitorID retrieves the visitor ID from the Echo context
func GetVisitorID(c echo.Context) string {
	if id, ok := c.Get(string(VisitorKeyName)).(string); ok {
		return id
	}
	return ""
}
