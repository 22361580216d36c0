package handlers

import (
	"errors"
	"net/http"
	"time"

	"advocacia_elite/config"
	"advocacia_elite/middleware"
	"advocacia_elite/services"
	"advocacia_elite/templates/components"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Site serves the public pages and the HTMX fragments that drive the state of
// each displayed page
type Site struct {
	cfg      *config.Config
	catalog  *services.Catalog
	registry *services.PageRegistry
	media    services.MediaProvider
	now      func() time.Time
}

// NewSite wires the handlers to the content catalog and the page registry
func NewSite(cfg *config.Config, registry *services.PageRegistry, media services.MediaProvider) *Site {
	return &Site{
		cfg:      cfg,
		catalog:  registry.Catalog(),
		registry: registry,
		media:    media,
		now:      time.Now,
	}
}

// mount returns the state of the page the request acts on, creating it on
// the page's first fragment or stream request or after it was released
func (s *Site) mount(c echo.Context) (*services.PageState, error) {
	id := middleware.GetPageID(c)
	if id == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "missing page id")
	}

	page, err := s.registry.Mount(id)
	if errors.Is(err, services.ErrRegistryFull) {
		c.Logger().Warnf("Page registry full, refusing page %s", id)
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "too many open pages")
	}
	if err != nil {
		c.Logger().Errorf("Failed to mount page state %s: %v", id, err)
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "page state unavailable")
	}
	return page, nil
}

func (s *Site) year() int {
	return s.now().Year()
}

// render writes a component as an HTML response
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

func menuView(page *services.PageState) components.MenuView {
	return components.MenuView{
		Open:        page.Menu.IsOpen(),
		OpenEntries: page.Nav.OpenIDs(),
	}
}

func blogView(page *services.PageState) components.BlogView {
	state := page.Blog.State()
	return components.BlogView{
		Categories: page.Blog.Categories(),
		Category:   state.Category,
		SearchText: state.SearchText,
		Posts:      page.Blog.Visible(),
	}
}

// isNotFound reports whether err is an echo 404
func isNotFound(err error) bool {
	var he *echo.HTTPError
	return errors.As(err, &he) && he.Code == http.StatusNotFound
}
