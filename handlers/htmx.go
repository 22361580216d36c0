package handlers

import (
	"net/http"
	"strconv"

	"advocacia_elite/middleware"
	"advocacia_elite/services"
	"advocacia_elite/services/uistate"
	"advocacia_elite/templates/components"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// maxSearchLength bounds the blog search text in runes
const maxSearchLength = 100

func rotatorFor(page *services.PageState, section services.Section) *uistate.Rotator {
	if section == services.SectionTestimonials {
		return page.Testimonials
	}
	return page.Hero
}

// carouselFragment renders a carousel at the given index
func (s *Site) carouselFragment(section services.Section, index int) g.Node {
	if section == services.SectionTestimonials {
		return components.Testimonials(s.catalog.Testimonials, index)
	}
	return components.Hero(s.catalog.HeroSlides, index)
}

// carousel applies a manual control to the section's rotator and returns the
// re-rendered fragment. The schedule keeps running.
func (s *Site) carousel(section services.Section, control func(r *uistate.Rotator, c echo.Context) (int, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := s.mount(c)
		if err != nil {
			return err
		}

		index, err := control(rotatorFor(page, section), c)
		if err != nil {
			return err
		}
		return render(c, http.StatusOK, components.Fragment(s.carouselFragment(section, index)))
	}
}

// CarouselSelect jumps to the index in the path
func (s *Site) CarouselSelect(section services.Section) echo.HandlerFunc {
	return s.carousel(section, func(r *uistate.Rotator, c echo.Context) (int, error) {
		k, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid index")
		}
		return r.GoTo(k), nil
	})
}

// CarouselNext steps forward
func (s *Site) CarouselNext(section services.Section) echo.HandlerFunc {
	return s.carousel(section, func(r *uistate.Rotator, _ echo.Context) (int, error) {
		return r.StepForward(), nil
	})
}

// CarouselPrev steps backward
func (s *Site) CarouselPrev(section services.Section) echo.HandlerFunc {
	return s.carousel(section, func(r *uistate.Rotator, _ echo.Context) (int, error) {
		return r.StepBackward(), nil
	})
}

// CarouselCurrent renders the carousel without changing it
func (s *Site) CarouselCurrent(section services.Section) echo.HandlerFunc {
	return s.carousel(section, func(r *uistate.Rotator, _ echo.Context) (int, error) {
		return r.Index(), nil
	})
}

// BlogFilter updates whichever filter inputs are present in the query and
// returns the listing
func (s *Site) BlogFilter(c echo.Context) error {
	page, err := s.mount(c)
	if err != nil {
		return err
	}

	params := c.QueryParams()
	state := page.Blog.State()
	if params.Has("category") {
		state.Category = params.Get("category")
	}
	if params.Has("q") {
		state.SearchText = truncateRunes(params.Get("q"), maxSearchLength)
	}
	page.Blog.Apply(state)

	return render(c, http.StatusOK, components.Fragment(components.BlogListing(blogView(page))))
}

// MenuToggle opens or closes the mobile menu
func (s *Site) MenuToggle(c echo.Context) error {
	page, err := s.mount(c)
	if err != nil {
		return err
	}

	page.Menu.Toggle()
	return s.renderMenu(c, page)
}

// MenuClose closes the mobile menu and collapses its accordion, as when a
// menu link is followed
func (s *Site) MenuClose(c echo.Context) error {
	page, err := s.mount(c)
	if err != nil {
		return err
	}

	page.Menu.Close()
	page.Nav.CloseAll()
	return s.renderMenu(c, page)
}

// NavToggle expands or collapses one accordion entry of the mobile menu
func (s *Site) NavToggle(c echo.Context) error {
	item, ok := s.catalog.NavItem(c.Param("id"))
	if !ok || !item.HasSubmenu() {
		return echo.NewHTTPError(http.StatusNotFound, "unknown menu entry")
	}

	page, err := s.mount(c)
	if err != nil {
		return err
	}

	page.Nav.Toggle(item.Key())
	return s.renderMenu(c, page)
}

func (s *Site) renderMenu(c echo.Context, page *services.PageState) error {
	return render(c, http.StatusOK, components.Fragment(components.MobileMenu(s.catalog.NavItems, menuView(page))))
}

// Unmount releases the page's state when the page is left
func (s *Site) Unmount(c echo.Context) error {
	s.registry.Unmount(middleware.GetPageID(c))
	return c.NoContent(http.StatusNoContent)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
