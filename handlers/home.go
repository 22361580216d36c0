package handlers

import (
	"net/http"

	"advocacia_elite/middleware"
	"advocacia_elite/models"
	"advocacia_elite/services"
	"advocacia_elite/services/uistate"
	"advocacia_elite/templates/components"
	"advocacia_elite/templates/pages"

	"github.com/labstack/echo/v4"
)

// Landing renders the site in its initial state under a fresh page id. The
// page state is mounted by the page's first fragment or stream request, so
// every load starts over and clients that never connect hold nothing.
func (s *Site) Landing(c echo.Context) error {
	data := pages.LandingData{
		Catalog: s.catalog,
		SEO:     GetSEO("landing", s.cfg.AppURL, services.MediaURL(defaultOGImageKey)),
		PageID:  middleware.NewPageID(),
		Blog:    s.initialBlogView(),
		Year:    s.year(),
	}
	return render(c, http.StatusOK, pages.Landing(data))
}

func (s *Site) initialBlogView() components.BlogView {
	filter := uistate.NewFilter[models.BlogPost](s.catalog.BlogPosts, s.catalog.BlogCategories, s.catalog.AllCategory())
	return components.BlogView{
		Categories: filter.Categories(),
		Category:   filter.State().Category,
		Posts:      filter.Visible(),
	}
}
