package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"advocacia_elite/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he), "expected echo.HTTPError, got %v", err)
	assert.Equal(t, code, he.Code)
}

func TestCarouselHandlers(t *testing.T) {
	t.Run("Next advances the hero and returns the fragment", func(t *testing.T) {
		site := setupTestSite(t)
		id := uuid.NewString()

		_, c, rec := setupPageEcho(http.MethodPost, "/htmx/hero/next", id)
		require.NoError(t, site.CarouselNext(services.SectionHero)(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="hero"`)
		assert.Contains(t, rec.Body.String(), "Experiência Comprovada")
		assert.Contains(t, rec.Body.String(), `aria-label="Ir para slide 2" aria-current="true"`)

		page, err := site.registry.Get(id)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Hero.Index())
	})

	t.Run("Prev wraps to the last slide", func(t *testing.T) {
		site := setupTestSite(t)

		_, c, rec := setupPageEcho(http.MethodPost, "/htmx/hero/prev", uuid.NewString())
		require.NoError(t, site.CarouselPrev(services.SectionHero)(c))

		assert.Contains(t, rec.Body.String(), "Atendimento Personalizado")
	})

	t.Run("Select jumps to the index", func(t *testing.T) {
		site := setupTestSite(t)
		id := uuid.NewString()

		_, c, rec := setupPageEcho(http.MethodPost, "/htmx/testimonials/select/1", id)
		c.SetParamNames("index")
		c.SetParamValues("1")
		require.NoError(t, site.CarouselSelect(services.SectionTestimonials)(c))

		assert.Contains(t, rec.Body.String(), `id="testimonials"`)
		assert.Contains(t, rec.Body.String(), "Ana Martins")

		page, err := site.registry.Get(id)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Testimonials.Index())
		assert.Equal(t, 0, page.Hero.Index(), "carousels are independent")
	})

	t.Run("Select with an invalid index is a bad request", func(t *testing.T) {
		site := setupTestSite(t)

		_, c, _ := setupPageEcho(http.MethodPost, "/htmx/hero/select/abc", uuid.NewString())
		c.SetParamNames("index")
		c.SetParamValues("abc")

		assertHTTPError(t, site.CarouselSelect(services.SectionHero)(c), http.StatusBadRequest)
	})

	t.Run("Current renders without moving", func(t *testing.T) {
		site := setupTestSite(t)
		id := uuid.NewString()

		_, c, _ := setupPageEcho(http.MethodPost, "/htmx/hero/next", id)
		require.NoError(t, site.CarouselNext(services.SectionHero)(c))

		_, c, rec := setupPageEcho(http.MethodGet, "/htmx/hero", id)
		require.NoError(t, site.CarouselCurrent(services.SectionHero)(c))

		assert.Contains(t, rec.Body.String(), "Experiência Comprovada")
	})

	t.Run("Manual control keeps the schedule running", func(t *testing.T) {
		site := setupTestSite(t)
		id := uuid.NewString()

		_, c, _ := setupPageEcho(http.MethodPost, "/htmx/hero/next", id)
		require.NoError(t, site.CarouselNext(services.SectionHero)(c))

		site.scheduler.Tick()

		page, err := site.registry.Get(id)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Hero.Index())
		assert.True(t, page.Hero.Running())
	})

	t.Run("Requests without a page id are rejected", func(t *testing.T) {
		site := setupTestSite(t)

		_, c, _ := setupEcho(http.MethodPost, "/htmx/hero/next", nil)
		assertHTTPError(t, site.CarouselNext(services.SectionHero)(c), http.StatusBadRequest)
	})

	t.Run("Full registry is unavailable", func(t *testing.T) {
		site := setupTestSite(t)
		site.registry = services.NewPageRegistry(site.catalog, services.PageConfig{
			HeroInterval:        5 * time.Second,
			TestimonialInterval: 6 * time.Second,
			TTL:                 30 * time.Minute,
			MaxPages:            1,
			Scheduler:           site.scheduler,
		})
		t.Cleanup(site.registry.Shutdown)

		streaming, err := site.registry.Mount(uuid.NewString())
		require.NoError(t, err)
		_, cancel := streaming.Subscribe()
		defer cancel()

		_, c, _ := setupPageEcho(http.MethodPost, "/htmx/hero/next", uuid.NewString())
		assertHTTPError(t, site.CarouselNext(services.SectionHero)(c), http.StatusServiceUnavailable)
		assert.Equal(t, 1, site.registry.Len())
	})
}

func TestBlogFilter(t *testing.T) {
	t.Run("Search narrows the listing", func(t *testing.T) {
		site := setupTestSite(t)

		_, c, rec := setupPageEcho(http.MethodGet, "/htmx/blog?q=lgpd", uuid.NewString())
		require.NoError(t, site.BlogFilter(c))

		body := rec.Body.String()
		assert.Contains(t, body, `id="blog-listing"`)
		assert.Contains(t, body, "LGPD e Compliance")
		assert.NotContains(t, body, "Recuperação Judicial")
		assert.NotContains(t, body, `id="blog-search"`, "the search input stays outside the fragment")
	})

	t.Run("Category narrows the listing", func(t *testing.T) {
		site := setupTestSite(t)

		_, c, rec := setupPageEcho(http.MethodGet, "/htmx/blog?category=Direito+Empresarial", uuid.NewString())
		require.NoError(t, site.BlogFilter(c))

		body := rec.Body.String()
		assert.Contains(t, body, "Recuperação Judicial")
		assert.NotContains(t, body, "LGPD e Compliance")
	})

	t.Run("Absent inputs keep their previous value", func(t *testing.T) {
		site := setupTestSite(t)
		id := uuid.NewString()

		_, c, _ := setupPageEcho(http.MethodGet, "/htmx/blog?q=lgpd", id)
		require.NoError(t, site.BlogFilter(c))

		_, c, _ = setupPageEcho(http.MethodGet, "/htmx/blog?category=Direito+Digital", id)
		require.NoError(t, site.BlogFilter(c))

		page, err := site.registry.Get(id)
		require.NoError(t, err)
		state := page.Blog.State()
		assert.Equal(t, "Direito Digital", state.Category)
		assert.Equal(t, "lgpd", state.SearchText)
		assert.Len(t, page.Blog.Visible(), 1)
	})

	t.Run("No match renders the empty state", func(t *testing.T) {
		site := setupTestSite(t)

		_, c, rec := setupPageEcho(http.MethodGet, "/htmx/blog?category=Direito+Tribut%C3%A1rio&q=lgpd", uuid.NewString())
		require.NoError(t, site.BlogFilter(c))

		assert.Contains(t, rec.Body.String(), "Nenhum artigo encontrado.")
	})

	t.Run("Long search text is truncated", func(t *testing.T) {
		site := setupTestSite(t)
		id := uuid.NewString()

		_, c, _ := setupPageEcho(http.MethodGet, "/htmx/blog?q="+url.QueryEscape(strings.Repeat("á", 150)), id)
		require.NoError(t, site.BlogFilter(c))

		page, err := site.registry.Get(id)
		require.NoError(t, err)
		assert.Equal(t, maxSearchLength, len([]rune(page.Blog.State().SearchText)))
	})
}

func TestMenuHandlers(t *testing.T) {
	t.Run("Toggle opens then closes the mobile menu", func(t *testing.T) {
		site := setupTestSite(t)
		id := uuid.NewString()

		_, c, rec := setupPageEcho(http.MethodPost, "/htmx/menu/toggle", id)
		require.NoError(t, site.MenuToggle(c))
		assert.Contains(t, rec.Body.String(), `id="mobile-menu"`)
		assert.Contains(t, rec.Body.String(), `aria-expanded="true"`)

		page, err := site.registry.Get(id)
		require.NoError(t, err)
		assert.True(t, page.Menu.IsOpen())

		_, c, _ = setupPageEcho(http.MethodPost, "/htmx/menu/toggle", id)
		require.NoError(t, site.MenuToggle(c))
		assert.False(t, page.Menu.IsOpen())
	})

	t.Run("Nav toggle expands an entry with a submenu", func(t *testing.T) {
		site := setupTestSite(t)
		id := uuid.NewString()

		_, c, _ := setupPageEcho(http.MethodPost, "/htmx/menu/toggle", id)
		require.NoError(t, site.MenuToggle(c))

		_, c, rec := setupPageEcho(http.MethodPost, "/htmx/nav/areas-de-atuacao/toggle", id)
		c.SetParamNames("id")
		c.SetParamValues("areas-de-atuacao")
		require.NoError(t, site.NavToggle(c))

		assert.Contains(t, rec.Body.String(), `class="accordion-panel"`)
		assert.Contains(t, rec.Body.String(), "Direito Tributário")

		page, err := site.registry.Get(id)
		require.NoError(t, err)
		assert.True(t, page.Nav.IsOpen("areas-de-atuacao"))
	})

	t.Run("Nav toggle rejects unknown entries and entries without a submenu", func(t *testing.T) {
		site := setupTestSite(t)

		for _, key := range []string{"nope", "contato"} {
			_, c, _ := setupPageEcho(http.MethodPost, "/htmx/nav/"+key+"/toggle", uuid.NewString())
			c.SetParamNames("id")
			c.SetParamValues(key)
			assertHTTPError(t, site.NavToggle(c), http.StatusNotFound)
		}
	})

	t.Run("Close collapses the menu and its accordion", func(t *testing.T) {
		site := setupTestSite(t)
		id := uuid.NewString()

		_, c, _ := setupPageEcho(http.MethodPost, "/htmx/menu/toggle", id)
		require.NoError(t, site.MenuToggle(c))

		_, c, _ = setupPageEcho(http.MethodPost, "/htmx/nav/areas-de-atuacao/toggle", id)
		c.SetParamNames("id")
		c.SetParamValues("areas-de-atuacao")
		require.NoError(t, site.NavToggle(c))

		_, c, _ = setupPageEcho(http.MethodPost, "/htmx/menu/close", id)
		require.NoError(t, site.MenuClose(c))

		page, err := site.registry.Get(id)
		require.NoError(t, err)
		assert.False(t, page.Menu.IsOpen())
		assert.Empty(t, page.Nav.OpenIDs())
	})
}

func TestUnmount(t *testing.T) {
	t.Run("Releases the page state", func(t *testing.T) {
		site := setupTestSite(t)
		id := uuid.NewString()

		_, c, _ := setupPageEcho(http.MethodPost, "/htmx/hero/next", id)
		require.NoError(t, site.CarouselNext(services.SectionHero)(c))
		require.Equal(t, 1, site.registry.Len())

		_, c, rec := setupPageEcho(http.MethodDelete, "/htmx/page", id)
		require.NoError(t, site.Unmount(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, 0, site.registry.Len())

		// A second unmount is harmless
		_, c, rec = setupPageEcho(http.MethodDelete, "/htmx/page", id)
		require.NoError(t, site.Unmount(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Leaves other tabs of the same visitor running", func(t *testing.T) {
		site := setupTestSite(t)
		closing, staying := uuid.NewString(), uuid.NewString()

		for _, id := range []string{closing, staying} {
			_, c, _ := setupPageEcho(http.MethodPost, "/htmx/testimonials/next", id)
			require.NoError(t, site.CarouselNext(services.SectionTestimonials)(c))
		}

		_, c, _ := setupPageEcho(http.MethodDelete, "/htmx/page", closing)
		require.NoError(t, site.Unmount(c))

		page, err := site.registry.Get(staying)
		require.NoError(t, err)
		assert.False(t, page.Closed())
		assert.True(t, page.Hero.Running())
		assert.Equal(t, 1, page.Testimonials.Index())
	})
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 5))
	assert.Equal(t, "açã", truncateRunes("açãõ", 3))
	assert.Equal(t, "", truncateRunes("", 3))
}
