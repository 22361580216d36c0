package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"advocacia_elite/db"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		site := setupTestSite(t)

		_, c, rec := setupEcho(http.MethodGet, "/health", nil)
		require.NoError(t, site.Health(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "ok", body["database"])
		assert.Equal(t, float64(0), body["pages"])
		assert.True(t, strings.HasPrefix(body["media"].(string), "local:"))
	})

	t.Run("Database closed", func(t *testing.T) {
		site := setupTestSite(t)
		sqlDB, err := db.DB.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		_, c, rec := setupEcho(http.MethodGet, "/health", nil)
		require.NoError(t, site.Health(c))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"degraded"`)
	})
}

func TestMedia(t *testing.T) {
	t.Run("Serves a stored image", func(t *testing.T) {
		site := setupTestSite(t)
		_, err := site.media.UploadReader(context.Background(), strings.NewReader("jpeg-bytes"), "hero/test.jpg", "image/jpeg", 10)
		require.NoError(t, err)

		_, c, rec := setupEcho(http.MethodGet, "/media/hero/test.jpg", nil)
		c.SetParamNames("*")
		c.SetParamValues("hero/test.jpg")
		require.NoError(t, site.Media(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "jpeg-bytes", rec.Body.String())
	})

	t.Run("Missing and escaping keys are not found", func(t *testing.T) {
		site := setupTestSite(t)

		for _, key := range []string{"hero/missing.jpg", "../go.mod"} {
			_, c, _ := setupEcho(http.MethodGet, "/media/"+key, nil)
			c.SetParamNames("*")
			c.SetParamValues(key)
			assertHTTPError(t, site.Media(c), http.StatusNotFound)
		}
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("Renders the not found page", func(t *testing.T) {
		site := setupTestSite(t)

		e, c, rec := setupEcho(http.MethodGet, "/nope", nil)
		site.ErrorHandler(e)(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Página não encontrada")
		assert.Contains(t, rec.Body.String(), "noindex")
	})

	t.Run("Fragment requests get the default error", func(t *testing.T) {
		site := setupTestSite(t)

		e, c, rec := setupEcho(http.MethodPost, "/htmx/nav/nope/toggle", nil)
		c.Request().Header.Set("HX-Request", "true")
		site.ErrorHandler(e)(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Página não encontrada")
	})

	t.Run("Other errors use the default handler", func(t *testing.T) {
		site := setupTestSite(t)

		e, c, rec := setupEcho(http.MethodGet, "/", nil)
		site.ErrorHandler(e)(echo.NewHTTPError(http.StatusBadRequest, "missing page id"), c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing page id")
	})
}

func TestSitemap(t *testing.T) {
	site := setupTestSite(t)

	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)
	require.NoError(t, site.Sitemap(c))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, "<loc>"+testBaseURL+"/</loc>")
	assert.Contains(t, body, "<loc>"+testBaseURL+"/blog/lgpd-e-compliance-guia-completo-para-adequacao</loc>")
	assert.Equal(t, 1+len(site.catalog.BlogPosts), strings.Count(body, "<url>"))
	assert.Contains(t, body, "<lastmod>")
}

func TestRobots(t *testing.T) {
	site := setupTestSite(t)

	_, c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)
	require.NoError(t, site.Robots(c))

	assert.Contains(t, rec.Body.String(), "Disallow: /htmx/")
	assert.Contains(t, rec.Body.String(), "Sitemap: "+testBaseURL+"/sitemap.xml")
}
