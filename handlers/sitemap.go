package handlers

import (
	"encoding/xml"
	"net/http"

	"advocacia_elite/services"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// Sitemap generates the XML sitemap of the landing page and every article
func (s *Site) Sitemap(c echo.Context) error {
	baseURL := s.cfg.AppURL

	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
	}

	for _, post := range s.catalog.BlogPosts {
		urls = append(urls, SitemapURL{
			Loc:        baseURL + "/blog/" + post.Slug,
			LastMod:    services.ISODate(post.PublishedAt),
			ChangeFreq: "monthly",
			Priority:   0.7,
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// Robots allows crawling everything but the fragment endpoints
func (s *Site) Robots(c echo.Context) error {
	body := "User-agent: *\n" +
		"Allow: /\n" +
		"Disallow: /htmx/\n" +
		"Disallow: /events\n" +
		"\n" +
		"Sitemap: " + s.cfg.AppURL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}
