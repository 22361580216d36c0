package components

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"advocacia_elite/middleware"
	"advocacia_elite/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Scroll offsets in pixels, read by site.js from the body data attributes
const (
	HeaderScrollThreshold = 20
	ScrollToTopThreshold  = 300
)

const (
	htmxScriptURL    = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	htmxSSEScriptURL = "https://unpkg.com/htmx-ext-sse@2.2.2/sse.js"
	googleFontsURL   = "https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&family=Playfair+Display:wght@600;700&display=swap"
)

// Page is what the layout needs besides the body
type Page struct {
	SEO *models.SEO
	// StructuredData is rendered as JSON-LD when set
	StructuredData interface{}
	// PageID is sent with every HTMX request so fragments act on this page's
	// state
	PageID string
	// Live connects the body to the page's event stream
	Live bool
}

// Layout wraps a page body with the document head and the site scripts
func Layout(ctx context.Context, page Page, body ...g.Node) g.Node {
	nonce := middleware.GetNonce(ctx)
	live := page.Live && page.PageID != ""
	seo := page.SEO
	if seo == nil {
		seo = models.DefaultSEO("Advocacia Elite", "")
	}

	return Doctype(
		HTML(
			Lang("pt-BR"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(seo.Title)),
				seoMeta(seo),
				Link(Rel("icon"), Type("image/svg+xml"), Href(middleware.AssetURL("images/favicon.svg"))),
				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), g.Attr("crossorigin")),
				Link(Rel("stylesheet"), Href(googleFontsURL)),
				Link(Rel("stylesheet"), Href(middleware.AssetURL("css/style.css"))),
				Script(Src(htmxScriptURL), g.Attr("nonce", nonce), g.Attr("defer")),
				g.If(live, Script(Src(htmxSSEScriptURL), g.Attr("nonce", nonce), g.Attr("defer"))),
				Script(Src(middleware.AssetURL("js/site.js")), g.Attr("nonce", nonce), g.Attr("defer")),
				g.If(page.StructuredData != nil, StructuredData(page.StructuredData)),
			),
			Body(
				Data("header-threshold", strconv.Itoa(HeaderScrollThreshold)),
				Data("scroll-top-threshold", strconv.Itoa(ScrollToTopThreshold)),
				requestHeaders(ctx, page.PageID),
				g.If(live, g.Group([]g.Node{
					g.Attr("hx-ext", "sse"),
					g.Attr("sse-connect", "/events?"+url.Values{middleware.PageQueryParam: {page.PageID}}.Encode()),
				})),
				g.Group(body),
			),
		),
	)
}

// requestHeaders sets the headers htmx adds to every request from the body
func requestHeaders(ctx context.Context, pageID string) g.Node {
	headers := map[string]string{}
	if csrf := middleware.GetCSRFTokenFromContext(ctx); csrf != "" {
		headers[middleware.CSRFHeader] = csrf
	}
	if pageID != "" {
		headers[middleware.PageHeader] = pageID
	}
	if len(headers) == 0 {
		return nil
	}
	return g.Attr("hx-headers", JSON(headers))
}

func seoMeta(seo *models.SEO) g.Node {
	nodes := []g.Node{
		Meta(Name("description"), Content(seo.MetaDescription())),
		g.If(seo.Keywords != "", Meta(Name("keywords"), Content(seo.Keywords))),
		g.If(seo.Canonical != "", Link(Rel("canonical"), Href(seo.Canonical))),
		g.If(seo.NoIndex, Meta(Name("robots"), Content("noindex, nofollow"))),
		Meta(g.Attr("property", "og:title"), Content(seo.GetOGTitle())),
		Meta(g.Attr("property", "og:description"), Content(seo.GetOGDesc())),
		Meta(g.Attr("property", "og:type"), Content(string(seo.OGType))),
		g.If(seo.Locale != "", Meta(g.Attr("property", "og:locale"), Content(seo.Locale))),
		g.If(seo.Canonical != "", Meta(g.Attr("property", "og:url"), Content(seo.Canonical))),
		g.If(seo.OGImage != "", Meta(g.Attr("property", "og:image"), Content(seo.OGImage))),
		Meta(Name("twitter:card"), Content(seo.TwitterCard)),
		Meta(Name("twitter:title"), Content(seo.GetOGTitle())),
		Meta(Name("twitter:description"), Content(seo.GetOGDesc())),
	}

	if seo.IsArticle() {
		if !seo.PublishedTime.IsZero() {
			nodes = append(nodes, Meta(g.Attr("property", "article:published_time"), Content(seo.PublishedTime.Format(time.RFC3339))))
		}
		if seo.Section != "" {
			nodes = append(nodes, Meta(g.Attr("property", "article:section"), Content(seo.Section)))
		}
		for _, tag := range seo.Tags {
			nodes = append(nodes, Meta(g.Attr("property", "article:tag"), Content(tag)))
		}
	}
	return g.Group(nodes)
}

// classes joins the non-empty class names
func classes(names ...string) g.Node {
	var kept []string
	for _, n := range names {
		if n != "" {
			kept = append(kept, n)
		}
	}
	return Class(strings.Join(kept, " "))
}
