package handlers

import (
	"strings"

	"advocacia_elite/models"
)

const defaultOGImageKey = "hero/image2.jpg"

// SEO configurations for the fixed pages
var pageSEO = map[string]*models.SEO{
	"landing": {
		Title:       "Advocacia Elite | Escritório de Advocacia em São Paulo",
		Description: "Há mais de 30 anos oferecendo soluções jurídicas personalizadas em direito civil, empresarial, trabalhista e tributário. Agende uma consulta gratuita.",
		Keywords:    "escritório de advocacia, advogado São Paulo, direito civil, direito empresarial, direito trabalhista, direito tributário",
		OGType:      models.OGTypeWebsite,
		TwitterCard: "summary_large_image",
		Locale:      "pt_BR",
	},
}

var pagePaths = map[string]string{
	"landing": "/",
}

// GetSEO returns the SEO configuration for a page with URLs resolved
// against baseURL
func GetSEO(page, baseURL, ogImage string) *models.SEO {
	seo, ok := pageSEO[page]
	if !ok {
		return nil
	}
	return seo.Clone().
		WithCanonical(baseURL + pagePaths[page]).
		WithOGImage(absoluteURL(baseURL, ogImage))
}

// ArticleSEO builds the metadata of a blog post page
func ArticleSEO(post models.BlogPost, firm models.FirmProfile, baseURL, image string) *models.SEO {
	return models.DefaultSEO(post.Title+" | "+firm.Name, post.Excerpt).
		WithCanonical(baseURL+"/blog/"+post.Slug).
		WithOGImage(absoluteURL(baseURL, image)).
		WithKeywords(strings.Join(post.Tags, ", ")).
		WithArticle(post.PublishedAt, post.Category, post.Tags...)
}

// absoluteURL resolves a site-relative URL, leaving absolute ones untouched
func absoluteURL(baseURL, u string) string {
	if u == "" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return baseURL + u
}
