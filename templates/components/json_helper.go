package components

import (
	"encoding/json"
	"log"

	"advocacia_elite/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// JSON marshals an object to a JSON string, returning "{}" on error.
// encoding/json escapes <, > and &, so the result is safe inside a script tag.
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARNING] Error marshaling JSON: %v", err)
		return "{}"
	}
	return string(b)
}

// StructuredData renders a JSON-LD block
func StructuredData(v interface{}) g.Node {
	return Script(Type("application/ld+json"), g.Raw(JSON(v)))
}

// LegalServiceSchema describes the firm for search engines
func LegalServiceSchema(firm models.FirmProfile, url string) map[string]interface{} {
	return map[string]interface{}{
		"@context":  "https://schema.org",
		"@type":     "LegalService",
		"name":      firm.Name,
		"url":       url,
		"telephone": firm.Phone,
		"email":     firm.Email,
		"address": map[string]string{
			"@type":         "PostalAddress",
			"streetAddress": firm.Address,
		},
	}
}

// ArticleSchema describes a blog post for search engines
func ArticleSchema(post models.BlogPost, firm models.FirmProfile, url, image string) map[string]interface{} {
	return map[string]interface{}{
		"@context":       "https://schema.org",
		"@type":          "BlogPosting",
		"headline":       post.Title,
		"description":    post.Excerpt,
		"datePublished":  post.PublishedAt.Format("2006-01-02"),
		"image":          image,
		"url":            url,
		"keywords":       post.Tags,
		"articleSection": post.Category,
		"author": map[string]string{
			"@type":    "Person",
			"name":     post.AuthorName,
			"jobTitle": post.AuthorRole,
		},
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  firm.Name,
		},
	}
}
