package handlers

import (
	"net/http"

	"advocacia_elite/middleware"
	"advocacia_elite/models"
	"advocacia_elite/services"
	"advocacia_elite/templates/pages"

	"github.com/labstack/echo/v4"
)

const relatedPostLimit = 3

// BlogPost renders one article with its markdown body
func (s *Site) BlogPost(c echo.Context) error {
	post, ok := s.catalog.PostBySlug(c.Param("slug"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}

	body, err := services.RenderArticle(post.Body)
	if err != nil {
		c.Logger().Errorf("Failed to render post %s: %v", post.Slug, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render post")
	}

	data := pages.BlogPostData{
		Catalog:  s.catalog,
		SEO:      ArticleSEO(post, s.catalog.Firm, s.cfg.AppURL, services.MediaURL(post.ImageKey)),
		Post:     post,
		BodyHTML: body,
		Related:  relatedPosts(s.catalog.BlogPosts, post, relatedPostLimit),
		PageID:   middleware.NewPageID(),
		Year:     s.year(),
	}
	return render(c, http.StatusOK, pages.BlogPost(data))
}

// relatedPosts prefers posts of the same category, then the others in listing order
func relatedPosts(posts []models.BlogPost, current models.BlogPost, limit int) []models.BlogPost {
	var same, other []models.BlogPost
	for _, p := range posts {
		switch {
		case p.Slug == current.Slug:
		case p.Category == current.Category:
			same = append(same, p)
		default:
			other = append(other, p)
		}
	}

	related := append(same, other...)
	if len(related) > limit {
		related = related[:limit]
	}
	return related
}
