package services

import (
	"fmt"
	"log"
	"slices"

	"advocacia_elite/models"
	"advocacia_elite/services/uistate"

	"gorm.io/gorm"
)

// Catalog is the immutable snapshot of the site content. It is loaded once at
// startup and shared read-only by every request.
type Catalog struct {
	Firm           models.FirmProfile
	HeroSlides     []models.HeroSlide
	PracticeAreas  []models.PracticeArea
	Lawyers        []models.Lawyer
	BlogCategories []string
	BlogPosts      []models.BlogPost
	Testimonials   []models.Testimonial
	Achievements   []models.Achievement
	NavItems       []models.NavItem
	FooterLinks    []models.FooterLink
	OfficeHours    []models.OfficeHours

	postsBySlug map[string]int
}

// LoadCatalog reads every content table in display order
func LoadCatalog(db *gorm.DB) (*Catalog, error) {
	c := &Catalog{}

	if err := db.First(&c.Firm).Error; err != nil {
		return nil, fmt.Errorf("failed to load firm profile: %w", err)
	}

	lists := []struct {
		name string
		dest interface{}
	}{
		{"hero slides", &c.HeroSlides},
		{"practice areas", &c.PracticeAreas},
		{"lawyers", &c.Lawyers},
		{"blog posts", &c.BlogPosts},
		{"testimonials", &c.Testimonials},
		{"achievements", &c.Achievements},
		{"navigation", &c.NavItems},
		{"footer links", &c.FooterLinks},
		{"office hours", &c.OfficeHours},
	}
	for _, l := range lists {
		if err := db.Order("position ASC").Find(l.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", l.name, err)
		}
	}

	var categories []models.BlogCategory
	if err := db.Order("position ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to load blog categories: %w", err)
	}
	for _, cat := range categories {
		c.BlogCategories = append(c.BlogCategories, cat.Name)
	}

	c.index()
	log.Printf("[INFO] Content catalog loaded: %d slides, %d posts, %d testimonials",
		len(c.HeroSlides), len(c.BlogPosts), len(c.Testimonials))
	return c, nil
}

func (c *Catalog) index() {
	c.postsBySlug = make(map[string]int, len(c.BlogPosts))
	for i, p := range c.BlogPosts {
		c.postsBySlug[p.Slug] = i
	}
}

// Validate checks what the page needs to mount: both carousels must have at
// least one item and the blog needs its catch-all category
func (c *Catalog) Validate() error {
	if len(c.HeroSlides) == 0 {
		return fmt.Errorf("hero carousel: %w", uistate.ErrNoItems)
	}
	if len(c.Testimonials) == 0 {
		return fmt.Errorf("testimonial carousel: %w", uistate.ErrNoItems)
	}
	if len(c.BlogCategories) == 0 {
		return fmt.Errorf("%w: blog has no categories", ErrInvalidContent)
	}
	return nil
}

// AllCategory returns the catch-all blog category
func (c *Catalog) AllCategory() string {
	if len(c.BlogCategories) == 0 {
		return ""
	}
	return c.BlogCategories[0]
}

// PostBySlug finds a blog post by its slug
func (c *Catalog) PostBySlug(slug string) (models.BlogPost, bool) {
	i, ok := c.postsBySlug[slug]
	if !ok {
		return models.BlogPost{}, false
	}
	return c.BlogPosts[i], true
}

// FooterGroup returns the footer links of one column, in order
func (c *Catalog) FooterGroup(group string) []models.FooterLink {
	var links []models.FooterLink
	for _, l := range c.FooterLinks {
		if l.Group == group {
			links = append(links, l)
		}
	}
	return links
}

// NavItem returns the navigation entry with the given accordion key
func (c *Catalog) NavItem(key string) (models.NavItem, bool) {
	i := slices.IndexFunc(c.NavItems, func(n models.NavItem) bool {
		return n.Key() == key
	})
	if i < 0 {
		return models.NavItem{}, false
	}
	return c.NavItems[i], true
}
