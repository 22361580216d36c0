package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// OGType is an Open Graph object type
type OGType string

const (
	OGTypeWebsite OGType = "website"
	OGTypeArticle OGType = "article"
)

// MaxDescriptionLength is where search engines cut meta descriptions
const MaxDescriptionLength = 160

// SEO is the head metadata of one page. It is built per request and never
// stored.
type SEO struct {
	Title       string
	Description string
	Keywords    string // comma-separated
	Canonical   string
	OGTitle     string // falls back to Title
	OGDesc      string // falls back to Description
	OGImage     string // absolute URL
	OGType      OGType
	TwitterCard string
	NoIndex     bool
	Locale      string // e.g. "pt_BR"

	// Article metadata, only rendered for OGTypeArticle
	PublishedTime time.Time
	Section       string
	Tags          []string
}

// DefaultSEO returns the site defaults for a page
func DefaultSEO(title, description string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		OGType:      OGTypeWebsite,
		TwitterCard: "summary_large_image",
		Locale:      "pt_BR",
	}
}

// Clone returns a copy that can be modified without touching s
func (s *SEO) Clone() *SEO {
	c := *s
	c.Tags = append([]string(nil), s.Tags...)
	return &c
}

func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

func (s *SEO) WithOGImage(imageURL string) *SEO {
	s.OGImage = imageURL
	return s
}

func (s *SEO) WithKeywords(keywords string) *SEO {
	s.Keywords = keywords
	return s
}

// WithArticle marks the page as an article published in a blog category
func (s *SEO) WithArticle(published time.Time, section string, tags ...string) *SEO {
	s.OGType = OGTypeArticle
	s.PublishedTime = published
	s.Section = section
	s.Tags = tags
	return s
}

func (s *SEO) WithNoIndex() *SEO {
	s.NoIndex = true
	return s
}

// GetOGTitle returns OGTitle or falls back to Title
func (s *SEO) GetOGTitle() string {
	if s.OGTitle != "" {
		return s.OGTitle
	}
	return s.Title
}

// GetOGDesc returns OGDesc or falls back to the meta description
func (s *SEO) GetOGDesc() string {
	if s.OGDesc != "" {
		return s.OGDesc
	}
	return s.MetaDescription()
}

// MetaDescription returns Description cut at a word boundary so that it fits
// MaxDescriptionLength
func (s *SEO) MetaDescription() string {
	d := strings.TrimSpace(s.Description)
	if utf8.RuneCountInString(d) <= MaxDescriptionLength {
		return d
	}

	runes := []rune(d)[:MaxDescriptionLength-1]
	cut := string(runes)
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

// IsArticle reports whether article metadata should be rendered
func (s *SEO) IsArticle() bool {
	return s.OGType == OGTypeArticle
}
