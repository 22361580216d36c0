package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost is an article in the legal blog
type BlogPost struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Position    int       `gorm:"not null;index" json:"position"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string    `gorm:"not null" json:"title"`
	Excerpt     string    `gorm:"type:text" json:"excerpt"`
	Body        string    `gorm:"type:text" json:"body"` // Markdown
	AuthorName  string    `json:"author_name"`
	AuthorRole  string    `json:"author_role"`
	Category    string    `gorm:"not null;index" json:"category"`
	ReadTime    string    `gorm:"size:20" json:"read_time"`
	PublishedAt time.Time `json:"published_at"`
	ImageKey    string    `json:"image_key"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
}

// BeforeCreate hook to generate UUID and slug
func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	return nil
}

// TableName specifies the table name
func (BlogPost) TableName() string {
	return "blog_posts"
}

// FilterCategory returns the category the blog filter matches against
func (p BlogPost) FilterCategory() string {
	return p.Category
}

// SearchFields returns the fields the blog search looks into
func (p BlogPost) SearchFields() []string {
	return []string{p.Title, p.Excerpt}
}

// BlogCategory is one of the category pills above the blog grid. The
// category at position 0 is the catch-all that disables category filtering.
type BlogCategory struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Position int    `gorm:"not null;index" json:"position"`
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
}

// BeforeCreate hook to generate UUID
func (c *BlogCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (BlogCategory) TableName() string {
	return "blog_categories"
}
