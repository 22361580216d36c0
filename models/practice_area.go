package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stat is a headline figure shown on a card, e.g. "1500+ Casos Resolvidos"
type Stat struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// PracticeArea is an area of law the firm works in
type PracticeArea struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Position    int      `gorm:"not null;index" json:"position"`
	Icon        string   `gorm:"size:30" json:"icon"`
	Title       string   `gorm:"not null" json:"title"`
	Slug        string   `gorm:"uniqueIndex;not null" json:"slug"`
	Description string   `gorm:"type:text" json:"description"`
	Stats       []Stat   `gorm:"serializer:json" json:"stats"`
	Details     []string `gorm:"serializer:json" json:"details"`
}

// BeforeCreate hook to generate UUID and slug
func (p *PracticeArea) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	return nil
}

// TableName specifies the table name
func (PracticeArea) TableName() string {
	return "practice_areas"
}
