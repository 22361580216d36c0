package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxRating is the number of stars a testimonial can show
const MaxRating = 5

// Testimonial is a client quote shown in the testimonials carousel
type Testimonial struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Position  int    `gorm:"not null;index" json:"position"`
	Name      string `gorm:"not null" json:"name"`
	Role      string `json:"role"`
	Company   string `json:"company"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Rating    int    `gorm:"not null;default:5" json:"rating"`
	ImageKey  string `json:"image_key"`
	CaseLabel string `json:"case_label"`
}

// BeforeCreate hook to generate UUID and clamp the rating
func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.Rating = ClampRating(t.Rating)
	return nil
}

// TableName specifies the table name
func (Testimonial) TableName() string {
	return "testimonials"
}

// ClampRating keeps a rating within 1..MaxRating
func ClampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}
