package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HeroSlide is one background image and headline of the landing hero carousel
type HeroSlide struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Position int    `gorm:"not null;index" json:"position"`
	ImageKey string `gorm:"not null" json:"image_key"`
	Title    string `gorm:"not null" json:"title"`
	Subtitle string `json:"subtitle"`
}

// BeforeCreate hook to generate UUID
func (s *HeroSlide) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (HeroSlide) TableName() string {
	return "hero_slides"
}
