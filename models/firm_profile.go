package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FirmProfile holds the firm identity shown in the header, footer and SEO tags
type FirmProfile struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name          string `gorm:"not null" json:"name"`
	Monogram      string `gorm:"size:2" json:"monogram"`
	Tagline       string `json:"tagline"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	About         string `gorm:"type:text" json:"about"`
	EmergencyNote string `json:"emergency_note"`
	CTALabel      string `json:"cta_label"`
	LanguageLabel string `json:"language_label"`
	LanguageHref  string `json:"language_href"`
}

// BeforeCreate hook to generate UUID
func (f *FirmProfile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (FirmProfile) TableName() string {
	return "firm_profiles"
}
