package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Achievement is a figure in the "why choose us" grid
type Achievement struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Position    int    `gorm:"not null;index" json:"position"`
	Icon        string `gorm:"size:30" json:"icon"`
	Value       string `gorm:"not null" json:"value"`
	Label       string `gorm:"not null" json:"label"`
	Description string `json:"description"`
}

// BeforeCreate hook to generate UUID
func (a *Achievement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Achievement) TableName() string {
	return "achievements"
}
