package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lawyer is a member of the firm's team section
type Lawyer struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Position    int      `gorm:"not null;index" json:"position"`
	Name        string   `gorm:"not null" json:"name"`
	Role        string   `json:"role"`
	ImageKey    string   `json:"image_key"`
	OAB         string   `gorm:"column:oab;size:30" json:"oab"` // Bar registration, e.g. "OAB/SP 123.456"
	Bio         string   `gorm:"type:text" json:"bio"`
	Specialties []string `gorm:"serializer:json" json:"specialties"`
	Education   []string `gorm:"serializer:json" json:"education"`
	Awards      []string `gorm:"serializer:json" json:"awards"`
	Languages   []string `gorm:"serializer:json" json:"languages"`
	LinkedIn    string   `json:"linkedin"`
	Email       string   `json:"email"`
}

// BeforeCreate hook to generate UUID
func (l *Lawyer) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Lawyer) TableName() string {
	return "lawyers"
}
