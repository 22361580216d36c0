package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Footer link groups
const (
	FooterGroupQuick = "quick"
	FooterGroupAreas = "areas"
	FooterGroupLegal = "legal"
)

// NavItem is an entry of the main navigation. Entries with a submenu become
// accordion entries in the mobile menu.
type NavItem struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Position int      `gorm:"not null;index" json:"position"`
	Label    string   `gorm:"not null" json:"label"`
	Anchor   string   `json:"anchor"`
	Submenu  []string `gorm:"serializer:json" json:"submenu"`
}

// BeforeCreate hook to generate UUID
func (n *NavItem) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (NavItem) TableName() string {
	return "nav_items"
}

// Key identifies the entry in the mobile accordion
func (n NavItem) Key() string {
	return Slugify(n.Label)
}

// HasSubmenu reports whether the entry expands
func (n NavItem) HasSubmenu() bool {
	return len(n.Submenu) > 0
}

// FooterLink is a link in one of the footer columns
type FooterLink struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Position int    `gorm:"not null;index" json:"position"`
	Group    string `gorm:"column:link_group;size:10;not null;index" json:"group"`
	Text     string `gorm:"not null" json:"text"`
	Href     string `gorm:"not null;default:'#'" json:"href"`
}

// BeforeCreate hook to generate UUID
func (l *FooterLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.Href == "" {
		l.Href = "#"
	}
	return nil
}

// TableName specifies the table name
func (FooterLink) TableName() string {
	return "footer_links"
}

// OfficeHours is a row of the footer opening hours
type OfficeHours struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Position int    `gorm:"not null;index" json:"position"`
	Day      string `gorm:"not null" json:"day"`
	Hours    string `gorm:"not null" json:"hours"`
}

// BeforeCreate hook to generate UUID
func (o *OfficeHours) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (OfficeHours) TableName() string {
	return "office_hours"
}
