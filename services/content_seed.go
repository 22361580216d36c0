package services

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"advocacia_elite/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed/content.yaml
var defaultContent []byte

// ErrInvalidContent is returned when a content document is missing required sections
var ErrInvalidContent = errors.New("invalid content document")

// contentDocument mirrors the YAML layout of the site content
type contentDocument struct {
	Firm struct {
		Name          string `yaml:"name"`
		Monogram      string `yaml:"monogram"`
		Tagline       string `yaml:"tagline"`
		Phone         string `yaml:"phone"`
		Email         string `yaml:"email"`
		Address       string `yaml:"address"`
		About         string `yaml:"about"`
		EmergencyNote string `yaml:"emergency_note"`
		CTALabel      string `yaml:"cta_label"`
		LanguageLabel string `yaml:"language_label"`
		LanguageHref  string `yaml:"language_href"`
	} `yaml:"firm"`

	HeroSlides []struct {
		Image    string `yaml:"image"`
		Title    string `yaml:"title"`
		Subtitle string `yaml:"subtitle"`
	} `yaml:"hero_slides"`

	PracticeAreas []struct {
		Icon        string        `yaml:"icon"`
		Title       string        `yaml:"title"`
		Description string        `yaml:"description"`
		Stats       []models.Stat `yaml:"stats"`
		Details     []string      `yaml:"details"`
	} `yaml:"practice_areas"`

	Lawyers []struct {
		Name        string   `yaml:"name"`
		Role        string   `yaml:"role"`
		Image       string   `yaml:"image"`
		OAB         string   `yaml:"oab"`
		Bio         string   `yaml:"bio"`
		Specialties []string `yaml:"specialties"`
		Education   []string `yaml:"education"`
		Awards      []string `yaml:"awards"`
		Languages   []string `yaml:"languages"`
		LinkedIn    string   `yaml:"linkedin"`
		Email       string   `yaml:"email"`
	} `yaml:"lawyers"`

	BlogCategories []string `yaml:"blog_categories"`

	BlogPosts []struct {
		Slug       string    `yaml:"slug"`
		Title      string    `yaml:"title"`
		Excerpt    string    `yaml:"excerpt"`
		Body       string    `yaml:"body"`
		AuthorName string    `yaml:"author_name"`
		AuthorRole string    `yaml:"author_role"`
		Category   string    `yaml:"category"`
		ReadTime   string    `yaml:"read_time"`
		Published  time.Time `yaml:"published"`
		Image      string    `yaml:"image"`
		Tags       []string  `yaml:"tags"`
	} `yaml:"blog_posts"`

	Testimonials []struct {
		Name    string `yaml:"name"`
		Role    string `yaml:"role"`
		Company string `yaml:"company"`
		Content string `yaml:"content"`
		Rating  int    `yaml:"rating"`
		Image   string `yaml:"image"`
		Case    string `yaml:"case"`
	} `yaml:"testimonials"`

	Achievements []struct {
		Icon        string `yaml:"icon"`
		Value       string `yaml:"value"`
		Label       string `yaml:"label"`
		Description string `yaml:"description"`
	} `yaml:"achievements"`

	NavItems []struct {
		Label   string   `yaml:"label"`
		Anchor  string   `yaml:"anchor"`
		Submenu []string `yaml:"submenu"`
	} `yaml:"nav_items"`

	FooterLinks map[string][]struct {
		Text string `yaml:"text"`
		Href string `yaml:"href"`
	} `yaml:"footer_links"`

	OfficeHours []struct {
		Day   string `yaml:"day"`
		Hours string `yaml:"hours"`
	} `yaml:"office_hours"`
}

// footerGroups fixes the order in which footer groups are stored
var footerGroups = []string{models.FooterGroupQuick, models.FooterGroupAreas, models.FooterGroupLegal}

// DefaultContent returns the content document embedded in the binary
func DefaultContent() []byte {
	return defaultContent
}

// ReadContentFile returns the YAML at path, or the embedded content when path is empty
func ReadContentFile(path string) ([]byte, error) {
	if path == "" {
		return defaultContent, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	return data, nil
}

func parseContent(data []byte) (*contentDocument, error) {
	var doc contentDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	if doc.Firm.Name == "" {
		return nil, fmt.Errorf("%w: firm name is required", ErrInvalidContent)
	}
	if len(doc.BlogCategories) == 0 {
		return nil, fmt.Errorf("%w: at least the catch-all blog category is required", ErrInvalidContent)
	}
	return &doc, nil
}

// SeedContent stores the content document in the database. It does nothing
// when content is already present, so it is safe to run on every start.
func SeedContent(db *gorm.DB, data []byte) error {
	var count int64
	if err := db.Model(&models.FirmProfile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[SEED] Site content already exists, skipping seed")
		return nil
	}

	doc, err := parseContent(data)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return createContent(tx, doc)
	})
	if err != nil {
		return fmt.Errorf("failed to seed content: %w", err)
	}

	log.Printf("[SEED] Seeded site content: %d slides, %d areas, %d lawyers, %d posts, %d testimonials",
		len(doc.HeroSlides), len(doc.PracticeAreas), len(doc.Lawyers), len(doc.BlogPosts), len(doc.Testimonials))
	return nil
}

// ReplaceContent wipes the stored content and seeds data in its place
func ReplaceContent(db *gorm.DB, data []byte) error {
	doc, err := parseContent(data)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range models.ContentModels() {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear content: %w", err)
			}
		}
		return createContent(tx, doc)
	})
}

func createContent(tx *gorm.DB, doc *contentDocument) error {
	f := doc.Firm
	if err := tx.Create(&models.FirmProfile{
		Name:          f.Name,
		Monogram:      f.Monogram,
		Tagline:       f.Tagline,
		Phone:         f.Phone,
		Email:         f.Email,
		Address:       f.Address,
		About:         f.About,
		EmergencyNote: f.EmergencyNote,
		CTALabel:      f.CTALabel,
		LanguageLabel: f.LanguageLabel,
		LanguageHref:  f.LanguageHref,
	}).Error; err != nil {
		return err
	}

	for i, s := range doc.HeroSlides {
		if err := tx.Create(&models.HeroSlide{
			Position: i,
			ImageKey: s.Image,
			Title:    s.Title,
			Subtitle: s.Subtitle,
		}).Error; err != nil {
			return err
		}
	}

	for i, a := range doc.PracticeAreas {
		if err := tx.Create(&models.PracticeArea{
			Position:    i,
			Icon:        a.Icon,
			Title:       a.Title,
			Description: a.Description,
			Stats:       a.Stats,
			Details:     a.Details,
		}).Error; err != nil {
			return err
		}
	}

	for i, l := range doc.Lawyers {
		if err := tx.Create(&models.Lawyer{
			Position:    i,
			Name:        l.Name,
			Role:        l.Role,
			ImageKey:    l.Image,
			OAB:         l.OAB,
			Bio:         l.Bio,
			Specialties: l.Specialties,
			Education:   l.Education,
			Awards:      l.Awards,
			Languages:   l.Languages,
			LinkedIn:    l.LinkedIn,
			Email:       l.Email,
		}).Error; err != nil {
			return err
		}
	}

	for i, name := range doc.BlogCategories {
		if err := tx.Create(&models.BlogCategory{Position: i, Name: name}).Error; err != nil {
			return err
		}
	}

	for i, p := range doc.BlogPosts {
		if err := tx.Create(&models.BlogPost{
			Position:    i,
			Slug:        p.Slug,
			Title:       p.Title,
			Excerpt:     p.Excerpt,
			Body:        p.Body,
			AuthorName:  p.AuthorName,
			AuthorRole:  p.AuthorRole,
			Category:    p.Category,
			ReadTime:    p.ReadTime,
			PublishedAt: p.Published,
			ImageKey:    p.Image,
			Tags:        p.Tags,
		}).Error; err != nil {
			return err
		}
	}

	for i, t := range doc.Testimonials {
		if err := tx.Create(&models.Testimonial{
			Position:  i,
			Name:      t.Name,
			Role:      t.Role,
			Company:   t.Company,
			Content:   t.Content,
			Rating:    t.Rating,
			ImageKey:  t.Image,
			CaseLabel: t.Case,
		}).Error; err != nil {
			return err
		}
	}

	for i, a := range doc.Achievements {
		if err := tx.Create(&models.Achievement{
			Position:    i,
			Icon:        a.Icon,
			Value:       a.Value,
			Label:       a.Label,
			Description: a.Description,
		}).Error; err != nil {
			return err
		}
	}

	for i, n := range doc.NavItems {
		if err := tx.Create(&models.NavItem{
			Position: i,
			Label:    n.Label,
			Anchor:   n.Anchor,
			Submenu:  n.Submenu,
		}).Error; err != nil {
			return err
		}
	}

	position := 0
	for _, group := range footerGroups {
		for _, link := range doc.FooterLinks[group] {
			if err := tx.Create(&models.FooterLink{
				Position: position,
				Group:    group,
				Text:     link.Text,
				Href:     link.Href,
			}).Error; err != nil {
				return err
			}
			position++
		}
	}

	for i, h := range doc.OfficeHours {
		if err := tx.Create(&models.OfficeHours{Position: i, Day: h.Day, Hours: h.Hours}).Error; err != nil {
			return err
		}
	}

	return nil
}
