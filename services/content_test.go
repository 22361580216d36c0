package services

import (
	"testing"

	"advocacia_elite/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupContentTestDB opens an in-memory database with the content tables
func setupContentTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(models.ContentModels()...)
	require.NoError(t, err)

	return db
}

// setupTestCatalog seeds the embedded content and loads it
func setupTestCatalog(t *testing.T) *Catalog {
	db := setupContentTestDB(t)
	require.NoError(t, SeedContent(db, DefaultContent()))

	catalog, err := LoadCatalog(db)
	require.NoError(t, err)
	return catalog
}

func TestSeedContent(t *testing.T) {
	t.Run("Seeds the embedded content", func(t *testing.T) {
		db := setupContentTestDB(t)
		require.NoError(t, SeedContent(db, DefaultContent()))

		var slides, posts, categories int64
		db.Model(&models.HeroSlide{}).Count(&slides)
		db.Model(&models.BlogPost{}).Count(&posts)
		db.Model(&models.BlogCategory{}).Count(&categories)

		assert.Equal(t, int64(3), slides)
		assert.Equal(t, int64(3), posts)
		assert.Equal(t, int64(5), categories)
	})

	t.Run("Skips when content exists", func(t *testing.T) {
		db := setupContentTestDB(t)
		require.NoError(t, SeedContent(db, DefaultContent()))
		require.NoError(t, SeedContent(db, DefaultContent()))

		var firms int64
		db.Model(&models.FirmProfile{}).Count(&firms)
		assert.Equal(t, int64(1), firms)
	})

	t.Run("Generates slugs for posts without one", func(t *testing.T) {
		db := setupContentTestDB(t)
		require.NoError(t, SeedContent(db, DefaultContent()))

		var post models.BlogPost
		require.NoError(t, db.Where("position = ?", 1).First(&post).Error)
		assert.Equal(t, "lgpd-e-compliance-guia-completo-para-adequacao", post.Slug)
	})

	t.Run("Rejects documents without a firm", func(t *testing.T) {
		db := setupContentTestDB(t)
		err := SeedContent(db, []byte("blog_categories: [Todos]\n"))
		assert.ErrorIs(t, err, ErrInvalidContent)
	})

	t.Run("Rejects documents without categories", func(t *testing.T) {
		db := setupContentTestDB(t)
		err := SeedContent(db, []byte("firm:\n  name: Escritório\n"))
		assert.ErrorIs(t, err, ErrInvalidContent)
	})

	t.Run("Rejects malformed YAML", func(t *testing.T) {
		db := setupContentTestDB(t)
		err := SeedContent(db, []byte("firm: [unterminated"))
		assert.Error(t, err)
	})
}

func TestReplaceContent(t *testing.T) {
	db := setupContentTestDB(t)
	require.NoError(t, SeedContent(db, DefaultContent()))

	doc := []byte(`
firm:
  name: Novo Escritório
hero_slides:
  - { image: hero/one.jpg, title: Um, subtitle: Primeiro }
blog_categories: [Todos, Direito Civil]
testimonials:
  - { name: Ana, content: Ótimo, rating: 9 }
`)
	require.NoError(t, ReplaceContent(db, doc))

	catalog, err := LoadCatalog(db)
	require.NoError(t, err)
	assert.Equal(t, "Novo Escritório", catalog.Firm.Name)
	assert.Len(t, catalog.HeroSlides, 1)
	assert.Empty(t, catalog.BlogPosts)
	assert.Equal(t, []string{"Todos", "Direito Civil"}, catalog.BlogCategories)
	require.Len(t, catalog.Testimonials, 1)
	assert.Equal(t, models.MaxRating, catalog.Testimonials[0].Rating)
}

func TestLoadCatalog(t *testing.T) {
	catalog := setupTestCatalog(t)

	t.Run("Keeps display order", func(t *testing.T) {
		require.Len(t, catalog.HeroSlides, 3)
		assert.Equal(t, "Excelência Jurídica", catalog.HeroSlides[0].Title)
		assert.Equal(t, "Atendimento Personalizado", catalog.HeroSlides[2].Title)
		assert.Equal(t, "Todos", catalog.AllCategory())
	})

	t.Run("Validates", func(t *testing.T) {
		assert.NoError(t, catalog.Validate())
	})

	t.Run("PostBySlug", func(t *testing.T) {
		post, ok := catalog.PostBySlug(catalog.BlogPosts[0].Slug)
		assert.True(t, ok)
		assert.Equal(t, catalog.BlogPosts[0].Title, post.Title)

		_, ok = catalog.PostBySlug("missing")
		assert.False(t, ok)
	})

	t.Run("FooterGroup", func(t *testing.T) {
		quick := catalog.FooterGroup(models.FooterGroupQuick)
		require.NotEmpty(t, quick)
		assert.Equal(t, "Sobre Nós", quick[0].Text)
		for _, link := range catalog.FooterGroup(models.FooterGroupLegal) {
			assert.Equal(t, models.FooterGroupLegal, link.Group)
		}
	})

	t.Run("NavItem", func(t *testing.T) {
		item, ok := catalog.NavItem("areas-de-atuacao")
		require.True(t, ok)
		assert.True(t, item.HasSubmenu())

		_, ok = catalog.NavItem("nope")
		assert.False(t, ok)
	})
}

func TestCatalogValidate(t *testing.T) {
	t.Run("Empty hero carousel", func(t *testing.T) {
		c := &Catalog{Testimonials: []models.Testimonial{{}}, BlogCategories: []string{"Todos"}}
		assert.Error(t, c.Validate())
	})

	t.Run("Empty testimonial carousel", func(t *testing.T) {
		c := &Catalog{HeroSlides: []models.HeroSlide{{}}, BlogCategories: []string{"Todos"}}
		assert.Error(t, c.Validate())
	})

	t.Run("No categories", func(t *testing.T) {
		c := &Catalog{HeroSlides: []models.HeroSlide{{}}, Testimonials: []models.Testimonial{{}}}
		assert.ErrorIs(t, c.Validate(), ErrInvalidContent)
	})
}
