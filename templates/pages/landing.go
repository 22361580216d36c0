// Package pages composes the section views into full documents
package pages

import (
	"context"

	"advocacia_elite/models"
	"advocacia_elite/services"
	"advocacia_elite/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LandingData is the initial state of one landing page over the catalog
type LandingData struct {
	Catalog *services.Catalog
	SEO     *models.SEO
	// PageID names the page state every fragment and stream request acts on
	PageID string
	Blog   components.BlogView
	Year   int
}

// Landing renders the single-page site
func Landing(data LandingData) templ.Component {
	c := data.Catalog
	return components.Templ(func(ctx context.Context) g.Node {
		return components.Layout(ctx,
			components.Page{
				SEO:            data.SEO,
				StructuredData: components.LegalServiceSchema(c.Firm, canonical(data.SEO)),
				PageID:         data.PageID,
				Live:           true,
			},
			components.SiteHeader(c.Firm, c.NavItems, components.MenuView{}),
			Main(
				components.Hero(c.HeroSlides, 0),
				components.PracticeAreas(c.PracticeAreas),
				components.Team(c.Lawyers),
				components.Blog(data.Blog),
				components.WhyChooseUs(c.Firm, c.Achievements, c.Testimonials, 0),
			),
			components.SiteFooter(footerData(c, data.Year)),
			components.ScrollToTop(),
		)
	})
}

func footerData(c *services.Catalog, year int) components.FooterData {
	return components.FooterData{
		Firm:        c.Firm,
		QuickLinks:  c.FooterGroup(models.FooterGroupQuick),
		AreaLinks:   c.FooterGroup(models.FooterGroupAreas),
		LegalLinks:  c.FooterGroup(models.FooterGroupLegal),
		OfficeHours: c.OfficeHours,
		Year:        year,
	}
}

func canonical(seo *models.SEO) string {
	if seo == nil {
		return ""
	}
	return seo.Canonical
}
