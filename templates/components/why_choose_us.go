package components

import (
	"strconv"
	"strings"

	"advocacia_elite/models"
	"advocacia_elite/services"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// TestimonialsID is the swap target of the testimonial carousel
const TestimonialsID = "testimonials"

// WhyChooseUs renders the achievements grid next to the testimonial carousel
func WhyChooseUs(firm models.FirmProfile, achievements []models.Achievement, testimonials []models.Testimonial, active int) g.Node {
	return Section(
		ID("sobre"),
		Class("section why-choose-us"),
		Div(
			Class("container"),
			sectionHeading("Por que nos escolher", "Tradição, resultados e confiança", firm.About),
			Div(
				Class("achievements"),
				g.Map(achievements, func(a models.Achievement) g.Node {
					return Div(
						Class("achievement"),
						Div(Class("card-icon"), Icon(a.Icon, "icon-lg")),
						Strong(Class("achievement-value"), g.Text(a.Value)),
						Span(Class("achievement-label"), g.Text(a.Label)),
						P(g.Text(a.Description)),
					)
				}),
			),
			Testimonials(testimonials, active),
		),
	)
}

// Testimonials renders the active testimonial. The fade between entries is a
// CSS animation on the panel.
func Testimonials(testimonials []models.Testimonial, active int) g.Node {
	if len(testimonials) == 0 {
		return Div(ID(TestimonialsID))
	}
	if active < 0 || active >= len(testimonials) {
		active = 0
	}
	t := testimonials[active]

	return Div(
		ID(TestimonialsID),
		Class("testimonials"),
		Aria("roledescription", "carrossel"),
		liveSwap(string(services.SectionTestimonials)),
		g.El("figure",
			Class("testimonial fade-in"),
			Data("index", strconv.Itoa(active)),
			Icon("quote", "icon-lg testimonial-quote"),
			Div(Class("rating"), Aria("label", strconv.Itoa(t.Rating)+" de 5 estrelas"), stars(t.Rating)),
			g.El("blockquote", P(g.Text(t.Content))),
			g.El("figcaption",
				g.If(t.ImageKey != "", Img(Class("avatar"), Src(services.MediaURL(t.ImageKey)), Alt(t.Name))),
				Div(
					Strong(g.Text(t.Name)),
					Span(g.Text(joinNonEmpty(", ", t.Role, t.Company))),
					g.If(t.CaseLabel != "", Span(Class("badge"), g.Text(t.CaseLabel))),
				),
			),
		),
		carouselControls("/htmx/testimonials", TestimonialsID, len(testimonials), active, "depoimento"),
	)
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func stars(rating int) g.Node {
	rating = models.ClampRating(rating)
	nodes := make([]g.Node, models.MaxRating)
	for i := range nodes {
		class := "icon-sm star"
		if i < rating {
			class += " star-filled"
		}
		nodes[i] = Icon("star", class)
	}
	return g.Group(nodes)
}
