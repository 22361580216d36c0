package components

import (
	"advocacia_elite/models"
	"advocacia_elite/services"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HeroID is the swap target of the hero carousel
const HeroID = "hero"

// Hero renders every slide stacked, with only the active one visible, and the
// copy of the active slide
func Hero(slides []models.HeroSlide, active int) g.Node {
	if len(slides) == 0 {
		return Section(ID(HeroID), Class("hero"))
	}
	if active < 0 || active >= len(slides) {
		active = 0
	}
	current := slides[active]

	return Section(
		ID(HeroID),
		Class("hero"),
		Aria("roledescription", "carrossel"),
		liveSwap(string(services.SectionHero)),
		Div(
			Class("hero-slides"),
			g.Map(indexed(slides), func(s indexedItem[models.HeroSlide]) g.Node {
				return Div(
					classes("hero-slide", activeClass(s.Index == active)),
					g.If(s.Index != active, Aria("hidden", "true")),
					Img(
						Src(services.MediaURL(s.Item.ImageKey)),
						Alt(s.Item.Title),
						g.If(s.Index > 0, g.Attr("loading", "lazy")),
					),
				)
			}),
			Div(Class("hero-overlay")),
		),
		Div(
			Class("container hero-content"),
			H1(Class("hero-title"), g.Text(current.Title)),
			P(Class("hero-subtitle"), g.Text(current.Subtitle)),
			Div(
				Class("hero-actions"),
				A(Class("btn btn-primary btn-lg"), Href("#contato"), g.Text("Agende uma Consulta"), Icon("arrow-right", "icon-sm")),
				A(Class("btn btn-outline btn-lg"), Href("#areas"), g.Text("Nossas Áreas de Atuação")),
			),
		),
		carouselControls("/htmx/hero", HeroID, len(slides), active, "slide"),
	)
}

type indexedItem[T any] struct {
	Index int
	Item  T
}

func indexed[T any](items []T) []indexedItem[T] {
	out := make([]indexedItem[T], len(items))
	for i, item := range items {
		out[i] = indexedItem[T]{Index: i, Item: item}
	}
	return out
}
