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

// NotFound renders the 404 page
func NotFound(c *services.Catalog, year int) templ.Component {
	seo := models.DefaultSEO("Página não encontrada | "+c.Firm.Name, "").WithNoIndex()

	return components.Templ(func(ctx context.Context) g.Node {
		return components.Layout(ctx,
			components.Page{SEO: seo},
			components.SiteHeader(c.Firm, c.NavItems, components.MenuView{}),
			Main(
				Section(
					Class("section not-found"),
					Div(
						Class("container container-narrow"),
						H1(g.Text("Página não encontrada")),
						P(g.Text("O endereço que você procurou não existe ou foi removido.")),
						A(Class("btn btn-primary"), Href("/"), g.Text("Voltar ao início")),
					),
				),
			),
			components.SiteFooter(footerData(c, year)),
		)
	})
}
