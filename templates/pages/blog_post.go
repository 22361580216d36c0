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

// BlogPostData is one article with its rendered body
type BlogPostData struct {
	Catalog *services.Catalog
	SEO     *models.SEO
	Post    models.BlogPost
	// BodyHTML is sanitized article HTML
	BodyHTML string
	Related  []models.BlogPost
	// PageID names the state behind the article's mobile menu
	PageID string
	Year   int
}

// BlogPost renders an article page
func BlogPost(data BlogPostData) templ.Component {
	c := data.Catalog
	post := data.Post
	image := services.MediaURL(post.ImageKey)

	return components.Templ(func(ctx context.Context) g.Node {
		return components.Layout(ctx,
			components.Page{
				SEO:            data.SEO,
				StructuredData: components.ArticleSchema(post, c.Firm, canonical(data.SEO), image),
				PageID:         data.PageID,
			},
			components.SiteHeader(c.Firm, c.NavItems, components.MenuView{}),
			Main(
				Article(
					Class("article"),
					Div(
						Class("container container-narrow"),
						A(Class("back-link"), Href("/#blog"), components.Icon("chevron-left", "icon-sm"), g.Text("Voltar ao blog")),
						Span(Class("badge"), g.Text(post.Category)),
						H1(g.Text(post.Title)),
						Div(
							Class("blog-meta"),
							Span(g.Text(post.AuthorName+" · "+post.AuthorRole)),
							g.El("time", g.Attr("datetime", services.ISODate(post.PublishedAt)), g.Text(services.FormatDate(post.PublishedAt))),
							Span(g.Text(post.ReadTime+" de leitura")),
						),
						g.If(image != "", Img(Class("article-cover"), Src(image), Alt(post.Title))),
						P(Class("lead"), g.Text(post.Excerpt)),
						Div(Class("prose"), g.Raw(data.BodyHTML)),
						g.If(len(post.Tags) > 0, Ul(
							Class("tag-list"),
							g.Map(post.Tags, func(tag string) g.Node {
								return Li(Class("tag"), g.Text(tag))
							}),
						)),
					),
				),
				g.If(len(data.Related) > 0, Section(
					Class("section related-posts"),
					Div(
						Class("container"),
						H2(g.Text("Leia também")),
						Ul(
							Class("related-list"),
							g.Map(data.Related, func(p models.BlogPost) g.Node {
								return Li(A(Href("/blog/"+p.Slug), g.Text(p.Title)))
							}),
						),
					),
				)),
			),
			components.SiteFooter(footerData(c, data.Year)),
			components.ScrollToTop(),
		)
	})
}
