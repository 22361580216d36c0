package components

import (
	"advocacia_elite/models"
	"advocacia_elite/services"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// BlogListingID is the swap target of the category pills and the search box
const BlogListingID = "blog-listing"

// BlogView is a snapshot of the blog filter
type BlogView struct {
	Categories []string
	Category   string
	SearchText string
	Posts      []models.BlogPost
}

// Blog renders the search box, the filtered listing and the newsletter box
func Blog(view BlogView) g.Node {
	return Section(
		ID("blog"),
		Class("section blog"),
		Div(
			Class("container"),
			sectionHeading("Blog Jurídico", "Artigos e novidades",
				"Análises da nossa equipe sobre as mudanças que afetam você e sua empresa."),
			Div(
				Class("blog-search"),
				Icon("search", "icon-sm"),
				Input(
					ID("blog-search"),
					Type("search"),
					Name("q"),
					Value(view.SearchText),
					Placeholder("Buscar artigos..."),
					Aria("label", "Buscar artigos"),
					g.Attr("autocomplete", "off"),
					g.Attr("hx-get", "/htmx/blog"),
					g.Attr("hx-trigger", "input changed delay:250ms, search"),
					g.Attr("hx-include", "#blog-category"),
					g.Attr("hx-target", "#"+BlogListingID),
					g.Attr("hx-swap", "outerHTML"),
				),
			),
			BlogListing(view),
			newsletter(),
		),
	)
}

// BlogListing renders the category pills and the matching posts
func BlogListing(view BlogView) g.Node {
	return Div(
		ID(BlogListingID),
		Class("blog-listing"),
		Input(ID("blog-category"), Type("hidden"), Name("category"), Value(view.Category)),
		Div(
			Class("category-pills"),
			Role("group"),
			Aria("label", "Categorias"),
			g.Map(view.Categories, func(category string) g.Node {
				selected := category == view.Category
				return Button(
					Type("button"),
					classes("pill", activeClass(selected)),
					Aria("pressed", boolString(selected)),
					g.Attr("hx-get", "/htmx/blog"),
					g.Attr("hx-vals", JSON(map[string]string{"category": category})),
					g.Attr("hx-include", "#blog-search"),
					g.Attr("hx-target", "#"+BlogListingID),
					g.Attr("hx-swap", "outerHTML"),
					g.Text(category),
				)
			}),
		),
		g.If(len(view.Posts) == 0, Div(
			Class("empty-state"),
			Icon("search", "icon-lg"),
			P(g.Text("Nenhum artigo encontrado.")),
			P(Class("muted"), g.Text("Tente outra categoria ou termo de busca.")),
		)),
		g.If(len(view.Posts) > 0, Div(
			Class("card-grid card-grid-3"),
			g.Map(view.Posts, blogCard),
		)),
	)
}

func blogCard(post models.BlogPost) g.Node {
	href := "/blog/" + post.Slug
	return Article(
		Class("card blog-card"),
		A(
			Class("blog-card-image"),
			Href(href),
			Img(Src(services.MediaURL(post.ImageKey)), Alt(post.Title), g.Attr("loading", "lazy")),
			Span(Class("badge"), g.Text(post.Category)),
		),
		Div(
			Class("blog-card-body"),
			Div(
				Class("blog-meta"),
				Span(Icon("calendar", "icon-xs"), g.El("time", g.Attr("datetime", services.ISODate(post.PublishedAt)), g.Text(services.FormatDate(post.PublishedAt)))),
				Span(Icon("clock", "icon-xs"), g.Text(post.ReadTime)),
			),
			H3(A(Href(href), g.Text(post.Title))),
			P(g.Text(post.Excerpt)),
			Div(
				Class("blog-author"),
				Strong(g.Text(post.AuthorName)),
				Span(g.Text(post.AuthorRole)),
			),
			A(Class("card-link"), Href(href), g.Text("Ler artigo"), Icon("arrow-right", "icon-sm")),
		),
	)
}

// newsletter renders the signup box. It has no form action.
func newsletter() g.Node {
	return Div(
		Class("newsletter"),
		Div(
			H3(g.Text("Receba nossos artigos")),
			P(g.Text("Conteúdo jurídico relevante, direto no seu e-mail.")),
		),
		Div(
			Class("newsletter-field"),
			Input(Type("email"), Name("email"), Placeholder("Seu melhor e-mail"), Aria("label", "E-mail")),
			Button(Type("button"), Class("btn btn-primary"), g.Text("Inscrever-se")),
		),
	)
}
