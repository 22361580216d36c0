package components

import (
	"advocacia_elite/models"
	"advocacia_elite/services"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func sectionHeading(eyebrow, title, lead string) g.Node {
	return Div(
		Class("section-heading"),
		Span(Class("eyebrow"), g.Text(eyebrow)),
		H2(g.Text(title)),
		g.If(lead != "", P(Class("lead"), g.Text(lead))),
	)
}

// PracticeAreas renders one card per area with its stats and highlights
func PracticeAreas(areas []models.PracticeArea) g.Node {
	return Section(
		ID("areas"),
		Class("section practice-areas"),
		Div(
			Class("container"),
			sectionHeading("Áreas de Atuação", "Soluções jurídicas completas",
				"Atuação especializada para proteger seus direitos e os interesses do seu negócio."),
			Div(
				Class("card-grid card-grid-3"),
				g.Map(areas, practiceAreaCard),
			),
		),
	)
}

func practiceAreaCard(area models.PracticeArea) g.Node {
	return Article(
		ID("area-"+area.Slug),
		Class("card practice-card"),
		Div(Class("card-icon"), Icon(area.Icon, "icon-lg")),
		H3(g.Text(area.Title)),
		P(g.Text(area.Description)),
		g.If(len(area.Stats) > 0, Div(
			Class("practice-stats"),
			g.Map(area.Stats, func(s models.Stat) g.Node {
				return Div(
					Class("stat"),
					Strong(g.Text(s.Value)),
					Span(g.Text(s.Label)),
				)
			}),
		)),
		Ul(
			Class("check-list"),
			g.Map(area.Details, func(d string) g.Node {
				return Li(g.Text(d))
			}),
		),
		A(Class("card-link"), Href("#contato"), g.Text("Saiba mais"), Icon("arrow-right", "icon-sm")),
	)
}

// Team renders the lawyer profiles. The full profile expands in place.
func Team(lawyers []models.Lawyer) g.Node {
	return Section(
		ID("equipe"),
		Class("section team"),
		Div(
			Class("container"),
			sectionHeading("Nossa Equipe", "Advogados experientes ao seu lado",
				"Profissionais reconhecidos, dedicados a cada detalhe do seu caso."),
			Div(
				Class("card-grid card-grid-3"),
				g.Map(lawyers, lawyerCard),
			),
		),
	)
}

func lawyerCard(l models.Lawyer) g.Node {
	return Article(
		Class("card lawyer-card"),
		Div(
			Class("lawyer-photo"),
			Img(Src(services.MediaURL(l.ImageKey)), Alt(l.Name), g.Attr("loading", "lazy")),
		),
		Div(
			Class("lawyer-body"),
			H3(g.Text(l.Name)),
			P(Class("lawyer-role"), g.Text(l.Role)),
			g.If(l.OAB != "", P(Class("lawyer-oab"), g.Text(l.OAB))),
			Ul(
				Class("tag-list"),
				g.Map(l.Specialties, func(s string) g.Node {
					return Li(Class("tag"), g.Text(s))
				}),
			),
			g.El("details",
				Class("lawyer-profile"),
				g.El("summary", g.Text("Ver perfil completo")),
				P(g.Text(l.Bio)),
				profileList("graduation", "Formação", l.Education),
				profileList("award", "Reconhecimentos", l.Awards),
				profileList("globe", "Idiomas", l.Languages),
			),
			Div(
				Class("lawyer-links"),
				g.If(l.LinkedIn != "", A(Href(l.LinkedIn), Rel("noopener"), Target("_blank"), Aria("label", "LinkedIn de "+l.Name), Icon("linkedin", "icon-sm"))),
				g.If(l.Email != "", A(Href("mailto:"+l.Email), Aria("label", "E-mail de "+l.Name), Icon("mail", "icon-sm"))),
			),
		),
	)
}

func profileList(icon, title string, items []string) g.Node {
	if len(items) == 0 {
		return nil
	}
	return Div(
		Class("profile-list"),
		H4(Icon(icon, "icon-sm"), g.Text(title)),
		Ul(g.Map(items, func(s string) g.Node {
			return Li(g.Text(s))
		})),
	)
}
