package components

import (
	"strconv"

	"advocacia_elite/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FooterData is the content of the footer columns
type FooterData struct {
	Firm        models.FirmProfile
	QuickLinks  []models.FooterLink
	AreaLinks   []models.FooterLink
	LegalLinks  []models.FooterLink
	OfficeHours []models.OfficeHours
	Year        int
}

// SiteFooter renders contacts, link columns, opening hours and the legal bar
func SiteFooter(data FooterData) g.Node {
	firm := data.Firm
	return Footer(
		ID("contato"),
		Class("site-footer"),
		Div(
			Class("container footer-grid"),
			Div(
				Class("footer-column"),
				brand(firm),
				P(g.Text(firm.About)),
				Ul(
					Class("footer-contacts"),
					Li(Icon("phone", "icon-sm"), A(Href("tel:"+firm.Phone), g.Text(firm.Phone))),
					Li(Icon("mail", "icon-sm"), A(Href("mailto:"+firm.Email), g.Text(firm.Email))),
					Li(Icon("map-pin", "icon-sm"), Span(g.Text(firm.Address))),
				),
			),
			footerLinks("Links Rápidos", data.QuickLinks),
			footerLinks("Áreas de Atuação", data.AreaLinks),
			Div(
				Class("footer-column"),
				H4(g.Text("Horário de Atendimento")),
				Ul(
					Class("office-hours"),
					g.Map(data.OfficeHours, func(h models.OfficeHours) g.Node {
						return Li(Icon("clock", "icon-xs"), Span(g.Text(h.Day)), Span(Class("hours"), g.Text(h.Hours)))
					}),
				),
				g.If(firm.EmergencyNote != "", P(Class("footer-note"), g.Text(firm.EmergencyNote))),
			),
		),
		Div(
			Class("footer-bottom"),
			Div(
				Class("container footer-bottom-inner"),
				P(g.Text("© "+strconv.Itoa(data.Year)+" "+firm.Name+". Todos os direitos reservados.")),
				Ul(
					Class("legal-links"),
					g.Map(data.LegalLinks, func(l models.FooterLink) g.Node {
						return Li(A(Href(l.Href), g.Text(l.Text)))
					}),
				),
			),
		),
	)
}

func footerLinks(title string, links []models.FooterLink) g.Node {
	return Div(
		Class("footer-column"),
		H4(g.Text(title)),
		Ul(g.Map(links, func(l models.FooterLink) g.Node {
			return Li(A(Href(l.Href), g.Text(l.Text)))
		})),
	)
}

// ScrollToTop is shown by site.js once the page scrolls past ScrollToTopThreshold
func ScrollToTop() g.Node {
	return A(
		ID("scroll-to-top"),
		Class("scroll-to-top"),
		Href("#"),
		Aria("label", "Voltar ao topo"),
		g.Attr("hidden"),
		Icon("arrow-up", "icon-md"),
	)
}
