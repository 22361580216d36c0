package components

import (
	"slices"
	"strings"

	"advocacia_elite/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// MobileMenuID is the swap target of every mobile menu interaction
const MobileMenuID = "mobile-menu"

// MenuView is a snapshot of the header disclosure state
type MenuView struct {
	Open bool
	// OpenEntries are the keys of the expanded accordion entries
	OpenEntries []string
}

// SiteHeader renders the contact bar, the main navigation and the mobile menu
func SiteHeader(firm models.FirmProfile, items []models.NavItem, menu MenuView) g.Node {
	return Header(
		ID("site-header"),
		Class("site-header"),
		topBar(firm),
		Div(
			Class("container header-main"),
			brand(firm),
			Nav(
				Class("desktop-nav"),
				Aria("label", "Principal"),
				Ul(g.Map(items, desktopNavItem)),
			),
			Div(
				Class("header-actions"),
				A(Class("language-link"), Href(firm.LanguageHref), g.Text(firm.LanguageLabel)),
				A(Class("btn btn-primary"), Href("/#contato"), g.Text(firm.CTALabel)),
			),
			MobileMenu(items, menu),
		),
	)
}

func topBar(firm models.FirmProfile) g.Node {
	return Div(
		Class("top-bar"),
		Div(
			Class("container top-bar-inner"),
			Div(
				Class("top-bar-contacts"),
				A(Href("tel:"+firm.Phone), Icon("phone", "icon-sm"), Span(g.Text(firm.Phone))),
				A(Href("mailto:"+firm.Email), Icon("mail", "icon-sm"), Span(g.Text(firm.Email))),
			),
			g.If(firm.EmergencyNote != "", Span(Class("top-bar-note"), g.Text(firm.EmergencyNote))),
		),
	)
}

func brand(firm models.FirmProfile) g.Node {
	return A(
		Class("brand"),
		Href("/"),
		Span(Class("brand-monogram"), g.Text(firm.Monogram)),
		Span(
			Class("brand-text"),
			Span(Class("brand-name"), g.Text(firm.Name)),
			Span(Class("brand-tagline"), g.Text(firm.Tagline)),
		),
	)
}

func desktopNavItem(item models.NavItem) g.Node {
	if !item.HasSubmenu() {
		return Li(A(Href(landingHref(item.Anchor)), g.Text(item.Label)))
	}
	return Li(
		Class("has-submenu"),
		A(Href(landingHref(item.Anchor)), g.Text(item.Label), Icon("chevron-down", "icon-xs")),
		Ul(
			Class("submenu"),
			g.Map(item.Submenu, func(label string) g.Node {
				return Li(A(Href(landingHref(item.Anchor)), g.Text(label)))
			}),
		),
	)
}

// MobileMenu is the toggle button plus the collapsible panel. Links close the
// menu on the server while the browser follows the anchor.
func MobileMenu(items []models.NavItem, menu MenuView) g.Node {
	icon, label := "menu", "Abrir menu"
	if menu.Open {
		icon, label = "x", "Fechar menu"
	}

	return Div(
		ID(MobileMenuID),
		classes("mobile-menu", openClass(menu.Open)),
		Button(
			Type("button"),
			Class("mobile-menu-toggle"),
			Aria("label", label),
			Aria("expanded", boolString(menu.Open)),
			Aria("controls", "mobile-menu-panel"),
			g.Attr("hx-post", "/htmx/menu/toggle"),
			g.Attr("hx-target", "#"+MobileMenuID),
			g.Attr("hx-swap", "outerHTML"),
			Icon(icon, "icon-md"),
		),
		g.If(menu.Open, Nav(
			ID("mobile-menu-panel"),
			Class("mobile-menu-panel"),
			Aria("label", "Menu"),
			Ul(g.Map(items, func(item models.NavItem) g.Node {
				return mobileNavItem(item, slices.Contains(menu.OpenEntries, item.Key()))
			})),
		)),
	)
}

func mobileNavItem(item models.NavItem, expanded bool) g.Node {
	if !item.HasSubmenu() {
		return closingItem(landingHref(item.Anchor), item.Label)
	}

	return Li(
		classes("accordion-entry", openClass(expanded)),
		Button(
			Type("button"),
			Class("accordion-toggle"),
			Aria("expanded", boolString(expanded)),
			g.Attr("hx-post", "/htmx/nav/"+item.Key()+"/toggle"),
			g.Attr("hx-target", "#"+MobileMenuID),
			g.Attr("hx-swap", "outerHTML"),
			Span(g.Text(item.Label)),
			Icon("chevron-down", "icon-sm accordion-chevron"),
		),
		g.If(expanded, Ul(
			Class("accordion-panel"),
			g.Map(item.Submenu, func(label string) g.Node {
				return closingItem(landingHref(item.Anchor), label)
			}),
		)),
	)
}

// closingItem closes the menu when its link is clicked. The request sits on
// the list item because htmx cancels the navigation of an anchor it handles.
func closingItem(href, label string) g.Node {
	return Li(
		g.Attr("hx-post", "/htmx/menu/close"),
		g.Attr("hx-target", "#"+MobileMenuID),
		g.Attr("hx-swap", "outerHTML"),
		A(Href(href), g.Text(label)),
	)
}

// landingHref points in-page anchors at the landing page so the navigation
// works from every page
func landingHref(anchor string) string {
	if strings.HasPrefix(anchor, "#") {
		return "/" + anchor
	}
	return anchor
}

func openClass(open bool) string {
	if open {
		return "is-open"
	}
	return ""
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
