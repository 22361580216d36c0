package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// carouselControls renders previous/next arrows and one dot per item. Every
// control posts to base and swaps target with the returned fragment.
func carouselControls(base, target string, count, active int, itemLabel string) g.Node {
	swap := func(path string) g.Node {
		return g.Group([]g.Node{
			g.Attr("hx-post", base+path),
			g.Attr("hx-target", "#"+target),
			g.Attr("hx-swap", "outerHTML"),
		})
	}

	dots := make([]g.Node, count)
	for i := range dots {
		dots[i] = Button(
			Type("button"),
			classes("carousel-dot", activeClass(i == active)),
			Aria("label", fmt.Sprintf("Ir para %s %d", itemLabel, i+1)),
			g.If(i == active, Aria("current", "true")),
			swap("/select/"+strconv.Itoa(i)),
		)
	}

	return Div(
		Class("carousel-controls"),
		Button(
			Type("button"),
			Class("carousel-arrow carousel-prev"),
			Aria("label", "Anterior"),
			swap("/prev"),
			Icon("chevron-left", "icon-md"),
		),
		Div(Class("carousel-dots"), g.Group(dots)),
		Button(
			Type("button"),
			Class("carousel-arrow carousel-next"),
			Aria("label", "Próximo"),
			swap("/next"),
			Icon("chevron-right", "icon-md"),
		),
	)
}

// liveSwap marks a fragment root as replaced by the named stream event
func liveSwap(event string) g.Node {
	return g.Group([]g.Node{
		g.Attr("sse-swap", event),
		g.Attr("hx-swap", "outerHTML"),
	})
}

func activeClass(active bool) string {
	if active {
		return "is-active"
	}
	return ""
}
