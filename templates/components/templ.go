// Package components holds the views of every landing page section. Views
// are gomponents nodes; handlers render them through the templ.Component
// adapters in this file.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Templ adapts a view that needs the request context, such as the layout
// reading the CSP nonce
func Templ(view func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return view(ctx).Render(w)
	})
}

// Fragment adapts a context-free node, as returned to HTMX swaps
func Fragment(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}
