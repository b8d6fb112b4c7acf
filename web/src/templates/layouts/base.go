package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/wassociates/portal/internal/view"
)

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Wassociates"
	}
	return "Wassociates"
}

// Base wraps page content in the full HTML document: head, flash messages and
// the shared body styling.
func Base(title string, flashes view.FlashData, content cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Script(g.Src("https://cdn.tailwindcss.com")),
				g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12")),
				g.Link(g.Rel("stylesheet"), g.Href("https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.2/css/all.min.css")),
			),
			g.Body(
				g.Class("bg-amber-50 min-h-screen"),
				Flashes(flashes),
				content,
			),
		),
	)
}

// Flashes renders one-shot success and error messages at the top of the page.
func Flashes(flashes view.FlashData) cmp.Node {
	if len(flashes.Success) == 0 && len(flashes.Error) == 0 {
		return nil
	}

	return g.Div(
		g.Class("max-w-6xl mx-auto px-8 pt-4 space-y-2"),
		cmp.Map(flashes.Success, func(msg string) cmp.Node {
			return g.Div(
				g.Class("p-3 bg-green-100 text-green-800 rounded-md border border-green-300"),
				cmp.Text(msg),
			)
		}),
		cmp.Map(flashes.Error, func(msg string) cmp.Node {
			return g.Div(
				g.Class("p-3 bg-red-100 text-red-800 rounded-md border border-red-300"),
				cmp.Text(msg),
			)
		}),
	)
}
