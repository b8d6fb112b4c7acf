package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
	hx "maragu.dev/gomponents-htmx"

	"github.com/wassociates/portal/internal/domain"
	"github.com/wassociates/portal/internal/view/dto/dashboard"
)

// Dashboard renders the member dashboard: header with display name and admin
// badge, then the aggregated resource links.
func Dashboard(data dashboard.Data) cmp.Node {
	return g.Div(
		g.Class("max-w-6xl mx-auto p-8 pt-6"),
		g.Div(
			g.Class("flex flex-col md:flex-row justify-between items-center mb-8 bg-amber-800 text-amber-50 p-4 rounded-lg shadow-md"),
			g.H1(g.Class("text-3xl font-bold font-serif mb-4 md:mb-0"), cmp.Text("Wassociates")),
			g.Div(
				g.Class("flex items-center"),
				g.Span(
					g.Class("mr-4"),
					cmp.Text(data.DisplayName),
					cmp.If(data.IsAdmin,
						g.Span(
							g.Class("ml-2 bg-amber-600 px-2 py-1 text-xs rounded-md"),
							cmp.Text("Admin"),
						),
					),
				),
				g.A(
					g.Href("/logout"),
					g.Class("bg-amber-100 hover:bg-amber-200 text-amber-900 py-2 px-4 rounded-md transition duration-200"),
					cmp.Text("Log Out"),
				),
			),
		),
		LinksSection(data),
	)
}

// LinksSection renders the personal and shared link groups. It is also served
// standalone for the htmx refresh, swapping itself in place.
func LinksSection(data dashboard.Data) cmp.Node {
	if data.LoadFailed {
		return g.Div(
			g.ID("links"),
			g.Class("mb-4 p-4 bg-red-100 text-red-800 rounded-md border border-red-300 flex items-center justify-between"),
			g.Span(cmp.Text("Failed to load your resources. Please try again.")),
			g.Button(
				hx.Get("/dashboard/links"),
				hx.Target("#links"),
				hx.Swap("outerHTML"),
				g.Class("ml-4 bg-red-700 hover:bg-red-800 text-red-50 py-1 px-3 rounded-md"),
				cmp.Text("Retry"),
			),
		)
	}

	return g.Div(
		g.ID("links"),
		linkGroup("My Resources", data.Personal, "No personal resources found for your account."),
		linkGroup("Common Resources", data.Shared, "No shared resources available."),
		g.Div(
			g.Class("text-right"),
			g.Button(
				hx.Get("/dashboard/links"),
				hx.Target("#links"),
				hx.Swap("outerHTML"),
				g.Class("text-sm text-amber-700 underline"),
				cmp.Text("Refresh"),
			),
		),
	)
}

func linkGroup(heading string, links []domain.Link, emptyMessage string) cmp.Node {
	return g.Div(
		g.Class("bg-amber-100 rounded-lg shadow-md p-6 border-2 border-amber-300 mb-8"),
		g.H2(
			g.Class("text-2xl font-semibold mb-6 text-amber-900 font-serif border-b-2 border-amber-300 pb-2"),
			cmp.Text(heading),
		),
		cmp.If(len(links) == 0,
			g.Div(
				g.Class("text-center py-8 text-amber-700"),
				g.P(cmp.Text(emptyMessage)),
			),
		),
		cmp.If(len(links) > 0,
			g.Div(
				g.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-5"),
				cmp.Map(links, linkCard),
			),
		),
	)
}

func linkCard(link domain.Link) cmp.Node {
	return g.A(
		g.Href(link.URL),
		g.Target("_blank"),
		g.Rel("noopener noreferrer"),
		g.Class("block p-4 border-2 border-amber-400 bg-amber-50 rounded-lg hover:bg-amber-200 transition-colors shadow-sm"),
		g.Div(
			g.Class("flex items-center mb-2"),
			cmp.If(link.Icon != "",
				g.Span(
					g.Class("mr-3 text-xl text-amber-700"),
					g.I(g.Class("fa-solid fa-"+link.Icon)),
				),
			),
			g.H3(g.Class("text-lg font-medium text-amber-900"), cmp.Text(link.Title)),
		),
	)
}
