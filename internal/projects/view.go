package projects

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FragmentPath serves the rendered project list to the page.
const FragmentPath = "/sections/projects"

// Placeholder renders the loading state and asks the page to fetch the
// loaded list once, on load.
func Placeholder() g.Node {
	return h.Div(
		h.ID("projects-list"),
		g.Attr("hx-get", FragmentPath),
		g.Attr("hx-trigger", "load"),
		g.Attr("hx-swap", "outerHTML"),
		loadingText(),
	)
}

// View renders a snapshot.
func View(s Snapshot) g.Node {
	switch s.Status {
	case StatusLoading:
		return h.Div(h.ID("projects-list"), loadingText())
	case StatusFailed:
		return h.Div(
			h.ID("projects-list"),
			g.Attr("data-status", "failed"),
			h.P(h.Class("text-slate-600 dark:text-slate-400"), g.Text("Projects could not be loaded right now.")),
		)
	}
	if len(s.Projects) == 0 {
		return h.Div(
			h.ID("projects-list"),
			g.Attr("data-status", "empty"),
			h.P(h.Class("text-slate-600 dark:text-slate-400"), g.Text("No projects to show yet.")),
		)
	}
	return h.Div(h.ID("projects-list"), g.Attr("data-status", "loaded"), Cards(s.Projects))
}

func loadingText() g.Node {
	return h.P(h.Class("text-slate-600 dark:text-slate-400"), g.Text("Loading projects…"))
}

// Cards renders one card per project, in order.
func Cards(list []Project) g.Node {
	return h.Div(
		h.Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6"),
		g.Map(list, card),
	)
}

func card(p Project) g.Node {
	return h.Article(
		g.Attr("data-key", p.Title),
		h.Class("group rounded-xl border border-slate-200 dark:border-slate-800 bg-white/80 dark:bg-slate-900/70 backdrop-blur p-5 shadow-sm hover:shadow-md transition-shadow"),
		h.H3(h.Class("text-lg font-semibold text-slate-900 dark:text-slate-100"), g.Text(p.Title)),
		h.P(h.Class("mt-1 text-sm text-slate-600 dark:text-slate-400"), g.Text(p.Short)),
		h.Div(
			h.Class("mt-3 flex flex-wrap gap-2"),
			g.Map(p.Tech, func(t string) g.Node {
				return h.Span(
					h.Class("tag inline-flex items-center rounded-full bg-teal-50 text-teal-700 dark:bg-teal-900/40 dark:text-teal-200 px-2.5 py-0.5 text-xs"),
					g.Text(t),
				)
			}),
		),
		h.Div(
			h.Class("mt-4 flex items-center gap-3"),
			h.A(
				h.Href(p.Link),
				h.Class("inline-flex items-center gap-1 text-sm font-medium text-indigo-600 hover:text-indigo-700 dark:text-indigo-400"),
				g.Text("↗ Demo / Link"),
			),
			g.If(strings.TrimSpace(p.GitHub) != "",
				h.A(
					h.Href(p.GitHub),
					h.Class("inline-flex items-center gap-1 text-sm font-medium text-slate-600 hover:text-slate-800 dark:text-slate-300"),
					g.Text("GitHub"),
				),
			),
		),
	)
}
