package page

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/rahulcj/portfolio/internal/config"
	"github.com/rahulcj/portfolio/internal/section"
)

// Hero is the introduction panel. Its entrance animation plays on load.
func Hero(p config.Profile) g.Node {
	return h.Section(
		h.ID("home"),
		h.Class("relative min-h-[90vh] pt-16 overflow-hidden"),
		h.Div(
			h.Class("absolute inset-0 bg-gradient-to-t from-white via-white/40 to-transparent dark:from-slate-900 dark:via-slate-900/40 pointer-events-none"),
			g.Attr("aria-hidden", "true"),
		),
		h.Div(
			h.Class("relative max-w-6xl mx-auto px-4 sm:px-6 lg:px-8 flex items-center min-h-[70vh]"),
			h.Div(
				h.Class("w-full"),
				h.H1(
					h.Class("rise text-4xl sm:text-5xl md:text-6xl font-extrabold tracking-tight text-slate-900 dark:text-white"),
					g.Text(p.Name),
				),
				h.P(
					h.Class("rise mt-2 text-lg sm:text-xl font-medium bg-gradient-to-r from-teal-500 to-indigo-600 bg-clip-text text-transparent"),
					g.Attr("style", "animation-delay: .1s"),
					g.Text(p.Headline),
				),
				g.If(p.Tagline != "", h.P(
					h.Class("rise mt-4 max-w-2xl text-slate-700 dark:text-slate-300"),
					g.Attr("style", "animation-delay: .2s"),
					g.Text(`"`+p.Tagline+`"`),
				)),
				h.Div(
					h.Class("rise mt-8 flex flex-wrap gap-3"),
					g.Attr("style", "animation-delay: .3s"),
					h.A(
						h.Href("#projects"),
						h.Class("inline-flex items-center justify-center rounded-md px-5 py-2.5 text-sm font-semibold text-white bg-gradient-to-r from-teal-500 to-indigo-600 shadow hover:opacity-95"),
						g.Text("View Projects"),
					),
					h.A(
						h.Href(p.Resume),
						h.Class("inline-flex items-center justify-center rounded-md px-5 py-2.5 text-sm font-semibold text-teal-700 dark:text-teal-300 border border-teal-300/60 dark:border-teal-600/60"),
						g.Text("Download Resume"),
					),
				),
			),
		),
	)
}

func about(p config.Profile) g.Node {
	return section.Section("about", "About",
		h.P(h.Class("max-w-3xl text-slate-700 dark:text-slate-300 leading-relaxed"), g.Text(p.About)),
	)
}

// Skills renders one proficiency bar per skill. The fill grows to its level
// the first time the bar scrolls into view.
func Skills(skills []config.Skill) g.Node {
	return section.Section("skills", "Skills",
		h.Ul(
			h.Class("space-y-4"),
			g.Attr("role", "list"),
			g.Map(skills, func(s config.Skill) g.Node {
				level := strconv.Itoa(s.Level)
				return h.Li(
					h.Div(
						h.Class("flex items-center justify-between"),
						h.Span(h.Class("text-sm font-medium text-slate-800 dark:text-slate-200"), g.Text(s.Name)),
						h.Span(h.Class("text-xs text-slate-500 dark:text-slate-400"), g.Attr("aria-hidden", "true"), g.Text(level+"%")),
					),
					h.Div(
						h.Class("mt-2 h-2 rounded-full bg-slate-200 dark:bg-slate-800 overflow-hidden"),
						g.Attr("role", "progressbar"),
						g.Attr("aria-valuenow", level),
						g.Attr("aria-valuemin", "0"),
						g.Attr("aria-valuemax", "100"),
						g.Attr("aria-label", s.Name+" proficiency"),
						h.Div(
							h.Class("skill-fill h-full bg-gradient-to-r from-teal-500 to-indigo-600"),
							g.Attr("style", "--level: "+level+"%"),
							g.Attr("data-level", level),
							section.NewReveal(section.DefaultThreshold).Attrs(),
						),
					),
				)
			}),
		),
	)
}

func education(entries []string) g.Node {
	return section.Section("education", "Education",
		g.Map(entries, func(e string) g.Node {
			return h.Div(
				h.Class("rounded-xl border border-slate-200 dark:border-slate-800 bg-white/80 dark:bg-slate-900/70 backdrop-blur p-5"),
				h.P(h.Class("text-slate-800 dark:text-slate-200 font-medium"), g.Text(e)),
			)
		}),
	)
}

func footer(p config.Profile, year int) g.Node {
	return h.Footer(
		h.Class("mt-16 border-t border-slate-200 dark:border-slate-800 py-8"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-4 sm:px-6 lg:px-8 flex flex-col sm:flex-row items-center justify-between gap-4"),
			h.P(h.Class("text-sm text-slate-600 dark:text-slate-400"),
				g.Textf("© %d %s. All rights reserved.", year, p.Name),
			),
			h.Div(h.Class("text-sm text-slate-600 dark:text-slate-400"),
				g.Text("Built with Go, gin, gomponents and Tailwind CSS."),
			),
		),
	)
}
