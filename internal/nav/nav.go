// Package nav holds the navigation bar: scroll flag, mobile menu and the
// theme toggle.
package nav

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/rahulcj/portfolio/internal/theme"
)

// ScrollThreshold is the vertical offset, in pixels, past which the bar is
// drawn as scrolled.
const ScrollThreshold = 8

// MenuParam is the query parameter that opens the mobile menu when scripts
// are off. With scripts on the menu opens in place.
const MenuParam = "menu"

// Link is an anchor to a named page section.
type Link struct {
	Href  string
	Label string
}

// Links builds one anchor per section id, labelled from the id.
func Links(ids ...string) []Link {
	caser := cases.Title(language.English)
	links := make([]Link, 0, len(ids))
	for _, id := range ids {
		links = append(links, Link{Href: "#" + id, Label: caser.String(id)})
	}
	return links
}

// State is the bar's view state for one page.
type State struct {
	Scrolled bool
	MenuOpen bool
	Theme    theme.Preference
}

// OnScroll recomputes the scrolled flag from the vertical offset.
func (s *State) OnScroll(offsetY float64) {
	s.Scrolled = offsetY > ScrollThreshold
}

func (s *State) ToggleMenu() { s.MenuOpen = !s.MenuOpen }

// SelectLink closes the mobile menu and returns the anchor to follow.
func (s *State) SelectLink(l Link) string {
	s.MenuOpen = false
	return l.Href
}

// ToggleTheme cycles the stored preference and closes the mobile menu.
func (s *State) ToggleTheme(store *theme.Store) theme.Preference {
	s.Theme = store.Toggle()
	s.MenuOpen = false
	return s.Theme
}

// Bar is everything the navigation bar renders.
type Bar struct {
	Brand string
	Links []Link
	State State
}

// Render draws the header. The page script reads the data-* attributes to
// run the scroll flag, menu and theme toggle in the browser; the links and
// forms work without it.
func Render(b Bar) g.Node {
	headerClass := "fixed top-0 left-0 right-0 z-50 transition-colors bg-transparent"
	if b.State.Scrolled {
		headerClass = "fixed top-0 left-0 right-0 z-50 transition-colors bg-white/90 dark:bg-slate-900/90 backdrop-blur shadow-sm"
	}

	next := b.State
	next.ToggleMenu()
	menuHref := "/"
	if next.MenuOpen {
		menuHref = "?" + MenuParam + "=open"
	}

	return h.Header(
		h.ID("site-header"),
		h.Class(headerClass),
		g.Attr("role", "banner"),
		g.Attr("data-scrolled", boolAttr(b.State.Scrolled)),
		g.Attr("data-scroll-threshold", strconv.Itoa(ScrollThreshold)),
		g.Attr("data-theme-cycle", strings.Join(themeCycle(), " ")),
		h.Nav(
			h.Class("max-w-6xl mx-auto px-4 sm:px-6 lg:px-8"),
			g.Attr("aria-label", "Primary"),
			h.Div(
				h.Class("flex h-16 items-center justify-between"),
				h.A(
					h.Href("#home"),
					h.Class("flex items-center gap-2 rounded px-2"),
					h.Div(h.Class("w-8 h-8 bg-gradient-to-br from-teal-500 to-indigo-600 rounded-md"), g.Attr("aria-hidden", "true")),
					h.Span(h.Class("font-semibold text-slate-900 dark:text-slate-100"), g.Text(b.Brand)),
				),
				h.Div(
					h.Class("hidden md:flex items-center gap-8"),
					g.Map(b.Links, func(l Link) g.Node {
						return h.A(
							h.Href(l.Href),
							h.Class("text-sm text-slate-700 dark:text-slate-300 hover:text-teal-600 dark:hover:text-teal-400 rounded px-2 py-1"),
							g.Text(l.Label),
						)
					}),
					themeToggle(b.State.Theme, "p-2 rounded-md border border-slate-200 dark:border-slate-700"),
				),
				h.A(
					h.Href(menuHref),
					h.ID("menu-toggle"),
					h.Class("md:hidden p-2 rounded-md border border-slate-200 dark:border-slate-700"),
					g.Attr("role", "button"),
					g.Attr("aria-expanded", boolAttr(b.State.MenuOpen)),
					g.Attr("aria-controls", "mobile-nav"),
					g.Attr("aria-label", "Toggle navigation"),
					g.Text("☰"),
				),
			),
			mobileMenu(b),
		),
		h.Div(h.Class("h-px w-full bg-gradient-to-r from-teal-500 via-indigo-600 to-teal-500 opacity-70"), g.Attr("aria-hidden", "true")),
		themeIcons(),
	)
}

func mobileMenu(b Bar) g.Node {
	return h.Div(
		h.ID("mobile-nav"),
		h.Class("md:hidden pb-4 space-y-2"),
		g.Attr("role", "menu"),
		g.If(!b.State.MenuOpen, g.Attr("hidden")),
		g.Map(b.Links, func(l Link) g.Node {
			return h.A(
				h.Href(l.Href),
				h.Class("block text-slate-700 dark:text-slate-300 hover:text-teal-600 dark:hover:text-teal-400"),
				g.Attr("role", "menuitem"),
				g.Text(l.Label),
			)
		}),
		themeToggle(b.State.Theme, "inline-flex items-center gap-2 p-2 rounded-md border border-slate-200 dark:border-slate-700"),
	)
}

// themeToggle posts to /theme when scripts are off; the handler cycles the
// preference and redirects to "/", which also closes the mobile menu.
func themeToggle(p theme.Preference, class string) g.Node {
	return g.El("form",
		h.Method("post"),
		h.Action("/theme"),
		h.Class("inline"),
		h.Button(
			h.Type("submit"),
			h.Class(class),
			g.Attr("aria-label", "Theme: "+p.String()),
			g.Attr("data-theme-toggle", p.String()),
			themeIcon(p),
		),
	)
}

func themeIcon(p theme.Preference) g.Node {
	switch p {
	case theme.Dark:
		return h.Span(h.Class("icon-moon"), g.Text("☾"))
	case theme.Light:
		return h.Span(h.Class("icon-sun"), g.Text("☀"))
	default:
		return h.Span(
			h.Class("flex items-center gap-1"),
			h.Span(h.Class("icon-sun"), g.Text("☀")),
			h.Span(h.Class("icon-moon"), g.Text("☾")),
		)
	}
}

// themeIcons holds one icon per preference for the page script to swap in.
func themeIcons() g.Node {
	order := themeCycle()
	return g.El("template",
		h.ID("theme-icons"),
		g.Map(order, func(name string) g.Node {
			return h.Span(g.Attr("data-icon", name), themeIcon(theme.Preference(name)))
		}),
	)
}

// themeCycle lists the preferences in toggle order, starting from light.
func themeCycle() []string {
	order := []string{theme.Light.String()}
	for p := theme.Cycle(theme.Light); p != theme.Light; p = theme.Cycle(p) {
		order = append(order, p.String())
	}
	return order
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
