package page

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/rahulcj/portfolio/internal/config"
	"github.com/rahulcj/portfolio/internal/contact"
	"github.com/rahulcj/portfolio/internal/document"
	"github.com/rahulcj/portfolio/internal/nav"
	"github.com/rahulcj/portfolio/internal/projects"
	"github.com/rahulcj/portfolio/internal/section"
	"github.com/rahulcj/portfolio/internal/theme"
)

// SectionIDs lists the anchorable sections in page order.
var SectionIDs = []string{"about", "projects", "skills", "education", "contact"}

// Options describe one rendering of the page.
type Options struct {
	Theme      theme.Preference
	SystemDark bool
	MenuOpen   bool
	Origin     string
	Year       int

	// Projects is rendered inline when set; otherwise the page shows the
	// loading state and fetches the list after load.
	Projects *projects.Snapshot

	// Contact carries a previous submission to re-render, if any.
	Contact       contact.Form
	ContactErrors contact.Errors
}

// Site renders the portfolio page for a profile.
type Site struct {
	profile  config.Profile
	composer *Composer
}

func NewSite(p config.Profile) *Site {
	return &Site{profile: p, composer: NewComposer(p)}
}

// Profile returns the site's content.
func (s *Site) Profile() config.Profile { return s.profile }

// Render writes the full HTML document.
func (s *Site) Render(w io.Writer, opts Options) error {
	doc := document.New()

	unmount, err := s.composer.Mount(doc, opts.Origin)
	if err != nil {
		return err
	}
	defer unmount()

	unmountContent := MountContent(doc)
	defer unmountContent()

	theme.Apply(doc, opts.Theme, opts.SystemDark)

	return s.layout(doc, opts).Render(w)
}

func (s *Site) layout(doc *document.Document, opts Options) g.Node {
	p := s.profile

	projectsBody := projects.Placeholder()
	if opts.Projects != nil {
		projectsBody = projects.View(*opts.Projects)
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		h.HTML(
			doc.RootAttributes(),
			doc.Head(
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(g.Raw(`tailwind.config = { darkMode: 'class' }`)),
				h.Script(h.Src("https://unpkg.com/htmx.org@1.9.12")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
			),
			h.Body(
				h.Div(
					h.Class("min-h-screen bg-white dark:bg-slate-900 text-slate-900 dark:text-slate-100"),
					nav.Render(nav.Bar{
						Brand: p.ShortName,
						Links: nav.Links(SectionIDs...),
						State: nav.State{MenuOpen: opts.MenuOpen, Theme: opts.Theme},
					}),
					Hero(p),
					h.Div(
						h.Class("relative"),
						h.Div(
							h.Class("pointer-events-none absolute inset-x-0 -top-8 h-24 bg-gradient-to-b from-teal-100/50 to-transparent dark:from-indigo-900/20"),
							g.Attr("aria-hidden", "true"),
						),
						h.Main(
							h.ID("content"),
							h.Class("relative z-10"),
							about(p),
							section.Section("projects", "Projects", projectsBody),
							Skills(p.Skills),
							education(p.Education),
							section.Section("contact", "Contact",
								h.Div(
									h.Class("grid md:grid-cols-2 gap-8"),
									contact.DetailsView(contact.Details{Email: p.Contact.Email, Phone: p.Contact.Phone, Note: p.Contact.Note}),
									contact.FormView(p.Contact.Email, opts.Contact, opts.ContactErrors),
								),
							),
						),
					),
					footer(p, opts.Year),
				),
				h.Script(h.Src("/static/app.js"), h.Defer()),
			),
		),
	})
}
