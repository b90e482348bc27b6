// Package section renders the titled, anchorable regions of the page and
// tracks their one-time entrance reveal.
package section

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DefaultThreshold is the visible fraction that reveals a section.
const DefaultThreshold = 0.2

// Reveal is the entrance animation state of one region. Once shown it stays
// shown.
type Reveal struct {
	threshold float64
	shown     bool
}

// NewReveal returns a hidden region revealed at threshold (0 < t <= 1).
func NewReveal(threshold float64) *Reveal {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Reveal{threshold: threshold}
}

// Observe records the currently visible fraction and reports whether this
// call is the one that revealed the region.
func (r *Reveal) Observe(visible float64) bool {
	if r.shown || visible < r.threshold {
		return false
	}
	r.shown = true
	return true
}

func (r *Reveal) Shown() bool { return r.shown }

func (r *Reveal) Threshold() float64 { return r.threshold }

// State is the value of the data-reveal attribute.
func (r *Reveal) State() string {
	if r.shown {
		return "shown"
	}
	return "hidden"
}

// Attrs marks an element for the client-side reveal observer.
func (r *Reveal) Attrs() g.Node {
	return g.Group{
		g.Attr("data-reveal", r.State()),
		g.Attr("data-reveal-amount", strconv.FormatFloat(r.threshold, 'f', -1, 64)),
	}
}

// Section renders a heading and a content region, each with its own reveal
// at DefaultThreshold.
func Section(id, title string, children ...g.Node) g.Node {
	return SectionWith(DefaultThreshold, id, title, children...)
}

// SectionWith is Section with the visible fraction that reveals each part.
func SectionWith(threshold float64, id, title string, children ...g.Node) g.Node {
	return h.Section(
		h.ID(id),
		g.Attr("aria-labelledby", id+"-title"),
		h.Class("py-16 sm:py-20"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.H2(
				h.ID(id+"-title"),
				h.Class("reveal text-2xl sm:text-3xl font-bold text-slate-900 dark:text-white"),
				NewReveal(threshold).Attrs(),
				g.Text(title),
			),
			h.Div(
				h.Class("mt-6"),
				h.Div(
					h.Class("reveal"),
					NewReveal(threshold).Attrs(),
					g.Group(children),
				),
			),
		),
	)
}
