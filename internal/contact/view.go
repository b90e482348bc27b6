package contact

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/rahulcj/portfolio/internal/validation"
)

// Path receives form submissions from browsers without scripts.
const Path = "/contact"

// Details is the owner's direct contact information.
type Details struct {
	Email string
	Phone string
	Note  string
}

// DetailsView renders the direct contact block.
func DetailsView(d Details) g.Node {
	return h.Div(
		h.Class("space-y-2 text-slate-700 dark:text-slate-300"),
		h.P(
			g.Text("Email: "),
			h.A(h.Class("text-indigo-600 dark:text-indigo-400 hover:underline"), h.Href("mailto:"+d.Email), g.Text(d.Email)),
		),
		g.If(d.Phone != "", h.P(
			g.Text("Phone: "),
			h.A(h.Class("text-indigo-600 dark:text-indigo-400 hover:underline"), h.Href("tel:"+telephone(d.Phone)), g.Text(d.Phone)),
		)),
		g.If(d.Note != "", h.P(g.Text(d.Note))),
	)
}

// FormView renders the form with the current values and inline errors. The
// rules and messages are written onto the form so the browser validates and
// opens the mailto: link itself; the POST to Path only serves visitors
// without scripts.
func FormView(recipient string, f Form, errs Errors) g.Node {
	return g.El("form",
		h.ID("contact-form"),
		h.Method("post"),
		h.Action(Path),
		g.Attr("novalidate"),
		g.Attr("aria-label", "Contact form"),
		g.Attr("data-recipient", recipient),
		g.Attr("data-subject", Subject),
		h.Class("space-y-4"),
		field("name", "Name", errs["name"],
			h.Input(h.ID("name"), h.Name("name"), h.Type("text"), h.Value(f.Name), h.Required(), h.Class(inputClass),
				described("name", errs["name"]),
				g.Attr("data-rule", "required"),
			),
		),
		field("email", "Email", errs["email"],
			h.Input(h.ID("email"), h.Name("email"), h.Type("email"), h.Value(f.Email), h.Required(), h.Class(inputClass),
				described("email", errs["email"]),
				g.Attr("data-rule", "pattern"),
				g.Attr("data-pattern", validation.EmailPattern),
			),
		),
		field("message", "Message", errs["message"],
			h.Textarea(h.ID("message"), h.Name("message"), g.Attr("rows", "4"), h.Required(), h.Class(inputClass),
				described("message", errs["message"]),
				g.Attr("data-rule", "min"),
				g.Attr("data-min", strconv.Itoa(MinMessageLength)),
				g.Text(f.Message),
			),
		),
		h.Div(
			h.Class("flex items-center justify-end"),
			h.Button(
				h.Type("submit"),
				h.Class("inline-flex items-center justify-center rounded-md px-5 py-2.5 text-sm font-semibold text-white bg-gradient-to-r from-teal-500 to-indigo-600 shadow hover:opacity-95"),
				g.Text("Send message"),
			),
		),
	)
}

const inputClass = "mt-1 w-full rounded-md border-slate-300 dark:border-slate-700 dark:bg-slate-900/60 dark:text-slate-100 focus:border-teal-500 focus:ring-teal-500"

// field renders a labelled input. The error paragraph is always present so
// the browser can fill it; it is hidden while empty.
func field(id, label, errMsg string, input g.Node) g.Node {
	return h.Div(
		g.El("label",
			g.Attr("for", id),
			h.Class("block text-sm font-medium text-slate-700 dark:text-slate-300"),
			g.Text(label),
		),
		input,
		h.P(
			h.ID(id+"-error"),
			h.Class("mt-1 text-xs text-orange-600"),
			g.Attr("data-message", messages[id]),
			g.If(errMsg == "", g.Attr("hidden")),
			g.Text(errMsg),
		),
	)
}

// described ties an input to its error paragraph.
func described(id, errMsg string) g.Node {
	return g.Group{
		g.Attr("aria-describedby", id+"-error"),
		g.If(errMsg != "", g.Attr("aria-invalid", "true")),
	}
}

func telephone(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '+' || (r >= '0' && r <= '9') {
			out = append(out, r)
		}
	}
	return string(out)
}
