// Package document models the page-lifetime state that components write to:
// the title, head tags, keyed script blocks and the root element's classes,
// attributes and inline style. Components receive a *Document instead of
// touching a global, and the layout renders whatever they left behind.
package document

import (
	"sort"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Meta is a <meta> tag identified by Attr ("name" or "property") and Key.
type Meta struct {
	Attr    string
	Key     string
	Content string
}

// Script is a <script> block owned by whoever injected it under ID.
type Script struct {
	ID   string
	Type string
	Body string
}

// Document is not safe for concurrent use; each render owns one.
type Document struct {
	title       string
	metas       []Meta
	scripts     []Script
	rootClasses map[string]struct{}
	rootAttrs   map[string]string
	rootStyle   map[string]string
}

// New returns an empty document.
func New() *Document {
	return &Document{
		rootClasses: map[string]struct{}{},
		rootAttrs:   map[string]string{},
		rootStyle:   map[string]string{},
	}
}

func (d *Document) SetTitle(title string) { d.title = title }

func (d *Document) Title() string { return d.title }

// UpsertMeta updates the matching tag in place, or appends a new one.
func (d *Document) UpsertMeta(attr, key, content string) {
	for i := range d.metas {
		if d.metas[i].Attr == attr && d.metas[i].Key == key {
			d.metas[i].Content = content
			return
		}
	}
	d.metas = append(d.metas, Meta{Attr: attr, Key: key, Content: content})
}

// Meta returns the content of the tag identified by attr/key.
func (d *Document) Meta(attr, key string) (string, bool) {
	for _, m := range d.metas {
		if m.Attr == attr && m.Key == key {
			return m.Content, true
		}
	}
	return "", false
}

// Metas returns a copy of the head tags in insertion order.
func (d *Document) Metas() []Meta {
	return append([]Meta(nil), d.metas...)
}

// UpsertScript keeps at most one block per id.
func (d *Document) UpsertScript(id, typ, body string) {
	for i := range d.scripts {
		if d.scripts[i].ID == id {
			d.scripts[i].Type = typ
			d.scripts[i].Body = body
			return
		}
	}
	d.scripts = append(d.scripts, Script{ID: id, Type: typ, Body: body})
}

// RemoveScript deletes the block with id and reports whether it existed.
func (d *Document) RemoveScript(id string) bool {
	for i := range d.scripts {
		if d.scripts[i].ID == id {
			d.scripts = append(d.scripts[:i], d.scripts[i+1:]...)
			return true
		}
	}
	return false
}

// Scripts returns a copy of the script blocks in insertion order.
func (d *Document) Scripts() []Script {
	return append([]Script(nil), d.scripts...)
}

func (d *Document) ToggleRootClass(name string, on bool) {
	if on {
		d.rootClasses[name] = struct{}{}
		return
	}
	delete(d.rootClasses, name)
}

func (d *Document) HasRootClass(name string) bool {
	_, ok := d.rootClasses[name]
	return ok
}

// RootClasses returns the root classes sorted by name.
func (d *Document) RootClasses() []string {
	classes := make([]string, 0, len(d.rootClasses))
	for name := range d.rootClasses {
		classes = append(classes, name)
	}
	sort.Strings(classes)
	return classes
}

// SetRootAttr sets an attribute on the root element; an empty value removes it.
func (d *Document) SetRootAttr(name, value string) {
	if value == "" {
		delete(d.rootAttrs, name)
		return
	}
	d.rootAttrs[name] = value
}

func (d *Document) RootAttr(name string) string { return d.rootAttrs[name] }

// SetRootStyle sets an inline style property on the root; an empty value clears it.
func (d *Document) SetRootStyle(property, value string) {
	if value == "" {
		delete(d.rootStyle, property)
		return
	}
	d.rootStyle[property] = value
}

// RootStyle renders the root inline style, properties sorted by name.
func (d *Document) RootStyle() string {
	props := make([]string, 0, len(d.rootStyle))
	for prop := range d.rootStyle {
		props = append(props, prop)
	}
	sort.Strings(props)

	parts := make([]string, 0, len(props))
	for _, prop := range props {
		parts = append(parts, prop+": "+d.rootStyle[prop])
	}
	return strings.Join(parts, "; ")
}

// RootAttributes renders the class, style and extra attributes of <html>.
func (d *Document) RootAttributes() g.Node {
	nodes := []g.Node{h.Lang("en")}
	if classes := d.RootClasses(); len(classes) > 0 {
		nodes = append(nodes, h.Class(strings.Join(classes, " ")))
	}
	if style := d.RootStyle(); style != "" {
		nodes = append(nodes, g.Attr("style", style))
	}

	names := make([]string, 0, len(d.rootAttrs))
	for name := range d.rootAttrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		nodes = append(nodes, g.Attr(name, d.rootAttrs[name]))
	}
	return g.Group(nodes)
}

// Head renders the title, meta tags and script blocks. Script bodies are
// written raw, so callers must only inject trusted or JSON-encoded content.
func (d *Document) Head(extra ...g.Node) g.Node {
	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
		h.TitleEl(g.Text(d.title)),
		g.Map(d.metas, func(m Meta) g.Node {
			return h.Meta(g.Attr(m.Attr, m.Key), h.Content(m.Content))
		}),
		g.Group(extra),
		g.Map(d.scripts, func(s Script) g.Node {
			return h.Script(h.ID(s.ID), h.Type(s.Type), g.Raw(s.Body))
		}),
	)
}
