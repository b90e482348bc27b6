// Package page assembles the navigation bar, hero and content sections into
// the single portfolio page and owns its document metadata.
package page

import (
	"encoding/json"
	"fmt"

	"github.com/rahulcj/portfolio/internal/config"
	"github.com/rahulcj/portfolio/internal/document"
)

// PersonScriptID identifies the structured-data block the composer owns.
const PersonScriptID = "person-ld"

type organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type person struct {
	Context  string        `json:"@context"`
	Type     string        `json:"@type"`
	Name     string        `json:"name"`
	JobTitle string        `json:"jobTitle"`
	Email    string        `json:"email"`
	URL      string        `json:"url"`
	SameAs   []string      `json:"sameAs"`
	WorksFor *organization `json:"worksFor,omitempty"`
}

// Composer writes the page metadata for a profile.
type Composer struct {
	profile config.Profile
}

func NewComposer(p config.Profile) *Composer {
	return &Composer{profile: p}
}

// Mount sets the title and metadata tags, updating existing tags in place,
// and injects the Person structured data. The returned function removes
// only the structured data; the tags stay for the page's lifetime.
func (c *Composer) Mount(doc *document.Document, origin string) (func(), error) {
	p := c.profile

	doc.SetTitle(p.Meta.Title)
	doc.UpsertMeta("name", "description", p.Meta.Description)
	doc.UpsertMeta("property", "og:title", p.Meta.Title)
	doc.UpsertMeta("property", "og:description", p.Meta.OGDescription)
	doc.UpsertMeta("property", "og:type", "website")

	ld := person{
		Context:  "https://schema.org",
		Type:     "Person",
		Name:     p.Name,
		JobTitle: p.Headline,
		Email:    "mailto:" + p.Contact.Email,
		URL:      origin,
		SameAs:   p.SameAs,
	}
	if ld.SameAs == nil {
		ld.SameAs = []string{}
	}
	if p.Org.Name != "" {
		ld.WorksFor = &organization{Type: p.Org.Type, Name: p.Org.Name}
	}

	// json.Marshal escapes <, > and &, so the body is safe inside <script>.
	body, err := json.Marshal(ld)
	if err != nil {
		return nil, fmt.Errorf("encode structured data: %w", err)
	}
	doc.UpsertScript(PersonScriptID, "application/ld+json", string(body))

	return func() { doc.RemoveScript(PersonScriptID) }, nil
}

// MountContent enables smooth in-page scrolling while the main content is
// mounted.
func MountContent(doc *document.Document) func() {
	doc.SetRootStyle("scroll-behavior", "smooth")
	return func() { doc.SetRootStyle("scroll-behavior", "") }
}
