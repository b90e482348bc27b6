package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rahulcj/portfolio/internal/validation"
)

//go:embed profile.yaml
var defaultProfile []byte

// Profile is the site's content: who the page is about and what it says.
type Profile struct {
	Name      string       `yaml:"name" validate:"notblank"`
	ShortName string       `yaml:"short_name"`
	Headline  string       `yaml:"headline" validate:"notblank"`
	Tagline   string       `yaml:"tagline"`
	About     string       `yaml:"about"`
	Resume    string       `yaml:"resume"`
	Meta      Meta         `yaml:"meta"`
	Org       Organization `yaml:"organization"`
	Contact   Contact      `yaml:"contact"`
	Skills    []Skill      `yaml:"skills" validate:"dive"`
	Education []string     `yaml:"education"`
	SameAs    []string     `yaml:"same_as"`
}

// Meta holds the document metadata strings.
type Meta struct {
	Title         string `yaml:"title" validate:"notblank"`
	Description   string `yaml:"description" validate:"notblank"`
	OGDescription string `yaml:"og_description"`
}

// Organization is where the person works or studies.
type Organization struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
}

// Contact is how visitors reach the owner.
type Contact struct {
	Email string `yaml:"email" validate:"loose_email"`
	Phone string `yaml:"phone"`
	Note  string `yaml:"note"`
}

// Skill is one proficiency bar.
type Skill struct {
	Name  string `yaml:"name" validate:"notblank"`
	Level int    `yaml:"level" validate:"min=0,max=100"`
}

// ProfileError reports a profile that could not be read or is invalid.
type ProfileError struct {
	Path string
	Err  error
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("profile %s: %v", e.Path, e.Err)
}

func (e *ProfileError) Unwrap() error { return e.Err }

// LoadProfile reads the profile at path, or the embedded default when path
// is empty.
func LoadProfile(path string) (Profile, error) {
	data := defaultProfile
	name := "(embedded)"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Profile{}, &ProfileError{Path: path, Err: err}
		}
		data, name = b, path
	}
	return ParseProfile(name, data)
}

// ParseProfile decodes and validates a YAML profile.
func ParseProfile(name string, data []byte) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Profile{}, &ProfileError{Path: name, Err: fmt.Errorf("decode: %w", err)}
	}
	p.applyDefaults()

	fields, err := validation.FieldErrors(validation.Validator().Struct(p))
	if err != nil {
		return Profile{}, &ProfileError{Path: name, Err: err}
	}
	if len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for field, tag := range fields {
			parts = append(parts, field+" ("+tag+")")
		}
		sort.Strings(parts)
		return Profile{}, &ProfileError{Path: name, Err: errors.New("invalid fields: " + strings.Join(parts, ", "))}
	}
	return p, nil
}

func (p *Profile) applyDefaults() {
	if p.ShortName == "" {
		p.ShortName = p.Name
	}
	if p.Resume == "" {
		p.Resume = "/resume.pdf"
	}
	if p.Meta.OGDescription == "" {
		p.Meta.OGDescription = p.Meta.Description
	}
	if p.Org.Type == "" {
		p.Org.Type = "Organization"
	}
	if p.SameAs == nil {
		p.SameAs = []string{}
	}
}
