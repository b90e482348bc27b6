// Package theme stores the visitor's light/dark/system preference and applies
// the effective mode to the document root.
package theme

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rahulcj/portfolio/internal/document"
)

// StorageKey is the persisted key holding the preference.
const StorageKey = "theme"

// Preference is the visitor's chosen display mode.
type Preference string

const (
	Light  Preference = "light"
	Dark   Preference = "dark"
	System Preference = "system"
)

// Parse maps a stored value to a Preference; anything unknown is System.
func Parse(s string) Preference {
	switch p := Preference(strings.TrimSpace(strings.ToLower(s))); p {
	case Light, Dark, System:
		return p
	default:
		return System
	}
}

func (p Preference) String() string { return string(p) }

// Cycle rotates light -> dark -> system -> light.
func Cycle(p Preference) Preference {
	switch p {
	case Light:
		return Dark
	case Dark:
		return System
	default:
		return Light
	}
}

// ComputeIsDark reports whether the effective mode is dark.
func ComputeIsDark(p Preference, systemPrefersDark bool) bool {
	return p == Dark || (p == System && systemPrefersDark)
}

// ErrUnavailable is returned by storages that cannot be read or written.
var ErrUnavailable = errors.New("theme storage unavailable")

// Storage persists string values by key.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// MemoryStorage is a map-backed Storage.
type MemoryStorage map[string]string

func (m MemoryStorage) Get(key string) (string, error) {
	if m == nil {
		return "", ErrUnavailable
	}
	v, ok := m[key]
	if !ok {
		return "", nil
	}
	return v, nil
}

func (m MemoryStorage) Set(key, value string) error {
	if m == nil {
		return ErrUnavailable
	}
	m[key] = value
	return nil
}

// Store reads and writes the preference. When the storage fails, the store
// keeps the value in memory and never reports the failure.
type Store struct {
	storage Storage
	mem     Preference
}

// NewStore wraps storage, which may be nil.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Preference returns the current preference, System when nothing is stored.
func (s *Store) Preference() Preference {
	if s.mem != "" {
		return s.mem
	}
	if s.storage == nil {
		return System
	}
	v, err := s.storage.Get(StorageKey)
	if err != nil || v == "" {
		return System
	}
	return Parse(v)
}

// SetPreference persists p.
func (s *Store) SetPreference(p Preference) {
	p = Parse(string(p))
	s.mem = p
	if s.storage != nil {
		_ = s.storage.Set(StorageKey, string(p))
	}
}

// Toggle cycles the stored preference and returns the new value.
func (s *Store) Toggle() Preference {
	next := Cycle(s.Preference())
	s.SetPreference(next)
	return next
}

// Apply writes the effective mode to the document root.
func Apply(doc *document.Document, p Preference, systemPrefersDark bool) bool {
	dark := ComputeIsDark(p, systemPrefersDark)
	doc.ToggleRootClass("dark", dark)
	doc.SetRootAttr("data-theme", string(p))
	return dark
}

// ClientHintHeader carries the browser's colour scheme preference.
const ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

// SystemPrefersDark reads the colour scheme client hint from a request.
func SystemPrefersDark(r *http.Request) bool {
	return strings.EqualFold(strings.Trim(r.Header.Get(ClientHintHeader), `" `), "dark")
}
