// Package projects loads the project list from a static JSON resource and
// renders it as cards.
package projects

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/http"
)

// ResourcePath is where the site serves the project list.
const ResourcePath = "/projects.json"

// Project is one entry of projects.json. Unknown fields are ignored.
type Project struct {
	Title  string   `json:"title"`
	Short  string   `json:"short"`
	Tech   []string `json:"tech"`
	Link   string   `json:"link"`
	GitHub string   `json:"github,omitempty"`
}

// Decode parses an ordered list of projects.
func Decode(r io.Reader) ([]Project, error) {
	var list []Project
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return list, nil
}

// Source produces the project list.
type Source interface {
	Fetch(ctx context.Context) ([]Project, error)
}

// FetchError reports a non-success response from a remote source.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// HTTPSource fetches the list over HTTP with caching disabled.
type HTTPSource struct {
	Client *http.Client
	URL    string
}

func (s HTTPSource) Fetch(ctx context.Context) ([]Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: s.URL, StatusCode: resp.StatusCode}
	}
	return Decode(resp.Body)
}

// FSSource reads the list from a file, read fresh on every fetch.
type FSSource struct {
	FS   fs.FS
	Name string
}

func (s FSSource) Fetch(ctx context.Context) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.FS.Open(s.Name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Name, err)
	}
	defer f.Close()
	return Decode(f)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]Project, error)

func (f SourceFunc) Fetch(ctx context.Context) ([]Project, error) { return f(ctx) }
