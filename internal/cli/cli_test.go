package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWritesSite(t *testing.T) {
	t.Setenv("PORTFOLIO_PROJECTS_URL", "")
	t.Setenv("PORTFOLIO_STATIC_DIR", "")
	t.Setenv("PORTFOLIO_PROFILE", "")
	out := filepath.Join(t.TempDir(), "public")

	root := NewRootCmd()
	root.SetArgs([]string{"build", "--out", out})
	var stderr bytes.Buffer
	root.SetErr(&stderr)
	require.NoError(t, root.Execute())

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	html := string(index)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Equal(t, 5, strings.Count(html, "<article"))
	assert.NotContains(t, html, `hx-get="/sections/projects"`)

	// The export has no server: the form and nav must run in the browser.
	assert.NotContains(t, html, "hx-post")
	assert.Contains(t, html, `data-recipient="rahulchowdhary.j@gmail.com"`)
	assert.Contains(t, html, `data-theme-cycle="light dark system"`)
	assert.NotContains(t, html, `href="/#`)

	for _, name := range []string{"projects.json", "static/app.js", "static/site.css"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, stderr.String(), "site built")
}

func TestBuildWithFailingProjectsStillRenders(t *testing.T) {
	t.Setenv("PORTFOLIO_PROFILE", "")
	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "projects.json"), []byte("{broken"), 0o600))
	out := filepath.Join(t.TempDir(), "public")

	root := NewRootCmd()
	root.SetArgs([]string{"build", "--out", out, "--static-dir", static})
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, root.Execute())

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `data-status="failed"`)
}

func TestInvalidProfileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: ''\n"), 0o600))

	root := NewRootCmd()
	root.SetArgs([]string{"build", "--out", t.TempDir(), "--profile", path})
	root.SetErr(&bytes.Buffer{})
	require.Error(t, root.Execute())
}
