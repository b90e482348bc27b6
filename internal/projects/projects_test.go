package projects

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulcj/portfolio/internal/logger"
)

const sampleJSON = `[
  {"title": "ANPR", "short": "Plates", "tech": ["Python", "YOLO"], "link": "https://a.example", "github": "https://github.com/x/anpr", "stars": 12},
  {"title": "Diffusion", "short": "Images", "tech": ["PyTorch"], "link": "https://b.example"},
  {"title": "Phishing", "short": "Detect", "tech": [], "link": "https://c.example", "github": ""}
]`

func renderNode(t *testing.T, s Snapshot) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, View(s).Render(&b))
	return b.String()
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	list, err := Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, Project{
		Title:  "ANPR",
		Short:  "Plates",
		Tech:   []string{"Python", "YOLO"},
		Link:   "https://a.example",
		GitHub: "https://github.com/x/anpr",
	}, list[0])
	assert.Empty(t, list[1].GitHub)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("{not json"))
	require.Error(t, err)
}

func TestLoaderRendersOneCardPerProjectInOrder(t *testing.T) {
	t.Parallel()

	src := FSSource{FS: fstest.MapFS{"projects.json": {Data: []byte(sampleJSON)}}, Name: "projects.json"}
	loader := NewLoader(src, logger.Nop())

	snap := loader.Load(context.Background())
	require.Equal(t, StatusLoaded, snap.Status)
	require.False(t, snap.Loading())
	require.Len(t, snap.Projects, 3)

	out := renderNode(t, snap)
	assert.Equal(t, 3, strings.Count(out, "<article"))

	anpr := strings.Index(out, ">ANPR<")
	diffusion := strings.Index(out, ">Diffusion<")
	phishing := strings.Index(out, ">Phishing<")
	require.True(t, anpr >= 0 && diffusion >= 0 && phishing >= 0)
	assert.Less(t, anpr, diffusion)
	assert.Less(t, diffusion, phishing)

	assert.Contains(t, out, ">Python</span>")
	assert.Contains(t, out, ">YOLO</span>")
	assert.Contains(t, out, ">PyTorch</span>")

	// Only the first project carries a GitHub link.
	assert.Equal(t, 1, strings.Count(out, ">GitHub</a>"))
	assert.Contains(t, out, `href="https://github.com/x/anpr"`)
}

func TestLoaderFailureSettlesEmpty(t *testing.T) {
	t.Parallel()

	boom := errors.New("network down")
	loader := NewLoader(SourceFunc(func(context.Context) ([]Project, error) {
		return nil, boom
	}), logger.Nop())

	var snap Snapshot
	require.NotPanics(t, func() { snap = loader.Load(context.Background()) })

	assert.Equal(t, StatusFailed, snap.Status)
	assert.False(t, snap.Loading())
	assert.Empty(t, snap.Projects)
	assert.ErrorIs(t, snap.Err, boom)

	out := renderNode(t, snap)
	assert.NotContains(t, out, "<article")
	assert.NotContains(t, out, "Loading projects")
}

func TestLoaderFetchesOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	loader := NewLoader(SourceFunc(func(context.Context) ([]Project, error) {
		calls++
		return []Project{{Title: "One"}}, nil
	}), logger.Nop())

	first := loader.Start(context.Background())
	second := loader.Start(context.Background())
	require.Same(t, first, second)
	require.NoError(t, first.Wait(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCancelledTaskDiscardsResult(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	loader := NewLoader(SourceFunc(func(ctx context.Context) ([]Project, error) {
		<-release
		return []Project{{Title: "Late"}}, nil
	}), logger.Nop())

	task := loader.Start(context.Background())
	task.Cancel()
	close(release)

	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("task did not finish")
	}

	snap := loader.Snapshot()
	assert.Equal(t, StatusLoading, snap.Status)
	assert.Empty(t, snap.Projects)
}

func TestLoadingView(t *testing.T) {
	t.Parallel()

	out := renderNode(t, Snapshot{Status: StatusLoading})
	assert.Contains(t, out, "Loading projects…")

	var b strings.Builder
	require.NoError(t, Placeholder().Render(&b))
	assert.Contains(t, b.String(), `hx-get="/sections/projects"`)
	assert.Contains(t, b.String(), `hx-trigger="load"`)
}

func TestHTTPSourceDisablesCaching(t *testing.T) {
	t.Parallel()

	var gotCacheControl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCacheControl = r.Header.Get("Cache-Control")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	list, err := HTTPSource{Client: srv.Client(), URL: srv.URL + ResourcePath}.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, "no-store", gotCacheControl)
}

func TestHTTPSourceRejectsErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := HTTPSource{Client: srv.Client(), URL: srv.URL}.Fetch(context.Background())
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}
