package projects

import (
	"context"
	"sync"

	"github.com/rahulcj/portfolio/internal/logger"
)

// Status is the loader's lifecycle state.
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Snapshot is a point-in-time view of the loader.
type Snapshot struct {
	Status   Status
	Projects []Project
	Err      error
}

// Loading reports whether the fetch is still pending.
func (s Snapshot) Loading() bool { return s.Status == StatusLoading }

// Loader runs a single fetch and holds its result. A failed fetch settles
// into StatusFailed with no projects; it is never retried.
type Loader struct {
	src Source
	log *logger.Logger

	mu       sync.Mutex
	status   Status
	projects []Project
	err      error
	task     *Task
}

// NewLoader returns a loader in the loading state.
func NewLoader(src Source, log *logger.Logger) *Loader {
	return &Loader{src: src, log: log}
}

// Task is the handle of the in-flight fetch. Cancelling it discards the
// result, leaving the loader untouched.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel abandons the fetch.
func (t *Task) Cancel() { t.cancel() }

// Done is closed once the fetch returned, whether or not its result was
// applied.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the fetch returns or ctx ends.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start issues the fetch. Only the first call fetches; later calls return
// the same task.
func (l *Loader) Start(ctx context.Context) *Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.task != nil {
		return l.task
	}

	ctx, cancel := context.WithCancel(ctx)
	task := &Task{cancel: cancel, done: make(chan struct{})}
	l.task = task

	go func() {
		defer close(task.done)
		defer cancel()

		list, err := l.src.Fetch(ctx)
		l.apply(ctx, list, err)
	}()

	return task
}

func (l *Loader) apply(ctx context.Context, list []Project, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ctx.Err() != nil {
		l.log.Debug("projects fetch abandoned")
		return
	}
	if err != nil {
		l.status = StatusFailed
		l.projects = []Project{}
		l.err = err
		l.log.Error(err, "projects fetch failed")
		return
	}
	if list == nil {
		list = []Project{}
	}
	l.status = StatusLoaded
	l.projects = list
	l.log.Debug("projects loaded", "count", len(list))
}

// Snapshot returns the current state.
func (l *Loader) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot{
		Status:   l.status,
		Projects: append([]Project(nil), l.projects...),
		Err:      l.err,
	}
}

// Load starts the fetch and waits for it, returning the settled snapshot.
// If ctx ends first the snapshot is still loading.
func (l *Loader) Load(ctx context.Context) Snapshot {
	task := l.Start(ctx)
	_ = task.Wait(ctx)
	return l.Snapshot()
}
