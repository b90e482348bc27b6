package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rahulcj/portfolio/internal/contact"
	"github.com/rahulcj/portfolio/internal/logger"
	"github.com/rahulcj/portfolio/internal/page"
	"github.com/rahulcj/portfolio/internal/projects"
)

const shutdownTimeout = 5 * time.Second

// Options are the dependencies of the HTTP server.
type Options struct {
	Site     *page.Site
	Static   fs.FS
	Projects projects.Source
	BaseURL  string
	Log      *logger.Logger
	Now      func() time.Time
}

// Server hosts the portfolio over HTTP.
type Server struct {
	engine   *gin.Engine
	site     *page.Site
	static   fs.FS
	projects projects.Source
	baseURL  string
	log      *logger.Logger
	now      func() time.Time
}

// New builds the router.
func New(opts Options) (*Server, error) {
	if opts.Site == nil {
		return nil, errors.New("server: site is required")
	}
	if opts.Static == nil {
		return nil, errors.New("server: static files are required")
	}
	s := &Server{
		site:     opts.Site,
		static:   opts.Static,
		projects: opts.Projects,
		baseURL:  opts.BaseURL,
		log:      opts.Log,
		now:      opts.Now,
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.projects == nil {
		s.projects = projects.FSSource{FS: s.static, Name: "projects.json"}
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log, newSalt()), clientHints())
	s.routes(r)
	s.engine = r
	return s, nil
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.handleIndex)
	r.GET(projects.FragmentPath, s.handleProjects)
	r.POST(contact.Path, s.handleContact)
	r.POST("/theme", s.handleTheme)

	r.GET(projects.ResourcePath, s.handleProjectsJSON)
	r.GET("/resume.pdf", s.handleResume)
	r.StaticFS("/static", http.FS(s.static))
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
