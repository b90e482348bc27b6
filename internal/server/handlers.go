package server

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/rahulcj/portfolio/internal/contact"
	"github.com/rahulcj/portfolio/internal/nav"
	"github.com/rahulcj/portfolio/internal/page"
	"github.com/rahulcj/portfolio/internal/projects"
	"github.com/rahulcj/portfolio/internal/theme"
)

// nodeRender adapts a gomponents node to gin's render.Render.
type nodeRender struct {
	node g.Node
}

func (r nodeRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.node.Render(w)
}

func (r nodeRender) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{"text/html; charset=utf-8"}
	}
}

// pageRender renders the whole site for one request.
type pageRender struct {
	site *page.Site
	opts page.Options
}

func (r pageRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.site.Render(w, r.opts)
}

func (r pageRender) WriteContentType(w http.ResponseWriter) {
	nodeRender{}.WriteContentType(w)
}

func (s *Server) pageOptions(c *gin.Context) page.Options {
	store := theme.NewStore(theme.NewCookieStorage(c))
	return page.Options{
		Theme:      store.Preference(),
		SystemDark: theme.SystemPrefersDark(c.Request),
		MenuOpen:   c.Query(nav.MenuParam) == "open",
		Origin:     s.origin(c),
		Year:       s.now().Year(),
	}
}

func (s *Server) origin(c *gin.Context) string {
	if s.baseURL != "" {
		return s.baseURL
	}
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func (s *Server) recipient() string { return s.site.Profile().Contact.Email }

// Home page route
func (s *Server) handleIndex(c *gin.Context) {
	c.Render(http.StatusOK, pageRender{site: s.site, opts: s.pageOptions(c)})
}

// handleProjects runs the loader for this request. A client that goes away
// cancels the fetch and nothing is written.
func (s *Server) handleProjects(c *gin.Context) {
	loader := projects.NewLoader(s.projects, s.log.With("component", "projects"))
	snap := loader.Load(c.Request.Context())
	if snap.Loading() {
		return
	}
	c.Render(http.StatusOK, nodeRender{node: projects.View(snap)})
}

// handleContact serves visitors without scripts; the page script validates
// and opens the mail client itself. Nothing is sent from here.
func (s *Server) handleContact(c *gin.Context) {
	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		c.Render(http.StatusBadRequest, nodeRender{node: contact.FormView(s.recipient(), form, contact.Errors{})})
		return
	}

	target, errs := contact.Submit(s.recipient(), form)
	if !errs.OK() {
		opts := s.pageOptions(c)
		opts.Contact, opts.ContactErrors = form, errs
		c.Render(http.StatusOK, pageRender{site: s.site, opts: opts})
		return
	}
	c.Redirect(http.StatusSeeOther, target)
}

func (s *Server) handleTheme(c *gin.Context) {
	store := theme.NewStore(theme.NewCookieStorage(c))
	state := nav.State{Theme: store.Preference()}
	state.ToggleTheme(store)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleProjectsJSON(c *gin.Context) {
	b, err := fs.ReadFile(s.static, "projects.json")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "projects not found"})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/json; charset=utf-8", b)
}

func (s *Server) handleResume(c *gin.Context) {
	b, err := fs.ReadFile(s.static, "resume.pdf")
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("resume not found", "path", c.Request.URL.Path)
		c.String(http.StatusNotFound, "resume not available")
		return
	}
	if err != nil {
		s.log.Error(err, "read resume")
		c.String(http.StatusInternalServerError, "resume not available")
		return
	}
	c.Data(http.StatusOK, "application/pdf", b)
}
