package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rahulcj/portfolio/internal/assets"
	"github.com/rahulcj/portfolio/internal/page"
	"github.com/rahulcj/portfolio/internal/projects"
	"github.com/rahulcj/portfolio/internal/theme"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the portfolio as static files",
		Long: `The build command renders index.html with the project list inlined and
copies every static asset (projects.json, scripts, styles, resume) next to it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			return a.build(cmd, out)
		},
	}
	cmd.Flags().String("out", "public", "Output directory")
	return cmd
}

func (a *app) build(cmd *cobra.Command, outDir string) error {
	static, err := assets.Static(a.cfg.StaticDir)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(outDir); err != nil {
		return fmt.Errorf("clean output directory %q: %w", outDir, err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %q: %w", outDir, err)
	}

	if err := copyStatic(static, outDir); err != nil {
		return err
	}

	loader := projects.NewLoader(a.projectSource(static), a.log.With("component", "projects"))
	snap := loader.Load(cmd.Context())
	if snap.Loading() {
		return cmd.Context().Err()
	}

	f, err := os.Create(filepath.Join(outDir, "index.html"))
	if err != nil {
		return fmt.Errorf("create index.html: %w", err)
	}
	defer f.Close()

	err = a.site.Render(f, page.Options{
		Theme:    theme.System,
		Origin:   a.cfg.BaseURL,
		Year:     time.Now().Year(),
		Projects: &snap,
	})
	if err != nil {
		return fmt.Errorf("render index.html: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	a.log.Info("site built", "out", outDir, "projects", len(snap.Projects), "status", snap.Status.String())
	return nil
}

// copyStatic mirrors the static tree; static files land under static/ except
// the root-level resources the page links directly.
func copyStatic(static fs.FS, outDir string) error {
	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		dest := filepath.Join(outDir, "static", filepath.FromSlash(path))
		if path == "projects.json" || path == "resume.pdf" {
			dest = filepath.Join(outDir, path)
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("create %q: %w", filepath.Dir(dest), err)
		}

		b, err := fs.ReadFile(static, path)
		if err != nil {
			return fmt.Errorf("read %q: %w", path, err)
		}
		if err := os.WriteFile(dest, b, 0o644); err != nil {
			return fmt.Errorf("write %q: %w", dest, err)
		}
		return nil
	})
}
