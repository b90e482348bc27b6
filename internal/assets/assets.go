// Package assets embeds the default static files served by the site.
package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed static
var embedded embed.FS

// Static returns the static file tree: dir when set, otherwise the embedded
// defaults.
func Static(dir string) (fs.FS, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(embedded, "static")
}
