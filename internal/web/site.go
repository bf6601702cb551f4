package web

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// WriteSite renders the page to dir/index.html and copies the static assets
// next to it. Asset paths in the page are made relative to dir.
func WriteSite(dir string, r *Renderer, t theme.Theme, opts RenderOptions) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	opts.AssetPrefix = "static/"
	opts.ToggleAction = ""

	var buf bytes.Buffer
	if err := r.Render(&buf, t, opts); err != nil {
		return nil, err
	}

	index := filepath.Join(dir, "index.html")
	if err := os.WriteFile(index, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", index, err)
	}
	written := []string{index}

	static := StaticFS()
	err := fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, "static", filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		written = append(written, target)
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("copy static assets: %w", err)
	}

	return written, nil
}
