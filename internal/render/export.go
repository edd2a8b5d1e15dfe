package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/siterender/internal/site"
)

// ExportedPage is one file written by Export.
type ExportedPage struct {
	Slug string
	Path string
	Result
}

// PagePath maps a slug to a file path relative to the export root:
// "/" becomes "index.html" and "/about" becomes "about/index.html".
func PagePath(slug string) (string, error) {
	cleaned := path.Clean("/" + strings.TrimSpace(slug))
	if strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("slug %q escapes the export directory", slug)
	}
	if cleaned == "/" {
		return "index.html", nil
	}
	return filepath.Join(filepath.FromSlash(strings.TrimPrefix(cleaned, "/")), "index.html"), nil
}

// Export writes every page of def under dir, one document per slug.
func (c *Composer) Export(ctx context.Context, def *site.Definition, dir string) ([]ExportedPage, error) {
	if def == nil || len(def.Pages) == 0 {
		return nil, fmt.Errorf("site has no pages to export")
	}

	written := make(map[string]struct{}, len(def.Pages))
	var pages []ExportedPage

	for _, page := range def.Pages {
		if err := ctx.Err(); err != nil {
			return pages, err
		}

		rel, err := PagePath(page.Slug)
		if err != nil {
			return pages, err
		}
		if _, dup := written[rel]; dup {
			c.log.With("slug", page.Slug).Warn("duplicate slug skipped during export")
			continue
		}
		written[rel] = struct{}{}

		var buf bytes.Buffer
		result, err := c.Display(&buf, def, page.Slug)
		if err != nil {
			return pages, fmt.Errorf("render %s: %w", page.Slug, err)
		}

		target := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return pages, err
		}
		if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
			return pages, err
		}

		pages = append(pages, ExportedPage{Slug: page.Slug, Path: target, Result: result})
	}

	return pages, nil
}
