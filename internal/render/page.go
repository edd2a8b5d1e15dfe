package render

import (
	"bytes"
	"html/template"
	"io"

	"github.com/alexisbeaulieu97/siterender/internal/site"
	"github.com/alexisbeaulieu97/siterender/internal/theme"
)

// PageStats counts what happened to a page's sections.
type PageStats struct {
	Rendered int
	Skipped  int
}

// SelectPage returns the page whose slug equals slug. An empty or unmatched
// slug selects the first page; a site without pages selects nothing.
func SelectPage(def *site.Definition, slug string) (*site.Page, bool) {
	if def == nil || len(def.Pages) == 0 {
		return nil, false
	}
	if page, ok := def.PageBySlug(slug); ok {
		return page, true
	}
	return &def.Pages[0], true
}

type pageData struct {
	ID   string
	Slug string
	Body template.HTML
}

// RenderPage writes every section of page in document order.
func (r *Renderer) RenderPage(w io.Writer, page *site.Page, vars theme.Snapshot) (PageStats, error) {
	var stats PageStats
	if page == nil {
		return stats, r.RenderNotFound(w)
	}

	var body bytes.Buffer
	for _, sec := range page.Sections {
		ok, err := r.RenderSection(&body, sec, vars)
		if err != nil {
			return stats, err
		}
		if ok {
			stats.Rendered++
		} else {
			stats.Skipped++
		}
	}

	data := pageData{ID: page.ID, Slug: page.Slug, Body: template.HTML(body.String())}
	return stats, r.templates.ExecuteTemplate(w, "page", data)
}

// RenderNotFound writes the visible empty state shown when there is no page.
func (r *Renderer) RenderNotFound(w io.Writer) error {
	return r.templates.ExecuteTemplate(w, "not-found", nil)
}
