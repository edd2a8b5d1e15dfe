package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/alexisbeaulieu97/siterender/internal/logger"
	"github.com/alexisbeaulieu97/siterender/internal/site"
	"github.com/alexisbeaulieu97/siterender/internal/theme"
)

// Mode selects the shape of Display's output.
type Mode string

const (
	// ModeFragment writes an embeddable element.
	ModeFragment Mode = "fragment"
	// ModeDocument writes a complete HTML document.
	ModeDocument Mode = "document"
)

// ParseOutputMode converts a string into a Mode.
func ParseOutputMode(value string) (Mode, error) {
	switch Mode(value) {
	case "", ModeDocument:
		return ModeDocument, nil
	case ModeFragment:
		return ModeFragment, nil
	}
	return "", fmt.Errorf("unknown output mode %q", value)
}

// ComposerOptions configures a Composer.
type ComposerOptions struct {
	Mode Mode
	// Scope receives the site's theme. A fresh merge scope is used when nil.
	Scope *theme.Scope
	// Lang is the document language, "en" when empty.
	Lang   string
	Logger *logger.Logger
}

// Result reports what Display rendered.
type Result struct {
	PageID   string
	Slug     string
	Found    bool
	Rendered int
	Skipped  int
}

// Composer displays a whole site: it applies the theme to its scope and then
// renders the selected page inside that scope. One Composer backs one preview.
type Composer struct {
	renderer *Renderer
	scope    *theme.Scope
	mode     Mode
	lang     string
	log      *logger.Logger
}

// NewComposer binds a renderer to a theme scope.
func NewComposer(r *Renderer, opts ComposerOptions) *Composer {
	scope := opts.Scope
	if scope == nil {
		scope = theme.NewScope(theme.ModeMerge)
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeDocument
	}
	lang := opts.Lang
	if lang == "" {
		lang = "en"
	}
	log := opts.Logger
	if log == nil {
		log = r.log
	}
	return &Composer{renderer: r, scope: scope, mode: mode, lang: lang, log: log}
}

// Scope returns the composer's theme scope.
func (c *Composer) Scope() *theme.Scope { return c.scope }

type siteData struct {
	Vars template.CSS
	Body template.HTML
}

type documentData struct {
	Lang       string
	PageTitle  string
	Metadata   site.Metadata
	Stylesheet template.CSS
	Body       template.HTML
}

// Display renders the page of def selected by slug. The theme is applied on
// every call, before any section is rendered.
func (c *Composer) Display(w io.Writer, def *site.Definition, slug string) (Result, error) {
	var result Result

	if def != nil {
		for _, rejected := range c.scope.Apply(def.Theme) {
			c.log.WithFields(map[string]any{"variable": string(rejected.Var)}).
				Warn(fmt.Sprintf("theme value for %s ignored: %s", rejected.Var, rejected.Reason))
		}
	}
	vars := c.scope.Snapshot()

	var body bytes.Buffer
	page, found := SelectPage(def, slug)
	result.Found = found
	if found {
		stats, err := c.renderer.RenderPage(&body, page, vars)
		if err != nil {
			return result, err
		}
		result.PageID = page.ID
		result.Slug = page.Slug
		result.Rendered = stats.Rendered
		result.Skipped = stats.Skipped
	} else {
		c.log.Warn("site has no pages")
		if err := c.renderer.RenderNotFound(&body); err != nil {
			return result, err
		}
	}

	var wrapped bytes.Buffer
	if err := c.renderer.templates.ExecuteTemplate(&wrapped, "site", siteData{Vars: vars.CSS(), Body: template.HTML(body.String())}); err != nil {
		return result, err
	}

	if c.mode == ModeFragment {
		_, err := wrapped.WriteTo(w)
		return result, err
	}

	doc := documentData{
		Lang:       c.lang,
		Stylesheet: template.CSS(baseStylesheet),
		Body:       template.HTML(wrapped.String()),
	}
	if def != nil {
		doc.Metadata = def.Metadata
	}
	if found && page.Slug != "/" {
		doc.PageTitle = page.Title
	}
	return result, c.renderer.templates.ExecuteTemplate(w, "document", doc)
}
