// Package render turns site definitions into HTML.
//
// Renderer dispatches each section to the renderer of its kind, page.go
// composes sections into a page and Composer wraps a page with the site's
// theme scope.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/siterender/internal/logger"
	"github.com/alexisbeaulieu97/siterender/internal/site"
	"github.com/alexisbeaulieu97/siterender/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/site.css
var baseStylesheet string

// Options configures a Renderer.
type Options struct {
	Logger *logger.Logger
	// Markdown enables Markdown in long-form text fields.
	Markdown bool
}

// Renderer renders sections and pages. It holds no per-site state and is
// safe for concurrent use.
type Renderer struct {
	log       *logger.Logger
	templates *template.Template
	rich      *richText
}

// New parses the embedded block templates.
func New(opts Options) (*Renderer, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := &Renderer{log: log, rich: newRichText(opts.Markdown)}

	tmpl, err := template.New("blocks").Funcs(r.funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse block templates: %w", err)
	}

	for _, kind := range site.AllKinds() {
		if tmpl.Lookup(blockTemplate(kind)) == nil {
			return nil, fmt.Errorf("no template for section kind %q", kind)
		}
	}

	r.templates = tmpl
	return r, nil
}

// BaseStylesheet returns the stylesheet embedded in full documents.
func BaseStylesheet() string {
	return baseStylesheet
}

func blockTemplate(kind site.Kind) string {
	return "block/" + string(kind)
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": func(text string) template.HTML { return r.rich.Markdown(text) },
		"embed":    func(snippet string) template.HTML { return r.rich.Embed(snippet) },
		"stars":    stars,
		"rating":   clampRating,
		"initials": initials,
		"price":    formatPrice,
		"css":      cssValue,
	}
}

func clampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

// stars returns five flags with the first rating of them set.
func stars(rating int) []bool {
	rating = clampRating(rating)
	out := make([]bool, 5)
	for i := 0; i < rating; i++ {
		out[i] = true
	}
	return out
}

// formatPrice appends a currency symbol directly and a currency code after a space.
func formatPrice(p site.Price, currency string) string {
	switch {
	case currency == "":
		return p.Text
	case utf8.RuneCountInString(currency) > 1:
		return p.Text + " " + currency
	default:
		return p.Text + currency
	}
}

// cssValue passes a document-supplied style value through when it cannot
// leave its declaration, and the fallback otherwise.
func cssValue(value, fallback string) template.CSS {
	value = strings.TrimSpace(value)
	if value != "" && theme.CheckValue(value) == nil {
		return template.CSS(value)
	}
	return template.CSS(fallback)
}

func initials(name string) string {
	var letters []rune
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
		}
		if len(letters) == 2 {
			break
		}
	}
	return string(letters)
}
