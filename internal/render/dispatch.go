package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/siterender/internal/logger"
	"github.com/alexisbeaulieu97/siterender/internal/site"
	"github.com/alexisbeaulieu97/siterender/internal/theme"
	siteerrors "github.com/alexisbeaulieu97/siterender/pkg/errors"
)

// blockData is what every block template receives.
type blockData struct {
	Section site.Section
	Content any
	Theme   theme.Snapshot
}

// Accent resolves the accent colour, falling back to the primary colour
// when the theme defines none.
func (d blockData) Accent() template.CSS {
	if d.Theme.Has(theme.ColorAccent) {
		return "var(--color-accent)"
	}
	return "var(--color-primary)"
}

// AccentFont resolves the accent font, falling back to the heading font.
func (d blockData) AccentFont() template.CSS {
	if d.Theme.Has(theme.FontAccent) {
		return "var(--font-accent)"
	}
	return "var(--font-heading)"
}

type sectionData struct {
	ID    string
	Kind  site.Kind
	Class string
	Style template.CSS
	Body  template.HTML
}

// blockVisitor renders the content it is handed into buf.
type blockVisitor struct {
	r       *Renderer
	buf     *bytes.Buffer
	section site.Section
	vars    theme.Snapshot
	skipped string
}

var _ site.Visitor = (*blockVisitor)(nil)

func (v *blockVisitor) Header(c *site.HeaderContent) error   { return v.exec(site.KindHeader, c) }
func (v *blockVisitor) Hero(c *site.HeroContent) error       { return v.exec(site.KindHero, c) }
func (v *blockVisitor) About(c *site.AboutContent) error     { return v.exec(site.KindAbout, c) }
func (v *blockVisitor) Services(c *site.ServicesContent) error {
	return v.exec(site.KindServices, c)
}
func (v *blockVisitor) Features(c *site.FeaturesContent) error {
	return v.exec(site.KindFeatures, c)
}
func (v *blockVisitor) Testimonials(c *site.TestimonialsContent) error {
	return v.exec(site.KindTestimonials, c)
}
func (v *blockVisitor) Contact(c *site.ContactContent) error { return v.exec(site.KindContact, c) }
func (v *blockVisitor) Gallery(c *site.GalleryContent) error { return v.exec(site.KindGallery, c) }
func (v *blockVisitor) CTA(c *site.CTAContent) error         { return v.exec(site.KindCTA, c) }
func (v *blockVisitor) Footer(c *site.FooterContent) error   { return v.exec(site.KindFooter, c) }
func (v *blockVisitor) Menu(c *site.MenuContent) error       { return v.exec(site.KindMenu, c) }

func (v *blockVisitor) Unknown(c *site.UnknownContent) error {
	v.skipped = c.Reason()
	return nil
}

func (v *blockVisitor) exec(kind site.Kind, content any) error {
	var body bytes.Buffer
	data := blockData{Section: v.section, Content: content, Theme: v.vars}
	if err := v.r.templates.ExecuteTemplate(&body, blockTemplate(kind), data); err != nil {
		return err
	}

	wrapper := sectionData{
		ID:    v.section.ID,
		Kind:  kind,
		Class: sectionClass(kind, v.section.Styles),
		Style: sectionStyle(v.section.Styles),
		Body:  template.HTML(body.String()),
	}
	return v.r.templates.ExecuteTemplate(v.buf, "section", wrapper)
}

// RenderSection writes one section. Sections that cannot be rendered (unknown
// type, undecodable content, a failing renderer) produce no output and one
// diagnostic; only write errors on w are returned.
func (r *Renderer) RenderSection(w io.Writer, sec site.Section, vars theme.Snapshot) (bool, error) {
	log := sectionLogger(r.log, sec)

	if sec.Content == nil {
		log.Warn(fmt.Sprintf("section %q of type %q has no content", sec.ID, sec.Type))
		return false, nil
	}

	var buf bytes.Buffer
	visitor := &blockVisitor{r: r, buf: &buf, section: sec, vars: vars}
	if err := accept(sec, visitor); err != nil {
		log.Error(err, "section render failed")
		return false, nil
	}

	if visitor.skipped != "" {
		log.Warn(visitor.skipped)
		return false, nil
	}

	if _, err := buf.WriteTo(w); err != nil {
		return false, err
	}
	return true, nil
}

// accept isolates a single renderer so a panic skips only its section.
func accept(sec site.Section, v site.Visitor) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = siteerrors.NewRenderError(sec.ID, sec.Type, fmt.Errorf("panic: %v", p))
		}
	}()

	if err := sec.Content.Accept(v); err != nil {
		return siteerrors.NewRenderError(sec.ID, sec.Type, err)
	}
	return nil
}

func sectionClass(kind site.Kind, styles *site.Styles) string {
	class := "sg-section sg-section--" + string(kind)
	if styles != nil && strings.TrimSpace(styles.ClassName) != "" {
		class += " " + strings.TrimSpace(styles.ClassName)
	}
	return class
}

func sectionStyle(styles *site.Styles) template.CSS {
	if styles == nil {
		return ""
	}

	var parts []string
	add := func(property, value string) {
		value = strings.TrimSpace(value)
		if value == "" || theme.CheckValue(value) != nil {
			return
		}
		parts = append(parts, property+": "+value+";")
	}
	add("background-color", styles.BackgroundColor)
	add("padding", styles.Padding)
	add("margin", styles.Margin)

	return template.CSS(strings.Join(parts, " "))
}

func sectionLogger(log *logger.Logger, sec site.Section) *logger.Logger {
	return log.WithFields(map[string]any{"section_id": sec.ID, "section_type": sec.Type})
}
