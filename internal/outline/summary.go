package outline

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/siterender/internal/site"
)

// Summary is the short description of a section shown in outlines.
type Summary struct {
	Headline string
	Details  []string
	// Warning is set when the section will not be rendered.
	Warning string
}

// Summarize describes sec.
func Summarize(sec site.Section) Summary {
	if sec.Content == nil {
		return Summary{Warning: "no content"}
	}
	v := &summaryVisitor{}
	_ = sec.Content.Accept(v)
	return v.sum
}

type summaryVisitor struct {
	sum Summary
}

var _ site.Visitor = (*summaryVisitor)(nil)

func (v *summaryVisitor) set(headline string, details ...string) error {
	v.sum.Headline = headline
	for _, d := range details {
		if d != "" {
			v.sum.Details = append(v.sum.Details, d)
		}
	}
	return nil
}

func count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	if strings.HasSuffix(noun, "y") {
		return fmt.Sprintf("%d %sies", n, strings.TrimSuffix(noun, "y"))
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func (v *summaryVisitor) Header(c *site.HeaderContent) error {
	return v.set(c.CompanyName, count(len(c.Navigation), "link"))
}

func (v *summaryVisitor) Hero(c *site.HeroContent) error {
	details := []string{c.Variant}
	if c.Variant == site.HeroSlider {
		details = append(details, count(len(c.Slides), "slide"))
	}
	return v.set(c.Title, details...)
}

func (v *summaryVisitor) About(c *site.AboutContent) error {
	return v.set(c.Title, c.Variant)
}

func (v *summaryVisitor) Services(c *site.ServicesContent) error {
	return v.set(c.Title, c.Layout, count(len(c.Services), "service"))
}

func (v *summaryVisitor) Features(c *site.FeaturesContent) error {
	return v.set(c.Title, c.Layout, count(len(c.Features), "feature"))
}

func (v *summaryVisitor) Testimonials(c *site.TestimonialsContent) error {
	return v.set(c.Title, c.Layout, count(len(c.Testimonials), "testimonial"))
}

func (v *summaryVisitor) Contact(c *site.ContactContent) error {
	form := "no form"
	if c.FormVisible() {
		form = count(len(c.FormFields), "field")
	}
	return v.set(c.Title, form)
}

func (v *summaryVisitor) Gallery(c *site.GalleryContent) error {
	return v.set(c.Title, c.Layout, count(len(c.Images), "image"))
}

func (v *summaryVisitor) CTA(c *site.CTAContent) error {
	return v.set(c.Headline)
}

func (v *summaryVisitor) Footer(c *site.FooterContent) error {
	headline := c.CompanyName
	if headline == "" {
		headline = c.Copyright
	}
	details := []string{c.Variant}
	if c.Variant == site.FooterRestaurant && len(c.OpeningHours) > 0 {
		details = append(details, count(len(c.OpeningHours), "opening-hours row"))
	}
	return v.set(headline, details...)
}

func (v *summaryVisitor) Menu(c *site.MenuContent) error {
	items := 0
	for _, cat := range c.Categories {
		items += len(cat.Items)
	}
	return v.set(c.Title, count(len(c.Categories), "category"), count(items, "item"))
}

func (v *summaryVisitor) Unknown(c *site.UnknownContent) error {
	v.sum.Warning = c.Reason()
	return nil
}
