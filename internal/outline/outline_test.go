package outline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/siterender/internal/site"
	"github.com/alexisbeaulieu97/siterender/internal/site/sitetest"
)

func TestSiteListsPagesAndSections(t *testing.T) {
	t.Parallel()

	def, err := site.Parse([]byte(sitetest.Bistro), site.FormatJSON)
	require.NoError(t, err)

	out := Site(def)
	for _, want := range []string{
		"Bistro Lumiere",
		"Seasonal bistro in the old town",
		"#c2410c",
		"Playfair Display / Inter",
		"Home",
		"About",
		"Hero",
		"Taste the season",
		"Menu",
		"2 categories",
		"2 items",
		"Footer",
		"2 opening-hours rows",
		`unknown section type "pricing-table"`,
	} {
		assert.Contains(t, out, want)
	}

	assert.Less(t, strings.Index(out, "Home"), strings.Index(out, "About"))
}

func TestSiteWithoutPages(t *testing.T) {
	t.Parallel()

	def := sitetest.Definition(nil)
	assert.Contains(t, Site(def), "no pages")
	assert.Empty(t, Site(nil))
}

func TestPageWithoutSections(t *testing.T) {
	t.Parallel()

	out := Page(site.Page{ID: "blank", Slug: "/blank"}, NewStyles(sitetest.Theme()))
	assert.Contains(t, out, "blank")
	assert.Contains(t, out, "(empty)")
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     site.Kind
		headline string
		details  []string
	}{
		{site.KindHeader, "Bistro Lumiere", []string{"1 link"}},
		{site.KindHero, "Taste the season", []string{site.HeroStandard}},
		{site.KindServices, "What we offer", []string{"1 service"}},
		{site.KindContact, "Visit us", []string{"3 fields"}},
		{site.KindCTA, "Book a table", nil},
		{site.KindMenu, "Our menu", []string{"1 category", "1 item"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			sum := Summarize(sitetest.Section("s", tt.kind))
			assert.Empty(t, sum.Warning)
			assert.Equal(t, tt.headline, sum.Headline)
			for _, d := range tt.details {
				assert.Contains(t, sum.Details, d)
			}
		})
	}
}

func TestSummarizeFlagsUnrenderableSections(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "no content", Summarize(site.Section{ID: "x", Type: "hero"}).Warning)

	sum := Summarize(sitetest.RawSection("p", "pricing-table", `{}`))
	assert.Contains(t, sum.Warning, "pricing-table")
}

func TestKindLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CTA", KindLabel(site.KindCTA))
	assert.Equal(t, "Testimonials", KindLabel(site.KindTestimonials))
	assert.Equal(t, "Hero", KindLabel(site.KindHero))
}
