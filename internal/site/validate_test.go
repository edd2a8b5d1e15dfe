package site_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/siterender/internal/site"
	"github.com/alexisbeaulieu97/siterender/internal/site/sitetest"
)

func issuePaths(issues []site.Issue) []string {
	paths := make([]string, 0, len(issues))
	for _, issue := range issues {
		paths = append(paths, issue.Path)
	}
	return paths
}

func TestValidateMinimalPayloadsAreClean(t *testing.T) {
	t.Parallel()

	var sections []site.Section
	for _, kind := range site.AllKinds() {
		sections = append(sections, sitetest.Section("s-"+string(kind), kind))
	}
	def := sitetest.Definition(map[string][]site.Section{"/": sections}, "/")

	issues := site.Validate(def)
	assert.Empty(t, issues)
}

func TestValidateReportsMissingRequiredFields(t *testing.T) {
	t.Parallel()

	def := sitetest.Definition(map[string][]site.Section{
		"/": {
			sitetest.RawSection("hero", "hero", `{"subtitle":"no title"}`),
			sitetest.RawSection("cta", "cta", `{"headline":"Go","primaryButton":{"text":"Now"}}`),
		},
	}, "/")

	issues := site.Validate(def)
	paths := issuePaths(issues)

	assert.Contains(t, paths, "pages[0].sections[0].content.title")
	assert.Contains(t, paths, "pages[0].sections[1].content.primaryButton.href")
	assert.True(t, site.HasErrors(issues))
}

func TestValidateUnknownTypesAreWarnings(t *testing.T) {
	t.Parallel()

	def, err := site.Parse([]byte(sitetest.Bistro), site.FormatJSON)
	require.NoError(t, err)

	issues := site.Validate(def)
	require.Len(t, issues, 1)
	assert.Equal(t, "pages[0].sections[2].type", issues[0].Path)
	assert.Equal(t, site.SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "pricing-table")
	assert.False(t, site.HasErrors(issues))
}

func TestValidateDocumentLevelChecks(t *testing.T) {
	t.Parallel()

	def := &site.Definition{
		Metadata: site.Metadata{Title: "x"},
		Theme:    sitetest.Theme(),
		Pages: []site.Page{
			{ID: "a", Slug: "/", Sections: []site.Section{sitetest.Section("dup", site.KindHero), sitetest.Section("dup", site.KindCTA)}},
			{ID: "b", Slug: "/"},
			{ID: "c", Slug: "no-leading-slash"},
		},
	}

	issues := site.Validate(def)
	paths := issuePaths(issues)

	assert.Contains(t, paths, "pages[0].sections[1].id")
	assert.Contains(t, paths, "pages[1].slug")
	assert.Contains(t, paths, "pages[2].slug")

	empty := site.Validate(&site.Definition{Metadata: site.Metadata{Title: "x"}, Theme: sitetest.Theme()})
	require.Len(t, empty, 1)
	assert.Equal(t, "pages", empty[0].Path)
	assert.Equal(t, site.SeverityWarning, empty[0].Severity)
}

func TestValidateRatingBounds(t *testing.T) {
	t.Parallel()

	def := sitetest.Definition(map[string][]site.Section{
		"/": {sitetest.RawSection("t", "testimonials", `{"title":"T","testimonials":[{"id":"1","quote":"q","author":"a","rating":9}]}`)},
	}, "/")

	paths := issuePaths(site.Validate(def))
	assert.Contains(t, paths, "pages[0].sections[0].content.testimonials[0].rating")
}

func TestValidateThemeRequiresCoreFields(t *testing.T) {
	t.Parallel()

	def := sitetest.Definition(nil)
	def.Theme.Colors.Primary = ""

	paths := issuePaths(site.Validate(def))
	assert.Contains(t, paths, "theme.colors.primary")
}

func TestValidateReportsRepairedValues(t *testing.T) {
	t.Parallel()

	def := sitetest.Definition(map[string][]site.Section{
		"/": {
			sitetest.RawSection("gallery", "gallery", `{"title":"Gallery","columns":"wide","images":[]}`),
		},
	}, "/")

	issues := site.Validate(def)
	require.Len(t, issues, 1)
	assert.Equal(t, "pages[0].sections[0].content.columns", issues[0].Path)
	assert.Equal(t, site.SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, `"wide" is not a valid number, default used`)
	assert.False(t, site.HasErrors(issues))
}
