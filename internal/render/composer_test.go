package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/siterender/internal/site"
	"github.com/alexisbeaulieu97/siterender/internal/site/sitetest"
	"github.com/alexisbeaulieu97/siterender/internal/theme"
)

func newTestComposer(t *testing.T, mode Mode) (*Composer, *bytes.Buffer) {
	t.Helper()

	r, logs := newTestRenderer(t)
	return NewComposer(r, ComposerOptions{Mode: mode}), logs
}

func TestDisplayBistroFragment(t *testing.T) {
	t.Parallel()

	c, logs := newTestComposer(t, ModeFragment)

	var buf bytes.Buffer
	result, err := c.Display(&buf, bistro(t), "/")
	require.NoError(t, err)

	assert.Equal(t, Result{PageID: "home", Slug: "/", Found: true, Rendered: 3, Skipped: 1}, result)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<div class="sg-site"`))
	assert.NotContains(t, out, "<html")
	assert.Contains(t, out, "--color-primary: #c2410c;")
	assert.Contains(t, out, "--color-accent: #f59e0b;")
	assert.Contains(t, out, "--font-heading: Playfair Display;")
	assert.Contains(t, out, "Taste the season")
	assert.Contains(t, out, "Starters")
	assert.Contains(t, out, "Mains")
	assert.Contains(t, out, "24.50 EUR")
	assert.Contains(t, out, "Mon - Fri")
	assert.Contains(t, out, "10:00 - 23:00")
	assert.Contains(t, out, "sg-section--footer dark")
	assert.NotContains(t, out, "Lunch")

	entries := logEntries(t, logs)
	require.Len(t, entries, 1)
	assert.Equal(t, `unknown section type "pricing-table"`, entries[0]["message"])
}

func TestDisplaySelectsPageBySlug(t *testing.T) {
	t.Parallel()

	c, _ := newTestComposer(t, ModeFragment)

	var buf bytes.Buffer
	result, err := c.Display(&buf, bistro(t), "/about")
	require.NoError(t, err)

	assert.Equal(t, "about", result.PageID)
	assert.Contains(t, buf.String(), "<strong>1987</strong>")
	assert.NotContains(t, buf.String(), "Taste the season")
}

func TestDisplayDocument(t *testing.T) {
	t.Parallel()

	c, _ := newTestComposer(t, ModeDocument)

	var buf bytes.Buffer
	_, err := c.Display(&buf, bistro(t), "/about")
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<html lang="en">`)
	assert.Contains(t, out, "<title>About | Bistro Lumiere</title>")
	assert.Contains(t, out, `<meta name="description" content="Seasonal bistro in the old town">`)
	assert.Contains(t, out, `<meta property="og:image" content="https://cdn.bistro.test/og.jpg">`)
	assert.Contains(t, out, `<link rel="icon" href="/favicon.ico">`)
	assert.Contains(t, out, ".sg-site")

	buf.Reset()
	_, err = c.Display(&buf, bistro(t), "/")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<title>Bistro Lumiere</title>")
}

func TestDisplayWithoutPagesShowsNotFound(t *testing.T) {
	t.Parallel()

	c, _ := newTestComposer(t, ModeFragment)
	def := &site.Definition{Metadata: site.Metadata{Title: "Empty"}, Theme: sitetest.Theme()}

	var buf bytes.Buffer
	result, err := c.Display(&buf, def, "/")
	require.NoError(t, err)

	assert.False(t, result.Found)
	assert.Contains(t, buf.String(), "Page not found")
	assert.Contains(t, buf.String(), "--color-primary: #c2410c;")
}

func TestDisplayAfterJSONRoundTrip(t *testing.T) {
	t.Parallel()

	original := bistro(t)
	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := site.Parse(encoded, site.FormatJSON)
	require.NoError(t, err)

	c, _ := newTestComposer(t, ModeDocument)
	var first, second bytes.Buffer
	_, err = c.Display(&first, original, "/")
	require.NoError(t, err)
	_, err = c.Display(&second, decoded, "/")
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
}

func TestDisplayAfterYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := bistro(t)
	encoded, err := site.Encode(original, site.FormatYAML)
	require.NoError(t, err)

	decoded, err := site.Parse(encoded, site.FormatYAML)
	require.NoError(t, err)

	c, _ := newTestComposer(t, ModeFragment)
	var first, second bytes.Buffer
	_, err = c.Display(&first, original, "/")
	require.NoError(t, err)
	_, err = c.Display(&second, decoded, "/")
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
}

func TestDisplayReappliesThemeEachCall(t *testing.T) {
	t.Parallel()

	c, _ := newTestComposer(t, ModeFragment)
	def := bistro(t)

	var first, second bytes.Buffer
	_, err := c.Display(&first, def, "/")
	require.NoError(t, err)
	_, err = c.Display(&second, def, "/")
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())

	def.Theme.Colors.Primary = "#0f766e"
	var third bytes.Buffer
	_, err = c.Display(&third, def, "/")
	require.NoError(t, err)
	assert.Contains(t, third.String(), "--color-primary: #0f766e;")
	assert.NotContains(t, third.String(), "#c2410c")
}

func TestDisplayMergeKeepsPreviousVariables(t *testing.T) {
	t.Parallel()

	r, _ := newTestRenderer(t)
	merge := NewComposer(r, ComposerOptions{Mode: ModeFragment})
	reset := NewComposer(r, ComposerOptions{Mode: ModeFragment, Scope: theme.NewScope(theme.ModeReset)})

	def := bistro(t)
	for _, c := range []*Composer{merge, reset} {
		_, err := c.Display(&bytes.Buffer{}, def, "/")
		require.NoError(t, err)
	}

	def.Theme.Colors.Accent = ""
	var merged, resetOut bytes.Buffer
	_, err := merge.Display(&merged, def, "/")
	require.NoError(t, err)
	_, err = reset.Display(&resetOut, def, "/")
	require.NoError(t, err)

	assert.Contains(t, merged.String(), "--color-accent: #f59e0b;")
	assert.NotContains(t, resetOut.String(), "--color-accent")
}

func TestDisplayRejectsUnsafeThemeValue(t *testing.T) {
	t.Parallel()

	c, logs := newTestComposer(t, ModeFragment)
	def := bistro(t)
	def.Theme.Colors.Secondary = "red; } body { display: none"

	var buf bytes.Buffer
	_, err := c.Display(&buf, def, "/about")
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "display: none")
	assert.NotContains(t, buf.String(), "--color-secondary")

	entries := logEntries(t, logs)
	require.NotEmpty(t, entries)
	assert.Equal(t, "color-secondary", entries[0]["variable"])
}

func TestConcurrentComposersKeepThemesApart(t *testing.T) {
	t.Parallel()

	r, _ := newTestRenderer(t)
	colors := []string{"#111111", "#222222", "#333333", "#444444", "#555555", "#666666"}

	var wg sync.WaitGroup
	outputs := make([]string, len(colors))
	for i, color := range colors {
		wg.Add(1)
		go func(i int, color string) {
			defer wg.Done()

			def := sitetest.Definition(map[string][]site.Section{
				"/": {sitetest.Section("hero", site.KindHero)},
			}, "/")
			def.Theme.Colors.Primary = color

			c := NewComposer(r, ComposerOptions{Mode: ModeFragment})
			var buf bytes.Buffer
			for n := 0; n < 20; n++ {
				buf.Reset()
				if _, err := c.Display(&buf, def, "/"); err != nil {
					return
				}
			}
			outputs[i] = buf.String()
		}(i, color)
	}
	wg.Wait()

	for i, color := range colors {
		assert.Contains(t, outputs[i], fmt.Sprintf("--color-primary: %s;", color))
		for j, other := range colors {
			if i != j {
				assert.NotContains(t, outputs[i], other)
			}
		}
	}
}

func TestParseOutputMode(t *testing.T) {
	t.Parallel()

	mode, err := ParseOutputMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeDocument, mode)

	mode, err = ParseOutputMode("fragment")
	require.NoError(t, err)
	assert.Equal(t, ModeFragment, mode)

	_, err = ParseOutputMode("pdf")
	assert.Error(t, err)
}

func TestPagePath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/":           "index.html",
		"":            "index.html",
		"/about":      filepath.Join("about", "index.html"),
		"/menu/wine/": filepath.Join("menu", "wine", "index.html"),
	}
	for slug, want := range tests {
		got, err := PagePath(slug)
		require.NoError(t, err, slug)
		assert.Equal(t, want, got, slug)
	}
}

func TestExport(t *testing.T) {
	t.Parallel()

	c, _ := newTestComposer(t, ModeDocument)
	dir := t.TempDir()

	pages, err := c.Export(context.Background(), bistro(t), dir)
	require.NoError(t, err)
	require.Len(t, pages, 2)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Taste the season")

	about, err := os.ReadFile(filepath.Join(dir, "about", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(about), "<title>About | Bistro Lumiere</title>")

	assert.Equal(t, 3, pages[0].Rendered)
	assert.Equal(t, 1, pages[0].Skipped)
}

func TestExportCancelled(t *testing.T) {
	t.Parallel()

	c, _ := newTestComposer(t, ModeDocument)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Export(ctx, bistro(t), t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}
