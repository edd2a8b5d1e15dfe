package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/siterender/internal/logger"
	"github.com/alexisbeaulieu97/siterender/internal/site"
	"github.com/alexisbeaulieu97/siterender/internal/site/sitetest"
	"github.com/alexisbeaulieu97/siterender/internal/theme"
)

type logEntry map[string]any

func newTestRenderer(t *testing.T) (*Renderer, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	r, err := New(Options{Logger: log, Markdown: true})
	require.NoError(t, err)
	return r, buf
}

func logEntries(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func renderSection(t *testing.T, r *Renderer, sec site.Section) (string, bool) {
	t.Helper()

	var out bytes.Buffer
	ok, err := r.RenderSection(&out, sec, themeSnapshot(sitetest.Theme()))
	require.NoError(t, err)
	return out.String(), ok
}

func themeSnapshot(th site.Theme) theme.Snapshot {
	scope := theme.NewScope(theme.ModeMerge)
	scope.Apply(th)
	return scope.Snapshot()
}

func bistro(t *testing.T) *site.Definition {
	t.Helper()

	def, err := site.Parse([]byte(sitetest.Bistro), site.FormatJSON)
	require.NoError(t, err)
	return def
}
