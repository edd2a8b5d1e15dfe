package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("<h1>Bistro</h1>\n<p>Open daily</p>\n")
	require.Empty(t, GenerateUnifiedDiff(content, content, "old", "new"))
}

func TestGenerateUnifiedDiff_SingleLineChange(t *testing.T) {
	t.Parallel()

	expected := []byte("<header>\n<h1>Bistro</h1>\n</header>\n")
	actual := []byte("<header>\n<h1>Brasserie</h1>\n</header>\n")

	result, stats := GenerateWithStats(expected, actual, "old.html", "new.html")

	require.NotEmpty(t, result)
	assert.Contains(t, result, "--- old.html")
	assert.Contains(t, result, "+++ new.html")
	assert.Contains(t, result, "-<h1>Bistro</h1>")
	assert.Contains(t, result, "+<h1>Brasserie</h1>")
	assert.Contains(t, result, " <header>")
	assert.Equal(t, Stats{Added: 1, Removed: 1}, stats)
	assert.True(t, stats.Changed())
}

func TestGenerateUnifiedDiff_AddedLines(t *testing.T) {
	t.Parallel()

	expected := []byte("a\nb\n")
	actual := []byte("a\nb\nc\nd\n")

	result, stats := GenerateWithStats(expected, actual, "old", "new")

	assert.Contains(t, result, "@@ -1,2 +1,4 @@")
	assert.Contains(t, result, "+c\n")
	assert.Contains(t, result, "+d\n")
	assert.Equal(t, 2, stats.Added)
	assert.Zero(t, stats.Removed)
}

func TestGenerateUnifiedDiff_Truncates(t *testing.T) {
	t.Parallel()

	var expected, actual strings.Builder
	for i := 0; i < maxDiffLines+10; i++ {
		fmt.Fprintf(&expected, "old %d\n", i)
		fmt.Fprintf(&actual, "new %d\n", i)
	}

	result := GenerateUnifiedDiff([]byte(expected.String()), []byte(actual.String()), "old", "new")
	assert.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
}
