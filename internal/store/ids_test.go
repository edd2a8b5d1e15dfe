package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bistro-lumiere", IDFromPath("/tmp/Bistro Lumiere.yaml"))
	assert.Equal(t, "yoga-loft", IDFromPath("sites/yoga_loft.json"))
	assert.True(t, strings.HasPrefix(IDFromPath("/tmp/___.json"), "site-"))
}

func TestValidateID(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateID("a"))
	assert.NoError(t, ValidateID("bistro-2"))
	assert.Error(t, ValidateID(""))
	assert.Error(t, ValidateID("-bistro"))
	assert.Error(t, ValidateID("Bistro"))
	assert.Error(t, ValidateID("../etc"))
	assert.Error(t, ValidateID(strings.Repeat("a", 65)))
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cafe-de-flore", Sanitize("  Cafe de Flore!! "))
	assert.Len(t, Sanitize(strings.Repeat("ab", 50)), siteIDMaxLength)
}
