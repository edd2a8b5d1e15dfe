package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("site.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "site.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: site.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("site.json", 0, stdErrors.New("unexpected EOF"))
	require.Equal(t, "parse error: site.json: unexpected EOF", err.Error())
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("pages[1].slug", "duplicate slug", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "pages[1].slug", validationErr.Field)
	require.Contains(t, validationErr.Message, "duplicate slug")
	require.Equal(t, "validation error: pages[1].slug: duplicate slug", err.Error())
}

func TestRenderErrorIncludesSectionContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("template failed")
	err := NewRenderError("hero-1", "hero", underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "hero-1", renderErr.SectionID)
	require.Equal(t, "hero", renderErr.Type)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "hero-1")
}

func TestStoreErrorIncludesBackend(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewStoreError("sqlite", "put", underlying)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, "sqlite", storeErr.Backend)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "store error [sqlite] put: disk full", err.Error())
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var renderErr *RenderError
	require.Empty(t, parseErr.Error())
	require.Nil(t, renderErr.Unwrap())
}
