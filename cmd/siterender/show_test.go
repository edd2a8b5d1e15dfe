package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShowPrintsOutline(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t)
	stdout, _, err := env.run("show", env.bistro)
	require.NoError(t, err)

	require.Contains(t, stdout, "Bistro Lumiere")
	require.Contains(t, stdout, "Hero")
	require.Contains(t, stdout, "Our menu")
}

func TestShowJSONOutput(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t)
	stdout, _, err := env.run("show", "--json", env.bistro)
	require.NoError(t, err)

	var payload showJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "Bistro Lumiere", payload.Title)
	require.Equal(t, "#c2410c", payload.Theme.Colors.Primary)
	require.Len(t, payload.Pages, 2)

	home := payload.Pages[0]
	require.Len(t, home.Sections, 4)
	require.Equal(t, "Taste the season", home.Sections[0].Headline)
	require.Contains(t, home.Sections[2].Warning, "pricing-table")
}

func TestBrowseFallsBackToOutline(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t)
	stdout, _, err := env.run("browse", env.bistro)
	require.NoError(t, err)
	require.Contains(t, stdout, "Bistro Lumiere")
	require.Contains(t, stdout, "About")
}
