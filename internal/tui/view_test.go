package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/siterender/internal/site"
)

func TestViewListsPages(t *testing.T) {
	t.Parallel()

	out := loaded(t).View()
	assert.Contains(t, out, "Bistro Lumiere")
	assert.Contains(t, out, "1. Home")
	assert.Contains(t, out, "2. About")
	assert.Contains(t, out, "Hero · Menu · ?pricing-table · Footer")
	assert.Contains(t, out, "quit")
}

func TestViewBeforeLoad(t *testing.T) {
	t.Parallel()

	out := NewModel("bistro.json", nil).View()
	assert.Contains(t, out, "loading bistro.json")
	assert.Contains(t, out, "Waiting for the site definition")
}

func TestViewSiteWithoutPages(t *testing.T) {
	t.Parallel()

	m := NewModel("empty.json", nil)
	m, _ = send(t, m, SiteLoadedMsg{Site: &site.Definition{Metadata: site.Metadata{Title: "Empty"}}})
	assert.Contains(t, m.View(), "This site has no pages.")
}

func TestViewShowsErrorBanner(t *testing.T) {
	t.Parallel()

	m := loaded(t)
	m, _ = send(t, m, LoadErrorMsg{Err: assert.AnError})
	assert.Contains(t, m.View(), "Reload failed")
}
