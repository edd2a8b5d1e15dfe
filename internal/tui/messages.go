package tui

import "github.com/alexisbeaulieu97/siterender/internal/site"

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewHelp
)

// SiteLoadedMsg carries a freshly loaded definition.
type SiteLoadedMsg struct {
	Site *site.Definition
}

// LoadErrorMsg reports a failed load. The previous definition stays on screen.
type LoadErrorMsg struct {
	Err error
}
