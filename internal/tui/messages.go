package tui

import "github.com/mgale/docsurf/internal/site"

// bundleReloadedMsg is sent when the content bundle has been re-read from
// disk (or from the embedded default).
type bundleReloadedMsg struct {
	bundle *site.Bundle
}

// errMsg is sent when a content reload or other operation fails.
type errMsg struct {
	err error
}
