package render

import (
	"strings"

	"git.home.luguber.info/inful/doccsite/internal/archive"
)

// Context is the ephemeral per-page configuration passed to a Renderer.
type Context struct {
	// PathToRoot is the relative prefix back to the site root: "../"
	// repeated once per nesting level, one extra for index variants.
	PathToRoot string

	// References is the page's cross-reference table.
	References map[string]archive.Reference

	// IsIndex marks the render of a landing-page variant.
	IsIndex bool

	// IndexLinks selects directory-style links for collection references
	// in navigation.
	IndexLinks bool
}

// PathToRoot returns the relative prefix for a folder nesting level.
func PathToRoot(level int) string {
	return strings.Repeat("../", level)
}
