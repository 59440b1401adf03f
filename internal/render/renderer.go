// Package render produces HTML markup for parsed page documents. The
// Renderer interface is the substitution seam: the folder builder only
// depends on "produce markup for a document given a rendering context".
package render

import "git.home.luguber.info/inful/doccsite/internal/archive"

// Renderer produces markup for a parsed document.
type Renderer interface {
	Render(doc *archive.Document, ctx Context) (string, error)
}
