package editor

import (
	"github.com/dshills/runemark/internal/engine/format"
)

// HasFormat reports whether every character in the selection carries the
// token. A collapsed selection reports false.
func (e *Engine) HasFormat(token string) bool {
	return format.Covers(e.doc, e.sel, token)
}

// ContainsFormat reports whether any character in the selection carries
// the token.
func (e *Engine) ContainsFormat(token string) bool {
	return format.Contains(e.doc, e.sel, token)
}

// SelectedFormatting returns the formatting of the selection as ordered
// segments, one per run the selection intersects.
func (e *Engine) SelectedFormatting() []format.Segment {
	return format.Segments(e.doc, e.sel)
}

// LineHasFormat reports whether every selected line carries the token in
// its attributes. A collapsed selection checks the caret line.
func (e *Engine) LineHasFormat(token string) bool {
	return format.LinesHave(e.doc, e.sel, token)
}
