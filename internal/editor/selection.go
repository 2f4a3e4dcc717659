package editor

import (
	"github.com/dshills/runemark/internal/engine/index"
	"github.com/dshills/runemark/internal/event"
)

// SetSelection moves the selection programmatically. Out-of-range indices
// are clamped to the document. The new selection is pushed to the surface
// but no select event is emitted; listeners only hear about selections the
// surface reports.
func (e *Engine) SetSelection(start, end int) {
	e.sel = index.NewRange(start, end).Clamp(index.Length(e.doc))
	e.pushSelection()
}

// ReportSelection absorbs a selection change from the display surface. The
// structural positions are resolved to linear indices, stored, and
// announced to select listeners along with the selected plain text.
func (e *Engine) ReportSelection(start, end index.Position) {
	e.sel = index.NewRange(
		index.Resolve(e.doc, start),
		index.Resolve(e.doc, end),
	)
	e.bus.Publish(event.TopicSelect, event.SelectEvent{
		Range: e.sel,
		Text:  e.textInRange(e.sel),
	})
}

// CaretIndex returns the linear index of the selection's end.
func (e *Engine) CaretIndex() int {
	return e.sel.End
}

// CaretStartIndex returns the linear index of the selection's start.
func (e *Engine) CaretStartIndex() int {
	return e.sel.Start
}

// Selection returns the current selection range.
func (e *Engine) Selection() index.Range {
	return e.sel
}

// Focused reports whether the bound surface has input focus.
func (e *Engine) Focused() bool {
	return e.surf.Focused()
}

// textInRange extracts the plain text the range covers. Plain-text rune i
// sits at linear index i+1: boundary markers and soft breaks both render
// as the newline the text already carries.
func (e *Engine) textInRange(r index.Range) string {
	if r.IsCollapsed() {
		return ""
	}
	runes := []rune(e.doc.Text())
	lo := r.Start - 1
	if lo < 0 {
		lo = 0
	}
	hi := r.End - 1
	if hi > len(runes) {
		hi = len(runes)
	}
	if lo >= hi {
		return ""
	}
	return string(runes[lo:hi])
}
