package format

import (
	"github.com/dshills/runemark/internal/engine/document"
	"github.com/dshills/runemark/internal/engine/index"
)

// selectedLines returns the indices of lines intersecting the range.
// A collapsed range selects exactly the line containing the caret.
// Lines whose entire content is a single break run are excluded: they
// never take line attributes and never count toward line queries.
func selectedLines(d *document.Document, r index.Range) []int {
	r = r.Normalize()
	var out []int
	cursor := 0
	for li, line := range d.Lines {
		marker := cursor
		end := cursor + 1 + lineUnits(line)
		cursor = end
		if line.IsBreakOnly() {
			continue
		}
		if r.IsCollapsed() {
			if r.Start >= marker && r.Start <= end {
				return []int{li}
			}
			continue
		}
		if r.Start <= end && r.End > marker {
			out = append(out, li)
		}
	}
	return out
}

func lineUnits(l document.Line) int {
	n := 0
	for _, r := range l.Runs {
		if r.IsBreak() {
			n++
			continue
		}
		n += r.RuneCount()
	}
	return n
}

// ApplyToLines adds the token and styles to the attributes of every
// selected line.
func ApplyToLines(d *document.Document, r index.Range, token string, styles map[string]string) *document.Document {
	if token == "" {
		return d
	}
	return transformLines(d, r, func(a document.Attrs) document.Attrs {
		return a.With(token, styles)
	})
}

// RemoveFromLines removes the token (and its dependent styles) from the
// attributes of every selected line.
func RemoveFromLines(d *document.Document, r index.Range, token string) *document.Document {
	if token == "" {
		return d
	}
	return transformLines(d, r, func(a document.Attrs) document.Attrs {
		return a.Without(token)
	})
}

// ToggleOnLines removes the token when every selected line carries it and
// adds it otherwise, mirroring the run-level all-or-nothing policy.
func ToggleOnLines(d *document.Document, r index.Range, token string, styles map[string]string) *document.Document {
	if LinesHave(d, r, token) {
		return RemoveFromLines(d, r, token)
	}
	return ApplyToLines(d, r, token, styles)
}

// LinesHave returns true only if every selected line carries the token.
// An empty selection set returns false.
func LinesHave(d *document.Document, r index.Range, token string) bool {
	lines := selectedLines(d, r)
	if len(lines) == 0 {
		return false
	}
	for _, li := range lines {
		if !d.Lines[li].Attrs.HasToken(token) {
			return false
		}
	}
	return true
}

func transformLines(d *document.Document, r index.Range, fn func(document.Attrs) document.Attrs) *document.Document {
	lines := selectedLines(d, r)
	if len(lines) == 0 {
		return d
	}
	out := d.Clone()
	for _, li := range lines {
		out.Lines[li].Attrs = fn(out.Lines[li].Attrs)
	}
	return out
}
