package format

import (
	"github.com/dshills/runemark/internal/engine/document"
	"github.com/dshills/runemark/internal/engine/index"
)

// transformFunc rewrites the formatting of a run segment inside the
// selection. Content is preserved by the caller; only Tokens/Styles change.
type transformFunc func(document.Run) document.Run

// transformRange applies fn to every content-run segment overlapping the
// range and returns the resulting normalized document. Break runs and the
// per-line boundary markers are skipped. A range touching no content
// segment (collapsed, or covering only boundary and break units) returns
// the input unchanged so callers can spot the no-op by pointer.
func transformRange(d *document.Document, r index.Range, fn transformFunc) *document.Document {
	r = r.Normalize()
	if r.IsCollapsed() {
		return d
	}

	changed := false
	out := &document.Document{Lines: make([]document.Line, len(d.Lines))}
	cursor := 0
	for li, line := range d.Lines {
		cursor++ // line boundary marker
		runs := make([]document.Run, 0, len(line.Runs)+2)
		for _, run := range line.Runs {
			if run.IsBreak() {
				runs = append(runs, document.BreakRun())
				cursor++
				continue
			}
			span := index.Range{Start: cursor, End: cursor + run.RuneCount()}
			cursor = span.End
			ov, ok := r.Overlap(span)
			if !ok {
				runs = append(runs, run.Clone())
				continue
			}
			runs = append(runs, splitTransform(run, ov.Start-span.Start, ov.End-span.Start, fn)...)
			changed = true
		}
		out.Lines[li] = document.Line{Runs: runs, Attrs: line.Attrs.Clone()}.Normalized()
	}
	if !changed {
		return d
	}
	return out
}

// splitTransform cuts a content run at rune offsets [from, to) and applies
// fn to the middle part. The outer parts keep the run's formatting exactly.
func splitTransform(run document.Run, from, to int, fn transformFunc) []document.Run {
	content := []rune(run.Content)
	parts := make([]document.Run, 0, 3)

	if from > 0 {
		before := run.Clone()
		before.Content = string(content[:from])
		parts = append(parts, before)
	}

	middle := run.Clone()
	middle.Content = string(content[from:to])
	parts = append(parts, fn(middle))

	if to < len(content) {
		after := run.Clone()
		after.Content = string(content[to:])
		parts = append(parts, after)
	}
	return parts
}

// eachOverlap calls fn for every content-run segment overlapping the range,
// in document order, with the run and the overlap width in runes. Segments
// of zero width (empty placeholder runs) are not reported.
func eachOverlap(d *document.Document, r index.Range, fn func(run document.Run, width int)) {
	r = r.Normalize()
	if r.IsCollapsed() {
		return
	}
	cursor := 0
	for _, line := range d.Lines {
		cursor++
		for _, run := range line.Runs {
			if run.IsBreak() {
				cursor++
				continue
			}
			span := index.Range{Start: cursor, End: cursor + run.RuneCount()}
			cursor = span.End
			if ov, ok := r.Overlap(span); ok {
				fn(run, ov.Len())
			}
		}
	}
}
