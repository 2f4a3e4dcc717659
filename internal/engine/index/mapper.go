package index

import "github.com/dshills/runemark/internal/engine/document"

// runUnits returns the linear units a run occupies: one for a break run,
// one per rune for a content run.
func runUnits(r document.Run) int {
	if r.IsBreak() {
		return 1
	}
	return r.RuneCount()
}

// lineUnits returns the linear units of a line's runs, excluding the
// line's own boundary marker.
func lineUnits(l document.Line) int {
	n := 0
	for _, r := range l.Runs {
		n += runUnits(r)
	}
	return n
}

// Length returns the total linear extent of the document, including one
// boundary-marker unit per line.
func Length(d *document.Document) int {
	n := 0
	for _, l := range d.Lines {
		n += 1 + lineUnits(l)
	}
	return n
}

// LineStart returns the linear index of the first content position of the
// given line (just past its boundary marker). Out-of-range lines clamp.
func LineStart(d *document.Document, line int) int {
	if line < 0 {
		line = 0
	}
	cursor := 0
	for li, l := range d.Lines {
		cursor++
		if li == line {
			return cursor
		}
		cursor += lineUnits(l)
	}
	return cursor
}

// LineEnd returns the linear index of the end-of-line position of the
// given line. Out-of-range lines clamp.
func LineEnd(d *document.Document, line int) int {
	if line < 0 {
		line = 0
	}
	cursor := 0
	for li, l := range d.Lines {
		cursor += 1 + lineUnits(l)
		if li == line {
			return cursor
		}
	}
	return cursor
}

// Resolve maps a structural position to its linear index. Out-of-range
// components clamp to the nearest valid boundary, and non-canonical
// boundary offsets (a non-final run's full unit length) map to the same
// index as the canonical position.
func Resolve(d *document.Document, p Position) int {
	if p.Line < 0 {
		return startIndex()
	}
	if p.Line >= len(d.Lines) {
		return Length(d)
	}

	cursor := 0
	for li := 0; li < p.Line; li++ {
		cursor += 1 + lineUnits(d.Lines[li])
	}
	cursor++ // this line's boundary marker

	runs := d.Lines[p.Line].Runs
	if p.Run < 0 {
		return cursor
	}
	if p.Run >= len(runs) {
		return cursor + lineUnits(d.Lines[p.Line])
	}
	for ri := 0; ri < p.Run; ri++ {
		cursor += runUnits(runs[ri])
	}

	off := p.Offset
	if off < 0 {
		off = 0
	}
	if u := runUnits(runs[p.Run]); off > u {
		off = u
	}
	return cursor + off
}

// Locate maps a linear index to its canonical structural position.
// Indices before a line's first content position (its boundary marker)
// clamp forward to the line start; indices past the document end clamp to
// the end of the last line.
func Locate(d *document.Document, i int) Position {
	if i < 0 {
		i = 0
	}

	cursor := 0
	last := len(d.Lines) - 1
	for li, l := range d.Lines {
		cursor++ // boundary marker
		units := lineUnits(l)
		if i <= cursor+units || li == last {
			if i < cursor {
				i = cursor
			}
			if i > cursor+units {
				i = cursor + units
			}
			return locateInLine(l, li, i-cursor)
		}
		cursor += units
	}
	return Position{}
}

// locateInLine finds the canonical position for a unit offset within a line.
func locateInLine(l document.Line, li, off int) Position {
	lastRun := len(l.Runs) - 1
	for ri, r := range l.Runs {
		u := runUnits(r)
		if off < u || (off == u && ri == lastRun) {
			return Position{Line: li, Run: ri, Offset: off}
		}
		off -= u
	}
	return Position{Line: li, Run: lastRun, Offset: runUnits(l.Runs[lastRun])}
}

// startIndex is the linear index of the document's first content position.
func startIndex() int {
	return 1
}
