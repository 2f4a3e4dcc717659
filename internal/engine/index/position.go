package index

import "fmt"

// Position is a structural location in a document: a line, a run within
// the line, and a unit offset within the run. Content run offsets count
// runes; a break run has unit length one, so its only interior offset is 0.
//
// The canonical form produced by Locate attaches a boundary offset to the
// start of the following run (offset 0), except at line end, which yields
// the last run with its full unit length. Resolve also accepts the
// non-canonical equivalents.
type Position struct {
	Line   int // 0-indexed line number
	Run    int // 0-indexed run within the line
	Offset int // unit offset within the run
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d+%d)", p.Line, p.Run, p.Offset)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Run != other.Run {
		if p.Run < other.Run {
			return -1
		}
		return 1
	}
	if p.Offset != other.Offset {
		if p.Offset < other.Offset {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// IsZero returns true if this is the document-start position.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Run == 0 && p.Offset == 0
}
