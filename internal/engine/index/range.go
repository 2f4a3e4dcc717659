package index

import "fmt"

// Range is a half-open span [Start, End) of linear indices.
// Range is an immutable value type.
type Range struct {
	Start int
	End   int
}

// NewRange creates a normalized range from two linear indices in any order.
func NewRange(a, b int) Range {
	if a <= b {
		return Range{Start: a, End: b}
	}
	return Range{Start: b, End: a}
}

// Collapsed returns a zero-extent range (a caret) at the given index.
func Collapsed(at int) Range {
	return Range{Start: at, End: at}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// IsCollapsed returns true if the range has no extent.
func (r Range) IsCollapsed() bool {
	return r.Start == r.End
}

// Len returns the number of linear units covered.
func (r Range) Len() int {
	return r.End - r.Start
}

// Normalize returns the range with Start <= End.
func (r Range) Normalize() Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

// Clamp returns the range constrained to [0, max].
func (r Range) Clamp(max int) Range {
	r = r.Normalize()
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End > max {
		r.End = max
	}
	if r.Start > max {
		r.Start = max
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}

// Contains returns true if the linear index falls inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Overlap returns the intersection of two spans and whether it is non-empty.
func (r Range) Overlap(other Range) (Range, bool) {
	start := r.Start
	if other.Start > start {
		start = other.Start
	}
	end := r.End
	if other.End < end {
		end = other.End
	}
	if start >= end {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}
