package document

import "strings"

// Document is the engine's structured text model: an ordered list of lines.
// A document always holds at least one line.
type Document struct {
	Lines []Line `json:"lines"`
}

// New returns an empty document: a single line with the placeholder run.
func New() *Document {
	return &Document{Lines: []Line{EmptyLine()}}
}

// FromLines builds a normalized document from the given lines.
// A document is never empty; zero lines normalize to one empty line.
func FromLines(lines ...Line) *Document {
	d := &Document{Lines: lines}
	d.Normalize()
	return d
}

// FromText builds an unformatted document from plain text.
// Newlines become line boundaries, never soft breaks.
func FromText(text string) *Document {
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		if p == "" {
			lines[i] = EmptyLine()
			continue
		}
		lines[i] = Line{Runs: []Run{{Content: p}}}
	}
	return &Document{Lines: lines}
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// IsEmpty returns true if the document holds no content at all.
func (d *Document) IsEmpty() bool {
	for _, l := range d.Lines {
		if !l.IsEmpty() {
			return false
		}
	}
	return true
}

// RuneCount returns the total number of content characters.
func (d *Document) RuneCount() int {
	n := 0
	for _, l := range d.Lines {
		n += l.RuneCount()
	}
	return n
}

// Text returns the document's plain text. Line boundaries and soft break
// markers both render as newlines.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, l := range d.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Text())
	}
	return sb.String()
}

// Clone returns an independent deep copy of the document.
func (d *Document) Clone() *Document {
	lines := make([]Line, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = l.Clone()
	}
	return &Document{Lines: lines}
}

// Normalize rewrites every line into canonical form and guarantees the
// document-level invariants (at least one line).
func (d *Document) Normalize() {
	if len(d.Lines) == 0 {
		d.Lines = []Line{EmptyLine()}
		return
	}
	for i, l := range d.Lines {
		d.Lines[i] = l.Normalized()
	}
}

// Equal returns true if two documents have identical content, formatting,
// and line attributes.
func (d *Document) Equal(other *Document) bool {
	if d == other {
		return true
	}
	if other == nil || len(d.Lines) != len(other.Lines) {
		return false
	}
	for i, l := range d.Lines {
		ol := other.Lines[i]
		if len(l.Runs) != len(ol.Runs) || !l.Attrs.Equal(ol.Attrs) {
			return false
		}
		for j, r := range l.Runs {
			or := ol.Runs[j]
			if r.Content != or.Content || r.Break != or.Break {
				return false
			}
			if !r.Tokens.Equal(or.Tokens) || !stylesEqual(r.Styles, or.Styles) {
				return false
			}
		}
	}
	return true
}
