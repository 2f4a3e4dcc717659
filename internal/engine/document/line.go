package document

import "strings"

// Attrs holds line-level formatting: class tokens plus style properties.
// The same token/style pairing rules apply as for runs.
type Attrs struct {
	Tokens TokenSet          `json:"tokens,omitempty"`
	Styles map[string]string `json:"styles,omitempty"`
}

// IsZero returns true if no line attributes are set.
func (a Attrs) IsZero() bool {
	return len(a.Tokens) == 0 && len(a.Styles) == 0
}

// HasToken returns true if the given token is active on the line.
func (a Attrs) HasToken(token string) bool {
	return a.Tokens.Has(token)
}

// With returns a copy with the token added and styles merged.
func (a Attrs) With(token string, styles map[string]string) Attrs {
	out := Attrs{
		Tokens: a.Tokens.With(token),
		Styles: mergeStyles(a.Styles, styles),
	}
	out.Styles = pruneStyles(out.Styles, out.Tokens)
	return out
}

// Without returns a copy with the token removed and orphaned styles pruned.
func (a Attrs) Without(token string) Attrs {
	out := Attrs{
		Tokens: a.Tokens.Without(token),
		Styles: cloneStyles(a.Styles),
	}
	out.Styles = pruneStyles(out.Styles, out.Tokens)
	return out
}

// Equal returns true if both attribute sets match exactly.
func (a Attrs) Equal(other Attrs) bool {
	return a.Tokens.Equal(other.Tokens) && stylesEqual(a.Styles, other.Styles)
}

// Clone returns an independent deep copy.
func (a Attrs) Clone() Attrs {
	return Attrs{Tokens: a.Tokens.Clone(), Styles: cloneStyles(a.Styles)}
}

// Line is an ordered list of runs plus optional line-level attributes.
// A line always holds at least one run: an empty line is represented by a
// single empty content run.
type Line struct {
	Runs  []Run `json:"runs"`
	Attrs Attrs `json:"attrs,omitempty"`
}

// NewLine creates a line from the given runs, normalized to canonical form.
func NewLine(runs ...Run) Line {
	l := Line{Runs: runs}
	return l.Normalized()
}

// EmptyLine returns a line holding only the empty placeholder run.
func EmptyLine() Line {
	return Line{Runs: []Run{{}}}
}

// IsEmpty returns true if the line holds no visible content and no breaks.
func (l Line) IsEmpty() bool {
	for _, r := range l.Runs {
		if r.Break || r.Content != "" {
			return false
		}
	}
	return true
}

// IsBreakOnly returns true if the line's entire content is a single
// soft line-break marker. Such lines never take line attributes.
func (l Line) IsBreakOnly() bool {
	return len(l.Runs) == 1 && l.Runs[0].Break
}

// RuneCount returns the number of content characters on the line,
// not counting break markers.
func (l Line) RuneCount() int {
	n := 0
	for _, r := range l.Runs {
		n += r.RuneCount()
	}
	return n
}

// Text returns the line's plain text with break markers rendered as
// newlines.
func (l Line) Text() string {
	var sb strings.Builder
	for _, r := range l.Runs {
		if r.Break {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(r.Content)
	}
	return sb.String()
}

// Clone returns an independent deep copy of the line.
func (l Line) Clone() Line {
	runs := make([]Run, len(l.Runs))
	for i, r := range l.Runs {
		runs[i] = r.Clone()
	}
	return Line{Runs: runs, Attrs: l.Attrs.Clone()}
}

// Normalized returns the line rewritten into canonical form:
//
//   - orphaned style keys pruned from every run
//   - empty content runs dropped
//   - adjacent runs with identical formatting merged
//   - a placeholder run restored if nothing remains
//
// This is the single place a line's run list is rewritten; every public
// operation that touches runs funnels through it.
func (l Line) Normalized() Line {
	out := Line{Attrs: l.Attrs}
	out.Attrs.Styles = pruneStyles(out.Attrs.Styles, out.Attrs.Tokens)

	runs := make([]Run, 0, len(l.Runs))
	for _, r := range l.Runs {
		if r.Break {
			runs = append(runs, BreakRun())
			continue
		}
		r.Styles = pruneStyles(r.Styles, r.Tokens)
		if r.Content == "" {
			continue
		}
		if n := len(runs); n > 0 && runs[n-1].SameFormat(r) {
			runs[n-1].Content += r.Content
			continue
		}
		runs = append(runs, r)
	}
	if len(runs) == 0 {
		runs = append(runs, Run{})
	}
	out.Runs = runs
	return out
}
