package document

import "unicode/utf8"

// Run is a contiguous span of identically formatted text within a line.
// Run is an immutable value type: operations return new values.
//
// A Run with Break set is a soft line-break marker. Break runs carry no
// content, tokens, or styles, never merge with neighbors, and are never
// split by formatting operations.
type Run struct {
	// Content is the run's text. Empty for break runs and for the
	// placeholder run of an empty line.
	Content string `json:"content,omitempty"`

	// Break marks this run as a soft line break.
	Break bool `json:"break,omitempty"`

	// Tokens are the formatting class tokens active on this run.
	Tokens TokenSet `json:"tokens,omitempty"`

	// Styles are key/value style properties. A style key is only ever
	// persisted while a matching token is active.
	Styles map[string]string `json:"styles,omitempty"`
}

// NewRun creates a content run with the given tokens.
func NewRun(content string, tokens ...string) Run {
	return Run{Content: content, Tokens: NewTokenSet(tokens...)}
}

// NewStyledRun creates a content run with tokens and style properties.
func NewStyledRun(content string, tokens TokenSet, styles map[string]string) Run {
	r := Run{Content: content, Tokens: tokens.Clone(), Styles: cloneStyles(styles)}
	r.Styles = pruneStyles(r.Styles, r.Tokens)
	return r
}

// BreakRun returns a soft line-break marker run.
func BreakRun() Run {
	return Run{Break: true}
}

// IsBreak returns true if the run is a soft line-break marker.
func (r Run) IsBreak() bool {
	return r.Break
}

// IsEmpty returns true for a content run with no text.
// Break runs are never empty.
func (r Run) IsEmpty() bool {
	return !r.Break && r.Content == ""
}

// RuneCount returns the number of characters in the run's content.
// Break runs have no content and return 0; their one linear unit is
// accounted for by the index mapper.
func (r Run) RuneCount() int {
	if r.Break {
		return 0
	}
	return utf8.RuneCountInString(r.Content)
}

// HasToken returns true if the given class token is active on this run.
func (r Run) HasToken(token string) bool {
	return r.Tokens.Has(token)
}

// Style returns the value of a style key and whether it is set.
func (r Run) Style(key string) (string, bool) {
	v, ok := r.Styles[key]
	return v, ok
}

// SameFormat returns true if two runs carry identical formatting and can
// merge when adjacent. Break runs never merge.
func (r Run) SameFormat(other Run) bool {
	if r.Break || other.Break {
		return false
	}
	return r.Tokens.Equal(other.Tokens) && stylesEqual(r.Styles, other.Styles)
}

// Clone returns an independent deep copy of the run.
func (r Run) Clone() Run {
	return Run{
		Content: r.Content,
		Break:   r.Break,
		Tokens:  r.Tokens.Clone(),
		Styles:  cloneStyles(r.Styles),
	}
}

// stylesEqual compares two style maps by key and value.
func stylesEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// cloneStyles returns an independent copy of a style map.
// Empty maps normalize to nil.
func cloneStyles(styles map[string]string) map[string]string {
	if len(styles) == 0 {
		return nil
	}
	out := make(map[string]string, len(styles))
	for k, v := range styles {
		out[k] = v
	}
	return out
}

// mergeStyles returns a copy of base with overlay's entries applied on top.
func mergeStyles(base, overlay map[string]string) map[string]string {
	if len(base) == 0 {
		return cloneStyles(overlay)
	}
	out := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// pruneStyles drops style keys that have no matching active token.
// A value-bearing format is a token plus a style entry under the same key;
// when the token goes away the style must not outlive it.
func pruneStyles(styles map[string]string, tokens TokenSet) map[string]string {
	if len(styles) == 0 {
		return nil
	}
	var out map[string]string
	for k, v := range styles {
		if !tokens.Has(k) {
			continue
		}
		if out == nil {
			out = make(map[string]string, len(styles))
		}
		out[k] = v
	}
	return out
}
