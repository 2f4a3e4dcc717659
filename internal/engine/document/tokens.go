package document

import (
	"sort"
	"strings"
)

// TokenSet is a canonical set of class tokens: sorted, deduplicated,
// no empty entries. The canonical form makes formatting equality a
// direct element-wise comparison.
type TokenSet []string

// NewTokenSet builds a canonical token set from the given tokens.
// Empty tokens and duplicates are dropped.
func NewTokenSet(tokens ...string) TokenSet {
	if len(tokens) == 0 {
		return nil
	}
	out := make(TokenSet, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return dedupSorted(out)
}

// dedupSorted removes adjacent duplicates from a sorted set in place.
func dedupSorted(ts TokenSet) TokenSet {
	w := 1
	for i := 1; i < len(ts); i++ {
		if ts[i] != ts[w-1] {
			ts[w] = ts[i]
			w++
		}
	}
	return ts[:w]
}

// Has returns true if the set contains the given token.
func (ts TokenSet) Has(token string) bool {
	i := sort.SearchStrings(ts, token)
	return i < len(ts) && ts[i] == token
}

// With returns a new set with the given token added.
// Returns the receiver unchanged if the token is already present or empty.
func (ts TokenSet) With(token string) TokenSet {
	if token == "" || ts.Has(token) {
		return ts
	}
	out := make(TokenSet, 0, len(ts)+1)
	out = append(out, ts...)
	out = append(out, token)
	sort.Strings(out)
	return out
}

// Without returns a new set with the given token removed.
// Returns the receiver unchanged if the token is not present.
func (ts TokenSet) Without(token string) TokenSet {
	i := sort.SearchStrings(ts, token)
	if i >= len(ts) || ts[i] != token {
		return ts
	}
	if len(ts) == 1 {
		return nil
	}
	out := make(TokenSet, 0, len(ts)-1)
	out = append(out, ts[:i]...)
	out = append(out, ts[i+1:]...)
	return out
}

// Equal returns true if both sets contain exactly the same tokens.
func (ts TokenSet) Equal(other TokenSet) bool {
	if len(ts) != len(other) {
		return false
	}
	for i := range ts {
		if ts[i] != other[i] {
			return false
		}
	}
	return true
}

// IsEmpty returns true if the set has no tokens.
func (ts TokenSet) IsEmpty() bool {
	return len(ts) == 0
}

// Clone returns an independent copy of the set.
func (ts TokenSet) Clone() TokenSet {
	if ts == nil {
		return nil
	}
	out := make(TokenSet, len(ts))
	copy(out, ts)
	return out
}

// String returns the tokens joined by single spaces, the form used in
// markup class attributes.
func (ts TokenSet) String() string {
	return strings.Join(ts, " ")
}

// ParseTokenSet builds a canonical token set from a whitespace-separated
// token list, the form found in markup class attributes.
func ParseTokenSet(s string) TokenSet {
	return NewTokenSet(strings.Fields(s)...)
}
