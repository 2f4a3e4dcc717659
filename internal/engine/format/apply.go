package format

import (
	"github.com/dshills/runemark/internal/engine/document"
	"github.com/dshills/runemark/internal/engine/index"
)

// Apply adds the token to every character in the range and merges the given
// styles on top of each segment's style map (new values win). Characters
// outside the range are untouched.
func Apply(d *document.Document, r index.Range, token string, styles map[string]string) *document.Document {
	if token == "" {
		return d
	}
	return transformRange(d, r, applyTransform(token, styles))
}

// Unapply removes the token from every character in the range; styles whose
// key no longer matches an active token are pruned with it. An empty token
// strips all formatting from the range.
func Unapply(d *document.Document, r index.Range, token string) *document.Document {
	if token == "" {
		return transformRange(d, r, stripAllTransform)
	}
	return transformRange(d, r, removeTransform(token))
}

// Toggle removes the token from the range when every content run
// intersecting the range already carries it, and adds it otherwise. The
// all-or-nothing policy is biased toward adding: a mixed selection always
// ends up fully covered.
func Toggle(d *document.Document, r index.Range, token string, styles map[string]string) *document.Document {
	if token == "" {
		return d
	}
	if Covers(d, r, token) {
		return Unapply(d, r, token)
	}
	return Apply(d, r, token, styles)
}

// UnapplyAll removes the token from the entire document, ignoring any
// selection. An empty token strips all run formatting document-wide;
// line attributes are untouched either way.
func UnapplyAll(d *document.Document, token string) *document.Document {
	return Unapply(d, index.Range{Start: 0, End: index.Length(d)}, token)
}

func applyTransform(token string, styles map[string]string) transformFunc {
	return func(r document.Run) document.Run {
		return document.NewStyledRun(r.Content, r.Tokens.With(token), mergedStyles(r.Styles, styles))
	}
}

func removeTransform(token string) transformFunc {
	return func(r document.Run) document.Run {
		return document.NewStyledRun(r.Content, r.Tokens.Without(token), r.Styles)
	}
}

func stripAllTransform(r document.Run) document.Run {
	return document.Run{Content: r.Content}
}

// mergedStyles overlays new style values onto a base map without mutating
// either input.
func mergedStyles(base, overlay map[string]string) map[string]string {
	if len(overlay) == 0 {
		return base
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
