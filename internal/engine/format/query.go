package format

import (
	"github.com/dshills/runemark/internal/engine/document"
	"github.com/dshills/runemark/internal/engine/index"
)

// Segment describes the formatting of one maximal contiguous run segment
// intersected by a selection, without its content.
type Segment struct {
	Tokens document.TokenSet
	Styles map[string]string
}

// Covers returns true only if every content run intersecting the range
// carries the token. An empty or collapsed selection is never covered.
func Covers(d *document.Document, r index.Range, token string) bool {
	found := false
	all := true
	eachOverlap(d, r, func(run document.Run, _ int) {
		found = true
		if !run.HasToken(token) {
			all = false
		}
	})
	return found && all
}

// Contains returns true if any character in the range carries the token.
func Contains(d *document.Document, r index.Range, token string) bool {
	any := false
	eachOverlap(d, r, func(run document.Run, _ int) {
		if run.HasToken(token) {
			any = true
		}
	})
	return any
}

// Segments returns one formatting descriptor per intersected run segment,
// in left-to-right document order.
func Segments(d *document.Document, r index.Range) []Segment {
	var out []Segment
	eachOverlap(d, r, func(run document.Run, _ int) {
		out = append(out, Segment{
			Tokens: run.Tokens.Clone(),
			Styles: copyStyles(run.Styles),
		})
	})
	return out
}

func copyStyles(styles map[string]string) map[string]string {
	if len(styles) == 0 {
		return nil
	}
	out := make(map[string]string, len(styles))
	for k, v := range styles {
		out[k] = v
	}
	return out
}
