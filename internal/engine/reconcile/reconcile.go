package reconcile

import (
	"strings"

	"github.com/dshills/runemark/internal/engine/document"
)

// pieceKind classifies the flattened document stream. Line boundaries and
// soft breaks both render as "\n" in plain text but keep distinct identity
// so surviving breaks rebuild the structure they came from.
type pieceKind int

const (
	pieceText pieceKind = iota
	pieceLineBoundary
	pieceSoftBreak
)

// piece is one element of the flattened document: a formatted text span,
// a line boundary (carrying the attributes of the line it opens), or a
// soft break marker.
type piece struct {
	kind   pieceKind
	text   []rune
	tokens document.TokenSet
	styles map[string]string
	attrs  document.Attrs
}

func (p piece) width() int {
	if p.kind == pieceText {
		return len(p.text)
	}
	return 1
}

// Reconcile produces a canonical document matching the new plain text
// exactly. Text surviving from the old document keeps its formatting and
// its break identity. Between the common prefix and suffix the walk
// resynchronizes at the next old piece boundary whose text reappears
// verbatim in the unconsumed new text, so one report carrying several
// separated edits leaves the runs between the edit sites untouched. Each
// changed span inherits the formatting of the nearest preceding surviving
// run, falling forward to the nearest following run at the document start.
// Newlines inside a changed span become soft breaks. If nothing survives,
// the changed text is unformatted.
func Reconcile(old *document.Document, text string) *document.Document {
	oldPieces, firstAttrs := flatten(old)
	oldRunes := []rune(old.Text())
	newRunes := []rune(text)

	p := commonPrefix(oldRunes, newRunes)
	s := commonSuffix(oldRunes, newRunes, p)
	oldEnd := len(oldRunes) - s
	newEnd := len(newRunes) - s

	stream := slicePieces(oldPieces, 0, p)
	oi, ni := p, p
	for oi < oldEnd || ni < newEnd {
		aOld, aNew, matched := nextAnchor(oldPieces, oldRunes, newRunes, oi, ni, oldEnd, newEnd)
		if matched == 0 {
			aOld, aNew = oldEnd, newEnd
		}
		if middle := newRunes[ni:aNew]; len(middle) > 0 {
			tokens, styles := inherit(oldPieces, oi, aOld)
			stream = append(stream, middlePieces(middle, tokens, styles)...)
		}
		stream = append(stream, slicePieces(oldPieces, aOld, aOld+matched)...)
		oi, ni = aOld+matched, aNew+matched
	}
	stream = append(stream, slicePieces(oldPieces, oldEnd, len(oldRunes))...)

	return assemble(stream, firstAttrs)
}

// nextAnchor finds the earliest old piece boundary at or after oi whose
// piece text, clipped to the diff window, occurs verbatim in the
// unconsumed new text. The match is then extended rune by rune while both
// texts keep agreeing, so the anchor swallows everything surviving behind
// it. A zero matched length means no boundary resynchronizes and the rest
// of the window is one changed span.
func nextAnchor(pieces []piece, oldRunes, newRunes []rune, oi, ni, oldEnd, newEnd int) (aOld, aNew, matched int) {
	off := 0
	for _, pc := range pieces {
		start := off
		off += pc.width()
		if start < oi {
			continue
		}
		if start >= oldEnd {
			break
		}
		end := start + pc.width()
		if end > oldEnd {
			end = oldEnd
		}
		idx := indexRunes(newRunes[ni:newEnd], oldRunes[start:end])
		if idx < 0 {
			continue
		}
		aOld, aNew = start, ni+idx
		matched = end - start
		for aOld+matched < oldEnd && aNew+matched < newEnd &&
			oldRunes[aOld+matched] == newRunes[aNew+matched] {
			matched++
		}
		return aOld, aNew, matched
	}
	return 0, 0, 0
}

// indexRunes returns the offset of the first occurrence of needle in hay,
// or -1. An empty needle never matches.
func indexRunes(hay, needle []rune) int {
	if len(needle) == 0 {
		return -1
	}
	for i := 0; i+len(needle) <= len(hay); i++ {
		j := 0
		for j < len(needle) && hay[i+j] == needle[j] {
			j++
		}
		if j == len(needle) {
			return i
		}
	}
	return -1
}

// flatten converts the document into a piece stream aligned rune-for-rune
// with its plain text. The first line's attributes are returned separately;
// every other line's attributes travel with the boundary piece opening it.
func flatten(d *document.Document) ([]piece, document.Attrs) {
	var pieces []piece
	for li, line := range d.Lines {
		if li > 0 {
			pieces = append(pieces, piece{kind: pieceLineBoundary, attrs: line.Attrs.Clone()})
		}
		for _, run := range line.Runs {
			if run.IsBreak() {
				pieces = append(pieces, piece{kind: pieceSoftBreak})
				continue
			}
			if run.Content == "" {
				continue
			}
			pieces = append(pieces, piece{
				kind:   pieceText,
				text:   []rune(run.Content),
				tokens: run.Tokens.Clone(),
				styles: run.Styles,
			})
		}
	}
	return pieces, d.Lines[0].Attrs.Clone()
}

func commonPrefix(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// commonSuffix is capped so prefix and suffix never overlap in either text.
func commonSuffix(a, b []rune, prefix int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	n -= prefix
	s := 0
	for s < n && a[len(a)-1-s] == b[len(b)-1-s] {
		s++
	}
	return s
}

// slicePieces returns the pieces covering the rune interval [from, to),
// splitting text pieces at the cut points. Formatting is shared, not
// copied: pieces are read-only from here on.
func slicePieces(pieces []piece, from, to int) []piece {
	var out []piece
	off := 0
	for _, pc := range pieces {
		start, end := off, off+pc.width()
		off = end
		if end <= from {
			continue
		}
		if start >= to {
			break
		}
		if pc.kind != pieceText {
			out = append(out, pc)
			continue
		}
		lo, hi := from, to
		if lo < start {
			lo = start
		}
		if hi > end {
			hi = end
		}
		cut := pc
		cut.text = pc.text[lo-start : hi-start]
		out = append(out, cut)
	}
	return out
}

// inherit picks the formatting for the changed span [changeStart, changeEnd):
// the last surviving text piece beginning before the span, or failing that
// the first text piece reaching past its end. With nothing surviving the
// span is unformatted.
func inherit(pieces []piece, changeStart, changeEnd int) (document.TokenSet, map[string]string) {
	var preceding, following *piece
	off := 0
	for i := range pieces {
		pc := &pieces[i]
		start, end := off, off+pc.width()
		off = end
		if pc.kind != pieceText {
			continue
		}
		if start < changeStart {
			preceding = pc
		}
		if end > changeEnd && following == nil {
			following = pc
		}
	}
	if preceding != nil {
		return preceding.tokens, preceding.styles
	}
	if following != nil {
		return following.tokens, following.styles
	}
	return nil, nil
}

// middlePieces converts the changed text into pieces: formatted text spans
// interleaved with soft breaks for embedded newlines.
func middlePieces(middle []rune, tokens document.TokenSet, styles map[string]string) []piece {
	var out []piece
	for i, part := range strings.Split(string(middle), "\n") {
		if i > 0 {
			out = append(out, piece{kind: pieceSoftBreak})
		}
		if part == "" {
			continue
		}
		out = append(out, piece{kind: pieceText, text: []rune(part), tokens: tokens, styles: styles})
	}
	return out
}

// assemble rebuilds a normalized document from a piece stream.
func assemble(stream []piece, firstAttrs document.Attrs) *document.Document {
	cur := document.Line{Attrs: firstAttrs}
	var lines []document.Line
	for _, pc := range stream {
		switch pc.kind {
		case pieceLineBoundary:
			lines = append(lines, cur)
			cur = document.Line{Attrs: pc.attrs}
		case pieceSoftBreak:
			cur.Runs = append(cur.Runs, document.BreakRun())
		case pieceText:
			cur.Runs = append(cur.Runs, document.NewStyledRun(string(pc.text), pc.tokens, pc.styles))
		}
	}
	lines = append(lines, cur)
	return document.FromLines(lines...)
}
