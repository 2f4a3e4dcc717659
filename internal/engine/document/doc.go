// Package document defines the structured text model: an ordered list of
// lines, each an ordered list of runs carrying class tokens and style
// properties.
//
// The model's central invariant is canonical form: within a line no two
// adjacent content runs carry identical formatting, token sets are sorted
// and deduplicated, and a style key never outlives its matching token.
// Line.Normalized is the single place a run list is rewritten; every
// mutation elsewhere in the engine produces new values and funnels through
// it before the operation returns.
package document
