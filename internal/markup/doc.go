// Package markup serializes documents to a block/inline markup string and
// parses such markup back into the model.
//
// Wire format: one <div> per line carrying the line's class tokens and
// literal style declarations, one <span> per run carrying its class tokens
// and a --token custom property per value-bearing format, and <br> for soft
// break markers.
//
// Decoding never fails: input with no recognizable block container, or any
// parse error, degrades to a plain-text import with all markup stripped.
// Callers pass untrusted markup and must never observe an error.
package markup
