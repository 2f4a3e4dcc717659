// Package index maps the document model to a flat linear coordinate space
// and back. The linear index is the sole selection contract between the
// engine and a display surface.
//
// Unit rule: every line contributes one unit for its boundary marker,
// consumed before its first run; every break run contributes one unit;
// every content run contributes one unit per rune. Resolve and Locate are
// exact inverses over canonical positions; Locate clamps out-of-range input
// to the nearest document boundary instead of failing.
package index
