// Package format implements the selection-scoped formatting transforms:
// applying, removing, and toggling class tokens and style properties over a
// linear range, plus the line-scoped attribute operations.
//
// Every transform follows the same shape: runs overlapping the range are
// split at rune granularity into up to three parts, only the middle part's
// formatting changes, and the line is re-normalized so adjacent runs with
// identical formatting coalesce. Break runs are skipped: they carry no
// formatting and are never split or merged. Transforms never change the
// document's text, only its attribution, so the caller's selection range
// remains valid afterward.
//
// All functions are pure: they take a document and return a new one,
// leaving the input untouched.
package format
