// Package reconcile rebuilds the document model after a raw edit reported
// by the display surface. The new plain text is authoritative; formatting
// for changed spans is inferred by diffing the old document's text against
// the new text and inheriting from the nearest preceding surviving run,
// falling forward at the document start.
package reconcile
