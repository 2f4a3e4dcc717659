// Package editor is the engine facade: it owns the document model, the
// selection, and the notifier, and exposes the full operation surface —
// selection-scoped formatting transforms, line attributes, content import
// and export, selection exchange, and event registration.
//
// The engine is single-threaded and cooperative. Every operation runs
// synchronously to completion, leaves the document in canonical form, and
// emits its notifications in-line before returning. One engine owns one
// document; there is no locking and no re-entrancy guard, so listener
// callbacks must not mutate the engine.
//
// Construction binds the engine to a display surface and fails fatally if
// the surface is nil or not editable. The surface reports raw edits and
// selection changes through ReportEdit and ReportSelection; the engine
// pushes rendered frames and structural selection positions back.
package editor
