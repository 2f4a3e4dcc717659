package editor

import (
	"github.com/google/uuid"

	"github.com/dshills/runemark/internal/engine/document"
	"github.com/dshills/runemark/internal/engine/format"
	"github.com/dshills/runemark/internal/engine/index"
	"github.com/dshills/runemark/internal/engine/reconcile"
	"github.com/dshills/runemark/internal/event"
	"github.com/dshills/runemark/internal/markup"
	"github.com/dshills/runemark/internal/surface"
)

// Engine is a rich-text engine instance bound to one display surface.
type Engine struct {
	id   string
	log  *Logger
	doc  *document.Document
	sel  index.Range
	bus  *event.Bus
	surf surface.Surface

	initialMarkup string
}

// New creates an engine bound to the given surface. A nil or non-editable
// surface is a fatal construction error.
func New(surf surface.Surface, opts ...Option) (*Engine, error) {
	if surf == nil || !surf.Editable() {
		return nil, &InitError{Component: "surface", Err: ErrSurfaceNotEditable}
	}

	e := &Engine{
		id:   uuid.NewString(),
		log:  NullLogger,
		doc:  document.New(),
		surf: surf,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithField("engine", e.id)
	e.bus = event.NewBus(event.WithPanicHandler(func(pe *event.PanicError) {
		e.log.Error("listener panic on %q: %v", pe.Topic, pe.Value)
	}))

	if e.initialMarkup != "" {
		e.doc = markup.Decode(e.initialMarkup)
	}
	e.sel = index.Collapsed(index.LineStart(e.doc, 0))

	e.log.Info("engine created")
	e.surf.Apply(surface.Render(e.doc))
	e.pushSelection()
	return e, nil
}

// ID returns the engine instance identifier.
func (e *Engine) ID() string {
	return e.id
}

// Close cancels every listener registration. The engine must not be used
// afterward.
func (e *Engine) Close() {
	e.bus.Close()
	e.log.Info("engine closed")
}

// ApplyFormat adds the token to every character in the selection and merges
// the styles on top. A collapsed selection is a silent no-op.
func (e *Engine) ApplyFormat(token string, styles map[string]string) {
	if e.sel.IsCollapsed() {
		return
	}
	e.mutate(format.Apply(e.doc, e.sel, token, styles), "applyFormat")
}

// UnapplyFormat removes the token from every character in the selection;
// an empty token strips all formatting from the selection. A collapsed
// selection is a silent no-op.
func (e *Engine) UnapplyFormat(token string) {
	if e.sel.IsCollapsed() {
		return
	}
	e.mutate(format.Unapply(e.doc, e.sel, token), "unapplyFormat")
}

// ToggleFormat removes the token when the whole selection already carries
// it and applies it otherwise. A collapsed selection is a silent no-op.
func (e *Engine) ToggleFormat(token string, styles map[string]string) {
	if e.sel.IsCollapsed() {
		return
	}
	e.mutate(format.Toggle(e.doc, e.sel, token, styles), "toggleFormat")
}

// UnapplyAllFormat removes the token from the whole document regardless of
// the selection; an empty token strips all run formatting. The selection
// is preserved.
func (e *Engine) UnapplyAllFormat(token string) {
	e.mutate(format.UnapplyAll(e.doc, token), "unapplyAllFormat")
}

// ApplyLineFormat adds the token and styles to the attributes of every
// line the selection touches. A collapsed selection targets the caret line.
func (e *Engine) ApplyLineFormat(token string, styles map[string]string) {
	e.mutate(format.ApplyToLines(e.doc, e.sel, token, styles), "applyLineFormat")
}

// RemoveLineFormat removes the token from every selected line's attributes.
func (e *Engine) RemoveLineFormat(token string) {
	e.mutate(format.RemoveFromLines(e.doc, e.sel, token), "removeLineFormat")
}

// ToggleLineFormat removes the token when every selected line carries it
// and adds it otherwise.
func (e *Engine) ToggleLineFormat(token string, styles map[string]string) {
	e.mutate(format.ToggleOnLines(e.doc, e.sel, token, styles), "toggleLineFormat")
}

// SetContent replaces the document from markup. Malformed markup degrades
// to a plain-text import and never fails.
func (e *Engine) SetContent(text string) {
	e.doc = markup.Decode(text)
	e.clampSelection()
	e.commit("setContent")
}

// SetContentFromModel replaces the document from a model value. The input
// is deep-copied and normalized; the caller keeps ownership of its copy.
func (e *Engine) SetContentFromModel(d *document.Document) {
	if d == nil {
		return
	}
	next := d.Clone()
	next.Normalize()
	e.doc = next
	e.clampSelection()
	e.commit("setContentFromModel")
}

// ReportEdit absorbs a raw edit from the display surface: the new plain
// text is reconciled against the model, inheriting formatting for changed
// spans from neighboring runs.
func (e *Engine) ReportEdit(text string) {
	e.doc = reconcile.Reconcile(e.doc, text)
	e.clampSelection()
	e.commit("reportEdit")
}

// Markup serializes the document to the wire format.
func (e *Engine) Markup() string {
	return markup.Encode(e.doc)
}

// Model returns a deep copy of the document. Mutating it never affects the
// engine.
func (e *Engine) Model() *document.Document {
	return e.doc.Clone()
}

// Text returns the document's plain text.
func (e *Engine) Text() string {
	return e.doc.Text()
}

// On registers a listener for "change" or "select" and returns its
// subscription ID for Off.
func (e *Engine) On(topic event.Topic, h event.Handler) (string, error) {
	sub, err := e.bus.Subscribe(topic, h)
	if err != nil {
		return "", err
	}
	return sub.ID(), nil
}

// Off cancels a listener registration by subscription ID.
func (e *Engine) Off(id string) bool {
	return e.bus.Unsubscribe(id)
}

// mutate installs the transformed document when the operation produced
// one. Transforms return their input untouched for silent no-ops (empty
// selection sets); those end without notification.
func (e *Engine) mutate(next *document.Document, op string) {
	if next == e.doc {
		return
	}
	e.doc = next
	e.commit(op)
}

// commit finishes a mutating operation: render the new state to the
// surface, restore the selection, and notify listeners. Formatting never
// changes content length, so the stored range is still valid; content
// replacement clamps before committing.
func (e *Engine) commit(op string) {
	e.log.Debug("%s committed", op)
	e.surf.Apply(surface.Render(e.doc))
	e.pushSelection()
	e.bus.Publish(event.TopicChange, event.ChangeEvent{
		Document: e.doc.Clone(),
		Markup:   markup.Encode(e.doc),
	})
}

func (e *Engine) clampSelection() {
	e.sel = e.sel.Clamp(index.Length(e.doc))
}

func (e *Engine) pushSelection() {
	e.surf.SetSelection(
		index.Locate(e.doc, e.sel.Start),
		index.Locate(e.doc, e.sel.End),
	)
}
