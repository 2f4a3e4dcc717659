// Package surface defines the display-surface capability interface: the
// seam between the engine and whatever presents the document. The engine
// never touches a presentation tree; it pushes frames of styled segments
// and structural selection positions, and receives raw-edit and selection
// reports back through the editor facade.
package surface

import (
	"github.com/dshills/runemark/internal/engine/document"
	"github.com/dshills/runemark/internal/engine/index"
)

// Segment is one styled span of a rendered line. A break segment carries
// no text or formatting and marks an explicit soft line break.
type Segment struct {
	Text   string
	Break  bool
	Tokens document.TokenSet
	Styles map[string]string
}

// Line is the render instruction for one document line.
type Line struct {
	Segments []Segment
	Attrs    document.Attrs
}

// Frame is a full render of the document: an ordered list of styled
// segments per line.
type Frame struct {
	Lines []Line
}

// Surface is the display collaborator the engine binds to at construction.
// Binding to a non-editable surface fails construction fatally.
type Surface interface {
	// Editable reports whether the surface accepts edits. Checked once
	// at engine construction.
	Editable() bool

	// Focused reports whether the surface currently has input focus.
	Focused() bool

	// Apply renders a frame. Called after every mutating operation.
	Apply(Frame)

	// SetSelection pushes the engine's selection to the surface as
	// structural positions the surface resolves itself.
	SetSelection(start, end index.Position)
}

// Render converts a document into a frame. Placeholder runs of empty lines
// render as a line with no segments.
func Render(d *document.Document) Frame {
	f := Frame{Lines: make([]Line, len(d.Lines))}
	for li, line := range d.Lines {
		fl := Line{Attrs: line.Attrs.Clone()}
		for _, run := range line.Runs {
			if run.IsBreak() {
				fl.Segments = append(fl.Segments, Segment{Break: true})
				continue
			}
			if run.Content == "" {
				continue
			}
			fl.Segments = append(fl.Segments, Segment{
				Text:   run.Content,
				Tokens: run.Tokens.Clone(),
				Styles: run.Styles,
			})
		}
		f.Lines[li] = fl
	}
	return f
}
