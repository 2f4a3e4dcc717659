package surface

import "github.com/dshills/runemark/internal/engine/index"

// Fake is an in-memory Surface for tests. It records every frame and
// selection push and lets tests flip editability and focus.
type Fake struct {
	EditableState bool
	FocusedState  bool

	Frames     []Frame
	Selections [][2]index.Position
}

// NewFake returns an editable, focused fake surface.
func NewFake() *Fake {
	return &Fake{EditableState: true, FocusedState: true}
}

// NewReadOnlyFake returns a fake surface that rejects engine construction.
func NewReadOnlyFake() *Fake {
	return &Fake{}
}

func (f *Fake) Editable() bool {
	return f.EditableState
}

func (f *Fake) Focused() bool {
	return f.FocusedState
}

func (f *Fake) Apply(frame Frame) {
	f.Frames = append(f.Frames, frame)
}

func (f *Fake) SetSelection(start, end index.Position) {
	f.Selections = append(f.Selections, [2]index.Position{start, end})
}

// LastFrame returns the most recently applied frame and whether one exists.
func (f *Fake) LastFrame() (Frame, bool) {
	if len(f.Frames) == 0 {
		return Frame{}, false
	}
	return f.Frames[len(f.Frames)-1], true
}

// LastSelection returns the most recently pushed selection and whether one
// exists.
func (f *Fake) LastSelection() ([2]index.Position, bool) {
	if len(f.Selections) == 0 {
		return [2]index.Position{}, false
	}
	return f.Selections[len(f.Selections)-1], true
}

// Reset clears the recorded frames and selections.
func (f *Fake) Reset() {
	f.Frames = nil
	f.Selections = nil
}
