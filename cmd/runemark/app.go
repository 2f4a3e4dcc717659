package main

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/runemark/internal/editor"
	"github.com/dshills/runemark/internal/engine/index"
	"github.com/dshills/runemark/internal/surface/term"
)

// errQuit signals a normal user-requested exit from the event loop.
var errQuit = errors.New("quit")

// app drives the terminal event loop. It owns the raw input side of the
// surface: it splices key input into the plain text, reports edits and
// selection moves to the engine, and maps shortcut chords to format
// operations.
type app struct {
	surf *term.Surface
	eng  *editor.Engine
	log  *editor.Logger

	// anchor and caret are linear indices; anchor is the selection's
	// fixed end while shift-extending.
	anchor int
	caret  int
}

func newApp(surf *term.Surface, eng *editor.Engine, log *editor.Logger) *app {
	return &app{
		surf:   surf,
		eng:    eng,
		log:    log.WithComponent("app"),
		anchor: 1,
		caret:  1,
	}
}

// restoreSelection places the selection saved with a session without
// announcing it to listeners.
func (a *app) restoreSelection(s session) {
	a.eng.SetSelection(s.SelStart, s.SelEnd)
	sel := a.eng.Selection()
	a.anchor, a.caret = sel.Start, sel.End
}

// snapshot captures the state to persist on exit.
func (a *app) snapshot() session {
	sel := a.eng.Selection()
	return session{Markup: a.eng.Markup(), SelStart: sel.Start, SelEnd: sel.End}
}

func (a *app) run() error {
	a.log.Debug("event loop started")
	for {
		ev := a.surf.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return errQuit
		case *tcell.EventResize:
			a.surf.Redraw()
		case *tcell.EventKey:
			if err := a.handleKey(ev); err != nil {
				return err
			}
		}
	}
}

func (a *app) handleKey(ev *tcell.EventKey) error {
	extend := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC, tcell.KeyEscape:
		return errQuit

	case tcell.KeyCtrlB:
		a.eng.ToggleFormat("bold", nil)
	case tcell.KeyCtrlE:
		// Ctrl-I arrives as Tab on terminals, so italic gets Ctrl-E.
		a.eng.ToggleFormat("italic", nil)
	case tcell.KeyCtrlU:
		a.eng.ToggleFormat("underline", nil)
	case tcell.KeyCtrlK:
		a.eng.ToggleFormat("strike", nil)
	case tcell.KeyCtrlY:
		a.eng.ToggleFormat("highlight", nil)
	case tcell.KeyCtrlA:
		a.selectAll()

	case tcell.KeyEnter:
		a.insert("\n")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.backspace()
	case tcell.KeyDelete:
		a.deleteForward()

	case tcell.KeyLeft:
		a.moveTo(a.caret-1, extend)
	case tcell.KeyRight:
		a.moveTo(a.caret+1, extend)
	case tcell.KeyUp:
		a.moveVertical(-1, extend)
	case tcell.KeyDown:
		a.moveVertical(+1, extend)
	case tcell.KeyHome:
		a.moveTo(a.rowStart(a.caret), extend)
	case tcell.KeyEnd:
		a.moveTo(a.rowEnd(a.caret), extend)

	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			a.handleChord(ev.Rune())
			return nil
		}
		a.insert(string(ev.Rune()))
	}
	return nil
}

func (a *app) handleChord(r rune) {
	switch r {
	case 'r', 'R':
		a.eng.ToggleLineFormat("align-right", nil)
	}
}

// text returns the document's plain text as runes. Plain-text rune i sits
// at linear index i+1, so an insertion point at linear index p falls just
// before rune p-1.
func (a *app) text() []rune {
	return []rune(a.eng.Text())
}

// selRunes returns the selected rune span, low to high.
func (a *app) selRunes() (lo, hi int) {
	lo, hi = a.anchor-1, a.caret-1
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

func (a *app) insert(s string) {
	runes := a.text()
	lo, hi := a.selRunes()
	next := string(runes[:lo]) + s + string(runes[hi:])
	a.eng.ReportEdit(next)
	a.caret = lo + len([]rune(s)) + 1
	a.anchor = a.caret
	a.reportSel()
}

func (a *app) backspace() {
	runes := a.text()
	lo, hi := a.selRunes()
	if lo == hi {
		if lo == 0 {
			return
		}
		lo--
	}
	a.eng.ReportEdit(string(runes[:lo]) + string(runes[hi:]))
	a.caret = lo + 1
	a.anchor = a.caret
	a.reportSel()
}

func (a *app) deleteForward() {
	runes := a.text()
	lo, hi := a.selRunes()
	if lo == hi {
		if hi >= len(runes) {
			return
		}
		hi++
	}
	a.eng.ReportEdit(string(runes[:lo]) + string(runes[hi:]))
	a.caret = lo + 1
	a.anchor = a.caret
	a.reportSel()
}

func (a *app) selectAll() {
	a.anchor = 1
	a.caret = len(a.text()) + 1
	a.reportSel()
}

// moveTo places the caret at the given linear index, clamped to the
// document. Without extend the anchor collapses onto the caret.
func (a *app) moveTo(idx int, extend bool) {
	max := len(a.text()) + 1
	if idx < 1 {
		idx = 1
	}
	if idx > max {
		idx = max
	}
	a.caret = idx
	if !extend {
		a.anchor = a.caret
	}
	a.reportSel()
}

// moveVertical moves the caret one row up or down, keeping the column
// where the target row allows.
func (a *app) moveVertical(dir int, extend bool) {
	runes := a.text()
	rp := a.caret - 1
	start := rowStartRune(runes, rp)
	col := rp - start

	var target int
	if dir < 0 {
		if start == 0 {
			a.moveTo(1, extend)
			return
		}
		prevStart := rowStartRune(runes, start-1)
		prevLen := (start - 1) - prevStart
		target = prevStart + min(col, prevLen)
	} else {
		end := rowEndRune(runes, rp)
		if end == len(runes) {
			a.moveTo(len(runes)+1, extend)
			return
		}
		nextStart := end + 1
		nextLen := rowEndRune(runes, nextStart) - nextStart
		target = nextStart + min(col, nextLen)
	}
	a.moveTo(target+1, extend)
}

func (a *app) rowStart(caret int) int {
	return rowStartRune(a.text(), caret-1) + 1
}

func (a *app) rowEnd(caret int) int {
	return rowEndRune(a.text(), caret-1) + 1
}

// reportSel pushes the selection to the surface and reports it to the
// engine. The anchor maps to the range start so the cursor follows the
// moving end.
func (a *app) reportSel() {
	m := a.eng.Model()
	start := index.Locate(m, a.anchor)
	end := index.Locate(m, a.caret)
	a.surf.SetSelection(start, end)
	a.eng.ReportSelection(start, end)
}

// rowStartRune finds the rune index of the first rune on the row holding
// position rp. Rows are delimited by newlines, whether they came from line
// boundaries or soft breaks.
func rowStartRune(runes []rune, rp int) int {
	i := rp
	for i > 0 && runes[i-1] != '\n' {
		i--
	}
	return i
}

// rowEndRune finds the rune index just past the last rune on the row
// holding position rp.
func rowEndRune(runes []rune, rp int) int {
	i := rp
	for i < len(runes) && runes[i] != '\n' {
		i++
	}
	return i
}
