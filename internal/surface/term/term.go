// Package term implements the display-surface interface on a tcell
// terminal screen. It draws frames as styled cells, honors the align-right
// line attribute, and places the terminal cursor at the engine's selection
// head.
package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/runemark/internal/config"
	"github.com/dshills/runemark/internal/engine/index"
	"github.com/dshills/runemark/internal/surface"
)

// Surface renders engine frames on a terminal.
type Surface struct {
	mu      sync.Mutex
	screen  tcell.Screen
	theme   *config.Theme
	frame   surface.Frame
	caret   index.Position
	focused bool
}

// NewSurface creates a terminal surface with the given theme.
func NewSurface(theme *config.Theme) (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Surface{screen: screen, theme: theme, focused: true}, nil
}

// Init takes over the terminal.
func (s *Surface) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnablePaste()
	s.screen.EnableFocus()
	return nil
}

// Fini restores the terminal.
func (s *Surface) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Fini()
}

// PollEvent blocks for the next terminal event. Focus events update the
// surface's focus state before being returned.
func (s *Surface) PollEvent() tcell.Event {
	ev := s.screen.PollEvent()
	if fe, ok := ev.(*tcell.EventFocus); ok {
		s.mu.Lock()
		s.focused = fe.Focused
		s.mu.Unlock()
	}
	return ev
}

// Interrupt wakes a blocked PollEvent with an interrupt event, e.g. from a
// signal handler.
func (s *Surface) Interrupt() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Editable reports true: a terminal surface always accepts edits.
func (s *Surface) Editable() bool {
	return true
}

// Focused reports whether the terminal window has focus.
func (s *Surface) Focused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused
}

// Apply renders a frame.
func (s *Surface) Apply(frame surface.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = frame
	s.draw()
}

// SetSelection moves the terminal cursor to the selection head.
func (s *Surface) SetSelection(_, end index.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.caret = end
	s.draw()
}

// Redraw repaints the current frame, e.g. after a resize.
func (s *Surface) Redraw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Sync()
	s.draw()
}

// visualRow is one terminal row of a document line: the segments between
// soft breaks.
type visualRow struct {
	segments []surface.Segment
	width    int
}

func (s *Surface) draw() {
	s.screen.Clear()
	width, _ := s.screen.Size()

	screenRow := 0
	caretX, caretY := 0, 0
	for li, line := range s.frame.Lines {
		rows := splitRows(line.Segments)
		rightAlign := line.Attrs.HasToken("align-right")

		for ri, row := range rows {
			startCol := 0
			if rightAlign && row.width < width {
				startCol = width - row.width
			}
			col := startCol
			for _, seg := range row.segments {
				style := StyleFor(s.theme, seg)
				col = s.drawText(col, screenRow+ri, seg.Text, style)
			}
			_ = col
		}

		if li == s.caret.Line {
			row, x := caretCell(line, s.caret)
			if rightAlign && row < len(rows) && rows[row].width < width {
				x += width - rows[row].width
			}
			caretX, caretY = x, screenRow+row
		}
		screenRow += len(rows)
	}

	s.screen.ShowCursor(caretX, caretY)
	s.screen.Show()
}

// drawText writes one styled segment and returns the next column.
func (s *Surface) drawText(col, row int, text string, style tcell.Style) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if w <= 0 {
			continue
		}
		s.screen.SetContent(col, row, runes[0], runes[1:], style)
		col += w
	}
	return col
}

// splitRows cuts a line's segments into visual rows at break segments.
// A line always has at least one (possibly empty) row.
func splitRows(segments []surface.Segment) []visualRow {
	rows := []visualRow{{}}
	for _, seg := range segments {
		if seg.Break {
			rows = append(rows, visualRow{})
			continue
		}
		cur := &rows[len(rows)-1]
		cur.segments = append(cur.segments, seg)
		cur.width += uniseg.StringWidth(seg.Text)
	}
	return rows
}

// caretCell maps a structural position within a line to its visual row and
// cell column. Frame segments align with the line's runs; the empty
// placeholder run of an empty line renders no segment and maps to cell 0.
func caretCell(line surface.Line, p index.Position) (row, col int) {
	runIdx := 0
	for _, seg := range line.Segments {
		if runIdx == p.Run {
			break
		}
		if seg.Break {
			row++
			col = 0
		} else {
			col += uniseg.StringWidth(seg.Text)
		}
		runIdx++
	}
	if runIdx < len(line.Segments) {
		seg := line.Segments[runIdx]
		if seg.Break {
			if p.Offset > 0 {
				row++
				col = 0
			}
		} else {
			runes := []rune(seg.Text)
			if p.Offset < len(runes) {
				col += uniseg.StringWidth(string(runes[:p.Offset]))
			} else {
				col += uniseg.StringWidth(seg.Text)
			}
		}
	}
	return row, col
}
