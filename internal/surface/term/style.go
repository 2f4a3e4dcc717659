package term

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/runemark/internal/config"
	"github.com/dshills/runemark/internal/surface"
)

// StyleFor resolves a segment's format tokens and style values to a tcell
// style through the theme. Tokens the theme does not know are skipped; a
// value-bearing token's value overrides the theme color on its target side.
func StyleFor(theme *config.Theme, seg surface.Segment) tcell.Style {
	st := tcell.StyleDefault
	for _, token := range seg.Tokens {
		fs, known := theme.Format(token)
		if known {
			st = applyFormat(st, fs)
		}
		if v, ok := seg.Styles[token]; ok {
			st = applyValue(st, fs, v)
		}
	}
	return st
}

func applyFormat(st tcell.Style, fs config.FormatStyle) tcell.Style {
	if c, ok := hexColor(fs.Foreground); ok {
		st = st.Foreground(c)
	}
	if c, ok := hexColor(fs.Background); ok {
		st = st.Background(c)
	}
	if fs.Bold {
		st = st.Bold(true)
	}
	if fs.Italic {
		st = st.Italic(true)
	}
	if fs.Underline {
		st = st.Underline(true)
	}
	if fs.Strike {
		st = st.StrikeThrough(true)
	}
	return st
}

// applyValue maps a value-bearing format's style value onto the side the
// theme targets. Values that do not parse as colors are ignored.
func applyValue(st tcell.Style, fs config.FormatStyle, value string) tcell.Style {
	c, ok := hexColor(value)
	if !ok {
		return st
	}
	if fs.ValueTarget == "foreground" {
		return st.Foreground(c)
	}
	return st.Background(c)
}

func hexColor(hex string) (tcell.Color, bool) {
	if hex == "" {
		return 0, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, false
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
}
