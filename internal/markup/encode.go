package markup

import (
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/dshills/runemark/internal/engine/document"
)

// Encode renders the document in the wire format. The output round-trips
// through Decode for any canonical document.
func Encode(d *document.Document) string {
	var sb strings.Builder
	for _, line := range d.Lines {
		sb.WriteString("<div")
		writeClassAttr(&sb, line.Attrs.Tokens)
		writeStyleAttr(&sb, line.Attrs.Styles, "")
		sb.WriteByte('>')
		for _, run := range line.Runs {
			if run.IsBreak() {
				sb.WriteString("<br>")
				continue
			}
			if run.Content == "" {
				continue
			}
			sb.WriteString("<span")
			writeClassAttr(&sb, run.Tokens)
			writeStyleAttr(&sb, run.Styles, "--")
			sb.WriteByte('>')
			sb.WriteString(html.EscapeString(run.Content))
			sb.WriteString("</span>")
		}
		sb.WriteString("</div>")
	}
	return sb.String()
}

func writeClassAttr(sb *strings.Builder, tokens document.TokenSet) {
	if tokens.IsEmpty() {
		return
	}
	sb.WriteString(` class="`)
	sb.WriteString(html.EscapeString(tokens.String()))
	sb.WriteString(`"`)
}

// writeStyleAttr emits the style declarations in sorted key order so the
// output is deterministic. Run-level declarations carry the custom-property
// prefix; line-level declarations are literal.
func writeStyleAttr(sb *strings.Builder, styles map[string]string, prefix string) {
	if len(styles) == 0 {
		return
	}
	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sb.WriteString(` style="`)
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(html.EscapeString(prefix + k + ": " + styles[k] + ";"))
	}
	sb.WriteString(`"`)
}
