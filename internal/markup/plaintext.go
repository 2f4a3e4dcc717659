package markup

import (
	strip "github.com/grokify/html-strip-tags-go"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/dshills/runemark/internal/engine/document"
)

// ImportPlainText builds an unformatted document from untrusted input:
// markup is stripped, entities unescaped, the text NFC-normalized, and
// newlines become line boundaries.
func ImportPlainText(input string) *document.Document {
	text := strip.StripTags(input)
	text = html.UnescapeString(text)
	text = norm.NFC.String(text)
	return document.FromText(text)
}
