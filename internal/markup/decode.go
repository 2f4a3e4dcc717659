package markup

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"

	"github.com/dshills/runemark/internal/engine/document"
)

// maxDepth bounds the codec's descent into the parsed tree. Anything nested
// deeper is hostile or garbage; the visitor simply stops descending.
const maxDepth = 64

// nodeKind classifies the nodes the codec understands.
type nodeKind int

const (
	nodeOther nodeKind = iota
	nodeBlock          // div, p: one line
	nodeInline         // span: one run
	nodeBreak          // br: soft break marker
	nodeText           // raw text
)

func kindOf(n *html.Node) nodeKind {
	switch n.Type {
	case html.TextNode:
		return nodeText
	case html.ElementNode:
		switch n.Data {
		case "div", "p":
			return nodeBlock
		case "span":
			return nodeInline
		case "br":
			return nodeBreak
		}
	}
	return nodeOther
}

// Decode parses block/inline markup into a document. Loose content outside
// any block container keeps its place as a line of its own. It never fails:
// input with no recognizable block container, a parser error, or a panic
// during traversal all degrade to the plain-text fallback.
func Decode(input string) (doc *document.Document) {
	defer func() {
		if recover() != nil {
			doc = ImportPlainText(input)
		}
	}()

	root, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return ImportPlainText(input)
	}

	var bc blockCollector
	bc.walk(root, 0)
	bc.flush()
	if bc.blocks == 0 {
		return ImportPlainText(input)
	}
	return document.FromLines(bc.lines...)
}

// blockCollector walks the tree turning block containers into lines.
// Containers nested inside another block are not new lines; decodeLine
// flattens them. Loose content between blocks (text, spans, breaks outside
// any container) is gathered into its own line so partial markup loses no
// content; whitespace-only text between blocks is formatting, not content.
type blockCollector struct {
	lines  []document.Line
	loose  document.Line
	blocks int
}

func (bc *blockCollector) walk(n *html.Node, depth int) {
	if n == nil || depth > maxDepth {
		return
	}
	switch kindOf(n) {
	case nodeBlock:
		bc.flush()
		bc.lines = append(bc.lines, decodeLine(n))
		bc.blocks++
		return
	case nodeText:
		if strings.TrimSpace(n.Data) == "" {
			return
		}
		collectInline(n, depth, nil, nil, &bc.loose.Runs)
		return
	case nodeInline, nodeBreak:
		collectInline(n, depth, nil, nil, &bc.loose.Runs)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		bc.walk(c, depth+1)
	}
}

// flush closes the pending loose line, if any.
func (bc *blockCollector) flush() {
	if len(bc.loose.Runs) > 0 {
		bc.lines = append(bc.lines, bc.loose)
	}
	bc.loose = document.Line{}
}

// decodeLine rebuilds one line from a block container.
func decodeLine(n *html.Node) document.Line {
	line := document.Line{Attrs: document.Attrs{
		Tokens: document.ParseTokenSet(attrValue(n, "class")),
		Styles: parseStyleAttr(attrValue(n, "style"), false),
	}}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectInline(c, 0, nil, nil, &line.Runs)
	}
	return line
}

// collectInline appends runs for an inline node. Text splits on embedded
// newlines into runs interleaved with break markers; unknown elements are
// transparent and contribute their children with the inherited formatting.
func collectInline(n *html.Node, depth int, tokens document.TokenSet, styles map[string]string, runs *[]document.Run) {
	if n == nil || depth > maxDepth {
		return
	}
	switch kindOf(n) {
	case nodeText:
		appendText(n.Data, tokens, styles, runs)
	case nodeBreak:
		*runs = append(*runs, document.BreakRun())
	case nodeInline:
		t := document.ParseTokenSet(attrValue(n, "class"))
		s := parseStyleAttr(attrValue(n, "style"), true)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collectInline(c, depth+1, t, s, runs)
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collectInline(c, depth+1, tokens, styles, runs)
		}
	}
}

func appendText(text string, tokens document.TokenSet, styles map[string]string, runs *[]document.Run) {
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			*runs = append(*runs, document.BreakRun())
		}
		if part == "" {
			continue
		}
		*runs = append(*runs, document.NewStyledRun(part, tokens, styles))
	}
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// parseStyleAttr parses a style attribute into a style map. Inline HTML
// styles routinely omit the trailing semicolon the CSS parser insists on,
// so one is appended first. For run-level attributes only custom properties
// (--token) are meaningful and the prefix is stripped; line-level
// declarations are taken literally.
func parseStyleAttr(val string, customProps bool) map[string]string {
	val = strings.TrimSpace(val)
	if val == "" {
		return nil
	}
	if !strings.HasSuffix(val, ";") {
		val += ";"
	}
	decls, err := parser.ParseDeclarations(val)
	if err != nil {
		return nil
	}
	var styles map[string]string
	for _, d := range decls {
		prop := strings.TrimSpace(d.Property)
		if customProps {
			if !strings.HasPrefix(prop, "--") {
				continue
			}
			prop = strings.TrimPrefix(prop, "--")
		}
		if prop == "" {
			continue
		}
		if styles == nil {
			styles = make(map[string]string, len(decls))
		}
		styles[prop] = strings.TrimSpace(d.Value)
	}
	return styles
}
