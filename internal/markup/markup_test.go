package markup

import (
	"strings"
	"testing"

	"github.com/dshills/runemark/internal/engine/document"
)

func TestEncode(t *testing.T) {
	d := document.FromLines(
		document.Line{
			Runs: []document.Run{
				document.NewRun("Hello ", "bold"),
				document.NewStyledRun("world", document.NewTokenSet("highlight"),
					map[string]string{"highlight": "#ff0"}),
			},
			Attrs: document.Attrs{Tokens: document.NewTokenSet("align-right")},
		},
		document.NewLine(document.NewRun("a"), document.BreakRun(), document.NewRun("b")),
		document.EmptyLine(),
	)
	got := Encode(d)

	want := `<div class="align-right">` +
		`<span class="bold">Hello </span>` +
		`<span class="highlight" style="--highlight: #ff0;">world</span>` +
		`</div>` +
		`<div><span>a</span><br><span>b</span></div>` +
		`<div></div>`
	if got != want {
		t.Errorf("Encode =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeEscapesContent(t *testing.T) {
	d := document.FromLines(document.NewLine(document.NewRun(`a<b>&"c"`)))
	got := Encode(d)
	if strings.Contains(got, "<b>") {
		t.Errorf("content must be escaped: %s", got)
	}
	if back := Decode(got); back.Text() != `a<b>&"c"` {
		t.Errorf("escaped content must round-trip, got %q", back.Text())
	}
}

func TestRoundTrip(t *testing.T) {
	tests := map[string]*document.Document{
		"plain": document.FromText("one\ntwo"),
		"formatted": document.FromLines(
			document.NewLine(
				document.NewRun("Hello ", "bold"),
				document.NewRun("world", "bold", "italic"),
				document.NewRun("!"),
			),
		),
		"value-bearing": document.FromLines(document.NewLine(
			document.NewStyledRun("lit", document.NewTokenSet("highlight"),
				map[string]string{"highlight": "#ff0"}),
		)),
		"soft break": document.FromLines(document.NewLine(
			document.NewRun("a", "bold"), document.BreakRun(), document.NewRun("b", "bold"),
		)),
		"line attrs": document.FromLines(document.Line{
			Runs: []document.Run{document.NewRun("x")},
			Attrs: document.Attrs{
				Tokens: document.NewTokenSet("indent"),
				Styles: map[string]string{"indent": "2em"},
			},
		}),
		"empty line between": document.FromLines(
			document.NewLine(document.NewRun("a")),
			document.EmptyLine(),
			document.NewLine(document.NewRun("b")),
		),
	}
	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			back := Decode(Encode(d))
			if !back.Equal(d) {
				t.Errorf("round trip mismatch:\nmarkup %s\n got %+v\nwant %+v", Encode(d), back, d)
			}
		})
	}
}

func TestDecodeForeignMarkup(t *testing.T) {
	// <p> blocks and nested unknown elements from outside sources.
	d := Decode(`<p class="c">one <em>two</em></p><p>three<br>four</p>`)

	if d.LineCount() != 2 {
		t.Fatalf("expected 2 lines, got %d", d.LineCount())
	}
	if d.Lines[0].Text() != "one two" {
		t.Errorf("line 0 text = %q", d.Lines[0].Text())
	}
	if !d.Lines[0].Attrs.HasToken("c") {
		t.Error("block class becomes a line attribute")
	}
	if d.Lines[1].Text() != "three\nfour" {
		t.Errorf("line 1 text = %q", d.Lines[1].Text())
	}
}

func TestDecodeSplitsEmbeddedNewlines(t *testing.T) {
	d := Decode("<div><span class=\"bold\">a\nb</span></div>")

	runs := d.Lines[0].Runs
	if len(runs) != 3 {
		t.Fatalf("expected run/break/run, got %+v", runs)
	}
	if !runs[1].IsBreak() {
		t.Error("embedded newline becomes a break marker")
	}
	if !runs[0].HasToken("bold") || !runs[2].HasToken("bold") {
		t.Error("both halves keep the span's formatting")
	}
}

func TestDecodeStyleWithoutSemicolon(t *testing.T) {
	d := Decode(`<div><span class="highlight" style="--highlight: #ff0">x</span></div>`)
	v, ok := d.Lines[0].Runs[0].Style("highlight")
	if !ok || v != "#ff0" {
		t.Errorf("style = %q, %v", v, ok)
	}
}

func TestDecodeDropsOrphanStyles(t *testing.T) {
	// A custom property with no matching class token never persists.
	d := Decode(`<div><span style="--highlight: #ff0">x</span></div>`)
	if _, ok := d.Lines[0].Runs[0].Style("highlight"); ok {
		t.Error("style without a matching token must be pruned")
	}
}

func TestDecodeLooseContentAroundBlocks(t *testing.T) {
	// Text and inline elements outside any block container keep their
	// place as lines of their own instead of vanishing.
	tests := []struct {
		name  string
		in    string
		lines []string
	}{
		{"before", `x<div>y</div>`, []string{"x", "y"}},
		{"between", `<div>a</div>loose<div>b</div>`, []string{"a", "loose", "b"}},
		{"after", `<div>y</div>x`, []string{"y", "x"}},
		{"inline run", `<span class="bold">x</span><div>y</div>`, []string{"x", "y"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decode(tt.in)
			if d.LineCount() != len(tt.lines) {
				t.Fatalf("expected %d lines, got %d: %+v", len(tt.lines), d.LineCount(), d)
			}
			for i, want := range tt.lines {
				if got := d.Lines[i].Text(); got != want {
					t.Errorf("line %d text = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestDecodeLooseSpanKeepsFormatting(t *testing.T) {
	d := Decode(`<span class="bold">x</span><div>y</div>`)
	if !d.Lines[0].Runs[0].HasToken("bold") {
		t.Error("loose span keeps its class token")
	}
}

func TestDecodeFallbackPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		text string
	}{
		{"no markup at all", "not a container at all", "not a container at all"},
		{"inline only", "<b>hi</b> there", "hi there"},
		{"entities unescaped", "a &amp; b", "a & b"},
		{"newlines become lines", "one\ntwo", "one\ntwo"},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decode(tt.in)
			if d == nil {
				t.Fatal("Decode must never return nil")
			}
			if d.Text() != tt.text {
				t.Errorf("text = %q, want %q", d.Text(), tt.text)
			}
			for _, line := range d.Lines {
				for _, r := range line.Runs {
					if !r.Tokens.IsEmpty() || len(r.Styles) != 0 {
						t.Errorf("fallback import must be unformatted: %+v", r)
					}
				}
			}
		})
	}
}

func TestDecodeNFCNormalizesFallback(t *testing.T) {
	// e followed by combining acute composes to é.
	d := Decode("café")
	if d.Text() != "café" {
		t.Errorf("text = %q, want %q", d.Text(), "café")
	}
}

func TestDecodeHostileInputNeverPanics(t *testing.T) {
	inputs := []string{
		strings.Repeat("<div>", 500),
		"<div><span style=\"" + strings.Repeat("--x: y;", 1000) + "\">x</span></div>",
		"<div",
		"<!DOCTYPE html><html><body><div>ok</div>",
		"\x00\xff<div>\xfe</div>",
	}
	for _, in := range inputs {
		d := Decode(in)
		if d == nil {
			t.Errorf("Decode(%.20q...) returned nil", in)
		}
	}
}
