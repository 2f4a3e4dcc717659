package reconcile

import (
	"testing"

	"github.com/dshills/runemark/internal/engine/document"
)

func boldPlainDoc() *document.Document {
	return document.FromLines(document.NewLine(
		document.NewRun("ab", "bold"),
		document.NewRun("cd"),
	))
}

func TestReconcileNoChange(t *testing.T) {
	d := boldPlainDoc()
	got := Reconcile(d, d.Text())
	if !got.Equal(d) {
		t.Errorf("identical text must preserve the document:\n got %+v\nwant %+v", got, d)
	}
}

func TestReconcileTypedTextInheritsPrecedingRun(t *testing.T) {
	d := boldPlainDoc()
	// Type "xy" in the middle of the bold run.
	got := Reconcile(d, "axyb" + "cd")

	if got.Text() != "axybcd" {
		t.Fatalf("text = %q", got.Text())
	}
	runs := got.Lines[0].Runs
	if len(runs) != 2 {
		t.Fatalf("expected bold+plain runs, got %+v", runs)
	}
	if runs[0].Content != "axyb" || !runs[0].HasToken("bold") {
		t.Errorf("typed text must inherit bold: %+v", runs[0])
	}
}

func TestReconcileBoundaryTypingPrecedingWins(t *testing.T) {
	d := boldPlainDoc()
	// Type exactly at the bold/plain boundary.
	got := Reconcile(d, "abXcd")

	runs := got.Lines[0].Runs
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %+v", runs)
	}
	if runs[0].Content != "abX" || !runs[0].HasToken("bold") {
		t.Errorf("boundary insert must inherit the preceding run: %+v", runs)
	}
}

func TestReconcileDocumentStartFallsForward(t *testing.T) {
	d := document.FromLines(document.NewLine(document.NewRun("world", "italic")))
	got := Reconcile(d, "hello world")

	runs := got.Lines[0].Runs
	if len(runs) != 1 {
		t.Fatalf("expected a single merged italic run, got %+v", runs)
	}
	if runs[0].Content != "hello world" || !runs[0].HasToken("italic") {
		t.Errorf("document-start insert must inherit the following run: %+v", runs[0])
	}
}

func TestReconcileTrailingInsertInheritsLastRun(t *testing.T) {
	d := boldPlainDoc()
	got := Reconcile(d, "abcdef")

	runs := got.Lines[0].Runs
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %+v", runs)
	}
	if runs[1].Content != "cdef" || !runs[1].Tokens.IsEmpty() {
		t.Errorf("trailing insert must inherit the last run: %+v", runs)
	}
}

func TestReconcileDeletion(t *testing.T) {
	d := boldPlainDoc()
	got := Reconcile(d, "ad")

	if got.Text() != "ad" {
		t.Fatalf("text = %q", got.Text())
	}
	runs := got.Lines[0].Runs
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %+v", runs)
	}
	if !runs[0].HasToken("bold") || runs[0].Content != "a" {
		t.Errorf("surviving prefix keeps its formatting: %+v", runs[0])
	}
	if !runs[1].Tokens.IsEmpty() || runs[1].Content != "d" {
		t.Errorf("surviving suffix keeps its formatting: %+v", runs[1])
	}
}

func TestReconcileNewNewlineBecomesSoftBreak(t *testing.T) {
	d := document.FromLines(document.NewLine(document.NewRun("abcd", "bold")))
	got := Reconcile(d, "ab\ncd")

	if got.LineCount() != 1 {
		t.Fatalf("a typed newline is a soft break, not a new line: %d lines", got.LineCount())
	}
	runs := got.Lines[0].Runs
	if len(runs) != 3 || !runs[1].IsBreak() {
		t.Fatalf("expected text/break/text, got %+v", runs)
	}
	if !runs[0].HasToken("bold") || !runs[2].HasToken("bold") {
		t.Error("text around the break keeps bold")
	}
}

func TestReconcileSurvivingBoundariesKeepIdentity(t *testing.T) {
	d := document.FromLines(
		document.NewLine(document.NewRun("one")),
		document.NewLine(document.NewRun("two", "bold"), document.BreakRun(), document.NewRun("three")),
	)
	// Append to "three"; both the line boundary and the soft break survive.
	got := Reconcile(d, "one\ntwo\nthree!")

	if got.LineCount() != 2 {
		t.Fatalf("line boundary must survive: %d lines", got.LineCount())
	}
	l1 := got.Lines[1]
	if len(l1.Runs) != 3 || !l1.Runs[1].IsBreak() {
		t.Fatalf("soft break must survive: %+v", l1.Runs)
	}
	if l1.Runs[2].Content != "three!" || !l1.Runs[2].Tokens.IsEmpty() {
		t.Errorf("appended text inherits the last run: %+v", l1.Runs[2])
	}
}

func TestReconcileSeparatedEditsKeepInterveningRuns(t *testing.T) {
	d := document.FromLines(document.NewLine(
		document.NewRun("abc", "bold"),
		document.NewRun("def"),
		document.NewRun("ghi", "italic"),
	))
	// One report carrying two edits: X after "a", Y before the final "i".
	got := Reconcile(d, "aXbcdefghYi")

	if got.Text() != "aXbcdefghYi" {
		t.Fatalf("text = %q", got.Text())
	}
	runs := got.Lines[0].Runs
	if len(runs) != 3 {
		t.Fatalf("expected bold/plain/italic runs, got %+v", runs)
	}
	if runs[0].Content != "aXbc" || !runs[0].HasToken("bold") {
		t.Errorf("first edit inherits bold: %+v", runs[0])
	}
	if runs[1].Content != "def" || !runs[1].Tokens.IsEmpty() {
		t.Errorf("untouched run between the edits must keep its formatting: %+v", runs[1])
	}
	if runs[2].Content != "ghYi" || !runs[2].HasToken("italic") {
		t.Errorf("second edit inherits italic: %+v", runs[2])
	}
}

func TestReconcileSeparatedEditsAcrossLines(t *testing.T) {
	d := document.FromLines(
		document.NewLine(document.NewRun("abc", "bold")),
		document.NewLine(document.NewRun("def", "italic")),
	)
	got := Reconcile(d, "aXbc\ndeYf")

	if got.LineCount() != 2 {
		t.Fatalf("line boundary between the edit sites must survive: %d lines", got.LineCount())
	}
	l0, l1 := got.Lines[0].Runs, got.Lines[1].Runs
	if len(l0) != 1 || l0[0].Content != "aXbc" || !l0[0].HasToken("bold") {
		t.Errorf("first line = %+v, want bold %q", l0, "aXbc")
	}
	if len(l1) != 1 || l1[0].Content != "deYf" || !l1[0].HasToken("italic") {
		t.Errorf("second line = %+v, want italic %q", l1, "deYf")
	}
}

func TestReconcileSeparatedInsertAndDelete(t *testing.T) {
	d := document.FromLines(document.NewLine(
		document.NewRun("abc", "bold"),
		document.NewRun("def"),
		document.NewRun("ghi", "italic"),
	))
	// Delete "b", insert Z inside the italic run.
	got := Reconcile(d, "acdefgZhi")

	runs := got.Lines[0].Runs
	if len(runs) != 3 {
		t.Fatalf("expected bold/plain/italic runs, got %+v", runs)
	}
	if runs[0].Content != "ac" || !runs[0].HasToken("bold") {
		t.Errorf("deletion keeps the surviving bold text: %+v", runs[0])
	}
	if runs[1].Content != "def" || !runs[1].Tokens.IsEmpty() {
		t.Errorf("untouched run between the edits must keep its formatting: %+v", runs[1])
	}
	if runs[2].Content != "gZhi" || !runs[2].HasToken("italic") {
		t.Errorf("insert inside italic inherits italic: %+v", runs[2])
	}
}

func TestReconcileLineAttrsSurvive(t *testing.T) {
	d := document.FromLines(
		document.Line{
			Runs:  []document.Run{document.NewRun("head")},
			Attrs: document.Attrs{Tokens: document.NewTokenSet("align-right")},
		},
		document.NewLine(document.NewRun("body")),
	)
	got := Reconcile(d, "header\nbody")

	if !got.Lines[0].Attrs.HasToken("align-right") {
		t.Error("first line attributes must survive an edit inside the line")
	}
	if !got.Lines[1].Attrs.IsZero() {
		t.Error("second line attributes must stay empty")
	}
}

func TestReconcileFullReplacementIsUnformatted(t *testing.T) {
	d := document.FromLines(document.NewLine(document.NewRun("abc", "bold")))
	got := Reconcile(d, "xyz")

	if got.Text() != "xyz" {
		t.Fatalf("text = %q", got.Text())
	}
	if !got.Lines[0].Runs[0].Tokens.IsEmpty() {
		t.Error("with nothing surviving, replaced text is unformatted")
	}
}

func TestReconcileEmptyDocumentTyping(t *testing.T) {
	got := Reconcile(document.New(), "hi")
	if got.Text() != "hi" || got.LineCount() != 1 {
		t.Errorf("typing into an empty document: %+v", got)
	}
}

func TestReconcileToEmpty(t *testing.T) {
	got := Reconcile(boldPlainDoc(), "")
	if got.Text() != "" || got.LineCount() != 1 {
		t.Errorf("deleting everything yields one empty line: %+v", got)
	}
	if len(got.Lines[0].Runs) != 1 || !got.Lines[0].Runs[0].IsEmpty() {
		t.Errorf("empty line needs its placeholder run: %+v", got.Lines[0].Runs)
	}
}

func TestReconcileStyleInheritance(t *testing.T) {
	d := document.FromLines(document.NewLine(
		document.NewStyledRun("hi", document.NewTokenSet("highlight"), map[string]string{"highlight": "#ff0"}),
	))
	got := Reconcile(d, "hiya")

	r := got.Lines[0].Runs[0]
	if r.Content != "hiya" {
		t.Fatalf("runs = %+v", got.Lines[0].Runs)
	}
	if v, ok := r.Style("highlight"); !ok || v != "#ff0" {
		t.Error("styles inherit along with tokens")
	}
}
