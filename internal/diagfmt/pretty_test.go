package diagfmt_test

import (
	"strings"
	"testing"

	"druim/internal/diag"
	"druim/internal/diagfmt"
	"druim/internal/source"
	"druim/internal/token"
)

func sp(start, end uint32) source.Span { return source.Span{Start: start, End: end} }

func assertRender(t *testing.T, d diag.Diagnostic, src, want string) {
	t.Helper()
	got := diagfmt.Render(d, source.New(src), diagfmt.Opts{})
	if got != want {
		t.Errorf("render mismatch\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}

func TestSimpleErrorSingleCaret(t *testing.T) {
	d := diag.Error(diag.SynUnexpectedToken, sp(8, 9), "unexpected token")
	assertRender(t, d, "let x = ;\n",
		"error: unexpected token\n"+
			" --> line 1, column 9\n"+
			"  |\n"+
			"1 | let x = ;\n"+
			"  |         ^\n")
}

func TestErrorWithHelp(t *testing.T) {
	d := diag.Error(diag.SynExpectedToken, sp(10, 10), "expected expression").
		WithHelp("expressions cannot be empty")
	assertRender(t, d, "define x =\n",
		"error: expected expression\n"+
			" --> line 1, column 11\n"+
			"  |\n"+
			"1 | define x =\n"+
			"  |           ^\n"+
			"\n"+
			"help: expressions cannot be empty\n")
}

func TestMultiCharacterSpan(t *testing.T) {
	d := diag.Error(diag.UnknownCode, sp(12, 15), "invalid number")
	assertRender(t, d, "let total = 123;\n",
		"error: invalid number\n"+
			" --> line 1, column 13\n"+
			"  |\n"+
			"1 | let total = 123;\n"+
			"  |             ^^^\n")
}

func TestMultiDigitLineNumber(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 9; i++ {
		b.WriteString("line ")
		b.WriteByte(byte('0' + i))
		b.WriteByte('\n')
	}
	b.WriteString("bad stuff\n")
	b.WriteString("line 11\n")

	d := diag.Error(diag.UnknownCode, sp(63, 66), "invalid syntax")
	assertRender(t, d, b.String(),
		"error: invalid syntax\n"+
			" --> line 10, column 1\n"+
			"   |\n"+
			"10 | bad stuff\n"+
			"   | ^^^\n")
}

func TestWarningSeverity(t *testing.T) {
	d := diag.Warning(diag.UnknownCode, sp(4, 5), "unused variable")
	assertRender(t, d, "let x = 1;\n",
		"warning: unused variable\n"+
			" --> line 1, column 5\n"+
			"  |\n"+
			"1 | let x = 1;\n"+
			"  |     ^\n")
}

func TestSpanAtColumnOne(t *testing.T) {
	d := diag.Error(diag.UnknownCode, sp(0, 4), "unexpected identifier")
	assertRender(t, d, "oops = 1;\n",
		"error: unexpected identifier\n"+
			" --> line 1, column 1\n"+
			"  |\n"+
			"1 | oops = 1;\n"+
			"  | ^^^^\n")
}

func TestSpanClampedToLineEnd(t *testing.T) {
	d := diag.Error(diag.UnknownCode, sp(9, 20), "unexpected end of input")
	assertRender(t, d, "value = 42\n",
		"error: unexpected end of input\n"+
			" --> line 1, column 10\n"+
			"  |\n"+
			"1 | value = 42\n"+
			"  |          ^\n")
}

func TestNoteWithoutSourceBlock(t *testing.T) {
	d := diag.NoteDiag(diag.UnknownCode, sp(0, 0), "this value is inferred")
	assertRender(t, d, "let x = 1;\n", "note: this value is inferred\n")
}

func TestHelpDiagnosticHeaderOnly(t *testing.T) {
	d := diag.HelpDiag(diag.UnknownCode, sp(3, 3), "try a smaller value")
	assertRender(t, d, "x = 99;\n", "help: try a smaller value\n")
}

func TestErrorInMultiLineSource(t *testing.T) {
	src := "let a = 1;\nlet b = ;\nlet c = 3;\n"
	d := diag.Error(diag.UnknownCode, sp(19, 20), "expected expression").
		WithHelp("expressions cannot be empty")
	assertRender(t, d, src,
		"error: expected expression\n"+
			" --> line 2, column 9\n"+
			"  |\n"+
			"2 | let b = ;\n"+
			"  |         ^\n"+
			"\n"+
			"help: expressions cannot be empty\n")
}

func TestSecondarySpanLabel(t *testing.T) {
	src := "let total = price * qty;\nlet price = 10;\n"
	d := diag.Error(diag.UnknownCode, sp(20, 23), "unknown variable `qty`").
		WithSecondary(sp(11, 19), "defined here")
	assertRender(t, d, src,
		"error: unknown variable `qty`\n"+
			" --> line 1, column 21\n"+
			"  |\n"+
			"1 | let total = price * qty;\n"+
			"  |                     ^^^\n"+
			"  |             -------- defined here\n")
}

func TestMultipleSecondaryLabels(t *testing.T) {
	src := "let total = price * qty + tax;\nlet price = 10;\nlet tax = 2;\n"
	d := diag.Error(diag.UnknownCode, sp(20, 29), "unknown variables").
		WithSecondary(sp(12, 17), "defined here").
		WithSecondary(sp(33, 36), "defined here")
	assertRender(t, d, src,
		"error: unknown variables\n"+
			" --> line 1, column 21\n"+
			"  |\n"+
			"1 | let total = price * qty + tax;\n"+
			"  |                     ^^^^^^^^^\n"+
			"  |             -------- defined here\n"+
			"  |             -------- defined here\n")
}

func TestNotesAndHelpOrdering(t *testing.T) {
	d := diag.Error(diag.UnknownCode, sp(4, 5), "unknown variable `y`").
		WithNote(diag.NewNote("`y` must be declared before use")).
		WithNote(diag.NewHelp("try defining `y` earlier in the file"))
	assertRender(t, d, "x = y;\n",
		"error: unknown variable `y`\n"+
			" --> line 1, column 5\n"+
			"  |\n"+
			"1 | x = y;\n"+
			"  |     ^\n"+
			"\n"+
			"note: `y` must be declared before use\n"+
			"\n"+
			"help: try defining `y` earlier in the file\n")
}

func TestEmbeddedNoteWithSpan(t *testing.T) {
	src := "let total = price * qty;\nlet price = 10;\n"
	d := diag.Error(diag.UnknownCode, sp(20, 23), "unknown variable `qty`").
		WithNote(diag.NewNoteAt("`price` is defined here", sp(12, 17)))
	assertRender(t, d, src,
		"error: unknown variable `qty`\n"+
			" --> line 1, column 21\n"+
			"  |\n"+
			"1 | let total = price * qty;\n"+
			"  |                     ^^^\n"+
			"\n"+
			"note: `price` is defined here\n"+
			" --> line 1, column 13\n"+
			"  |\n"+
			"1 | let total = price * qty;\n"+
			"  |             ^^^^^\n")
}

func TestMixedNotesWithHelp(t *testing.T) {
	src := "let total = price * qty;\nlet price = 10;\n"
	d := diag.Error(diag.UnknownCode, sp(20, 23), "unknown variable `qty`").
		WithHelp("declare `qty` before use").
		WithNote(diag.NewNoteAt("`price` is defined here", sp(12, 17))).
		WithNote(diag.NewNote("`qty` was never declared"))
	assertRender(t, d, src,
		"error: unknown variable `qty`\n"+
			" --> line 1, column 21\n"+
			"  |\n"+
			"1 | let total = price * qty;\n"+
			"  |                     ^^^\n"+
			"\n"+
			"note: `price` is defined here\n"+
			" --> line 1, column 13\n"+
			"  |\n"+
			"1 | let total = price * qty;\n"+
			"  |             ^^^^^\n"+
			"\n"+
			"note: `qty` was never declared\n"+
			"\n"+
			"help: declare `qty` before use\n")
}

func TestHelpNoteWithSpanRendersBlock(t *testing.T) {
	src := "let total = price * qty;\nlet price = 10;\n"
	d := diag.Error(diag.UnknownCode, sp(20, 23), "unknown variable `qty`").
		WithNote(diag.NewHelpAt("rename `price` if you meant it here", sp(12, 17)))
	assertRender(t, d, src,
		"error: unknown variable `qty`\n"+
			" --> line 1, column 21\n"+
			"  |\n"+
			"1 | let total = price * qty;\n"+
			"  |                     ^^^\n"+
			"\n"+
			"help: rename `price` if you meant it here\n"+
			" --> line 1, column 13\n"+
			"  |\n"+
			"1 | let total = price * qty;\n"+
			"  |             ^^^^^\n")
}

func TestZeroWidthSpanDrawsOneCaret(t *testing.T) {
	d := diag.Error(diag.UnknownCode, sp(1, 1), "test")
	assertRender(t, d, "abc\n",
		"error: test\n"+
			" --> line 1, column 2\n"+
			"  |\n"+
			"1 | abc\n"+
			"  |  ^\n")
}

func TestCaretWidthClampsToLine(t *testing.T) {
	d := diag.Error(diag.UnknownCode, sp(1, 99), "test")
	assertRender(t, d, "abc\n",
		"error: test\n"+
			" --> line 1, column 2\n"+
			"  |\n"+
			"1 | abc\n"+
			"  |  ^^\n")
}

func TestSpanStartingOnNewlineRendersAtEOL(t *testing.T) {
	d := diag.Error(diag.UnknownCode, sp(3, 3), "test")
	assertRender(t, d, "abc\n",
		"error: test\n"+
			" --> line 1, column 4\n"+
			"  |\n"+
			"1 | abc\n"+
			"  |    ^\n")
}

func TestSecondaryLabelsDoNotShiftCaret(t *testing.T) {
	src := "let x = y;\n"
	plainD := diag.Error(diag.UnknownCode, sp(8, 9), "unknown variable")
	labeled := plainD.WithSecondary(sp(4, 5), "defined here")

	plainOut := diagfmt.Render(plainD, source.New(src), diagfmt.Opts{})
	labeledOut := diagfmt.Render(labeled, source.New(src), diagfmt.Opts{})

	if !strings.HasPrefix(labeledOut, plainOut) {
		t.Fatalf("labels moved the primary block\n--- plain ---\n%s\n--- labeled ---\n%s", plainOut, labeledOut)
	}
	want := "error: unknown variable\n" +
		" --> line 1, column 9\n" +
		"  |\n" +
		"1 | let x = y;\n" +
		"  |         ^\n" +
		"  | -------- defined here\n"
	if labeledOut != want {
		t.Errorf("render mismatch\n--- want ---\n%s\n--- got ---\n%s", want, labeledOut)
	}
}

func TestColorWrapsWithoutShiftingColumns(t *testing.T) {
	d := diag.Error(diag.UnknownCode, sp(1, 1), "test")
	got := diagfmt.Render(d, source.New("abc\n"), diagfmt.Opts{Color: true})

	want := "\x1b[38;5;88merror: test\n\x1b[39m" +
		" --> line 1, column 2\n" +
		"  |\n" +
		"1 | abc\n" +
		"  |  \x1b[38;5;135m^\x1b[39m\n"
	if got != want {
		t.Errorf("colored render mismatch\n--- want ---\n%q\n--- got ---\n%q", want, got)
	}

	stripped := got
	for _, code := range []string{"\x1b[38;5;88m", "\x1b[38;5;135m", "\x1b[39m"} {
		stripped = strings.ReplaceAll(stripped, code, "")
	}
	plain := diagfmt.Render(d, source.New("abc\n"), diagfmt.Opts{})
	if stripped != plain {
		t.Errorf("stripping color must yield the plain render\n%q\nvs\n%q", stripped, plain)
	}
}

func TestDumpTokensAligned(t *testing.T) {
	src := source.New("x = 42;")
	toks := []token.Token{
		{Kind: token.Ident, Text: "x", Pos: 0},
		{Kind: token.Define, Text: "=", Pos: 2},
		{Kind: token.NumLit, Text: "42", Pos: 4},
		{Kind: token.Semicolon, Text: ";", Pos: 6},
		{Kind: token.EOF, Pos: 7},
	}
	out := diagfmt.DumpTokens(toks, src)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header + 5 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "KIND") {
		t.Errorf("missing header: %q", lines[0])
	}
	if !strings.Contains(lines[3], "NumLit") || !strings.Contains(lines[3], "1:5") {
		t.Errorf("row 3 = %q, want NumLit at 1:5", lines[3])
	}
}
