package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"druim/internal/diag"
	"druim/internal/diagfmt"
	"druim/internal/driver"
	"druim/internal/interp"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenizeFile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.dm", "x = 1;\n")
	res, err := driver.Tokenize(path, driver.Options{})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	// x, =, 1, ;, EOF
	if len(res.Tokens) != 5 {
		t.Errorf("got %d tokens, want 5", len(res.Tokens))
	}
}

func TestTokenizeNormalizesCRLF(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.dm", "x = 1;\r\ny = 2;\r\n")
	res, err := driver.Tokenize(path, driver.Options{})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if strings.Contains(res.Source.Text(), "\r") {
		t.Error("source text still carries CR bytes")
	}
}

func TestTokenizeLexFailureLandsInBag(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.dm", "x = @;\n")
	res, err := driver.Tokenize(path, driver.Options{})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("want a lex diagnostic")
	}
	if res.Tokens != nil {
		t.Error("tokens must be nil after a lex failure")
	}
}

func TestParseFailureYieldsNoTree(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.dm", "x = 1\n")
	res, err := driver.Parse(path, driver.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("want an unterminated-statement diagnostic")
	}
	if res.Program != nil {
		t.Error("no partial tree on error")
	}
	if res.Bag.Items()[0].Code != diag.SynUnterminatedStatement {
		t.Errorf("code = %v", res.Bag.Items()[0].Code)
	}
}

func TestRunExecutesTheProgram(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.dm", "fn inc :( x )( ret x + 1; ): r = inc(41);\n")
	res, err := driver.Run(path, driver.Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	v, ok := res.Interp.Get("r")
	if !ok || v != interp.Num(42) {
		t.Errorf("r = %v, want 42", v)
	}
}

func TestRunSurfacesRuntimeDiagnostics(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.dm", "x = 1 / 0;\n")
	res, err := driver.Run(path, driver.Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("want a runtime diagnostic")
	}
	if got := res.Bag.Items()[0].Message; got != "division by zero" {
		t.Errorf("message = %q", got)
	}
}

func TestWriteDiagnosticsRendersBagOrder(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.dm", "x = 1")
	res, err := driver.Parse(path, driver.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var sb strings.Builder
	if err := driver.WriteDiagnostics(&sb, res.Bag, res.Source, diagfmt.Opts{}); err != nil {
		t.Fatalf("WriteDiagnostics: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "error: unterminated define statement\n") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, " --> line 1, column 6\n") {
		t.Errorf("output = %q", out)
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "good.dm", "a = 1;\n")
	writeSource(t, dir, "bad.dm", "a = ;\n")
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeSource(t, sub, "deep.dm", "b = 2;\n")
	writeSource(t, dir, "ignored.txt", "not druim")

	results, err := driver.CheckDir(context.Background(), dir, driver.Options{}, 4)
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	// sorted: bad.dm, good.dm, nested/deep.dm
	if filepath.Base(results[0].Path) != "bad.dm" {
		t.Errorf("results[0] = %s", results[0].Path)
	}
	if !results[0].Result.Bag.HasErrors() {
		t.Error("bad.dm must carry a diagnostic")
	}
	if results[1].Result.Bag.HasErrors() {
		t.Errorf("good.dm diagnostics: %v", results[1].Result.Bag.Items())
	}
	if results[2].Result.Bag.HasErrors() {
		t.Errorf("deep.dm diagnostics: %v", results[2].Result.Bag.Items())
	}
}

func TestCheckDirEmpty(t *testing.T) {
	results, err := driver.CheckDir(context.Background(), t.TempDir(), driver.Options{}, 0)
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}
