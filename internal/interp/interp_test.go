package interp_test

import (
	"strings"
	"testing"

	"druim/internal/diag"
	"druim/internal/interp"
	"druim/internal/lexer"
	"druim/internal/parser"
	"druim/internal/source"
)

func run(t *testing.T, src string) *interp.Interp {
	t.Helper()
	toks, lerr := lexer.New(source.New(src)).Tokenize()
	if lerr != nil {
		t.Fatalf("lexing %q failed: %v", src, lerr)
	}
	prog, pd := parser.New(toks).ParseProgram()
	if pd != nil {
		t.Fatalf("parsing %q failed: %s", src, pd.Message)
	}
	in := interp.New()
	if rd := in.Run(prog); rd != nil {
		t.Fatalf("running %q failed: %s", src, rd.Message)
	}
	return in
}

func runFail(t *testing.T, src string) *diag.Diagnostic {
	t.Helper()
	toks, lerr := lexer.New(source.New(src)).Tokenize()
	if lerr != nil {
		t.Fatalf("lexing %q failed: %v", src, lerr)
	}
	prog, pd := parser.New(toks).ParseProgram()
	if pd != nil {
		t.Fatalf("parsing %q failed: %s", src, pd.Message)
	}
	d := interp.New().Run(prog)
	if d == nil {
		t.Fatalf("running %q succeeded, want runtime diagnostic", src)
	}
	return d
}

func get(t *testing.T, in *interp.Interp, name string) interp.Value {
	t.Helper()
	v, ok := in.Get(name)
	if !ok {
		t.Fatalf("%q is not defined", name)
	}
	return v
}

func TestDefineAndLiterals(t *testing.T) {
	in := run(t, `a = 42; b = 3.14; c = "hi"; d =;`)
	if v := get(t, in, "a"); v != interp.Num(42) {
		t.Errorf("a = %v", v)
	}
	if v := get(t, in, "b"); v != interp.Dec("3.14") {
		t.Errorf("b = %v", v)
	}
	if v := get(t, in, "c"); v != interp.Text("hi") {
		t.Errorf("c = %v", v)
	}
	if v := get(t, in, "d"); v != (interp.Emp{}) {
		t.Errorf("d = %v", v)
	}
}

func TestCopyAliasesTheSlot(t *testing.T) {
	in := run(t, "a = 1; b := a;")
	if !in.Env().Assign("a", interp.Num(7)) {
		t.Fatal("assign through a failed")
	}
	if v := get(t, in, "b"); v != interp.Num(7) {
		t.Errorf("b = %v, want 7 (alias must see mutation)", v)
	}
	if !in.Env().Assign("b", interp.Num(9)) {
		t.Fatal("assign through b failed")
	}
	if v := get(t, in, "a"); v != interp.Num(9) {
		t.Errorf("a = %v, want 9 (mutation visible both ways)", v)
	}
}

func TestBindSnapshotsTheValue(t *testing.T) {
	in := run(t, "a = 1; b :> a;")
	in.Env().Assign("a", interp.Num(7))
	if v := get(t, in, "b"); v != interp.Num(1) {
		t.Errorf("b = %v, want the snapshot 1", v)
	}
}

func TestGuardTruthRules(t *testing.T) {
	cases := []struct {
		src  string
		want interp.Value
	}{
		{"x ?= 0 : 2;", interp.Num(2)},
		{"x ?= 5 : 2;", interp.Num(5)},
		{"x ?= emp : 3;", interp.Num(3)},
		{`x ?= "" : "hi";`, interp.Text("hi")},
		{"x ?= 0.0 : 1.5;", interp.Dec("1.5")},
		{"x ?= 0 : emp;", interp.Emp{}},
		{"x ?= 0;", interp.Emp{}},
	}
	for _, tc := range cases {
		in := run(t, tc.src)
		if v := get(t, in, "x"); v != tc.want {
			t.Errorf("run(%q): x = %v, want %v", tc.src, v, tc.want)
		}
	}
}

func TestGuardStopsAtFirstTrueBranch(t *testing.T) {
	// the third branch would divide by zero if evaluated
	in := run(t, "x ?= 0 : 2 : 1 / 0;")
	if v := get(t, in, "x"); v != interp.Num(2) {
		t.Errorf("x = %v, want 2", v)
	}
}

func TestFunctionCallAndReturn(t *testing.T) {
	in := run(t, "fn add :( a, b )( ret a + b; ): r = add(1, 2);")
	if v := get(t, in, "r"); v != interp.Num(3) {
		t.Errorf("r = %v, want 3", v)
	}
}

func TestFunctionParamDefaults(t *testing.T) {
	in := run(t, "fn bump :( a, by = 10 )( ret a + by; ): r = bump(1);")
	if v := get(t, in, "r"); v != interp.Num(11) {
		t.Errorf("r = %v, want 11", v)
	}
}

func TestFunctionWithoutReturnYieldsEmp(t *testing.T) {
	in := run(t, "fn quiet :( a )( b = a + 1; ): r = quiet(1);")
	if v := get(t, in, "r"); v != (interp.Emp{}) {
		t.Errorf("r = %v, want emp", v)
	}
}

func TestReturnUnwindsNestedBlocks(t *testing.T) {
	in := run(t, "fn pick :( a )( :{ :{ ret a + 1; }: }: ret 0; ): r = pick(1);")
	if v := get(t, in, "r"); v != interp.Num(2) {
		t.Errorf("r = %v, want 2 (inner return must unwind)", v)
	}
}

func TestReturnAtTopLevelIsAnError(t *testing.T) {
	d := runFail(t, "ret;")
	if d.Code != diag.RunReturnTopLevel {
		t.Errorf("code = %v", d.Code)
	}
}

func TestPipeAppliesFunction(t *testing.T) {
	in := run(t, "fn inc :( x )( ret x + 1; ): r = 1 |> inc;")
	if v := get(t, in, "r"); v != interp.Num(2) {
		t.Errorf("r = %v, want 2", v)
	}
}

func TestBlockScopeShadowing(t *testing.T) {
	in := run(t, "a = 1; :{ a = 2; }:")
	if v := get(t, in, "a"); v != interp.Num(1) {
		t.Errorf("a = %v, want 1 (inner define must not leak)", v)
	}
}

func TestExpressionBlockYieldsLastSegment(t *testing.T) {
	in := run(t, "x = :[ 1 + 1 ][ 5 ]:;")
	if v := get(t, in, "x"); v != interp.Num(5) {
		t.Errorf("x = %v, want 5", v)
	}
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want interp.Value
	}{
		{"x = 7 % 3;", interp.Num(1)},
		{"x = 7 / 2;", interp.Num(3)},
		{"x = 1.5 + 1;", interp.Dec("2.5")},
		{"x = -1.5;", interp.Dec("-1.5")},
		{"x = 2 < 3;", interp.Flag(true)},
		{"x = 1 == 1;", interp.Flag(true)},
		{`x = "a" == "b";`, interp.Flag(false)},
		{"x = 1 != emp;", interp.Flag(true)},
		{"x = !?0;", interp.Flag(true)},
	}
	for _, tc := range cases {
		in := run(t, tc.src)
		if v := get(t, in, "x"); v != tc.want {
			t.Errorf("run(%q): x = %v, want %v", tc.src, v, tc.want)
		}
	}
}

func TestLogicalShortCircuit(t *testing.T) {
	// `y` is undefined; short-circuiting must skip it
	in := run(t, "x = 0 &? y;")
	if v := get(t, in, "x"); v != interp.Flag(false) {
		t.Errorf("x = %v, want false", v)
	}
	in = run(t, "x = 1 |? y;")
	if v := get(t, in, "x"); v != interp.Flag(true) {
		t.Errorf("x = %v, want true", v)
	}
}

func TestRuntimeErrors(t *testing.T) {
	cases := []struct {
		src  string
		code diag.Code
		want string
	}{
		{"x = y + 1;", diag.RunUndefinedName, "undefined name"},
		{"x = 1 / 0;", diag.RunBadOperand, "division by zero"},
		{"a = 1; a(2);", diag.RunNotCallable, "not callable"},
		{"x = 1 :: 2;", diag.RunUnsupportedOp, "no runtime behavior"},
		{"fn f :( a )( ret a; ): r = f(1, 2);", diag.RunArityMismatch, "parameter"},
		{"fn f :( a )( ret a; ): r = f();", diag.RunArityMismatch, "argument"},
		{`x = "a" + 1;`, diag.RunBadOperand, "cannot apply"},
	}
	for _, tc := range cases {
		d := runFail(t, tc.src)
		if d.Code != tc.code {
			t.Errorf("run(%q): code = %v, want %v", tc.src, d.Code, tc.code)
		}
		if !strings.Contains(d.Message, tc.want) {
			t.Errorf("run(%q): message = %q, want it to contain %q", tc.src, d.Message, tc.want)
		}
	}
}

func TestRuntimeErrorCarriesSpan(t *testing.T) {
	d := runFail(t, "x = y + 1;")
	if d.Span != (source.Span{Start: 4, End: 5}) {
		t.Errorf("span = %v, want 4-5 (the undefined name)", d.Span)
	}
}

func TestTruthOf(t *testing.T) {
	cases := []struct {
		v    interp.Value
		want bool
	}{
		{interp.Flag(true), true},
		{interp.Flag(false), false},
		{interp.Emp{}, false},
		{interp.Num(0), false},
		{interp.Num(-3), true},
		{interp.Dec("0.0"), false},
		{interp.Dec("0.25"), true},
		{interp.Text(""), false},
		{interp.Text("x"), true},
	}
	for _, tc := range cases {
		if got := interp.TruthOf(tc.v); got != tc.want {
			t.Errorf("TruthOf(%v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}
