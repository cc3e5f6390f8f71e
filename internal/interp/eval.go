package interp

import (
	"fmt"
	"strconv"

	"druim/internal/ast"
	"druim/internal/diag"
	"druim/internal/source"
)

// Interp executes a successfully parsed Program. Runtime failures are
// surfaced as Diagnostics carrying the offending node's span, so the
// same renderer serves both parse-time and run-time errors.
type Interp struct {
	env *Env
}

func New() *Interp {
	return &Interp{env: NewEnv()}
}

// Env exposes the environment for driver and test inspection.
func (in *Interp) Env() *Env {
	return in.env
}

// Get reads the current value of a name.
func (in *Interp) Get(name string) (Value, bool) {
	return in.env.Lookup(name)
}

type control uint8

const (
	ctlNext control = iota
	ctlReturn
)

// Run executes the program's statements in order against the
// environment.
func (in *Interp) Run(prog *ast.Program) *diag.Diagnostic {
	for _, stmt := range prog.Stmts {
		ctl, _, d := in.execStmt(stmt)
		if d != nil {
			return d
		}
		if ctl == ctlReturn {
			return runFail(diag.RunReturnTopLevel, stmt.Span(),
				"`ret` outside of a function",
				"return only unwinds a block or function body")
		}
	}
	return nil
}

func runFail(code diag.Code, span source.Span, msg, help string) *diag.Diagnostic {
	d := diag.Error(code, span, msg)
	if help != "" {
		d = d.WithHelp(help)
	}
	return &d
}

func (in *Interp) execStmt(s ast.Stmt) (control, Value, *diag.Diagnostic) {
	switch s := s.(type) {
	case *ast.Define:
		v, d := in.evalExpr(s.Value)
		if d != nil {
			return ctlNext, nil, d
		}
		in.env.Define(s.Name, v)

	case *ast.DefineEmpty:
		in.env.Define(s.Name, Emp{})

	case *ast.Copy:
		if !in.env.Copy(s.Name, s.Target) {
			return ctlNext, nil, undefined(s.Target, s.Span())
		}

	case *ast.Bind:
		if !in.env.Bind(s.Name, s.Target) {
			return ctlNext, nil, undefined(s.Target, s.Span())
		}

	case *ast.Guard:
		result := Value(Emp{})
		for _, branch := range s.Branches {
			v, d := in.evalExpr(branch)
			if d != nil {
				return ctlNext, nil, d
			}
			if TruthOf(v) {
				result = v
				break
			}
		}
		in.env.Define(s.Target, result)

	case *ast.Return:
		if s.Value == nil {
			return ctlReturn, Emp{}, nil
		}
		v, d := in.evalExpr(s.Value)
		if d != nil {
			return ctlNext, nil, d
		}
		return ctlReturn, v, nil

	case *ast.Block:
		in.env.Push()
		defer in.env.Pop()
		for _, inner := range s.Stmts {
			ctl, v, d := in.execStmt(inner)
			if d != nil {
				return ctlNext, nil, d
			}
			if ctl == ctlReturn {
				return ctlReturn, v, nil
			}
		}

	case *ast.Function:
		in.env.Define(s.Name, &Func{Name: s.Name, Params: s.Params, Bodies: s.Bodies})

	case *ast.ExprStmt:
		if _, d := in.evalExpr(s.Call); d != nil {
			return ctlNext, nil, d
		}
	}
	return ctlNext, nil, nil
}

func undefined(name string, span source.Span) *diag.Diagnostic {
	return runFail(diag.RunUndefinedName, span,
		fmt.Sprintf("undefined name `%s`", name),
		"names must be defined before use")
}

func (in *Interp) evalExpr(e ast.Expr) (Value, *diag.Diagnostic) {
	switch e := e.(type) {
	case *ast.NumLit:
		return Num(e.Value), nil
	case *ast.DecLit:
		return Dec(e.Text), nil
	case *ast.TextLit:
		return Text(e.Value), nil
	case *ast.EmpLit:
		return Emp{}, nil

	case *ast.Ident:
		v, ok := in.env.Lookup(e.Name)
		if !ok {
			return nil, undefined(e.Name, e.Span())
		}
		return v, nil

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.ExprBlock:
		var last Value = Emp{}
		for _, seg := range e.Exprs {
			v, d := in.evalExpr(seg)
			if d != nil {
				return nil, d
			}
			last = v
		}
		return last, nil
	}

	return nil, runFail(diag.RunUnsupportedOp, e.Span(),
		"unsupported expression", "")
}

func (in *Interp) evalUnary(e *ast.Unary) (Value, *diag.Diagnostic) {
	v, d := in.evalExpr(e.Operand)
	if d != nil {
		return nil, d
	}

	switch e.Op {
	case ast.OpNot:
		return Flag(!TruthOf(v)), nil
	case ast.OpNeg:
		switch v := v.(type) {
		case Num:
			return -v, nil
		case Dec:
			if len(v) > 0 && v[0] == '-' {
				return v[1:], nil
			}
			return "-" + v, nil
		}
	}
	return nil, runFail(diag.RunBadOperand, e.Span(),
		fmt.Sprintf("cannot negate a %s value", kindName(v)), "")
}

func (in *Interp) evalBinary(e *ast.Binary) (Value, *diag.Diagnostic) {
	// `::` and `:?` parse but have no runtime behavior yet.
	if e.Op == ast.OpHas || e.Op == ast.OpPresent {
		return nil, runFail(diag.RunUnsupportedOp, e.Span(),
			fmt.Sprintf("`%s` has no runtime behavior yet", e.Op), "")
	}

	left, d := in.evalExpr(e.Left)
	if d != nil {
		return nil, d
	}

	// Logical operators short-circuit on the left operand's truth.
	switch e.Op {
	case ast.OpAnd:
		if !TruthOf(left) {
			return Flag(false), nil
		}
		right, d := in.evalExpr(e.Right)
		if d != nil {
			return nil, d
		}
		return Flag(TruthOf(right)), nil
	case ast.OpOr:
		if TruthOf(left) {
			return Flag(true), nil
		}
		right, d := in.evalExpr(e.Right)
		if d != nil {
			return nil, d
		}
		return Flag(TruthOf(right)), nil
	}

	// `x |> f` is f(x).
	if e.Op == ast.OpPipe {
		fn, d := in.evalExpr(e.Right)
		if d != nil {
			return nil, d
		}
		return in.apply(fn, []Value{left}, e.Span())
	}

	right, d := in.evalExpr(e.Right)
	if d != nil {
		return nil, d
	}

	switch e.Op {
	case ast.OpEq:
		return Flag(valuesEqual(left, right)), nil
	case ast.OpNe:
		return Flag(!valuesEqual(left, right)), nil
	}

	return in.evalArith(e, left, right)
}

func valuesEqual(a, b Value) bool {
	switch a := a.(type) {
	case Num:
		if b, ok := b.(Num); ok {
			return a == b
		}
	case Dec:
		if b, ok := b.(Dec); ok {
			return a == b
		}
	case Flag:
		if b, ok := b.(Flag); ok {
			return a == b
		}
	case Text:
		if b, ok := b.(Text); ok {
			return a == b
		}
	case Emp:
		_, ok := b.(Emp)
		return ok
	case *Func:
		if b, ok := b.(*Func); ok {
			return a == b
		}
	}
	return false
}

// evalArith covers `+ - * / %` and the relational operators over num
// and dec operands. Any dec operand promotes the operation to decimal.
func (in *Interp) evalArith(e *ast.Binary, left, right Value) (Value, *diag.Diagnostic) {
	ln, lok := left.(Num)
	rn, rok := right.(Num)
	if lok && rok {
		return in.numArith(e, ln, rn)
	}

	lf, lok := toFloat(left)
	rf, rok := toFloat(right)
	if !lok || !rok {
		return nil, runFail(diag.RunBadOperand, e.Span(),
			fmt.Sprintf("cannot apply `%s` to %s and %s", e.Op, kindName(left), kindName(right)),
			"arithmetic and comparison need num or dec operands")
	}

	switch e.Op {
	case ast.OpLt:
		return Flag(lf < rf), nil
	case ast.OpLe:
		return Flag(lf <= rf), nil
	case ast.OpGt:
		return Flag(lf > rf), nil
	case ast.OpGe:
		return Flag(lf >= rf), nil
	case ast.OpAdd:
		return decOf(lf + rf), nil
	case ast.OpSub:
		return decOf(lf - rf), nil
	case ast.OpMul:
		return decOf(lf * rf), nil
	case ast.OpDiv:
		if rf == 0 {
			return nil, divisionByZero(e)
		}
		return decOf(lf / rf), nil
	case ast.OpMod:
		return nil, runFail(diag.RunBadOperand, e.Span(),
			"`%` needs num operands", "")
	}
	return nil, runFail(diag.RunUnsupportedOp, e.Span(), "unsupported operation", "")
}

func (in *Interp) numArith(e *ast.Binary, l, r Num) (Value, *diag.Diagnostic) {
	switch e.Op {
	case ast.OpAdd:
		return l + r, nil
	case ast.OpSub:
		return l - r, nil
	case ast.OpMul:
		return l * r, nil
	case ast.OpDiv:
		if r == 0 {
			return nil, divisionByZero(e)
		}
		return l / r, nil
	case ast.OpMod:
		if r == 0 {
			return nil, divisionByZero(e)
		}
		return l % r, nil
	case ast.OpLt:
		return Flag(l < r), nil
	case ast.OpLe:
		return Flag(l <= r), nil
	case ast.OpGt:
		return Flag(l > r), nil
	case ast.OpGe:
		return Flag(l >= r), nil
	}
	return nil, runFail(diag.RunUnsupportedOp, e.Span(), "unsupported operation", "")
}

func divisionByZero(e *ast.Binary) *diag.Diagnostic {
	return runFail(diag.RunBadOperand, e.Span(), "division by zero", "")
}

func toFloat(v Value) (float64, bool) {
	switch v := v.(type) {
	case Num:
		return float64(v), true
	case Dec:
		f, err := strconv.ParseFloat(string(v), 64)
		return f, err == nil
	}
	return 0, false
}

func decOf(f float64) Dec {
	return Dec(strconv.FormatFloat(f, 'g', -1, 64))
}

func (in *Interp) evalCall(e *ast.Call) (Value, *diag.Diagnostic) {
	callee, d := in.evalExpr(e.Callee)
	if d != nil {
		return nil, d
	}

	args := make([]Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, d := in.evalExpr(a)
		if d != nil {
			return nil, d
		}
		args = append(args, v)
	}
	return in.apply(callee, args, e.Span())
}

// apply invokes a function value: bind parameters (falling back to
// defaults), run the bodies in order in a fresh scope, and yield the
// first returned value, or emp when no body returns.
func (in *Interp) apply(callee Value, args []Value, span source.Span) (Value, *diag.Diagnostic) {
	fn, ok := callee.(*Func)
	if !ok {
		return nil, runFail(diag.RunNotCallable, span,
			fmt.Sprintf("%s value is not callable", kindName(callee)), "")
	}
	if len(args) > len(fn.Params) {
		return nil, runFail(diag.RunArityMismatch, span,
			fmt.Sprintf("`%s` takes %d parameter(s), got %d", fn.Name, len(fn.Params), len(args)),
			"")
	}

	in.env.Push()
	defer in.env.Pop()

	for i, p := range fn.Params {
		switch {
		case i < len(args):
			in.env.Define(p.Name, args[i])
		case p.Default != nil:
			v, d := in.evalExpr(p.Default)
			if d != nil {
				return nil, d
			}
			in.env.Define(p.Name, v)
		default:
			return nil, runFail(diag.RunArityMismatch, span,
				fmt.Sprintf("`%s` is missing an argument for `%s`", fn.Name, p.Name),
				"parameters without defaults must be supplied")
		}
	}

	for _, body := range fn.Bodies {
		for _, stmt := range body.Stmts {
			ctl, v, d := in.execStmt(stmt)
			if d != nil {
				return nil, d
			}
			if ctl == ctlReturn {
				return v, nil
			}
		}
	}
	return Emp{}, nil
}
