package ast

import (
	"strconv"
	"strings"

	"druim/internal/source"
)

// Expr is an expression node. Nodes are immutable once constructed and
// exclusively owned by the Program that built them.
type Expr interface {
	Span() source.Span
	// Surface renders the node back to its canonical surface form;
	// re-parsing the result yields an equal tree.
	Surface() string
	isExpr()
}

// UnaryOp distinguishes the two prefix operators.
type UnaryOp uint8

const (
	OpNot UnaryOp = iota // !?
	OpNeg                // -
)

func (op UnaryOp) String() string {
	if op == OpNot {
		return "!?"
	}
	return "-"
}

// BinaryOp enumerates the infix operators.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota // +
	OpSub                 // -
	OpMul                 // *
	OpDiv                 // /
	OpMod                 // %
	OpEq                  // ==
	OpNe                  // !=
	OpLt                  // <
	OpLe                  // <=
	OpGt                  // >
	OpGe                  // >=
	OpAnd                 // &?
	OpOr                  // |?
	OpHas                 // ::
	OpPresent             // :?
	OpPipe                // |>
)

var binaryOpNames = map[BinaryOp]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpEq: "==", OpNe: "!=", OpLt: "<", OpLe: "<=", OpGt: ">", OpGe: ">=",
	OpAnd: "&?", OpOr: "|?", OpHas: "::", OpPresent: ":?", OpPipe: "|>",
}

func (op BinaryOp) String() string {
	if s, ok := binaryOpNames[op]; ok {
		return s
	}
	return "?"
}

// Ident is a name reference.
type Ident struct {
	Name string
	Sp   source.Span
}

// NumLit is a whole number literal.
type NumLit struct {
	Value int64
	Sp    source.Span
}

// DecLit is a decimal literal kept as text to preserve precision.
type DecLit struct {
	Text string
	Sp   source.Span
}

// TextLit is a quoted text literal (content without quotes).
type TextLit struct {
	Value string
	Sp    source.Span
}

// EmpLit is the explicit-emptiness literal.
type EmpLit struct {
	Sp source.Span
}

// Unary is prefix not/negate; it binds tighter than any infix operator.
type Unary struct {
	Op      UnaryOp
	Operand Expr
	Sp      source.Span
}

// Binary is a standard left-associative infix operation.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	Sp    source.Span
}

// Call is function application: callee(args...).
type Call struct {
	Callee Expr
	Args   []Expr
	Sp     source.Span
}

// ExprBlock is `:[ e ][ e ]:`. Each chain segment is a full
// expression; the block yields the last segment's value.
type ExprBlock struct {
	Exprs []Expr
	Sp    source.Span
}

func (e *Ident) Span() source.Span     { return e.Sp }
func (e *NumLit) Span() source.Span    { return e.Sp }
func (e *DecLit) Span() source.Span    { return e.Sp }
func (e *TextLit) Span() source.Span   { return e.Sp }
func (e *EmpLit) Span() source.Span    { return e.Sp }
func (e *Unary) Span() source.Span     { return e.Sp }
func (e *Binary) Span() source.Span    { return e.Sp }
func (e *Call) Span() source.Span      { return e.Sp }
func (e *ExprBlock) Span() source.Span { return e.Sp }

func (*Ident) isExpr()     {}
func (*NumLit) isExpr()    {}
func (*DecLit) isExpr()    {}
func (*TextLit) isExpr()   {}
func (*EmpLit) isExpr()    {}
func (*Unary) isExpr()     {}
func (*Binary) isExpr()    {}
func (*Call) isExpr()      {}
func (*ExprBlock) isExpr() {}

func (e *Ident) Surface() string   { return e.Name }
func (e *NumLit) Surface() string  { return strconv.FormatInt(e.Value, 10) }
func (e *DecLit) Surface() string  { return e.Text }
func (e *TextLit) Surface() string { return `"` + e.Value + `"` }
func (e *EmpLit) Surface() string  { return "emp" }

func (e *Unary) Surface() string {
	return e.Op.String() + e.Operand.Surface()
}

// Binary renders fully parenthesized so structure survives re-parsing.
func (e *Binary) Surface() string {
	return "(" + e.Left.Surface() + " " + e.Op.String() + " " + e.Right.Surface() + ")"
}

func (e *Call) Surface() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.Surface()
	}
	return e.Callee.Surface() + "(" + strings.Join(args, ", ") + ")"
}

func (e *ExprBlock) Surface() string {
	parts := make([]string, len(e.Exprs))
	for i, x := range e.Exprs {
		parts[i] = x.Surface()
	}
	return ":[ " + strings.Join(parts, " ][ ") + " ]:"
}
