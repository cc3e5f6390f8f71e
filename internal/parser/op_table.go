package parser

import (
	"druim/internal/ast"
	"druim/internal/token"
)

// Binding powers, tightest to loosest. Every infix operator is
// left-associative: the right power is one above the left so equal
// operators group leftward.
const (
	bpCallLeft  = 95
	bpPrefix    = 90
	bpMulLeft   = 70
	bpMulRight  = 71
	bpAddLeft   = 60
	bpAddRight  = 61
	bpRelLeft   = 50
	bpRelRight  = 51
	bpEqLeft    = 45
	bpEqRight   = 46
	bpAndLeft   = 30
	bpAndRight  = 31
	bpOrLeft    = 25
	bpOrRight   = 26
	bpHasLeft   = 22
	bpHasRight  = 23
	bpPipeLeft  = 20
	bpPipeRight = 21
)

// infixBinding maps an infix token to its operator and binding-power
// pair; ok is false for non-infix tokens.
func infixBinding(k token.Kind) (op ast.BinaryOp, left, right uint8, ok bool) {
	switch k {
	case token.Mul:
		return ast.OpMul, bpMulLeft, bpMulRight, true
	case token.Div:
		return ast.OpDiv, bpMulLeft, bpMulRight, true
	case token.Mod:
		return ast.OpMod, bpMulLeft, bpMulRight, true
	case token.Add:
		return ast.OpAdd, bpAddLeft, bpAddRight, true
	case token.Sub:
		return ast.OpSub, bpAddLeft, bpAddRight, true
	case token.Lt:
		return ast.OpLt, bpRelLeft, bpRelRight, true
	case token.Le:
		return ast.OpLe, bpRelLeft, bpRelRight, true
	case token.Gt:
		return ast.OpGt, bpRelLeft, bpRelRight, true
	case token.Ge:
		return ast.OpGe, bpRelLeft, bpRelRight, true
	case token.Eq:
		return ast.OpEq, bpEqLeft, bpEqRight, true
	case token.Ne:
		return ast.OpNe, bpEqLeft, bpEqRight, true
	case token.And:
		return ast.OpAnd, bpAndLeft, bpAndRight, true
	case token.Or:
		return ast.OpOr, bpOrLeft, bpOrRight, true
	case token.Has:
		return ast.OpHas, bpHasLeft, bpHasRight, true
	case token.Present:
		return ast.OpPresent, bpHasLeft, bpHasRight, true
	case token.Pipe:
		return ast.OpPipe, bpPipeLeft, bpPipeRight, true
	}
	return 0, 0, 0, false
}
