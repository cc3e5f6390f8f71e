package token

import (
	"druim/internal/source"
)

// Token is a single lexeme with its kind and byte position. The lexeme
// text is copied out of the source at scan time so later stages never
// re-slice the buffer.
type Token struct {
	Kind Kind
	Text string
	Pos  uint32
}

// Span returns the token's byte range. For text literals Text holds the
// unquoted content, so the range tracks the lexeme the parser reasons
// about rather than the delimiters.
func (t Token) Span() source.Span {
	return source.Span{Start: t.Pos, End: t.Pos + uint32(len(t.Text))}
}

// IsLiteral reports whether the token is a literal form, including the
// explicit-emptiness literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumLit, DecLit, TextLit, KwEmp:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwNum, KwDec, KwFlag, KwText, KwEmp, KwFn, KwRet, KwLoc:
		return true
	default:
		return false
	}
}

// IsStatementOp reports whether the kind defines a statement: these may
// not appear embedded inside another statement's span.
func IsStatementOp(k Kind) bool {
	switch k {
	case Define, DefineEmpty, Copy, Bind, Guard, KwRet:
		return true
	default:
		return false
	}
}

// IsBlockDelimiter reports whether the kind belongs to one of the four
// paired delimiter families.
func IsBlockDelimiter(k Kind) bool {
	switch k {
	case BlockExprStart, BlockExprChain, BlockExprEnd,
		BlockStmtStart, BlockStmtChain, BlockStmtEnd,
		BlockFuncStart, BlockFuncChain, BlockFuncEnd,
		BlockArrayStart, BlockArrayChain, BlockArrayEnd:
		return true
	default:
		return false
	}
}
