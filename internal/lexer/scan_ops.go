package lexer

import (
	"unicode/utf8"

	"druim/internal/token"
)

// scanOperatorOrPunct matches operators and punctuation longest first:
// the paired block delimiters, then compound operators, then the colon
// family, then single characters. Anything left over is a lexical
// error at its offset.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, *LexError) {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) (token.Token, *LexError) {
		return lx.emit(k, start), nil
	}

	// Block delimiters come before anything starting with ':'.
	switch {
	case lx.try2(':', '['):
		return emit(token.BlockExprStart)
	case lx.try2(']', ':'):
		return emit(token.BlockExprEnd)
	case lx.try2(']', '['):
		return emit(token.BlockExprChain)
	case lx.try2(':', '{'):
		return emit(token.BlockStmtStart)
	case lx.try2('}', ':'):
		return emit(token.BlockStmtEnd)
	case lx.try2('}', '{'):
		return emit(token.BlockStmtChain)
	case lx.try2(':', '('):
		return emit(token.BlockFuncStart)
	case lx.try2(')', ':'):
		return emit(token.BlockFuncEnd)
	case lx.try2(')', '('):
		return emit(token.BlockFuncChain)
	case lx.try2(':', '<'):
		return emit(token.BlockArrayStart)
	case lx.try2('>', ':'):
		return emit(token.BlockArrayEnd)
	case lx.try2('>', '<'):
		return emit(token.BlockArrayChain)
	}

	// Compound operators.
	switch {
	case lx.try2('?', '='):
		return emit(token.Guard)
	case lx.try2('=', ';'):
		return emit(token.DefineEmpty)
	case lx.try2('|', '>'):
		return emit(token.Pipe)
	case lx.try2('=', '='):
		return emit(token.Eq)
	case lx.try2('!', '='):
		return emit(token.Ne)
	case lx.try2('<', '='):
		return emit(token.Le)
	case lx.try2('>', '='):
		return emit(token.Ge)
	case lx.try2('&', '?'):
		return emit(token.And)
	case lx.try2('|', '?'):
		return emit(token.Or)
	case lx.try2('!', '?'):
		return emit(token.Not)
	case lx.try2('-', '>'):
		return emit(token.ArrowR)
	case lx.try2('<', '-'):
		return emit(token.ArrowL)
	}

	// Colon family, longest first.
	switch {
	case lx.try2(':', ':'):
		return emit(token.Has)
	case lx.try2(':', '='):
		return emit(token.Copy)
	case lx.try2(':', '?'):
		return emit(token.Present)
	case lx.try2(':', '>'):
		return emit(token.Bind)
	}

	switch lx.cursor.Peek() {
	case ':':
		lx.cursor.Bump()
		return emit(token.Colon)
	case '=':
		lx.cursor.Bump()
		return emit(token.Define)
	case '+':
		lx.cursor.Bump()
		return emit(token.Add)
	case '-':
		lx.cursor.Bump()
		return emit(token.Sub)
	case '*':
		lx.cursor.Bump()
		return emit(token.Mul)
	case '/':
		lx.cursor.Bump()
		return emit(token.Div)
	case '%':
		lx.cursor.Bump()
		return emit(token.Mod)
	case '>':
		lx.cursor.Bump()
		return emit(token.Gt)
	case '<':
		lx.cursor.Bump()
		return emit(token.Lt)
	case '(':
		lx.cursor.Bump()
		return emit(token.LParen)
	case ')':
		lx.cursor.Bump()
		return emit(token.RParen)
	case ',':
		lx.cursor.Bump()
		return emit(token.Comma)
	case ';':
		lx.cursor.Bump()
		return emit(token.Semicolon)
	}

	r, _ := utf8.DecodeRuneInString(lx.src.Text()[lx.cursor.Off:])
	return token.Token{}, &LexError{Kind: ErrUnexpectedChar, Ch: r, Pos: lx.cursor.Off}
}
