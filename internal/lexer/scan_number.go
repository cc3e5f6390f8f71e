package lexer

import (
	"druim/internal/token"
)

// scanNumber handles every digit-leading run:
//   - digits '.' digits        -> DecLit
//   - digits '.' (no digit)    -> lexical error at the '.'
//   - digits letter/underscore -> digit-leading identifier (9lives)
//   - digits                   -> NumLit
func (lx *Lexer) scanNumber() (token.Token, *LexError) {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// Decimal form: strictly digits '.' digits.
	if lx.cursor.Peek() == '.' {
		dotPos := lx.cursor.Off
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			return token.Token{}, &LexError{Kind: ErrUnexpectedChar, Ch: '.', Pos: dotPos}
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.emit(token.DecLit, start), nil
	}

	// Identifier continue makes the whole run a digit-leading identifier.
	if b := lx.cursor.Peek(); isIdentStartByte(b) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.emit(token.Ident, start), nil
	}

	return lx.emit(token.NumLit, start), nil
}
