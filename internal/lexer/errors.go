package lexer

import (
	"fmt"
	"unicode/utf8"

	"druim/internal/diag"
	"druim/internal/source"
)

// LexErrorKind narrows the lexical error surface to its two cases.
type LexErrorKind uint8

const (
	// ErrUnexpectedChar: a byte that cannot start any token.
	ErrUnexpectedChar LexErrorKind = iota
	// ErrUnterminatedText: EOF before the closing quote of a text
	// literal; Pos points at the opening quote.
	ErrUnterminatedText
)

// LexError is raised before any parsing begins.
type LexError struct {
	Kind LexErrorKind
	Ch   rune
	Pos  uint32
}

func (e *LexError) Error() string {
	switch e.Kind {
	case ErrUnexpectedChar:
		return fmt.Sprintf("unexpected character %q at byte %d", e.Ch, e.Pos)
	case ErrUnterminatedText:
		return fmt.Sprintf("unterminated text literal at byte %d", e.Pos)
	}
	return "unknown lexical error"
}

// Diagnostic converts the lexical error into the shared diagnostic
// surface.
func (e *LexError) Diagnostic() diag.Diagnostic {
	switch e.Kind {
	case ErrUnterminatedText:
		return diag.Error(diag.LexUnterminatedText,
			source.Span{Start: e.Pos, End: e.Pos + 1},
			"unterminated text literal").
			WithHelp("close the literal with `\"`: `\"hello\"`")
	default:
		width := uint32(utf8.RuneLen(e.Ch))
		if width == 0 {
			width = 1
		}
		return diag.Error(diag.LexUnexpectedChar,
			source.Span{Start: e.Pos, End: e.Pos + width},
			fmt.Sprintf("unexpected character `%c`", e.Ch)).
			WithHelp("this character cannot start a token")
	}
}
