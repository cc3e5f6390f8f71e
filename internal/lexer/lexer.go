package lexer

import (
	"unicode"
	"unicode/utf8"

	"druim/internal/source"
	"druim/internal/token"
)

// Lexer turns source text into an ordered token sequence ending in an
// EOF sentinel, or fails with the first lexical error. Maximal munch,
// left to right, whitespace skipped between tokens.
type Lexer struct {
	src    *source.Source
	cursor Cursor
}

func New(src *source.Source) *Lexer {
	return &Lexer{src: src, cursor: NewCursor(src)}
}

// Tokenize scans the whole input. On error the token slice is nil; the
// caller converts the LexError into a Diagnostic.
func (lx *Lexer) Tokenize() ([]token.Token, *LexError) {
	var tokens []token.Token

	for {
		lx.skipWhitespace()
		if lx.cursor.EOF() {
			break
		}

		var tok token.Token
		var lerr *LexError

		switch ch := lx.cursor.Peek(); {
		case isDec(ch):
			tok, lerr = lx.scanNumber()
		case isIdentStartByte(ch):
			tok = lx.scanIdentOrKeyword()
		case ch == '"':
			tok, lerr = lx.scanText()
		default:
			tok, lerr = lx.scanOperatorOrPunct()
		}
		if lerr != nil {
			return nil, lerr
		}
		tokens = append(tokens, tok)
	}

	tokens = append(tokens, token.Token{Kind: token.EOF, Pos: lx.cursor.Off})
	return tokens, nil
}

// skipWhitespace advances past Unicode whitespace, moving by each
// character's encoded byte width.
func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8.RuneSelf {
			if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
				return
			}
			lx.cursor.Bump()
			continue
		}
		r, size := utf8.DecodeRuneInString(lx.src.Text()[lx.cursor.Off:])
		if !unicode.IsSpace(r) {
			return
		}
		lx.cursor.Off += uint32(size)
	}
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	return token.Token{Kind: kind, Text: lx.cursor.Slice(start), Pos: uint32(start)}
}

// try2 consumes two bytes when they match exactly.
func (lx *Lexer) try2(b0, b1 byte) bool {
	c0, c1, ok := lx.cursor.Peek2()
	if ok && c0 == b0 && c1 == b1 {
		lx.cursor.Off += 2
		return true
	}
	return false
}
