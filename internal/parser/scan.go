package parser

import (
	"druim/internal/token"
)

// stmtShape is the result of the pre-parse scan over one statement's
// token span: where the statement-defining operators sit, where the
// terminator is, and whether an arrow token appears. All indices are
// absolute positions into the token slice.
type stmtShape struct {
	start int
	ops   []int // statement-defining operator tokens, in order
	term  int   // the terminating `;` (or self-terminating `=;`); -1 if absent
	bound int   // the boundary token reached when term == -1
	arrow int   // first `->`/`<-` before the terminator; -1 if none
}

// isStmtBoundary reports the tokens that bound a statement scan: a
// terminator, a block close or chain, a function close or chain, or
// end of input.
func isStmtBoundary(k token.Kind) bool {
	switch k {
	case token.Semicolon, token.BlockStmtEnd, token.BlockStmtChain,
		token.BlockFuncEnd, token.BlockFuncChain, token.EOF:
		return true
	}
	return false
}

// scanStatement walks from the cursor to the statement boundary
// without moving the cursor. `=;` both defines and terminates, so the
// scan stops there too.
func (p *Parser) scanStatement() stmtShape {
	shape := stmtShape{start: p.pos, term: -1, bound: -1, arrow: -1}
	for i := p.pos; ; i++ {
		t := p.tokAt(i)
		switch t.Kind {
		case token.Semicolon:
			shape.term = i
			return shape
		case token.DefineEmpty:
			shape.ops = append(shape.ops, i)
			shape.term = i
			return shape
		case token.Define, token.Copy, token.Bind, token.Guard, token.KwRet:
			shape.ops = append(shape.ops, i)
		case token.ArrowR, token.ArrowL:
			if shape.arrow < 0 {
				shape.arrow = i
			}
		case token.EOF:
			shape.bound = i
			return shape
		case token.BlockStmtEnd, token.BlockStmtChain,
			token.BlockFuncEnd, token.BlockFuncChain:
			shape.bound = i
			return shape
		}
	}
}

// kindWord names a statement family for diagnostics. Define-empty
// failures read as define failures.
func kindWord(k token.Kind) string {
	switch k {
	case token.Define, token.DefineEmpty:
		return "define"
	case token.Copy:
		return "copy"
	case token.Bind:
		return "bind"
	case token.Guard:
		return "guard"
	case token.KwRet:
		return "return"
	}
	return "statement"
}

// kindExample is the example statement quoted in help text.
func kindExample(word string) string {
	switch word {
	case "define":
		return "x = 1;"
	case "copy":
		return "y := x;"
	case "bind":
		return "y :> x;"
	case "guard":
		return "x ?= y : z;"
	case "return":
		return "ret 42;"
	case "call":
		return "show(x);"
	}
	return "x = 1;"
}
