package parser

import (
	"druim/internal/ast"
	"druim/internal/diag"
	"druim/internal/token"
)

// parseBlock parses `:{ stmt* }:`. The close is verified by scanning
// ahead from the opener before any inner statement is parsed. A `}{`
// chain token concatenates segments into the same block; it does not
// open a new scope.
func (p *Parser) parseBlock() (ast.Stmt, *diag.Diagnostic) {
	open := p.peek() // :{

	depth := 0
	closed := false
scan:
	for i := p.pos; ; i++ {
		switch p.tokAt(i).Kind {
		case token.BlockStmtStart:
			depth++
		case token.BlockStmtEnd:
			depth--
			if depth == 0 {
				closed = true
				break scan
			}
		case token.EOF:
			break scan
		}
	}
	if !closed {
		return nil, fail(diag.Error(diag.SynUnclosedBlock, open.Span(),
			"unclosed statement block").
			WithHelp("expected `}:` to close the block"))
	}

	p.advance() // :{
	block := &ast.Block{}
	for {
		switch p.peek().Kind {
		case token.BlockStmtEnd:
			closing := p.advance()
			block.Sp = open.Span().Cover(closing.Span())
			return block, nil
		case token.BlockStmtChain:
			p.advance()
			continue
		}

		stmt, d := p.parseStmt()
		if d != nil {
			return nil, d
		}
		block.Stmts = append(block.Stmts, stmt)
	}
}
