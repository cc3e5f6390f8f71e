package parser

import (
	"druim/internal/ast"
	"druim/internal/diag"
	"druim/internal/source"
	"druim/internal/token"
)

// Parser consumes a lexed token sequence and produces a Program or
// exactly one Diagnostic. Parsing is fail-fast: the first structural
// or grammatical defect aborts the whole parse, with no recovery and
// no partial tree.
type Parser struct {
	toks []token.Token
	pos  int
}

// New wraps a token sequence. The sequence is expected to end with the
// lexer's EOF sentinel; a missing sentinel is tolerated for robustness.
func New(toks []token.Token) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		toks = append(toks, token.Token{Kind: token.EOF})
	}
	return &Parser{toks: toks}
}

// ParseProgram parses statements until EOF.
func (p *Parser) ParseProgram() (*ast.Program, *diag.Diagnostic) {
	prog := &ast.Program{}
	for p.peek().Kind != token.EOF {
		stmt, d := p.parseStmt()
		if d != nil {
			return nil, d
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}

// ParseStatement parses a single statement; used by tests and tooling.
func (p *Parser) ParseStatement() (ast.Stmt, *diag.Diagnostic) {
	return p.parseStmt()
}

// ParseExpression parses a single expression; used by tests and tooling.
func (p *Parser) ParseExpression() (ast.Expr, *diag.Diagnostic) {
	return p.parseBP(0)
}

func (p *Parser) tokAt(i int) token.Token {
	if i >= len(p.toks) {
		i = len(p.toks) - 1
	}
	return p.toks[i]
}

func (p *Parser) peek() token.Token {
	return p.tokAt(p.pos)
}

func (p *Parser) peekAhead(n int) token.Token {
	return p.tokAt(p.pos + n)
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// currentSpan is the offending token's byte range, or a zero-width
// span at the cursor if input ended early.
func (p *Parser) currentSpan() source.Span {
	return p.peek().Span()
}

func (p *Parser) spanAt(i int) source.Span {
	return p.tokAt(i).Span()
}

func fail(d diag.Diagnostic) *diag.Diagnostic {
	return &d
}
