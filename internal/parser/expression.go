package parser

import (
	"strconv"

	"druim/internal/ast"
	"druim/internal/diag"
	"druim/internal/source"
	"druim/internal/token"
)

// parseBP is the precedence-climbing core: parse a prefix expression,
// then fold infix operators whose left binding power is at least min.
func (p *Parser) parseBP(min uint8) (ast.Expr, *diag.Diagnostic) {
	lhs, d := p.parsePrefix()
	if d != nil {
		return nil, d
	}

	for {
		k := p.peek().Kind

		// Call application binds tightest and is left-associative.
		if k == token.LParen {
			if bpCallLeft < min {
				break
			}
			call, d := p.parseCallArgs(lhs)
			if d != nil {
				return nil, d
			}
			lhs = call
			continue
		}

		op, left, right, ok := infixBinding(k)
		if !ok || left < min {
			break
		}
		p.advance()
		rhs, d := p.parseBP(right)
		if d != nil {
			return nil, d
		}
		lhs = &ast.Binary{
			Op:    op,
			Left:  lhs,
			Right: rhs,
			Sp:    lhs.Span().Cover(rhs.Span()),
		}
	}
	return lhs, nil
}

// parsePrefix parses the atoms: identifiers, literals, unary not and
// negate, parenthesized sub-expressions, and expression blocks.
// Statement-only constructs are rejected with a message distinct from
// a generic token error.
func (p *Parser) parsePrefix() (ast.Expr, *diag.Diagnostic) {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return &ast.Ident{Name: tok.Text, Sp: tok.Span()}, nil

	case token.NumLit:
		p.advance()
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, fail(diag.ParseError{
				Kind:     diag.InvalidExpression,
				Expected: "integer literal is out of range",
				Span:     tok.Span(),
			}.Diagnostic())
		}
		return &ast.NumLit{Value: n, Sp: tok.Span()}, nil

	case token.DecLit:
		p.advance()
		return &ast.DecLit{Text: tok.Text, Sp: tok.Span()}, nil

	case token.TextLit:
		p.advance()
		return &ast.TextLit{Value: tok.Text, Sp: tok.Span()}, nil

	case token.KwEmp:
		p.advance()
		return &ast.EmpLit{Sp: tok.Span()}, nil

	case token.Not:
		p.advance()
		operand, d := p.parseBP(bpPrefix)
		if d != nil {
			return nil, d
		}
		return &ast.Unary{Op: ast.OpNot, Operand: operand, Sp: tok.Span().Cover(operand.Span())}, nil

	case token.Sub:
		p.advance()
		operand, d := p.parseBP(bpPrefix)
		if d != nil {
			return nil, d
		}
		return &ast.Unary{Op: ast.OpNeg, Operand: operand, Sp: tok.Span().Cover(operand.Span())}, nil

	case token.LParen:
		p.advance()
		inner, d := p.parseBP(0)
		if d != nil {
			return nil, d
		}
		if !p.at(token.RParen) {
			return nil, fail(diag.ParseError{
				Kind:     diag.ExpectedToken,
				Expected: "expected `)` to close the parenthesized expression",
				Span:     p.currentSpan(),
			}.Diagnostic())
		}
		p.advance()
		return inner, nil

	case token.BlockExprStart:
		return p.parseExprBlock()

	case token.BlockArrayStart:
		return nil, fail(diag.Error(diag.SynArrayNotSupported, tok.Span(),
			"array blocks are not supported").
			WithHelp("`:<`...`>:` is reserved; arrays are not implemented yet"))

	case token.EOF:
		return nil, fail(diag.ParseError{
			Kind:     diag.UnexpectedEOF,
			Expected: "expected expression",
			Span:     tok.Span(),
		}.Diagnostic())
	}

	if isStatementOnly(tok.Kind) {
		return nil, fail(diag.Error(diag.SynInvalidExpression, tok.Span(),
			"invalid value expression").
			WithHelp("statements cannot appear in value position"))
	}

	return nil, fail(diag.ParseError{
		Kind:     diag.UnexpectedToken,
		Expected: "expected expression",
		Span:     tok.Span(),
	}.Diagnostic())
}

// isStatementOnly reports tokens that introduce statements and are
// therefore never valid in value position.
func isStatementOnly(k token.Kind) bool {
	switch k {
	case token.Define, token.DefineEmpty, token.Copy, token.Bind,
		token.Guard, token.KwRet, token.KwLoc, token.KwFn,
		token.BlockStmtStart:
		return true
	}
	return false
}

// parseCallArgs parses `(arg, arg)` applied to an already-parsed
// callee.
func (p *Parser) parseCallArgs(callee ast.Expr) (*ast.Call, *diag.Diagnostic) {
	p.advance() // (
	var args []ast.Expr
	for !p.at(token.RParen) {
		arg, d := p.parseBP(0)
		if d != nil {
			return nil, d
		}
		args = append(args, arg)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if !p.at(token.RParen) {
			return nil, fail(diag.ParseError{
				Kind:     diag.UnexpectedToken,
				Expected: "expected `,` or `)`",
				Span:     p.currentSpan(),
			}.Diagnostic())
		}
	}
	closing := p.advance() // )
	return &ast.Call{
		Callee: callee,
		Args:   args,
		Sp:     callee.Span().Cover(closing.Span()),
	}, nil
}

// parseExprBlock parses `:[ e ][ e ]:`. Each chain segment is a full
// expression; the block yields the last segment's value.
func (p *Parser) parseExprBlock() (ast.Expr, *diag.Diagnostic) {
	open := p.advance() // :[
	var exprs []ast.Expr
	for {
		e, d := p.parseBP(0)
		if d != nil {
			return nil, d
		}
		exprs = append(exprs, e)

		switch p.peek().Kind {
		case token.BlockExprChain:
			p.advance()
		case token.BlockExprEnd:
			closing := p.advance()
			return &ast.ExprBlock{
				Exprs: exprs,
				Sp:    open.Span().Cover(closing.Span()),
			}, nil
		case token.EOF:
			return nil, fail(diag.ParseError{
				Kind:     diag.UnexpectedEOF,
				Expected: "expected `]:` to close the expression block",
				Span:     p.currentSpan(),
			}.Diagnostic())
		default:
			return nil, fail(diag.ParseError{
				Kind:     diag.UnexpectedToken,
				Expected: "expected `][` or `]:`",
				Span:     p.currentSpan(),
			}.Diagnostic())
		}
	}
}

// coverTokens is the byte range from the first to the last token of a
// statement, inclusive.
func (p *Parser) coverTokens(first, last int) source.Span {
	return p.spanAt(first).Cover(p.spanAt(last))
}
