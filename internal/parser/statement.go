package parser

import (
	"druim/internal/ast"
	"druim/internal/diag"
	"druim/internal/source"
	"druim/internal/token"
)

// parseStmt dispatches one statement. Blocks and functions terminate
// on their own delimiters; everything else is validated
// structure-first against its pre-scanned shape before any node is
// built: terminator present, left-hand shape legal, no embedded
// chaining, then the right-hand value.
func (p *Parser) parseStmt() (ast.Stmt, *diag.Diagnostic) {
	switch p.peek().Kind {
	case token.BlockStmtStart:
		return p.parseBlock()
	case token.KwFn:
		return p.parseFunction()
	case token.BlockArrayStart:
		return nil, fail(diag.Error(diag.SynArrayNotSupported, p.currentSpan(),
			"array blocks are not supported").
			WithHelp("`:<`...`>:` is reserved; arrays are not implemented yet"))
	case token.Semicolon:
		return nil, fail(diag.ParseError{
			Kind:     diag.UnexpectedToken,
			Expected: "expected a statement",
			Span:     p.currentSpan(),
		}.Diagnostic())
	}

	shape := p.scanStatement()

	if len(shape.ops) == 0 {
		if shape.arrow >= 0 {
			return nil, fail(diag.Error(diag.SynInvalidStatement, p.spanAt(shape.arrow),
				"invalid statement").
				WithHelp("`->` and `<-` are not statement operators; use `=`, `=;`, `:=`, `:>`, or `?=`"))
		}
		if p.peek().Kind == token.Ident && p.peekAhead(1).Kind == token.LParen {
			return p.parseCallStmt(shape)
		}
		return nil, fail(diag.Error(diag.SynInvalidStatement, p.currentSpan(),
			"invalid statement").
			WithHelp("only a call can stand alone as a statement: `show(x);`"))
	}

	opKind := p.tokAt(shape.ops[0]).Kind
	word := kindWord(opKind)

	if shape.term < 0 {
		return nil, fail(diag.Error(diag.SynUnterminatedStatement, p.spanAt(shape.bound),
			"unterminated "+word+" statement").
			WithHelp("terminate the statement with `;`: `"+kindExample(word)+"`"))
	}

	if opKind == token.KwRet {
		// `ret` defines the statement only from its first token;
		// anything before it is a discarded expression, not a return.
		if shape.ops[0] != shape.start {
			return nil, fail(diag.Error(diag.SynInvalidStatement, p.spanAt(shape.ops[0]),
				"invalid return statement").
				WithHelp("`ret` must start the statement; split what precedes it into its own statement"))
		}
	} else if d := p.checkLHS(shape, word); d != nil {
		return nil, d
	}

	if len(shape.ops) > 1 {
		return nil, fail(diag.Error(diag.SynChainedStatement, p.spanAt(shape.ops[1]),
			"invalid "+word+" statement").
			WithHelp(word + " statements cannot be chained; split them into separate statements"))
	}

	switch opKind {
	case token.Define:
		return p.parseDefine(shape)
	case token.DefineEmpty:
		return p.parseDefineEmpty(shape)
	case token.Copy, token.Bind:
		return p.parseCopyOrBind(shape, opKind)
	case token.Guard:
		return p.parseGuard(shape)
	case token.KwRet:
		return p.parseReturn(shape)
	}

	return nil, fail(diag.ParseError{
		Kind: diag.InvalidStatement,
		Span: p.currentSpan(),
	}.Diagnostic())
}

// checkLHS validates the mandatory left-hand shape: exactly one
// leading identifier, optionally preceded by `loc`.
func (p *Parser) checkLHS(shape stmtShape, word string) *diag.Diagnostic {
	i := shape.start
	if p.tokAt(i).Kind == token.KwLoc {
		i++
	}
	if p.tokAt(i).Kind != token.Ident {
		return fail(diag.Error(diag.SynInvalidStatement, p.spanAt(i),
			"invalid "+word+" statement").
			WithHelp(word + " statements must start with an identifier"))
	}
	i++
	if i != shape.ops[0] {
		return fail(diag.Error(diag.SynInvalidStatement, p.spanAt(i),
			"invalid "+word+" statement").
			WithHelp(word + " statements must start with an identifier"))
	}
	return nil
}

// lhsName reads the validated `[loc] name` prefix and leaves the
// cursor on the statement operator.
func (p *Parser) lhsName() (name string, loc bool) {
	if p.at(token.KwLoc) {
		loc = true
		p.advance()
	}
	name = p.advance().Text
	return name, loc
}

// notAValue rejects a bare identifier in value position. Identifiers
// are not values; they are taken through copy, bind, or a call. The
// check runs on the parsed node, so parentheses offer no escape.
func notAValue(sp source.Span) *diag.Diagnostic {
	return fail(diag.Error(diag.SynNotAValue, sp,
		"identifier is not a value").
		WithHelp("use copy `y := x;`, bind `y :> x;`, or a call `f(x);` to take a value from a name"))
}

// expectSemicolon consumes the terminator after a parsed value.
func (p *Parser) expectSemicolon() *diag.Diagnostic {
	if !p.at(token.Semicolon) {
		return fail(diag.ParseError{
			Kind:     diag.UnexpectedToken,
			Expected: "expected `;` after the value",
			Span:     p.currentSpan(),
		}.Diagnostic())
	}
	p.advance()
	return nil
}

func (p *Parser) parseDefine(shape stmtShape) (ast.Stmt, *diag.Diagnostic) {
	name, loc := p.lhsName()
	p.advance() // =
	value, d := p.parseBP(0)
	if d != nil {
		return nil, d
	}
	if ident, ok := value.(*ast.Ident); ok {
		return nil, notAValue(ident.Span())
	}
	if d := p.expectSemicolon(); d != nil {
		return nil, d
	}
	return &ast.Define{
		Name:  name,
		Loc:   loc,
		Value: value,
		Sp:    p.coverTokens(shape.start, shape.term),
	}, nil
}

func (p *Parser) parseDefineEmpty(shape stmtShape) (ast.Stmt, *diag.Diagnostic) {
	name, loc := p.lhsName()
	p.advance() // =; terminates the statement itself
	return &ast.DefineEmpty{
		Name: name,
		Loc:  loc,
		Sp:   p.coverTokens(shape.start, shape.term),
	}, nil
}

func (p *Parser) parseCopyOrBind(shape stmtShape, opKind token.Kind) (ast.Stmt, *diag.Diagnostic) {
	word := kindWord(opKind)
	opIdx := shape.ops[0]
	if !(opIdx+2 == shape.term && p.tokAt(opIdx+1).Kind == token.Ident) {
		return nil, fail(diag.Error(diag.SynInvalidStatement, p.spanAt(opIdx+1),
			"invalid "+word+" statement").
			WithHelp(word + " takes a single identifier on the right: `" + kindExample(word) + "`"))
	}

	name, loc := p.lhsName()
	p.advance() // := or :>
	target := p.advance().Text
	p.advance() // ;

	sp := p.coverTokens(shape.start, shape.term)
	if opKind == token.Copy {
		return &ast.Copy{Name: name, Target: target, Loc: loc, Sp: sp}, nil
	}
	return &ast.Bind{Name: name, Target: target, Loc: loc, Sp: sp}, nil
}

func (p *Parser) parseGuard(shape stmtShape) (ast.Stmt, *diag.Diagnostic) {
	opIdx := shape.ops[0]
	if opIdx+1 == shape.term {
		return nil, fail(diag.Error(diag.SynInvalidStatement, p.spanAt(shape.term),
			"invalid guard statement").
			WithHelp("a guard needs at least one branch; to declare an empty binding use DefineEmpty: `a =;`"))
	}

	name, loc := p.lhsName()
	p.advance() // ?=

	var branches []ast.Expr
	for {
		branch, d := p.parseBP(0)
		if d != nil {
			return nil, d
		}
		branches = append(branches, branch)

		switch p.peek().Kind {
		case token.Colon:
			p.advance()
			if p.at(token.Semicolon) {
				return nil, fail(diag.Error(diag.SynInvalidGuardBranch, p.currentSpan(),
					"invalid guard statement").
					WithHelp("a trailing `:` must be followed by a branch expression"))
			}
		case token.Semicolon:
			p.advance()
			return &ast.Guard{
				Target:   name,
				Loc:      loc,
				Branches: branches,
				Sp:       p.coverTokens(shape.start, shape.term),
			}, nil
		default:
			return nil, fail(diag.ParseError{
				Kind:     diag.UnexpectedToken,
				Expected: "expected `:` or `;`",
				Span:     p.currentSpan(),
			}.Diagnostic())
		}
	}
}

func (p *Parser) parseReturn(shape stmtShape) (ast.Stmt, *diag.Diagnostic) {
	retIdx := shape.ops[0]
	p.advance() // ret

	if retIdx+1 == shape.term {
		p.advance() // ;
		return &ast.Return{Sp: p.coverTokens(shape.start, shape.term)}, nil
	}

	value, d := p.parseBP(0)
	if d != nil {
		return nil, d
	}
	if ident, ok := value.(*ast.Ident); ok {
		return nil, notAValue(ident.Span())
	}
	if d := p.expectSemicolon(); d != nil {
		return nil, d
	}
	return &ast.Return{
		Value: value,
		Sp:    p.coverTokens(shape.start, shape.term),
	}, nil
}

// parseCallStmt handles the one legal expression statement: a bare
// call.
func (p *Parser) parseCallStmt(shape stmtShape) (ast.Stmt, *diag.Diagnostic) {
	if shape.term < 0 {
		return nil, fail(diag.Error(diag.SynUnterminatedStatement, p.spanAt(shape.bound),
			"unterminated call statement").
			WithHelp("terminate the statement with `;`: `" + kindExample("call") + "`"))
	}

	expr, d := p.parseBP(0)
	if d != nil {
		return nil, d
	}
	call, ok := expr.(*ast.Call)
	if !ok {
		return nil, fail(diag.Error(diag.SynInvalidStatement, expr.Span(),
			"invalid statement").
			WithHelp("only a call can stand alone as a statement: `show(x);`"))
	}
	if d := p.expectSemicolon(); d != nil {
		return nil, d
	}
	return &ast.ExprStmt{
		Call: call,
		Sp:   p.coverTokens(shape.start, shape.term),
	}, nil
}
