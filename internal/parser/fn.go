package parser

import (
	"druim/internal/ast"
	"druim/internal/diag"
	"druim/internal/token"
)

const fnExample = "fn my_function :( x )( ret 0; ):"

// parseFunction parses `fn name :( params )( body )( body )*:`. The
// parameter section and at least one body section are verified
// structurally, by locating the first `)(`, before parameters parse.
func (p *Parser) parseFunction() (ast.Stmt, *diag.Diagnostic) {
	fnTok := p.advance() // fn

	nameTok := p.peek()
	if nameTok.Kind != token.Ident {
		return nil, fail(diag.ParseError{
			Kind:     diag.ExpectedIdentifier,
			Expected: "expected a function name after `fn`",
			Span:     nameTok.Span(),
		}.Diagnostic())
	}
	if !isSnakeCase(nameTok.Text) {
		return nil, fail(diag.Error(diag.SynInvalidFunctionName, nameTok.Span(),
			"invalid function name").
			WithHelp("function names must be snake_case: `" + fnExample + "`"))
	}
	p.advance()

	if !p.at(token.BlockFuncStart) {
		return nil, fail(diag.ParseError{
			Kind:     diag.ExpectedToken,
			Expected: "expected `:(` to open the parameter section",
			Span:     p.currentSpan(),
		}.Diagnostic())
	}
	open := p.advance()

	// Structural pre-check: a `)(` must separate parameters from the
	// first body, and that body must not be empty. The first `):`
	// belongs to this function: nested functions can only appear
	// after the first `)(`.
	chainIdx, closeIdx := -1, -1
scan:
	for i := p.pos; ; i++ {
		switch p.tokAt(i).Kind {
		case token.BlockFuncChain:
			if chainIdx < 0 {
				chainIdx = i
			}
		case token.BlockFuncEnd:
			closeIdx = i
			break scan
		case token.EOF:
			break scan
		}
	}
	if closeIdx < 0 && chainIdx < 0 {
		return nil, fail(diag.Error(diag.SynUnclosedBlock, open.Span(),
			"unclosed function block").
			WithHelp("expected `):` to close the function"))
	}
	if chainIdx < 0 || (closeIdx >= 0 && chainIdx > closeIdx) {
		return nil, fail(diag.Error(diag.SynMissingFunctionBody, p.spanAt(closeIdx),
			"missing function body").
			WithHelp("a function needs a parameter section and at least one body: `" + fnExample + "`"))
	}
	if p.tokAt(chainIdx+1).Kind == token.BlockFuncEnd {
		return nil, fail(diag.Error(diag.SynMissingFunctionBody, p.spanAt(chainIdx+1),
			"missing function body").
			WithHelp("a function needs a parameter section and at least one body: `" + fnExample + "`"))
	}

	params, d := p.parseParams()
	if d != nil {
		return nil, d
	}

	var bodies []*ast.Block
	for p.at(token.BlockFuncChain) {
		chainTok := p.advance()
		body := &ast.Block{Sp: chainTok.Span()}
		for !p.at(token.BlockFuncChain) && !p.at(token.BlockFuncEnd) {
			if p.at(token.EOF) {
				return nil, fail(diag.Error(diag.SynUnclosedBlock, p.currentSpan(),
					"unclosed function block").
					WithHelp("expected `):` to close the function"))
			}
			stmt, d := p.parseStmt()
			if d != nil {
				return nil, d
			}
			body.Stmts = append(body.Stmts, stmt)
			body.Sp = body.Sp.Cover(stmt.Span())
		}
		bodies = append(bodies, body)
	}

	if !p.at(token.BlockFuncEnd) {
		return nil, fail(diag.Error(diag.SynUnclosedBlock, p.currentSpan(),
			"unclosed function block").
			WithHelp("expected `):` to close the function"))
	}
	closing := p.advance()

	return &ast.Function{
		Name:   nameTok.Text,
		Params: params,
		Bodies: bodies,
		Sp:     fnTok.Span().Cover(closing.Span()),
	}, nil
}

// parseParams parses `name` or `name = default-expression` entries,
// comma-separated, up to the `)(` that opens the first body.
func (p *Parser) parseParams() ([]ast.Param, *diag.Diagnostic) {
	var params []ast.Param
	for !p.at(token.BlockFuncChain) {
		if p.at(token.KwLoc) {
			return nil, fail(diag.Error(diag.SynInvalidStatement, p.currentSpan(),
				"invalid function parameter").
				WithHelp("`loc` is not allowed on parameters"))
		}
		if !p.at(token.Ident) {
			return nil, fail(diag.ParseError{
				Kind:     diag.ExpectedIdentifier,
				Expected: "expected a parameter name",
				Span:     p.currentSpan(),
			}.Diagnostic())
		}
		nameTok := p.advance()
		param := ast.Param{Name: nameTok.Text, Sp: nameTok.Span()}

		if p.at(token.Define) {
			p.advance()
			def, d := p.parseBP(0)
			if d != nil {
				return nil, d
			}
			param.Default = def
			param.Sp = param.Sp.Cover(def.Span())
		}
		params = append(params, param)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if !p.at(token.BlockFuncChain) {
			return nil, fail(diag.ParseError{
				Kind:     diag.UnexpectedToken,
				Expected: "expected `,` or `)(`",
				Span:     p.currentSpan(),
			}.Diagnostic())
		}
	}
	return params, nil
}

// isSnakeCase reports whether a name is lowercase ASCII letters and
// digits with single, non-leading, non-trailing underscores.
func isSnakeCase(name string) bool {
	if name == "" {
		return false
	}
	if name[0] == '_' || name[len(name)-1] == '_' {
		return false
	}
	prevUnderscore := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_':
			if prevUnderscore {
				return false
			}
			prevUnderscore = true
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			prevUnderscore = false
		default:
			return false
		}
	}
	return true
}
