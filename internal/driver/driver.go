package driver

import (
	"fmt"
	"io"

	"druim/internal/ast"
	"druim/internal/diag"
	"druim/internal/diagfmt"
	"druim/internal/interp"
	"druim/internal/lexer"
	"druim/internal/parser"
	"druim/internal/project"
	"druim/internal/source"
	"druim/internal/token"
)

// Options configures a pipeline invocation.
type Options struct {
	// MaxDiagnostics bounds the bag; <= 0 means unbounded.
	MaxDiagnostics int
	// Cache, when non-nil, serves and stores token streams keyed by
	// the source content hash.
	Cache *TokenCache
}

// TokenizeResult is the outcome of loading and lexing one file.
// On a lex failure Tokens is nil and the bag carries the diagnostic.
type TokenizeResult struct {
	Path   string
	Source *source.Source
	Tokens []token.Token
	Bag    *diag.Bag
}

// ParseResult extends TokenizeResult with the parse outcome. Program
// is nil whenever the bag has errors; the front end never yields a
// partial tree.
type ParseResult struct {
	TokenizeResult
	Program *ast.Program
}

// RunResult extends ParseResult with the evaluator state. Interp is
// populated even when execution failed, so callers can inspect the
// environment up to the failing statement.
type RunResult struct {
	ParseResult
	Interp *interp.Interp
}

// Tokenize loads a file, consults the token cache, and lexes on a
// miss. I/O failures are returned as errors; lexical failures land in
// the bag.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	src, err := source.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	res := &TokenizeResult{
		Path:   path,
		Source: src,
		Bag:    diag.NewBag(opts.MaxDiagnostics),
	}

	key := project.HashText(src.Text())
	if opts.Cache != nil {
		if toks, hit, err := opts.Cache.Get(key); err == nil && hit {
			res.Tokens = toks
			return res, nil
		}
	}

	toks, lexErr := lexer.New(src).Tokenize()
	if lexErr != nil {
		res.Bag.Add(lexErr.Diagnostic())
		return res, nil
	}
	res.Tokens = toks
	if opts.Cache != nil {
		if err := opts.Cache.Put(key, toks); err != nil {
			return nil, fmt.Errorf("failed to cache tokens for %s: %w", path, err)
		}
	}
	return res, nil
}

// Parse runs the full front end on one file.
func Parse(path string, opts Options) (*ParseResult, error) {
	tok, err := Tokenize(path, opts)
	if err != nil {
		return nil, err
	}
	res := &ParseResult{TokenizeResult: *tok}
	if res.Bag.HasErrors() {
		return res, nil
	}
	prog, pd := parser.New(res.Tokens).ParseProgram()
	if pd != nil {
		res.Bag.Add(*pd)
		return res, nil
	}
	res.Program = prog
	return res, nil
}

// Run parses and then executes a file. Runtime failures join the same
// bag as front-end diagnostics.
func Run(path string, opts Options) (*RunResult, error) {
	parsed, err := Parse(path, opts)
	if err != nil {
		return nil, err
	}
	res := &RunResult{ParseResult: *parsed}
	if res.Program == nil {
		return res, nil
	}
	res.Interp = interp.New()
	if rd := res.Interp.Run(res.Program); rd != nil {
		res.Bag.Add(*rd)
	}
	return res, nil
}

// WriteDiagnostics renders every collected diagnostic for one source,
// separated by blank lines, in bag order.
func WriteDiagnostics(w io.Writer, bag *diag.Bag, src *source.Source, opts diagfmt.Opts) error {
	for i, d := range bag.Items() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, diagfmt.Render(d, src, opts)); err != nil {
			return err
		}
	}
	return nil
}
