package diag

import (
	"druim/internal/source"
)

// ErrorKind is the legacy, narrow classification of parse errors. It
// covers simple lexical-adjacent failures; statement-specific failures
// construct a Diagnostic directly so the message can be maximally
// specific.
type ErrorKind uint8

const (
	// UnexpectedToken: a token appeared where it is not valid.
	UnexpectedToken ErrorKind = iota
	// ExpectedToken: a required token or construct was missing.
	ExpectedToken
	// ExpectedIdentifier: a definition required an identifier.
	ExpectedIdentifier
	// UnexpectedEOF: the parser reached end of input unexpectedly.
	UnexpectedEOF
	// InvalidStatement: a valid construct is illegal in this context.
	InvalidStatement
	// InvalidExpression: tokens cannot form an expression here.
	InvalidExpression
)

func (k ErrorKind) message() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case ExpectedToken:
		return "expected token"
	case ExpectedIdentifier:
		return "expected identifier"
	case UnexpectedEOF:
		return "unexpected end of input"
	case InvalidStatement:
		return "invalid statement"
	case InvalidExpression:
		return "invalid expression"
	}
	return "unknown error"
}

func (k ErrorKind) code() Code {
	switch k {
	case UnexpectedToken:
		return SynUnexpectedToken
	case ExpectedToken:
		return SynExpectedToken
	case ExpectedIdentifier:
		return SynExpectedIdentifier
	case UnexpectedEOF:
		return SynUnexpectedEOF
	case InvalidStatement:
		return SynInvalidStatement
	case InvalidExpression:
		return SynInvalidExpression
	}
	return UnknownCode
}

// ParseError is the structured legacy error. Expected, when set,
// becomes the diagnostic's help text.
type ParseError struct {
	Kind     ErrorKind
	Expected string
	Span     source.Span
}

// Diagnostic is the one canonical mapping from the legacy taxonomy
// into the Diagnostic surface.
func (e ParseError) Diagnostic() Diagnostic {
	d := Error(e.Kind.code(), e.Span, e.Kind.message())
	if e.Expected != "" {
		d = d.WithHelp(e.Expected)
	}
	return d
}
