package diag

import (
	"druim/internal/source"
)

// Label is a secondary annotation attached under the primary caret.
type Label struct {
	Span source.Span
	Text string
}

// Note is a sub-diagnostic attached to a Diagnostic. The span is
// optional; a note without one renders as a bare header line.
type Note struct {
	Severity Severity
	Message  string
	Span     *source.Span
}

// Diagnostic is the single error value every parser failure path
// constructs and the renderer formats. Built incrementally via chained
// attachment calls; terminal once returned from a fallible step.
type Diagnostic struct {
	Severity  Severity
	Code      Code
	Message   string
	Span      source.Span
	Help      string
	Secondary []Label
	Notes     []Note
}

// New constructs a diagnostic with the given severity.
func New(sev Severity, code Code, span source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Span:     span,
		Message:  msg,
	}
}

// Error constructs an error diagnostic.
func Error(code Code, span source.Span, msg string) Diagnostic {
	return New(SevError, code, span, msg)
}

// Warning constructs a warning diagnostic.
func Warning(code Code, span source.Span, msg string) Diagnostic {
	return New(SevWarning, code, span, msg)
}

// NoteDiag constructs a top-level note diagnostic.
func NoteDiag(code Code, span source.Span, msg string) Diagnostic {
	return New(SevNote, code, span, msg)
}

// HelpDiag constructs a top-level help diagnostic.
func HelpDiag(code Code, span source.Span, msg string) Diagnostic {
	return New(SevHelp, code, span, msg)
}

// WithHelp attaches static help text. Attachment calls are independent
// and order-commutative.
func (d Diagnostic) WithHelp(text string) Diagnostic {
	d.Help = text
	return d
}

// WithSecondary appends a secondary label. Labels render in attachment
// order, not sorted order.
func (d Diagnostic) WithSecondary(span source.Span, text string) Diagnostic {
	d.Secondary = append(d.Secondary, Label{Span: span, Text: text})
	return d
}

// WithNote appends a note. Notes render in attachment order.
func (d Diagnostic) WithNote(n Note) Diagnostic {
	d.Notes = append(d.Notes, n)
	return d
}

// NewNote builds a note without a source span.
func NewNote(msg string) Note {
	return Note{Severity: SevNote, Message: msg}
}

// NewNoteAt builds a note pointing at a span.
func NewNoteAt(msg string, span source.Span) Note {
	return Note{Severity: SevNote, Message: msg, Span: &span}
}

// NewHelp builds a help note without a source span.
func NewHelp(msg string) Note {
	return Note{Severity: SevHelp, Message: msg}
}

// NewHelpAt builds a help note pointing at a span.
func NewHelpAt(msg string, span source.Span) Note {
	return Note{Severity: SevHelp, Message: msg, Span: &span}
}
