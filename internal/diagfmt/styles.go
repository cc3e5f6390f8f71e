package diagfmt

import "druim/internal/diag"

// style selects one of the fixed 256-color ANSI palettes. Styling
// wraps substrings only; it never changes counts or column arithmetic.
type style uint8

const (
	stylePlain style = iota
	styleError
	styleWarning
	styleNote
	styleHelp
	styleCaret
)

const ansiReset = "\x1b[39m"

func (s style) code() string {
	switch s {
	case styleError:
		return "\x1b[38;5;88m"
	case styleWarning:
		return "\x1b[38;5;202m"
	case styleNote:
		return "\x1b[38;5;94m"
	case styleHelp:
		return "\x1b[38;5;64m"
	case styleCaret:
		return "\x1b[38;5;135m"
	}
	return ""
}

func severityStyle(sev diag.Severity) style {
	switch sev {
	case diag.SevError:
		return styleError
	case diag.SevWarning:
		return styleWarning
	case diag.SevNote:
		return styleNote
	case diag.SevHelp:
		return styleHelp
	}
	return stylePlain
}
