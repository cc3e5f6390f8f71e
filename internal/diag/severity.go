package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevError is for errors that abort the parse.
	SevError Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	// SevNote is for informational annotations.
	SevNote
	// SevHelp is for actionable suggestions.
	SevHelp
)

// String returns the lowercase severity word used in rendered headers.
func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	case SevNote:
		return "note"
	case SevHelp:
		return "help"
	}
	return "unknown"
}
