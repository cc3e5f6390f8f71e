package diag

import (
	"fmt"
)

// Code identifies a diagnostic category. Codes are internal bookkeeping
// for tooling and tests; the renderer never prints them.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexUnexpectedChar   Code = 1001
	LexUnterminatedText Code = 1002

	// Legacy parse-error taxonomy.
	SynUnexpectedToken    Code = 2001
	SynExpectedToken      Code = 2002
	SynExpectedIdentifier Code = 2003
	SynUnexpectedEOF      Code = 2004
	SynInvalidStatement   Code = 2005
	SynInvalidExpression  Code = 2006

	// Statement-specific diagnostics.
	SynUnterminatedStatement Code = 2010
	SynChainedStatement      Code = 2011
	SynNotAValue             Code = 2012
	SynInvalidFunctionName   Code = 2013
	SynMissingFunctionBody   Code = 2014
	SynUnclosedBlock         Code = 2015
	SynInvalidGuardBranch    Code = 2016
	SynArrayNotSupported     Code = 2017

	// Runtime.
	RunUndefinedName  Code = 3001
	RunBadOperand     Code = 3002
	RunUnsupportedOp  Code = 3003
	RunNotCallable    Code = 3004
	RunArityMismatch  Code = 3005
	RunReturnTopLevel Code = 3006
)

// ID returns the stable textual identifier, e.g. "DRM2001".
func (c Code) ID() string {
	return fmt.Sprintf("DRM%04d", uint16(c))
}

func (c Code) String() string {
	return c.ID()
}
