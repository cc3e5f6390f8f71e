package token

// Keyword table. Case-sensitive: only the exact lowercase spellings
// are recognized; anything else lexes as a plain identifier.
var keywords = map[string]Kind{
	"num":  KwNum,
	"dec":  KwDec,
	"flag": KwFlag,
	"text": KwText,
	"emp":  KwEmp,
	"fn":   KwFn,
	"ret":  KwRet,
	"loc":  KwLoc,
}

// LookupKeyword returns the keyword kind for ident, if any.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
