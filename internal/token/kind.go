package token

// Kind is the closed enumeration of lexical kinds. No kind requires
// lookahead beyond the longest multi-character match (2 bytes).
type Kind uint8

const (
	// Invalid marks an erroneous token; a successful scan never emits it.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident is an identifier, including digit-leading ones like 9lives.
	Ident

	// NumLit is a whole number literal.
	NumLit
	// DecLit is a decimal literal, kept as text to preserve precision.
	DecLit
	// TextLit is a quoted text literal; Text holds the unquoted content.
	TextLit

	// Value-type keywords.
	KwNum  // num
	KwDec  // dec
	KwFlag // flag
	KwText // text
	// KwEmp is the explicit-emptiness literal.
	KwEmp // emp

	// Flow keywords.
	KwFn  // fn
	KwRet // ret
	KwLoc // loc

	// Statement-defining operators.
	Define      // =
	DefineEmpty // =;
	Copy        // :=
	Bind        // :>
	Guard       // ?=

	// Colon family.
	Colon   // :
	Has     // ::
	Present // :?

	// Arithmetic.
	Add // +
	Sub // -
	Mul // *
	Div // /
	Mod // %

	// Comparison.
	Eq // ==
	Ne // !=
	Lt // <
	Le // <=
	Gt // >
	Ge // >=

	// Logical.
	And // &?
	Or  // |?
	Not // !?

	// Flow operators.
	Pipe   // |>
	ArrowR // ->
	ArrowL // <-

	// Punctuation.
	LParen    // (
	RParen    // )
	Comma     // ,
	Semicolon // ;

	// Paired block delimiters: each of the four block kinds has a
	// 2-character open, chain and close token.
	BlockExprStart // :[
	BlockExprChain // ][
	BlockExprEnd   // ]:
	BlockStmtStart // :{
	BlockStmtChain // }{
	BlockStmtEnd   // }:
	BlockFuncStart // :(
	BlockFuncChain // )(
	BlockFuncEnd   // ):
	BlockArrayStart // :<
	BlockArrayChain // ><
	BlockArrayEnd   // >:
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	NumLit:      "NumLit",
	DecLit:      "DecLit",
	TextLit:     "TextLit",
	KwNum:       "num",
	KwDec:       "dec",
	KwFlag:      "flag",
	KwText:      "text",
	KwEmp:       "emp",
	KwFn:        "fn",
	KwRet:       "ret",
	KwLoc:       "loc",
	Define:      "=",
	DefineEmpty: "=;",
	Copy:        ":=",
	Bind:        ":>",
	Guard:       "?=",
	Colon:       ":",
	Has:         "::",
	Present:     ":?",
	Add:         "+",
	Sub:         "-",
	Mul:         "*",
	Div:         "/",
	Mod:         "%",
	Eq:          "==",
	Ne:          "!=",
	Lt:          "<",
	Le:          "<=",
	Gt:          ">",
	Ge:          ">=",
	And:         "&?",
	Or:          "|?",
	Not:         "!?",
	Pipe:        "|>",
	ArrowR:      "->",
	ArrowL:      "<-",
	LParen:      "(",
	RParen:      ")",
	Comma:       ",",
	Semicolon:   ";",

	BlockExprStart:  ":[",
	BlockExprChain:  "][",
	BlockExprEnd:    "]:",
	BlockStmtStart:  ":{",
	BlockStmtChain:  "}{",
	BlockStmtEnd:    "}:",
	BlockFuncStart:  ":(",
	BlockFuncChain:  ")(",
	BlockFuncEnd:    "):",
	BlockArrayStart: ":<",
	BlockArrayChain: "><",
	BlockArrayEnd:   ">:",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
