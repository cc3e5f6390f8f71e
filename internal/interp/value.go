package interp

import (
	"strconv"

	"druim/internal/ast"
)

// Value is a Druim runtime value. The closed set mirrors the value
// keywords: num, dec, flag, text, the emptiness value, and functions.
type Value interface {
	isValue()
	String() string
}

// Num is a whole number.
type Num int64

// Dec is a decimal kept as text to preserve the written precision.
type Dec string

// Flag is an explicit boolean.
type Flag bool

// Text is a text value.
type Text string

// Emp is the explicit-emptiness value.
type Emp struct{}

// Func is a function value: its parameters and ordered bodies.
type Func struct {
	Name   string
	Params []ast.Param
	Bodies []*ast.Block
}

func (Num) isValue()   {}
func (Dec) isValue()   {}
func (Flag) isValue()  {}
func (Text) isValue()  {}
func (Emp) isValue()   {}
func (*Func) isValue() {}

func (v Num) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v Dec) String() string  { return string(v) }
func (v Text) String() string { return string(v) }
func (Emp) String() string    { return "emp" }

func (v Flag) String() string {
	if v {
		return "true"
	}
	return "false"
}

func (v *Func) String() string { return "fn " + v.Name }

// kindName names a value's kind for runtime diagnostics.
func kindName(v Value) string {
	switch v.(type) {
	case Num:
		return "num"
	case Dec:
		return "dec"
	case Flag:
		return "flag"
	case Text:
		return "text"
	case Emp:
		return "emp"
	case *Func:
		return "fn"
	}
	return "unknown"
}
