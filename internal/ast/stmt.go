package ast

import (
	"strings"

	"druim/internal/source"
)

// Stmt is a statement node.
type Stmt interface {
	Span() source.Span
	Surface() string
	isStmt()
}

// Block is `:{ stmt* }:`. A `}{` chain token concatenates segments
// into the same block; it does not open a new scope.
type Block struct {
	Stmts []Stmt
	Sp    source.Span
}

// Define is `name = value;`. The value is never a single bare
// identifier (copy exists for that).
type Define struct {
	Name  string
	Loc   bool
	Value Expr
	Sp    source.Span
}

// DefineEmpty is `name =;` — binds the explicit-emptiness value.
type DefineEmpty struct {
	Name string
	Loc  bool
	Sp   source.Span
}

// Copy is `name := target;` — the new name aliases the target's slot.
type Copy struct {
	Name   string
	Target string
	Loc    bool
	Sp     source.Span
}

// Bind is `name :> target;` — the new name gets an independent
// snapshot of the target's current value.
type Bind struct {
	Name   string
	Target string
	Loc    bool
	Sp     source.Span
}

// Guard is `name ?= branch (: branch)*;` — binds the first branch
// whose truth value is true, else the emptiness value.
type Guard struct {
	Target   string
	Loc      bool
	Branches []Expr
	Sp       source.Span
}

// Return is `ret [value];`; a nil Value is the empty return.
type Return struct {
	Value Expr
	Sp    source.Span
}

// Param is a function parameter, optionally with a default.
type Param struct {
	Name    string
	Default Expr
	Sp      source.Span
}

// Function is `fn name :( params )( body )( body )*:`. Each chained
// body section is kept in order as an implicit block.
type Function struct {
	Name   string
	Params []Param
	Bodies []*Block
	Sp     source.Span
}

// ExprStmt is a bare call statement `name(args);` — the only legal
// top-level expression statement.
type ExprStmt struct {
	Call *Call
	Sp   source.Span
}

// Program is the ordered node sequence a successful parse produces.
// The tree is acyclic and exclusively owned by its Program.
type Program struct {
	Stmts []Stmt
}

func (s *Block) Span() source.Span       { return s.Sp }
func (s *Define) Span() source.Span      { return s.Sp }
func (s *DefineEmpty) Span() source.Span { return s.Sp }
func (s *Copy) Span() source.Span        { return s.Sp }
func (s *Bind) Span() source.Span        { return s.Sp }
func (s *Guard) Span() source.Span       { return s.Sp }
func (s *Return) Span() source.Span      { return s.Sp }
func (s *Function) Span() source.Span    { return s.Sp }
func (s *ExprStmt) Span() source.Span    { return s.Sp }

func (*Block) isStmt()       {}
func (*Define) isStmt()      {}
func (*DefineEmpty) isStmt() {}
func (*Copy) isStmt()        {}
func (*Bind) isStmt()        {}
func (*Guard) isStmt()       {}
func (*Return) isStmt()      {}
func (*Function) isStmt()    {}
func (*ExprStmt) isStmt()    {}

func locPrefix(loc bool) string {
	if loc {
		return "loc "
	}
	return ""
}

func (s *Block) Surface() string {
	parts := make([]string, len(s.Stmts))
	for i, st := range s.Stmts {
		parts[i] = st.Surface()
	}
	return ":{ " + strings.Join(parts, " ") + " }:"
}

func (s *Define) Surface() string {
	return locPrefix(s.Loc) + s.Name + " = " + s.Value.Surface() + ";"
}

func (s *DefineEmpty) Surface() string {
	return locPrefix(s.Loc) + s.Name + " =;"
}

func (s *Copy) Surface() string {
	return locPrefix(s.Loc) + s.Name + " := " + s.Target + ";"
}

func (s *Bind) Surface() string {
	return locPrefix(s.Loc) + s.Name + " :> " + s.Target + ";"
}

func (s *Guard) Surface() string {
	branches := make([]string, len(s.Branches))
	for i, b := range s.Branches {
		branches[i] = b.Surface()
	}
	return locPrefix(s.Loc) + s.Target + " ?= " + strings.Join(branches, " : ") + ";"
}

func (s *Return) Surface() string {
	if s.Value == nil {
		return "ret;"
	}
	return "ret " + s.Value.Surface() + ";"
}

func (s *Function) Surface() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		if p.Default != nil {
			params[i] = p.Name + " = " + p.Default.Surface()
		} else {
			params[i] = p.Name
		}
	}
	var b strings.Builder
	b.WriteString("fn " + s.Name + " :( " + strings.Join(params, ", ") + " )")
	for _, body := range s.Bodies {
		inner := make([]string, len(body.Stmts))
		for i, st := range body.Stmts {
			inner[i] = st.Surface()
		}
		b.WriteString("( " + strings.Join(inner, " ") + " )")
	}
	b.WriteString(":")
	return b.String()
}

func (s *ExprStmt) Surface() string {
	return s.Call.Surface() + ";"
}

// Surface renders the whole program, one statement per line.
func (p *Program) Surface() string {
	parts := make([]string, len(p.Stmts))
	for i, st := range p.Stmts {
		parts[i] = st.Surface()
	}
	return strings.Join(parts, "\n")
}
