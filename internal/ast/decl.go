package ast

import (
	"wdlfront/internal/lexer"
	"wdlfront/internal/source"
)

// VersionDecl is the optional leading "version <number>" declaration.
type VersionDecl struct {
	Literal lexer.Token
	source.Location
}

func (v *VersionDecl) Loc() *source.Location { return &v.Location }

// ImportDecl is "import <path> (as <alias>)?".
type ImportDecl struct {
	Path  *Literal
	Alias string // empty when no "as" clause
	source.Location
}

func (i *ImportDecl) Loc() *source.Location { return &i.Location }

// StructDecl is "struct <Name> { <field var_decl>* }".
type StructDecl struct {
	Name   string
	Fields []*VarDecl
	source.Location
}

func (s *StructDecl) Loc() *source.Location { return &s.Location }

// ClassDecl represents "task", "workflow" and "class" container
// declarations; Kind preserves which keyword introduced it.
type ClassDecl struct {
	Kind    string // "task" | "workflow" | "class"
	Name    string
	Members []Node
	source.Location
}

func (c *ClassDecl) Loc() *source.Location { return &c.Location }

// FuncDecl is a typed function/method declaration.
type FuncDecl struct {
	ReturnType *TypeNode
	Name       string
	Params     []*VarDecl
	Body       *Block
	source.Location
}

func (f *FuncDecl) Loc() *source.Location { return &f.Location }

// VarDecl is a typed field or local variable declaration, reused for
// struct fields, function parameters, and "<Type> <name> = <expr>"
// statements.
type VarDecl struct {
	Type *TypeNode
	Name string
	Init Expr // nil when there is no initializer
	source.Location
}

func (v *VarDecl) Loc() *source.Location { return &v.Location }
func (v *VarDecl) stmtNode()             {}

// InputDecl is the "input { ... }" subsection of a task/workflow.
type InputDecl struct {
	Body *Block
	source.Location
}

func (i *InputDecl) Loc() *source.Location { return &i.Location }

// OutputDecl is the "output { ... }" subsection of a task/workflow.
type OutputDecl struct {
	Body *Block
	source.Location
}

func (o *OutputDecl) Loc() *source.Location { return &o.Location }

// RuntimeMember is one "<name> : <expr>" entry of a runtime section.
type RuntimeMember struct {
	Name  string
	Value Expr
}

// RuntimeDecl is the flat "runtime { <name>: <expr>, ... }" subsection.
// Unlike input/output it is not a generic Block: members are a flat
// name/expression pair list, not parsed statements.
type RuntimeDecl struct {
	Members []RuntimeMember
	source.Location
}

func (r *RuntimeDecl) Loc() *source.Location { return &r.Location }

// MetaMember is one entry of a meta/parameter_meta section. Value holds a
// literal/expr payload; Nested holds sub-members when the value is itself
// a nested object, so "meta" and "parameter_meta" share one shape.
type MetaMember struct {
	Name   string
	Value  Expr
	Nested []MetaMember
}

// MetaDecl represents both "meta { ... }" and "parameter_meta { ... }";
// Section records which keyword introduced it.
type MetaDecl struct {
	Section string // "meta" | "parameter_meta"
	Members []MetaMember
	source.Location
}

func (m *MetaDecl) Loc() *source.Location { return &m.Location }

// CommandDecl is a captured "command <<< ... >>>" heredoc. Body is the
// raw text between the markers, stored verbatim; Interpolations lists the
// "~{ident}" placeholders found inside it, in order.
type CommandDecl struct {
	Body           string
	Interpolations []*Ident
	source.Location
}

func (c *CommandDecl) Loc() *source.Location { return &c.Location }

// CallArg is one "name = expr" keyword argument of a call construct.
type CallArg struct {
	Name  string
	Value Expr
}

// CallDecl is "call <task>(.<sub>)? (as <alias>)? ({ input: <args> })?".
type CallDecl struct {
	Callee *MemberAccess
	Alias  string
	Args   []CallArg
	source.Location
}

func (c *CallDecl) Loc() *source.Location { return &c.Location }
func (c *CallDecl) stmtNode()             {}
