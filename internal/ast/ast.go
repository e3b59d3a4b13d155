// Package ast defines the closed set of WDL AST node shapes as a
// tagged union behind a small Node interface, mirroring a
// interface-plus-marker-method design over inheritance: every concrete
// shape is a small struct that owns its children and embeds its own
// source.Location.
package ast

import "wdlfront/internal/source"

// Node is satisfied by every AST shape.
type Node interface {
	Loc() *source.Location
}

// Expr marks a Node usable in expression position.
type Expr interface {
	Node
	exprNode()
}

// Stmt marks a Node usable in statement position.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the AST root: an optional version declaration, zero or more
// imports, and the remaining top-level declarations in source order.
type Program struct {
	Version *VersionDecl
	Imports []*ImportDecl
	Decls   []Node
	source.Location
}

func (p *Program) Loc() *source.Location { return &p.Location }

// TypeNode carries a composed type lexeme (e.g. "Array[String]+?") and a
// separately tracked nullable flag; the parser never mutates the lexeme
// after the '?' suffix is folded in, it only promotes Nullable.
type TypeNode struct {
	Lexeme   string
	Nullable bool
	source.Location
}

func (t *TypeNode) Loc() *source.Location { return &t.Location }

// Block is an ordered list of statements/declarations, used for function
// bodies, scatter bodies and the input/output subsections.
type Block struct {
	Statements []Node
	source.Location
}

func (b *Block) Loc() *source.Location { return &b.Location }
func (b *Block) stmtNode()             {}
