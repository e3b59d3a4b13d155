package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wdlfront/internal/ast"
	"wdlfront/internal/lexer"
	"wdlfront/internal/source"
)

func loc() source.Location {
	start := source.Position{Line: 1, Column: 1}
	end := source.Position{Line: 1, Column: 2}
	return source.Span(start, end)
}

func TestSprint_Literal(t *testing.T) {
	lit := &ast.Literal{Token: lexer.Token{Kind: lexer.NumberLiteral, Lexeme: "42"}, Location: loc()}
	out := Sprint(lit)
	assert.Equal(t, "Literal 42\n", out)
}

func TestSprint_VarDeclWithIndentedInit(t *testing.T) {
	v := &ast.VarDecl{
		Type:     &ast.TypeNode{Lexeme: "Int", Location: loc()},
		Name:     "x",
		Init:     &ast.Literal{Token: lexer.Token{Kind: lexer.NumberLiteral, Lexeme: "1"}, Location: loc()},
		Location: loc(),
	}
	out := Sprint(v)
	assert.Equal(t, "Var Int x\n  Literal 1\n", out)
}

func TestSprint_NilInitPrintsNothing(t *testing.T) {
	v := &ast.VarDecl{Type: &ast.TypeNode{Lexeme: "Int", Location: loc()}, Name: "x", Location: loc()}
	out := Sprint(v)
	assert.Equal(t, "Var Int x\n", out)
}

func TestSprint_IfStmtNilElseGuarded(t *testing.T) {
	ifStmt := &ast.IfStmt{
		Condition: &ast.Ident{Name: "cond", Location: loc()},
		Then:      &ast.Block{Location: loc()},
		Else:      nil,
		Location:  loc(),
	}
	out := Sprint(ifStmt)
	assert.Equal(t, "If\n  Ident cond\n  Block\n", out)
}

func TestSprint_ProgramWithImportAndStruct(t *testing.T) {
	program := &ast.Program{
		Imports: []*ast.ImportDecl{
			{Path: &ast.Literal{Token: lexer.Token{Lexeme: "lib.wdl"}, Location: loc()}, Alias: "lib", Location: loc()},
		},
		Decls: []ast.Node{
			&ast.StructDecl{Name: "Point", Fields: []*ast.VarDecl{
				{Type: &ast.TypeNode{Lexeme: "Int", Location: loc()}, Name: "x", Location: loc()},
			}, Location: loc()},
		},
		Location: loc(),
	}
	out := Sprint(program)
	assert.Equal(t, "Program\n  Import lib.wdl as lib\n  Struct Point\n    Var Int x\n", out)
}
