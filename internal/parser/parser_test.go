package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wdlfront/internal/ast"
	"wdlfront/internal/lexer"
)

func parseSource(src string) (*ast.Program, *Parser) {
	p := New(lexer.New(src))
	return p.ParseProgram(), p
}

func TestParseProgram_VersionAndImport(t *testing.T) {
	program, p := parseSource(`version 1.0
import "lib.wdl" as lib
`)
	require.False(t, p.Errored())
	require.NotNil(t, program.Version)
	assert.Equal(t, "1.0", program.Version.Literal.Lexeme)
	require.Len(t, program.Imports, 1)
	assert.Equal(t, "lib.wdl", program.Imports[0].Path.Token.Lexeme)
	assert.Equal(t, "lib", program.Imports[0].Alias)
}

func TestParseStructDecl(t *testing.T) {
	program, p := parseSource(`struct Point {
  Int x
  Int y
}`)
	require.False(t, p.Errored())
	require.Len(t, program.Decls, 1)
	s, ok := program.Decls[0].(*ast.StructDecl)
	require.True(t, ok)
	assert.Equal(t, "Point", s.Name)
	require.Len(t, s.Fields, 2)
	assert.Equal(t, "x", s.Fields[0].Name)
	assert.Equal(t, "Int", s.Fields[0].Type.Lexeme)
}

func TestParseTaskWithSections(t *testing.T) {
	program, p := parseSource(`task greet {
  input {
    String name
  }
  command <<<
    echo ~{name}
  >>>
  output {
    String result
  }
  runtime {
    docker: "ubuntu"
  }
}`)
	require.False(t, p.Errored())
	require.Len(t, program.Decls, 1)
	task, ok := program.Decls[0].(*ast.ClassDecl)
	require.True(t, ok)
	assert.Equal(t, "task", task.Kind)
	assert.Equal(t, "greet", task.Name)

	var sawInput, sawCommand, sawOutput, sawRuntime bool
	for _, m := range task.Members {
		switch member := m.(type) {
		case *ast.InputDecl:
			sawInput = true
		case *ast.CommandDecl:
			sawCommand = true
			require.Len(t, member.Interpolations, 1)
			assert.Equal(t, "name", member.Interpolations[0].Name)
		case *ast.OutputDecl:
			sawOutput = true
		case *ast.RuntimeDecl:
			sawRuntime = true
			require.Len(t, member.Members, 1)
			assert.Equal(t, "docker", member.Members[0].Name)
		}
	}
	assert.True(t, sawInput)
	assert.True(t, sawCommand)
	assert.True(t, sawOutput)
	assert.True(t, sawRuntime)
}

func TestParseCallDecl(t *testing.T) {
	program, p := parseSource(`workflow main {
  call tasks.greet as hello {
    input:
      name = "world"
  }
}`)
	require.False(t, p.Errored())
	wf := program.Decls[0].(*ast.ClassDecl)
	call, ok := wf.Members[0].(*ast.CallDecl)
	require.True(t, ok)
	assert.Equal(t, "hello", call.Alias)
	assert.Equal(t, "tasks", call.Callee.Object.(*ast.Ident).Name)
	assert.Equal(t, "greet", call.Callee.Member.(*ast.Ident).Name)
	require.Len(t, call.Args, 1)
	assert.Equal(t, "name", call.Args[0].Name)
}

func TestParseCallDecl_TypeWordAsSubTaskName(t *testing.T) {
	program, p := parseSource(`workflow main {
  call tasks.map as m {
    input:
      x = 1,
      y = "a"
  }
}`)
	require.False(t, p.Errored())
	wf := program.Decls[0].(*ast.ClassDecl)
	call, ok := wf.Members[0].(*ast.CallDecl)
	require.True(t, ok)
	assert.Equal(t, "m", call.Alias)
	assert.Equal(t, "tasks", call.Callee.Object.(*ast.Ident).Name)
	assert.Equal(t, "map", call.Callee.Member.(*ast.Ident).Name)
	require.Len(t, call.Args, 2)
}

func TestParseScatterStmt(t *testing.T) {
	program, p := parseSource(`workflow w {
  scatter (x in items) {
    call t.run { input: v = x }
  }
}`)
	require.False(t, p.Errored())
	wf := program.Decls[0].(*ast.ClassDecl)
	scatter, ok := wf.Members[0].(*ast.ScatterStmt)
	require.True(t, ok)
	assert.Equal(t, "x", scatter.LoopVar)
	assert.Equal(t, "items", scatter.Collection.(*ast.Ident).Name)
}

func TestParseTernaryIf(t *testing.T) {
	program, p := parseSource(`Int x = if true then 1 else 2`)
	require.False(t, p.Errored())
	v, ok := program.Decls[0].(*ast.VarDecl)
	require.True(t, ok)
	ifExpr, ok := v.Init.(*ast.IfStmt)
	require.True(t, ok)
	assert.NotNil(t, ifExpr.Condition)
	assert.NotNil(t, ifExpr.Then)
	assert.NotNil(t, ifExpr.Else)
}

func TestParseImperativeIfElseIfChain(t *testing.T) {
	program, p := parseSource(`Int f() {
  if (x) {
    return 1
  } else if (y) {
    return 2
  } else {
    return 3
  }
}`)
	require.False(t, p.Errored())
	fn := program.Decls[0].(*ast.FuncDecl)
	outer, ok := fn.Body.Statements[0].(*ast.IfStmt)
	require.True(t, ok)
	inner, ok := outer.Else.(*ast.IfStmt)
	require.True(t, ok, "else-if should chain through another IfStmt")
	assert.NotNil(t, inner.Else)
}

func TestParseArrayMapPairExprs(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		program, p := parseSource(`Array[Int] xs = [1, 2, 3]`)
		require.False(t, p.Errored())
		v := program.Decls[0].(*ast.VarDecl)
		arr, ok := v.Init.(*ast.ArrayExpr)
		require.True(t, ok)
		assert.Len(t, arr.Elements, 3)
	})

	t.Run("map", func(t *testing.T) {
		program, p := parseSource(`Map[String,Int] m = {"a": 1, "b": 2}`)
		require.False(t, p.Errored())
		v := program.Decls[0].(*ast.VarDecl)
		m, ok := v.Init.(*ast.MapExpr)
		require.True(t, ok)
		assert.Len(t, m.Entries, 2)
	})

	t.Run("pair", func(t *testing.T) {
		program, p := parseSource(`Pair[Int,Int] pr = (1, 2)`)
		require.False(t, p.Errored())
		v := program.Decls[0].(*ast.VarDecl)
		pair, ok := v.Init.(*ast.PairExpr)
		require.True(t, ok)
		assert.NotNil(t, pair.First)
		assert.NotNil(t, pair.Second)
	})
}

func TestParseType_SuffixOrderNormalizes(t *testing.T) {
	for _, src := range []string{`Array[String]+? x`, `Array[String]?+ x`} {
		program, p := parseSource(src)
		require.False(t, p.Errored(), src)
		v := program.Decls[0].(*ast.VarDecl)
		assert.Equal(t, "Array[String]+?", v.Type.Lexeme, src)
		assert.True(t, v.Type.Nullable, src)
	}
}

func TestParseFuncCall_DefaultArgument(t *testing.T) {
	program, p := parseSource(`Int y = select_first(default=5, x)`)
	require.False(t, p.Errored())
	v := program.Decls[0].(*ast.VarDecl)
	call, ok := v.Init.(*ast.FuncCall)
	require.True(t, ok)
	require.NotNil(t, call.DefaultArg)
	lit, ok := call.DefaultArg.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "5", lit.Token.Lexeme)
	require.Len(t, call.Args, 1)
}

func TestParseExpression_Precedence(t *testing.T) {
	program, p := parseSource(`Boolean b = 1 + 2 * 3 == 7 && true`)
	require.False(t, p.Errored())
	v := program.Decls[0].(*ast.VarDecl)
	top, ok := v.Init.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.And, top.Operator.Kind)

	eq, ok := top.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Equality, eq.Operator.Kind)

	add, ok := eq.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Plus, add.Operator.Kind)

	mul, ok := add.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Star, mul.Operator.Kind)
}

func TestParseMemberAccessChain(t *testing.T) {
	program, p := parseSource(`Int x = a.b.c`)
	require.False(t, p.Errored())
	v := program.Decls[0].(*ast.VarDecl)
	outer, ok := v.Init.(*ast.MemberAccess)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Object.(*ast.Ident).Name)
	inner, ok := outer.Member.(*ast.MemberAccess)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Object.(*ast.Ident).Name)
	assert.Equal(t, "c", inner.Member.(*ast.Ident).Name)
}

func TestStructuralCap_TooManyArrayElements(t *testing.T) {
	src := "Array[Int] xs = ["
	for i := 0; i < 300; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += "]"

	_, p := parseSource(src)
	require.False(t, p.Errored(), "structural cap overruns are warnings, not errors")
	diags := p.Reports.Diagnostics()
	require.NotEmpty(t, diags)
	assert.Equal(t, "WARNING", string(diags[0].Severity))
}

func TestSyntaxError_ExpectDoesNotConsume(t *testing.T) {
	program, p := parseSource(`struct { Int x }`) // missing struct name
	assert.True(t, p.Errored())
	diags := p.Reports.Diagnostics()
	require.NotEmpty(t, diags)
	assert.Equal(t, "ERROR", string(diags[0].Severity))

	// the failed name expect left '{' in place, so the body still parses
	require.Len(t, program.Decls, 1)
	s, ok := program.Decls[0].(*ast.StructDecl)
	require.True(t, ok)
	require.Len(t, s.Fields, 1)
	assert.Equal(t, "x", s.Fields[0].Name)
}
