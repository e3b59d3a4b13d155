// Package printer renders a parsed Program as an indented, human-readable
// tree, for debugging and for the CLI's "parse" subcommand.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"wdlfront/internal/ast"
)

// Fprint writes a pretty-printed tree of n to w. A nil n prints nothing.
func Fprint(w io.Writer, n ast.Node) {
	p := &printer{w: w}
	p.node(n, 0)
}

// Sprint is Fprint into a string, for tests and short debug output.
func Sprint(n ast.Node) string {
	var sb strings.Builder
	Fprint(&sb, n)
	return sb.String()
}

type printer struct {
	w io.Writer
}

func (p *printer) line(indent int, format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", indent), fmt.Sprintf(format, args...))
}

// node dispatches on the concrete node shape, printing a one-line header
// for each and recursing into its children with indent+1. Leaf shapes
// (Ident, Literal, TypeNode) print their single line and nothing more.
func (p *printer) node(n ast.Node, indent int) {
	if n == nil || isNilNode(n) {
		return
	}
	switch node := n.(type) {
	case *ast.Program:
		p.line(indent, "Program")
		if node.Version != nil {
			p.node(node.Version, indent+1)
		}
		for _, imp := range node.Imports {
			p.node(imp, indent+1)
		}
		for _, decl := range node.Decls {
			p.node(decl, indent+1)
		}

	case *ast.VersionDecl:
		p.line(indent, "Version %s", node.Literal.Lexeme)

	case *ast.ImportDecl:
		if node.Alias != "" {
			p.line(indent, "Import %s as %s", node.Path.Token.Lexeme, node.Alias)
		} else {
			p.line(indent, "Import %s", node.Path.Token.Lexeme)
		}

	case *ast.StructDecl:
		p.line(indent, "Struct %s", node.Name)
		for _, f := range node.Fields {
			p.node(f, indent+1)
		}

	case *ast.ClassDecl:
		p.line(indent, "%s %s", strings.Title(node.Kind), node.Name)
		for _, m := range node.Members {
			p.node(m, indent+1)
		}

	case *ast.FuncDecl:
		p.line(indent, "Func %s %s -> %d params", node.Name, node.ReturnType.Lexeme, len(node.Params))
		for _, param := range node.Params {
			p.node(param, indent+1)
		}
		p.node(node.Body, indent+1)

	case *ast.VarDecl:
		p.line(indent, "Var %s %s", node.Type.Lexeme, node.Name)
		p.node(node.Init, indent+1)

	case *ast.InputDecl:
		p.line(indent, "Input")
		p.node(node.Body, indent+1)

	case *ast.OutputDecl:
		p.line(indent, "Output")
		p.node(node.Body, indent+1)

	case *ast.RuntimeDecl:
		p.line(indent, "Runtime")
		for _, m := range node.Members {
			p.line(indent+1, "%s:", m.Name)
			p.node(m.Value, indent+2)
		}

	case *ast.MetaDecl:
		p.line(indent, "%s", node.Section)
		p.metaMembers(node.Members, indent+1)

	case *ast.CommandDecl:
		names := lo.Map(node.Interpolations, func(id *ast.Ident, _ int) string { return id.Name })
		p.line(indent, "Command interpolations=%v", names)

	case *ast.CallDecl:
		p.line(indent, "Call %s alias=%q args=%d", calleeString(node.Callee), node.Alias, len(node.Args))
		for _, a := range node.Args {
			p.line(indent+1, "%s =", a.Name)
			p.node(a.Value, indent+2)
		}

	case *ast.Block:
		p.line(indent, "Block")
		for _, s := range node.Statements {
			p.node(s, indent+1)
		}

	case *ast.IfStmt:
		p.line(indent, "If")
		p.node(node.Condition, indent+1)
		p.node(node.Then, indent+1)
		p.node(node.Else, indent+1)

	case *ast.WhileStmt:
		p.line(indent, "While")
		p.node(node.Condition, indent+1)
		p.node(node.Body, indent+1)

	case *ast.DoWhileStmt:
		p.line(indent, "DoWhile")
		p.node(node.Body, indent+1)
		p.node(node.Condition, indent+1)

	case *ast.ScatterStmt:
		p.line(indent, "Scatter %s in", node.LoopVar)
		p.node(node.Collection, indent+1)
		p.node(node.Body, indent+1)

	case *ast.ReturnStmt:
		p.line(indent, "Return")
		p.node(node.Value, indent+1)

	case *ast.ExprStmt:
		p.line(indent, "ExprStmt")
		p.node(node.Expression, indent+1)

	case *ast.BinaryExpr:
		p.line(indent, "Binary %s", node.Operator.Lexeme)
		p.node(node.Left, indent+1)
		p.node(node.Right, indent+1)

	case *ast.UnaryExpr:
		p.line(indent, "Unary %s", node.Operator.Lexeme)
		p.node(node.Operand, indent+1)

	case *ast.AssignExpr:
		p.line(indent, "Assign")
		p.node(node.Left, indent+1)
		p.node(node.Right, indent+1)

	case *ast.Literal:
		p.line(indent, "Literal %s", node.Token.Lexeme)

	case *ast.Ident:
		p.line(indent, "Ident %s", node.Name)

	case *ast.MemberAccess:
		p.line(indent, "MemberAccess")
		p.node(node.Object, indent+1)
		p.node(node.Member, indent+1)

	case *ast.FuncCall:
		p.line(indent, "Call args=%d default=%t", len(node.Args), node.DefaultArg != nil)
		p.node(node.Callee, indent+1)
		if node.DefaultArg != nil {
			p.node(node.DefaultArg, indent+1)
		}
		for _, a := range node.Args {
			p.node(a, indent+1)
		}

	case *ast.ArrayExpr:
		p.line(indent, "Array len=%d", len(node.Elements))
		for _, e := range node.Elements {
			p.node(e, indent+1)
		}

	case *ast.MapExpr:
		p.line(indent, "Map len=%d", len(node.Entries))
		for _, e := range node.Entries {
			p.node(e.Key, indent+1)
			p.node(e.Value, indent+1)
		}

	case *ast.PairExpr:
		p.line(indent, "Pair")
		p.node(node.First, indent+1)
		p.node(node.Second, indent+1)

	case *ast.TypeNode:
		p.line(indent, "Type %s", node.Lexeme)

	default:
		p.line(indent, "%T", node)
	}
}

func (p *printer) metaMembers(members []ast.MetaMember, indent int) {
	for _, m := range members {
		if m.Nested != nil {
			p.line(indent, "%s:", m.Name)
			p.metaMembers(m.Nested, indent+1)
			continue
		}
		p.line(indent, "%s:", m.Name)
		p.node(m.Value, indent+1)
	}
}

func calleeString(m *ast.MemberAccess) string {
	if m == nil {
		return ""
	}
	obj, _ := m.Object.(*ast.Ident)
	if obj == nil {
		return ""
	}
	if sub, ok := m.Member.(*ast.Ident); ok && sub != nil {
		return obj.Name + "." + sub.Name
	}
	return obj.Name
}

// isNilNode guards against a typed-nil interface value (e.g. a nil
// *ast.Block stored as ast.Node), which n == nil alone would miss.
func isNilNode(n ast.Node) bool {
	switch v := n.(type) {
	case *ast.Block:
		return v == nil
	case *ast.IfStmt:
		return v == nil
	case *ast.Ident:
		return v == nil
	}
	return false
}
