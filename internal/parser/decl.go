package parser

import (
	"wdlfront/internal/ast"
	"wdlfront/internal/lexer"
	"wdlfront/internal/source"
)

// parseFuncDecl parses "(" params ")" "{" block "}" given an already
// consumed return type and name.
func (p *Parser) parseFuncDecl(returnType *ast.TypeNode, nameTok lexer.Token) *ast.FuncDecl {
	start := *returnType.Start
	p.expect(lexer.LParen, "expected '(' to start a parameter list")

	var params []*ast.VarDecl
	if !p.check(lexer.RParen) {
		for {
			if len(params) >= 255 {
				p.Reports.AddStructuralError(p.current, "too many parameters (max 255)")
			}
			ptype := p.parseType()
			pname := p.expect(lexer.Ident, "expected a parameter name")
			params = append(params, &ast.VarDecl{
				Type:     ptype,
				Name:     pname.Lexeme,
				Location: source.Span(*ptype.Start, pname.End),
			})
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	p.expect(lexer.RParen, "expected ')' to close the parameter list")

	body := p.parseBlock()
	return &ast.FuncDecl{
		ReturnType: returnType,
		Name:       nameTok.Lexeme,
		Params:     params,
		Body:       body,
		Location:   source.Span(start, *body.End),
	}
}

// parseVarDeclTail parses "(= expr)?" given an already consumed type and
// name, for top-level, block-level and struct field declarations.
// Function parameters are built by parseFuncDecl directly.
func (p *Parser) parseVarDeclTail(typeNode *ast.TypeNode, nameTok lexer.Token) *ast.VarDecl {
	start := *typeNode.Start
	var init ast.Expr
	end := nameTok
	if p.match(lexer.Assign) {
		init = p.parseExpression()
		end = p.prev
	}
	p.match(lexer.Endl)
	return &ast.VarDecl{
		Type:     typeNode,
		Name:     nameTok.Lexeme,
		Init:     init,
		Location: source.Span(start, end.End),
	}
}

// parseStructDecl parses "struct" Ident "{" var_decl* "}".
func (p *Parser) parseStructDecl() *ast.StructDecl {
	start := p.current
	p.advance() // consume "struct"
	nameTok := p.expect(lexer.Ident, "expected a struct name")
	p.expect(lexer.LCurly, "expected '{' to start a struct body")

	var fields []*ast.VarDecl
	p.skipEndls()
	for !p.check(lexer.RCurly) && !p.isAtEnd() {
		if !p.check(lexer.Type) {
			p.Reports.AddSyntaxError(p.current, "expected a typed field declaration in struct body")
			p.advance()
			continue
		}
		fieldType := p.parseType()
		fieldName := p.expect(lexer.Ident, "expected a field name")
		fields = append(fields, p.parseVarDeclTail(fieldType, fieldName))
		p.skipEndls()
	}
	end := p.expect(lexer.RCurly, "expected '}' to close struct body")
	return &ast.StructDecl{Name: nameTok.Lexeme, Fields: fields, Location: source.Span(start.Start, end.End)}
}

// parseClassDecl parses the shared "task"/"workflow"/"class" body: any
// mixture of call constructs, parameter_meta/meta blocks, command blocks,
// input/output/runtime subsections, and typed field/method declarations.
func (p *Parser) parseClassDecl(kind string) *ast.ClassDecl {
	start := p.prev // the container keyword, consumed by the caller
	nameTok := p.expect(lexer.Ident, "expected a name after '"+kind+"'")
	p.expect(lexer.LCurly, "expected '{' to start a "+kind+" body")

	var members []ast.Node
	p.skipEndls()
	for !p.check(lexer.RCurly) && !p.isAtEnd() {
		members = append(members, p.parseClassMember())
		p.skipEndls()
	}
	end := p.expect(lexer.RCurly, "expected '}' to close "+kind+" body")
	return &ast.ClassDecl{Kind: kind, Name: nameTok.Lexeme, Members: members, Location: source.Span(start.Start, end.End)}
}

// parseClassMember dispatches on the section keyword explicitly -- never
// on string truthiness -- so "runtime"/"meta" sections are recognized
// unambiguously regardless of which other keywords happen to be typed
// the same way. Anything it doesn't special-case (scatter, if, a bare
// call to a user function) falls through to the general statement
// dispatch, since workflow/task bodies are a superset of statement
// position.
func (p *Parser) parseClassMember() ast.Node {
	switch p.current.Kind {
	case lexer.Call:
		return p.parseCallDecl()
	case lexer.Meta:
		return p.parseMetaDecl()
	case lexer.Command:
		return p.parseCommandDecl()
	case lexer.Input:
		return p.parseInputDecl()
	case lexer.Output:
		return p.parseOutputDecl()
	case lexer.Runtime:
		return p.parseRuntimeDecl()
	case lexer.Type:
		return p.parseTypeIntroducedDecl()
	case lexer.Struct:
		return p.parseStructDecl()
	default:
		return p.parseStmt()
	}
}
