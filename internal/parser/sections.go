package parser

import (
	"strings"

	"wdlfront/internal/ast"
	"wdlfront/internal/lexer"
	"wdlfront/internal/source"
)

func (p *Parser) parseInputDecl() *ast.InputDecl {
	start := p.current
	p.advance() // "input"
	body := p.parseBlock()
	return &ast.InputDecl{Body: body, Location: source.Span(start.Start, *body.End)}
}

func (p *Parser) parseOutputDecl() *ast.OutputDecl {
	start := p.current
	p.advance() // "output"
	body := p.parseBlock()
	return &ast.OutputDecl{Body: body, Location: source.Span(start.Start, *body.End)}
}

// parseRuntimeDecl parses the flat "runtime { name: expr, ... }"
// subsection. Unlike input/output this is not a generic block: each
// member is a bare name/expression pair, never a parsed statement.
func (p *Parser) parseRuntimeDecl() *ast.RuntimeDecl {
	start := p.current
	p.advance() // "runtime"
	p.expect(lexer.LCurly, "expected '{' to start a runtime section")

	var members []ast.RuntimeMember
	p.skipEndls()
	for !p.check(lexer.RCurly) && !p.isAtEnd() {
		nameTok := p.runtimeKeyToken()
		p.expect(lexer.Colon, "expected ':' after runtime key")
		value := p.parseExpression()
		members = append(members, ast.RuntimeMember{Name: nameTok.Lexeme, Value: value})
		if !p.match(lexer.Comma) {
			p.skipEndls()
		}
		p.skipEndls()
	}
	end := p.expect(lexer.RCurly, "expected '}' to close runtime section")
	return &ast.RuntimeDecl{Members: members, Location: source.Span(start.Start, end.End)}
}

// runtimeKeyToken accepts either a bare identifier or a Type-kind
// keyword as a runtime key name: WDL runtime sections commonly use
// reserved-looking words ("memory", "disks", "docker") alongside type
// words that happen to coincide with other keywords.
func (p *Parser) runtimeKeyToken() lexer.Token {
	if p.check(lexer.Ident) || p.check(lexer.Type) {
		return p.advance()
	}
	return p.expect(lexer.Ident, "expected a runtime key")
}

// parseMetaDecl parses both "meta { ... }" and "parameter_meta { ... }";
// Section records which keyword introduced it so the two share one AST
// shape.
func (p *Parser) parseMetaDecl() *ast.MetaDecl {
	start := p.current
	section := strings.ToLower(p.current.Lexeme)
	p.advance()
	p.expect(lexer.LCurly, "expected '{' to start a "+section+" section")
	members := p.parseMetaMembers()
	end := p.expect(lexer.RCurly, "expected '}' to close "+section+" section")
	return &ast.MetaDecl{Section: section, Members: members, Location: source.Span(start.Start, end.End)}
}

func (p *Parser) parseMetaMembers() []ast.MetaMember {
	var members []ast.MetaMember
	p.skipEndls()
	for !p.check(lexer.RCurly) && !p.isAtEnd() {
		nameTok := p.expect(lexer.Ident, "expected a meta key")
		p.expect(lexer.Colon, "expected ':' after meta key")

		member := ast.MetaMember{Name: nameTok.Lexeme}
		if p.check(lexer.LCurly) {
			p.advance()
			member.Nested = p.parseMetaMembers()
			p.expect(lexer.RCurly, "expected '}' to close nested meta section")
		} else {
			member.Value = p.parseExpression()
		}
		members = append(members, member)

		if !p.match(lexer.Comma) {
			p.skipEndls()
		}
		p.skipEndls()
	}
	return members
}
