package parser

import (
	"wdlfront/internal/ast"
	"wdlfront/internal/lexer"
	"wdlfront/internal/source"
)

// parseCallDecl parses:
//
//	call Ident ("." Ident)? ("as" Ident)? ("{" "input" ":" arg_list? "}")?
//
// The callee is stored as a MemberAccess whose Object is the first
// identifier and whose Member is the optional second identifier.
func (p *Parser) parseCallDecl() *ast.CallDecl {
	start := p.current
	p.advance() // "call"

	objTok := p.calleeNameToken("expected a task name after 'call'")
	obj := &ast.Ident{Name: objTok.Lexeme, Location: source.Span(objTok.Start, objTok.End)}
	calleeEnd := objTok

	callee := &ast.MemberAccess{Object: obj, Location: source.Span(objTok.Start, objTok.End)}
	if p.match(lexer.Dot) {
		subTok := p.calleeNameToken("expected a sub-task name after '.'")
		callee.Member = &ast.Ident{Name: subTok.Lexeme, Location: source.Span(subTok.Start, subTok.End)}
		calleeEnd = subTok
	}
	callee.Location = source.Span(objTok.Start, calleeEnd.End)

	alias := ""
	if p.match(lexer.As) {
		aliasTok := p.expect(lexer.Ident, "expected an alias after 'as'")
		alias = aliasTok.Lexeme
	}

	end := p.prev
	var args []ast.CallArg
	if p.match(lexer.LCurly) {
		p.skipEndls()
		p.expect(lexer.Input, "expected 'input' inside a call block")
		p.expect(lexer.Colon, "expected ':' after 'input'")
		p.skipEndls()
		if !p.check(lexer.RCurly) {
			for {
				if len(args) >= 255 {
					p.Reports.AddStructuralError(p.current, "too many call arguments (max 255)")
				}
				argName := p.expect(lexer.Ident, "expected an argument name")
				p.expect(lexer.Assign, "expected '=' after argument name")
				value := p.parseExpression()
				args = append(args, ast.CallArg{Name: argName.Lexeme, Value: value})
				p.skipEndls()
				if !p.match(lexer.Comma) {
					break
				}
				p.skipEndls()
			}
		}
		p.skipEndls()
		end = p.expect(lexer.RCurly, "expected '}' to close call block")
	}

	return &ast.CallDecl{Callee: callee, Alias: alias, Args: args, Location: source.Span(start.Start, end.End)}
}

// calleeNameToken accepts either a bare identifier or a Type-kind keyword
// as a call callee/sub-task name: task names like "map", "pair", "array"
// collide with type words, the same situation runtimeKeyToken
// (sections.go) handles for runtime keys.
func (p *Parser) calleeNameToken(message string) lexer.Token {
	if p.check(lexer.Ident) || p.check(lexer.Type) {
		return p.advance()
	}
	return p.expect(lexer.Ident, message)
}
