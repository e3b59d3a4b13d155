// Package parser implements a recursive-descent parser over the WDL
// grammar, holding one token of lookahead plus a clone-based speculative
// peek, per the lexer's cloning contract.
package parser

import (
	"strings"

	"wdlfront/internal/ast"
	"wdlfront/internal/lexer"
	"wdlfront/internal/source"
	"wdlfront/report"
)

// Parser translates a token stream pulled from a *lexer.Lexer into a
// Program AST. Not safe for concurrent use; construct one Parser per
// source.
type Parser struct {
	lex     *lexer.Lexer
	current lexer.Token
	prev    lexer.Token

	Reports *report.Collector
	errored bool
}

// New creates a Parser over l and primes current with the first token.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{lex: l, Reports: report.NewCollector()}
	p.current = p.pull()
	return p
}

// Errored reports whether any error diagnostic has been recorded so far.
// Structural warnings (cap overruns) alone do not count.
func (p *Parser) Errored() bool {
	return p.errored || p.Reports.HasErrors()
}

// pull fetches the next well-formed token from the lexer, reporting and
// skipping any Error tokens along the way.
func (p *Parser) pull() lexer.Token {
	for {
		tok := p.lex.Lex()
		if tok.Kind == lexer.Error {
			p.errored = true
			p.Reports.AddLexError(tok, tok.Lexeme)
			continue
		}
		return tok
	}
}

func (p *Parser) isAtEnd() bool {
	return p.current.Kind == lexer.Eof
}

// advance shifts current into prev and pulls the next token, returning
// the token that was current before the shift.
func (p *Parser) advance() lexer.Token {
	p.prev = p.current
	if !p.isAtEnd() {
		p.current = p.pull()
	}
	return p.prev
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	return p.current.Kind == kind
}

// match advances and returns true if current is kind, otherwise leaves
// the parser untouched.
func (p *Parser) match(kind lexer.TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes current if it matches kind; otherwise it reports a
// syntax error and returns current WITHOUT consuming it, per the
// diagnose-and-continue contract.
func (p *Parser) expect(kind lexer.TokenKind, message string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.errored = true
	p.Reports.AddSyntaxError(p.current, message)
	return p.current
}

// peek clones the underlying lexer and lexes once from the clone,
// reporting the kind of the token that would follow current without
// consuming anything from the live lexer.
func (p *Parser) peek(kind lexer.TokenKind) bool {
	clone := p.lex.Clone()
	return nextNonError(clone).Kind == kind
}

// skipEndls consumes zero or more Endl tokens, used where the grammar
// treats them as insignificant separators inside blocks/sections.
func (p *Parser) skipEndls() {
	for p.match(lexer.Endl) {
	}
}

// ParseProgram is the parser's single entry point: "version? import*
// decl*". It never panics; errors accumulate in p.Reports and are
// queryable via Errored.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.current.Start
	prog := &ast.Program{}

	p.skipEndls()
	if p.check(lexer.Ident) && strings.EqualFold(p.current.Lexeme, "version") {
		prog.Version = p.parseVersionDecl()
	}

	p.skipEndls()
	for p.check(lexer.Import) {
		prog.Imports = append(prog.Imports, p.parseImportDecl())
		p.skipEndls()
	}

	for !p.isAtEnd() {
		p.skipEndls()
		if p.isAtEnd() {
			break
		}
		node := p.parseDecl()
		if node != nil {
			prog.Decls = append(prog.Decls, node)
		}
		p.skipEndls()
	}

	end := p.prev
	if len(prog.Decls) == 0 && len(prog.Imports) == 0 && prog.Version == nil {
		end = p.current
	}
	prog.Location = source.Span(start, end.End)
	return prog
}

func (p *Parser) parseVersionDecl() *ast.VersionDecl {
	start := p.current
	p.advance() // consume the "version" identifier
	lit := p.expect(lexer.NumberLiteral, "expected a version number after 'version'")
	p.match(lexer.Endl)
	return &ast.VersionDecl{Literal: lit, Location: source.Span(start.Start, lit.End)}
}

func (p *Parser) parseImportDecl() *ast.ImportDecl {
	start := p.current
	p.advance() // consume "import"
	pathTok := p.expect(lexer.StringLiteral, "expected a string literal import path")
	path := &ast.Literal{Token: pathTok, Location: source.Span(pathTok.Start, pathTok.End)}

	alias := ""
	if p.match(lexer.As) {
		aliasTok := p.expect(lexer.Ident, "expected an identifier after 'as'")
		alias = aliasTok.Lexeme
	}
	end := p.prev
	p.match(lexer.Endl)
	return &ast.ImportDecl{Path: path, Alias: alias, Location: source.Span(start.Start, end.End)}
}

// parseDecl implements "decl := func_decl | class_decl | struct_decl |
// var_decl | stmt", dispatching on the current token. Reused both at
// program scope and inside blocks (function, scatter and input/output
// bodies); class/task/workflow bodies dispatch through parseClassMember.
func (p *Parser) parseDecl() ast.Node {
	switch {
	case p.check(lexer.Struct):
		return p.parseStructDecl()
	case p.check(lexer.Type):
		return p.parseTypeIntroducedDecl()
	default:
		return p.parseStmt()
	}
}

var containerKeywords = map[string]bool{"task": true, "workflow": true, "class": true}

// parseTypeIntroducedDecl disambiguates func_decl, class_decl and
// var_decl, all of which start with a Type-kind token. A peek at the
// token beyond the name tells function ('(') from everything else.
func (p *Parser) parseTypeIntroducedDecl() ast.Node {
	lowered := strings.ToLower(p.current.Lexeme)
	if containerKeywords[lowered] {
		p.advance()
		return p.parseClassDecl(lowered)
	}

	typeNode := p.parseType()
	// The grammar needs one token of lookahead past the upcoming
	// identifier to tell a function declaration from a variable
	// declaration; resolve it with the clone-based peek rather than
	// consuming the identifier speculatively.
	isFunc := p.peekBeyondIdent(lexer.LParen)
	nameTok := p.expect(lexer.Ident, "expected an identifier after type")
	if isFunc {
		return p.parseFuncDecl(typeNode, nameTok)
	}
	return p.parseVarDeclTail(typeNode, nameTok)
}

// peekBeyondIdent reports whether the token that follows the upcoming
// identifier (p.current, the not-yet-consumed name) has the given kind.
// p.current itself has not been consumed, so the live lexer is already
// positioned one past it -- a single lex from a clone, same as peek,
// yields the token beyond the name.
func (p *Parser) peekBeyondIdent(kind lexer.TokenKind) bool {
	return p.peek(kind)
}

func nextNonError(l *lexer.Lexer) lexer.Token {
	for {
		tok := l.Lex()
		if tok.Kind != lexer.Error {
			return tok
		}
	}
}
