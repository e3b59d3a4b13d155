package parser

import (
	"strings"

	"wdlfront/internal/ast"
	"wdlfront/internal/lexer"
	"wdlfront/internal/source"
)

// parseType consumes a Type token and, for array/map/pair, the following
// "[T]" / "[K,V]" element-type list, then folds any "+"/"?" suffixes (in
// either order) into the composed lexeme.
func (p *Parser) parseType() *ast.TypeNode {
	start := p.current
	typeTok := p.expect(lexer.Type, "expected a type")
	lowered := strings.ToLower(typeTok.Lexeme)

	lexeme := capitalize(typeTok.Lexeme)
	if lexer.ParametricTypeWords[lowered] {
		p.expect(lexer.LSquare, "expected '[' after parametric type")
		inner := []string{p.parseType().Lexeme}
		for p.match(lexer.Comma) {
			inner = append(inner, p.parseType().Lexeme)
		}
		p.expect(lexer.RSquare, "expected ']' to close parametric type")
		lexeme = capitalize(typeTok.Lexeme) + "[" + strings.Join(inner, ",") + "]"
	}

	nonEmpty, nullable := false, false
suffixLoop:
	for {
		switch {
		case p.match(lexer.Plus):
			nonEmpty = true
		case p.match(lexer.Question):
			nullable = true
		default:
			break suffixLoop
		}
	}
	if nonEmpty {
		lexeme += "+"
	}
	if nullable {
		lexeme += "?"
	}

	end := p.prev
	return &ast.TypeNode{Lexeme: lexeme, Nullable: nullable, Location: source.Span(start.Start, end.End)}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
