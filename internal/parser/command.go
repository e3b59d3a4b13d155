package parser

import (
	"regexp"

	"github.com/samber/lo"

	"wdlfront/internal/ast"
	"wdlfront/internal/lexer"
	"wdlfront/internal/source"
)

// interpolationPattern matches "~{ident}" placeholders inside a captured
// command body.
var interpolationPattern = regexp.MustCompile(`~\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// parseCommandDecl consumes the already-captured Command token (the
// lexer delivers the whole "<<< ... >>>" body as one token, see
// internal/lexer's command-block rule) and extracts its "~{ident}"
// interpolations in order, without deduplicating.
func (p *Parser) parseCommandDecl() *ast.CommandDecl {
	tok := p.expect(lexer.Command, "expected a command block")
	matches := interpolationPattern.FindAllStringSubmatch(tok.Lexeme, -1)
	interpolations := lo.Map(matches, func(m []string, _ int) *ast.Ident {
		return &ast.Ident{Name: m[1], Location: source.Span(tok.Start, tok.End)}
	})
	return &ast.CommandDecl{
		Body:           tok.Lexeme,
		Interpolations: interpolations,
		Location:       source.Span(tok.Start, tok.End),
	}
}
