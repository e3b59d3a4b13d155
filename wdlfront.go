// Package wdlfront is the public surface of the WDL front-end: a Lexer,
// a Parser, and a concurrent batch helper over both. No persisted state,
// no environment variables, no filesystem access in this package; callers
// supply source text and get back tokens/an AST plus diagnostics.
package wdlfront

import (
	"context"

	"golang.org/x/sync/errgroup"

	"wdlfront/internal/ast"
	"wdlfront/internal/lexer"
	"wdlfront/internal/parser"
	"wdlfront/report"
)

// Lexer wraps internal/lexer.Lexer as the library's first entry point.
type Lexer struct {
	inner *lexer.Lexer
}

// NewLexer constructs a Lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{inner: lexer.New(src)}
}

// Lex returns the next token, pulling it from the underlying source.
func (l *Lexer) Lex() lexer.Token {
	return l.inner.Lex()
}

// Parser wraps internal/parser.Parser as the library's second entry
// point.
type Parser struct {
	inner *parser.Parser
}

// NewParser constructs a Parser reading tokens from l.
func NewParser(l *Lexer) *Parser {
	return &Parser{inner: parser.New(l.inner)}
}

// ParseProgram parses a complete source unit. It never panics; inspect
// Errored/Diagnostics afterward to decide whether to accept the result.
func (p *Parser) ParseProgram() *ast.Program {
	return p.inner.ParseProgram()
}

// Errored reports whether any error diagnostic was recorded during
// parsing. Structural warnings alone do not count.
func (p *Parser) Errored() bool {
	return p.inner.Errored()
}

// Diagnostics returns every diagnostic recorded so far, in recorded order.
func (p *Parser) Diagnostics() []report.Diagnostic {
	return p.inner.Reports.Diagnostics()
}

// Source pairs a name (for diagnostics/logging) with WDL source text, the
// unit of work for ParseAll.
type Source struct {
	Name string
	Text string
}

// Result is one Source's outcome from ParseAll.
type Result struct {
	Name        string
	Program     *ast.Program
	Errored     bool
	Diagnostics []report.Diagnostic
}

// ParseAll parses every source independently and concurrently: each gets
// its own Lexer and Parser, so none shares mutable state with another.
// It returns one Result per input, in the same order as sources, once
// all have finished. ctx cancellation stops launching new work but lets
// already-running parses (pure, in-memory, and fast) finish.
func ParseAll(ctx context.Context, sources []Source) ([]Result, error) {
	results := make([]Result, len(sources))
	g, ctx := errgroup.WithContext(ctx)

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			p := NewParser(NewLexer(src.Text))
			program := p.ParseProgram()
			results[i] = Result{
				Name:        src.Name,
				Program:     program,
				Errored:     p.Errored(),
				Diagnostics: p.Diagnostics(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
