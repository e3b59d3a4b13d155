package parser

import (
	"wdlfront/internal/ast"
	"wdlfront/internal/lexer"
	"wdlfront/internal/source"
)

// parseStmt dispatches the imperative statement forms; everything else
// falls through to a bare expression statement.
func (p *Parser) parseStmt() ast.Node {
	switch p.current.Kind {
	case lexer.If:
		return p.parseIfStmt()
	case lexer.Do:
		return p.parseDoWhileStmt()
	case lexer.While:
		return p.parseWhileStmt()
	case lexer.Return:
		return p.parseReturnStmt()
	case lexer.Scatter:
		return p.parseScatterStmt()
	case lexer.Command:
		return p.parseCommandDecl()
	case lexer.Call:
		return p.parseCallDecl()
	case lexer.LCurly:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

// parseBlock parses "{" decl* "}", reusing the general decl dispatch so
// function bodies, scatter bodies, and input/output subsections all
// share one body-parsing path.
func (p *Parser) parseBlock() *ast.Block {
	start := p.current
	p.expect(lexer.LCurly, "expected '{' to start a block")

	var stmts []ast.Node
	p.skipEndls()
	for !p.check(lexer.RCurly) && !p.isAtEnd() {
		stmts = append(stmts, p.parseDecl())
		p.skipEndls()
	}
	end := p.expect(lexer.RCurly, "expected '}' to close block")
	return &ast.Block{Statements: stmts, Location: source.Span(start.Start, end.End)}
}

// parseIfStmt parses the imperative, parenthesized form. "else" recurses
// into parseStmt, which naturally chains "else if" without a dedicated
// else-if field.
func (p *Parser) parseIfStmt() *ast.IfStmt {
	start := p.current
	p.advance() // "if"
	p.expect(lexer.LParen, "expected '(' after 'if'")
	cond := p.parseExpression()
	p.expect(lexer.RParen, "expected ')' after if condition")
	then := p.parseStmt()

	var elseNode ast.Node
	end := *then.Loc().End
	if p.match(lexer.Else) {
		elseNode = p.parseStmt()
		end = *elseNode.Loc().End
	}
	return &ast.IfStmt{Condition: cond, Then: then, Else: elseNode, Location: source.Span(start.Start, end)}
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	start := p.current
	p.advance() // "while"
	p.expect(lexer.LParen, "expected '(' after 'while'")
	cond := p.parseExpression()
	p.expect(lexer.RParen, "expected ')' after while condition")
	body := p.parseStmt()
	return &ast.WhileStmt{Condition: cond, Body: body, Location: source.Span(start.Start, *body.Loc().End)}
}

func (p *Parser) parseDoWhileStmt() *ast.DoWhileStmt {
	start := p.current
	p.advance() // "do"
	body := p.parseStmt()
	p.expect(lexer.While, "expected 'while' after do-block")
	p.expect(lexer.LParen, "expected '(' after 'while'")
	cond := p.parseExpression()
	end := p.expect(lexer.RParen, "expected ')' after do-while condition")
	p.match(lexer.Endl)
	return &ast.DoWhileStmt{Condition: cond, Body: body, Location: source.Span(start.Start, end.End)}
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	start := p.current
	p.advance() // "return"

	var value ast.Expr
	end := p.prev
	if !p.check(lexer.Endl) && !p.check(lexer.RCurly) && !p.isAtEnd() {
		value = p.parseExpression()
		end = p.prev
	}
	p.match(lexer.Endl)
	return &ast.ReturnStmt{Value: value, Location: source.Span(start.Start, end.End)}
}

func (p *Parser) parseScatterStmt() *ast.ScatterStmt {
	start := p.current
	p.advance() // "scatter"
	p.expect(lexer.LParen, "expected '(' after 'scatter'")
	loopVar := p.expect(lexer.Ident, "expected a loop variable name")
	p.expect(lexer.In, "expected 'in' in scatter header")
	collection := p.parseExpression()
	p.expect(lexer.RParen, "expected ')' to close scatter header")
	body := p.parseBlock()
	return &ast.ScatterStmt{
		LoopVar:    loopVar.Lexeme,
		Collection: collection,
		Body:       body,
		Location:   source.Span(start.Start, *body.End),
	}
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	start := p.current
	expr := p.parseExpression()
	end := p.prev
	p.match(lexer.Endl)
	return &ast.ExprStmt{Expression: expr, Location: source.Span(start.Start, end.End)}
}
