package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wdlfront/internal/lexer"
)

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Severity: SeverityError, Phase: ParsePhase, Line: 3, Lexeme: "foo", Message: "unexpected token"}
	assert.Equal(t, "[ERROR] [line 3] at 'foo': unexpected token", d.String())
}

func TestDiagnostic_StringAtEnd(t *testing.T) {
	d := Diagnostic{Severity: SeverityError, Phase: ParsePhase, Line: 5, AtEnd: true, Message: "unexpected EOF"}
	assert.Equal(t, "[ERROR] [line 5] at end: unexpected EOF", d.String())
}

func TestCollector_HasErrors_IgnoresWarnings(t *testing.T) {
	c := NewCollector()
	c.AddStructuralError(lexer.Token{Kind: lexer.Comma, Lexeme: ","}, "too many elements")
	require.False(t, c.HasErrors())

	c.AddSyntaxError(lexer.Token{Kind: lexer.Ident, Lexeme: "x"}, "unexpected token")
	assert.True(t, c.HasErrors())
}

func TestCollector_AddStructuralError_IsWarning(t *testing.T) {
	c := NewCollector()
	c.AddStructuralError(lexer.Token{Kind: lexer.Comma, Lexeme: ","}, "too many arguments")
	diags := c.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, SeverityWarning, diags[0].Severity)
}

func TestCollector_WriteTo(t *testing.T) {
	c := NewCollector()
	c.AddSyntaxError(lexer.Token{Kind: lexer.Ident, Lexeme: "x"}, "bad token")
	var sb strings.Builder
	require.NoError(t, c.WriteTo(&sb))
	assert.Contains(t, sb.String(), "ERROR")
	assert.Contains(t, sb.String(), "bad token")
}

func TestCollector_SessionIDIsStamped(t *testing.T) {
	a := NewCollector()
	b := NewCollector()
	assert.NotEqual(t, a.SessionID, b.SessionID)
}
