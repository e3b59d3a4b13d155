// Package report implements diagnostic collection and formatting for the
// lexer and parser. Diagnostics are data, never exceptions: nothing in
// this package panics or calls os.Exit; a Collector only ever grows.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"wdlfront/colors"
	"wdlfront/internal/lexer"
)

// Severity classifies a Diagnostic. Structural diagnostics (cap
// overruns) are reported but never fatal.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Phase records which stage of the pipeline raised a diagnostic.
type Phase string

const (
	LexPhase   Phase = "lexing"
	ParsePhase Phase = "parsing"
)

// Diagnostic is one reported problem, anchored to the token that
// triggered it.
type Diagnostic struct {
	Severity Severity
	Phase    Phase
	Line     int
	Lexeme   string
	AtEnd    bool
	Message  string
}

// String renders the canonical line format: "[ERROR] [line N] at
// '<lexeme>': <message>", or "... at end: ..." when the token is Eof.
func (d Diagnostic) String() string {
	var where string
	if d.AtEnd {
		where = "at end"
	} else {
		where = fmt.Sprintf("at '%s'", d.Lexeme)
	}
	return fmt.Sprintf("[%s] [line %d] %s: %s", d.Severity, d.Line, where, d.Message)
}

// Collector accumulates diagnostics for a single parse. Zero value is
// usable; prefer NewCollector for a stamped SessionID so diagnostics from
// concurrent parses (see wdlfront.ParseAll) can be correlated.
type Collector struct {
	SessionID   uuid.UUID
	diagnostics []Diagnostic
}

// NewCollector returns an empty Collector with a fresh SessionID.
func NewCollector() *Collector {
	return &Collector{SessionID: uuid.New()}
}

func (c *Collector) add(severity Severity, phase Phase, tok lexer.Token, message string) {
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: severity,
		Phase:    phase,
		Line:     tok.Start.Line,
		Lexeme:   tok.Lexeme,
		AtEnd:    tok.Kind == lexer.Eof,
		Message:  message,
	})
}

// AddLexError records a lexical error (unknown character, unterminated
// string/command, malformed number).
func (c *Collector) AddLexError(tok lexer.Token, message string) {
	c.add(SeverityError, LexPhase, tok, message)
}

// AddSyntaxError records a parser expectation mismatch.
func (c *Collector) AddSyntaxError(tok lexer.Token, message string) {
	c.add(SeverityError, ParsePhase, tok, message)
}

// AddStructuralError records a cap overrun (too many params/args/elements
// -- hard cap 255). Reported but non-fatal, hence Warning severity.
func (c *Collector) AddStructuralError(tok lexer.Token, message string) {
	c.add(SeverityWarning, ParsePhase, tok, message)
}

// HasErrors reports whether any Severity == Error diagnostic was
// recorded. Structural warnings alone do not count.
func (c *Collector) HasErrors() bool {
	for _, d := range c.diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Diagnostics returns the diagnostics recorded so far, in report order.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diagnostics
}

// WriteTo writes every diagnostic, one per line, in the canonical format.
// This is the default sink: a caller-provided io.Writer, per spec, with
// no assumption about stderr.
func (c *Collector) WriteTo(w io.Writer) error {
	for _, d := range c.diagnostics {
		if _, err := io.WriteString(w, d.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// PrettySink renders diagnostics in the order given, each prefixed with
// its severity in an ANSI color (red for errors, yellow for warnings),
// for interactive CLI use. It never changes the underlying diagnostics,
// only their presentation.
func PrettySink(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		color := colors.RED
		if d.Severity == SeverityWarning {
			color = colors.YELLOW
		}
		fmt.Fprintln(w, color.Sprint(strings.ToUpper(string(d.Severity)))+" "+d.String())
	}
}
