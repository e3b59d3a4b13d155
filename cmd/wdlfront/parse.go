package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wdlfront"
	"wdlfront/internal/printer"
	"wdlfront/report"
)

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file> [file...]",
		Short: "Parse one or more WDL files and print their AST",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(opts, args)
		},
	}
}

func runParse(opts *options, files []string) error {
	errored := false
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		p := wdlfront.NewParser(wdlfront.NewLexer(string(src)))
		program := p.ParseProgram()

		fmt.Printf("== %s ==\n", path)
		if opts.format == "text" {
			fmt.Printf("decls=%d errored=%t\n", len(program.Decls), p.Errored())
		} else {
			printer.Fprint(os.Stdout, program)
		}
		writeDiagnostics(opts, p.Diagnostics())

		if p.Errored() {
			errored = true
		}
	}
	if errored {
		return fmt.Errorf("parsing reported errors")
	}
	return nil
}

func writeDiagnostics(opts *options, diags []report.Diagnostic) {
	if limit := opts.maxErrorsOrZero(); limit > 0 && len(diags) > limit {
		diags = diags[:limit]
	}
	if len(diags) == 0 {
		return
	}
	if opts.color {
		report.PrettySink(os.Stderr, diags)
		return
	}
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.String())
	}
}
