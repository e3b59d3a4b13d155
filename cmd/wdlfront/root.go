package main

import (
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every subcommand.
type options struct {
	color     bool
	format    string // "tree" or "text", consulted by the parse subcommand
	maxErrors string // parsed lazily with cast, so an empty/garbage value degrades to "no limit" rather than a flag-parse failure
}

func (o *options) maxErrorsOrZero() int {
	n := cast.ToInt(o.maxErrors)
	if n < 0 {
		return 0
	}
	return n
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "wdlfront",
		Short:         "Lex and parse WDL source into a typed AST",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&opts.color, "color", false, "colorize diagnostic output")
	root.PersistentFlags().StringVar(&opts.format, "format", "tree", "AST output format for 'parse': tree or text")
	root.PersistentFlags().StringVar(&opts.maxErrors, "max-errors", "0", "stop printing diagnostics after this many (0 = no limit)")

	root.AddCommand(newParseCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	return root
}
