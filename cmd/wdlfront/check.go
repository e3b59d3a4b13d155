package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wdlfront"
	"wdlfront/colors"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file> [file...]",
		Short: "Parse one or more WDL files concurrently and report pass/fail",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args)
		},
	}
}

func runCheck(opts *options, files []string) error {
	sources := make([]wdlfront.Source, 0, len(files))
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		sources = append(sources, wdlfront.Source{Name: path, Text: string(src)})
	}

	results, err := wdlfront.ParseAll(context.Background(), sources)
	if err != nil {
		return err
	}

	anyFailed := false
	for _, r := range results {
		status := "OK  "
		color := colors.GREEN
		if r.Errored {
			anyFailed = true
			status = "FAIL"
			color = colors.RED
		}
		if opts.color {
			color.Printf("%s %s\n", status, r.Name)
		} else {
			fmt.Printf("%s %s\n", status, r.Name)
		}
		writeDiagnostics(opts, r.Diagnostics)
	}
	if anyFailed {
		return fmt.Errorf("one or more files failed to parse cleanly")
	}
	return nil
}
