package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"albumfeed/internal/present"
)

func newPrintCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Fetch both sites once and print the merged list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, cancel := context.WithTimeout(cmd.Context(), ctx.cfg.Timeout.Duration)
			defer cancel()

			rep := ctx.aggregator().FetchAndMerge(runCtx)

			out := cmd.OutOrStdout()
			switch format {
			case "text", "":
				return present.WriteText(out, rep.Reviews)
			case "table":
				return present.WriteTable(out, rep.Reviews, colorEnabled(out))
			default:
				return fmt.Errorf("unknown format %q (want text or table)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or table")
	return cmd
}

func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
