package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/irclogview/irclogview/internal/config"
	"github.com/irclogview/irclogview/internal/logparse"
	"github.com/irclogview/irclogview/internal/preview"
)

func previewCmd() *cobra.Command {
	var hit, context, width int
	var query, dialect string
	var dircproxy bool

	cmd := &cobra.Command{
		Use:   "preview <logfile>",
		Short: "Render an ANSI preview of a log file with context around a hit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dialect == "" {
				dialect = cfg.Dialect
			}
			d, err := logparse.DialectByName(dialect)
			if err != nil {
				return err
			}

			out, _, err := preview.RenderFile(args[0], preview.Options{
				HitLine:   hit,
				Context:   context,
				Width:     width,
				Query:     query,
				Dircproxy: dircproxy || cfg.Dircproxy,
				Dialect:   d,
			})
			if err != nil {
				return err
			}

			fmt.Print(out)
			return nil
		},
	}

	cmd.Flags().IntVar(&hit, "hit", -1, "Line to highlight (1-based)")
	cmd.Flags().IntVar(&context, "context", 10, "Lines before/after the hit to show (-1 for the whole file)")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap width (0 for no wrap)")
	cmd.Flags().StringVar(&query, "query", "", "Search query for keyword highlighting")
	cmd.Flags().StringVar(&dialect, "dialect", "", "Force a timestamp dialect instead of per-line detection")
	cmd.Flags().BoolVar(&dircproxy, "dircproxy", false, "Strip dircproxy mode prefixes from message text")

	return cmd
}
