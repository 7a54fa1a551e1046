package main

import (
	"github.com/spf13/cobra"

	"github.com/irclogview/irclogview/internal/config"
	"github.com/irclogview/irclogview/internal/htmlrender"
	"github.com/irclogview/irclogview/internal/logfiles"
	"github.com/irclogview/irclogview/internal/logparse"
)

func batchCmd() *cobra.Command {
	var pattern, style, prefix, indexTitle, outputDir, dialect string
	var force, searchbox, dircproxy bool

	cmd := &cobra.Command{
		Use:   "batch [logdir]",
		Short: "Convert a directory of dated IRC logs, with index and navigation",
		Long: `Convert every dated log in a directory to HTML, skipping pages that are
already up to date. Pages are chained with prev/next links, an index.html
lists all days, latest.log.html points at the newest page and irclog.css
is placed alongside.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dir := cfg.LogDir
			if len(args) == 1 {
				dir = args[0]
			}
			if pattern == "" {
				pattern = cfg.Pattern
			}
			if style == "" {
				style = cfg.Style
			}
			if !cmd.Flags().Changed("prefix") && cfg.TitlePrefix != "" {
				prefix = cfg.TitlePrefix
			}
			if indexTitle == "" {
				indexTitle = cfg.IndexTitle
			}
			if dialect == "" {
				dialect = cfg.Dialect
			}
			d, err := logparse.DialectByName(dialect)
			if err != nil {
				return err
			}
			if _, err := htmlrender.StyleByName(style); err != nil {
				return err
			}

			return logfiles.Process(dir, logfiles.BatchOptions{
				Pattern:     pattern,
				Style:       style,
				TitlePrefix: prefix,
				IndexTitle:  indexTitle,
				Force:       force,
				Searchbox:   searchbox || cfg.Searchbox,
				Dircproxy:   dircproxy || cfg.Dircproxy,
				Dialect:     d,
				OutputDir:   outputDir,
			})
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "", "Log file glob (default \"*.log\")")
	cmd.Flags().StringVarP(&style, "style", "s", "", "Output style (see 'irclogview styles')")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "IRC logs for ", "Prefix for page titles")
	cmd.Flags().StringVar(&indexTitle, "index-title", "", "Title of the index page")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Write pages here instead of the log directory")
	cmd.Flags().StringVar(&dialect, "dialect", "", "Force a timestamp dialect instead of per-line detection")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Regenerate pages even when up to date")
	cmd.Flags().BoolVar(&searchbox, "searchbox", false, "Include a search box on every page")
	cmd.Flags().BoolVar(&dircproxy, "dircproxy", false, "Strip dircproxy mode prefixes from message text")

	return cmd
}
