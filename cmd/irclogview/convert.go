package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/irclogview/irclogview/internal/config"
	"github.com/irclogview/irclogview/internal/htmlrender"
	"github.com/irclogview/irclogview/internal/logfiles"
	"github.com/irclogview/irclogview/internal/logparse"
)

func convertCmd() *cobra.Command {
	var style, title, output, dialect string
	var prevTitle, prevURL, indexTitle, indexURL, nextTitle, nextURL string
	var searchbox, dircproxy bool

	cmd := &cobra.Command{
		Use:   "convert <logfile>...",
		Short: "Convert IRC log files to HTML",
		Long: `Convert one or more IRC log files to HTML pages. Each page is written
next to its log as <logfile>.html unless -o names another location, and
irclog.css is shipped alongside it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if style == "" {
				style = cfg.Style
			}
			if dialect == "" {
				dialect = cfg.Dialect
			}
			d, err := logparse.DialectByName(dialect)
			if err != nil {
				return err
			}
			// Validate the style up front so a bad name fails before any
			// file is touched.
			if _, err := htmlrender.StyleByName(style); err != nil {
				return err
			}
			if output != "" && len(args) > 1 {
				return fmt.Errorf("-o with multiple inputs must be a directory")
			}

			parser := &logparse.Parser{Dialect: d, Dircproxy: dircproxy || cfg.Dircproxy}
			for _, in := range args {
				outPath := outputPath(in, output)
				pageTitle := title
				if pageTitle == "" {
					pageTitle = "IRC log of " + filepath.Base(in)
				}
				opts := htmlrender.Options{
					Style:     style,
					Title:     pageTitle,
					FileName:  filepath.Base(outPath),
					Prev:      htmlrender.Link{Title: prevTitle, URL: prevURL},
					Index:     htmlrender.Link{Title: indexTitle, URL: indexURL},
					Next:      htmlrender.Link{Title: nextTitle, URL: nextURL},
					Searchbox: searchbox,
				}
				if err := logfiles.ConvertFile(in, outPath, parser, opts); err != nil {
					return err
				}
				if err := logfiles.EnsureCSS(filepath.Dir(outPath), htmlrender.CSS); err != nil {
					return err
				}
				fmt.Printf("%s -> %s\n", in, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", "", "Output style (see 'irclogview styles')")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Page title")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, or directory for multiple inputs")
	cmd.Flags().StringVar(&dialect, "dialect", "", "Force a timestamp dialect instead of per-line detection")
	cmd.Flags().StringVar(&prevTitle, "prev-title", "", "Title of the previous-page link")
	cmd.Flags().StringVar(&prevURL, "prev-url", "", "URL of the previous-page link")
	cmd.Flags().StringVar(&indexTitle, "index-title", "", "Title of the index link")
	cmd.Flags().StringVar(&indexURL, "index-url", "", "URL of the index link")
	cmd.Flags().StringVar(&nextTitle, "next-title", "", "Title of the next-page link")
	cmd.Flags().StringVar(&nextURL, "next-url", "", "URL of the next-page link")
	cmd.Flags().BoolVar(&searchbox, "searchbox", false, "Include a search box on the page")
	cmd.Flags().BoolVar(&dircproxy, "dircproxy", false, "Strip dircproxy mode prefixes from message text")

	return cmd
}

// outputPath resolves where the HTML for one input goes. -o may be empty
// (next to the input), a directory, or an explicit file name.
func outputPath(in, output string) string {
	if output == "" {
		return logfiles.OutputName(in)
	}
	if strings.HasSuffix(output, string(filepath.Separator)) || isDir(output) {
		return filepath.Join(output, filepath.Base(logfiles.OutputName(in)))
	}
	return output
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
