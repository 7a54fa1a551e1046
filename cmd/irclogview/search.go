package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/irclogview/irclogview/internal/config"
	"github.com/irclogview/irclogview/internal/logparse"
	"github.com/irclogview/irclogview/internal/search"
	"github.com/irclogview/irclogview/internal/tui"
)

const (
	sColorReset   = "\033[0m"
	sColorBoldRed = "\033[1;31m"
	sColorBlue    = "\033[1;34m"
	sColorDim     = "\033[2m"
)

// highlightQuery wraps case-insensitive query matches in bold red. Matching
// walks the original string in rune-count windows; byte offsets into a
// ToLower copy are unsafe because case mapping can change UTF-8 length.
func highlightQuery(text, query string) string {
	n := utf8.RuneCountInString(query)
	if n == 0 {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); {
		if end, ok := foldPrefix(text[i:], query, n); ok {
			b.WriteString(sColorBoldRed)
			b.WriteString(text[i : i+end])
			b.WriteString(sColorReset)
			i += end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

// foldPrefix reports whether s starts with a case-insensitive match of query
// spanning n runes, returning the matched byte length.
func foldPrefix(s, query string, n int) (int, bool) {
	end := 0
	for j := 0; j < n; j++ {
		if end >= len(s) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	if strings.EqualFold(s[:end], query) {
		return end, true
	}
	return 0, false
}

func searchCmd() *cobra.Command {
	var dir, pattern, dialect string
	var limit int
	var dircproxy bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the log archive (interactive TUI on a terminal)",
		Long: `Search every log in the archive for a query. On a terminal this opens an
interactive browser with a preview panel; when piped it prints TSV:
  path, line, date, time, nick, text

Enter in the TUI copies the hit's permalink; ctrl+o opens the raw log
in $EDITOR at the matching line.

Recommended shell function for fzf integration:
  ilv() {
    irclogview search "$*" | fzf \
      --ansi \
      --delimiter='\t' --with-nth=3.. \
      --preview 'irclogview preview {1} --hit {2} --context 5 --query {q}' \
      --preview-window=right:60%:wrap
  }`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.LogDir
			}
			if pattern == "" {
				pattern = cfg.Pattern
			}
			if dialect == "" {
				dialect = cfg.Dialect
			}
			d, err := logparse.DialectByName(dialect)
			if err != nil {
				return err
			}

			opts := search.Options{
				Limit:     limit,
				Dircproxy: dircproxy || cfg.Dircproxy,
				Dialect:   d,
			}

			// Interactive TUI when stdout is a terminal; TSV output for pipes
			if term.IsTerminal(int(os.Stdout.Fd())) {
				return tui.Run(dir, pattern, args[0], opts)
			}

			opts.Query = args[0]
			results, stats, err := search.Search(dir, pattern, opts)
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Fprintln(os.Stderr, "No results found.")
				return nil
			}

			for _, r := range results {
				text := r.Event.Text
				if r.Event.Kind == logparse.NickChange {
					text = r.Event.OldNick + " is now known as " + r.Event.NewNick
				}
				text = strings.ReplaceAll(text, "\t", " ")
				nick := r.Event.Nick
				if nick == "" {
					nick = "-"
				}
				// first two fields (path, line) stay plain for fzf {1} {2}
				fmt.Printf("%s\t%d\t%s%s%s\t%s\t%s%s%s\t%s\n",
					r.File.Path,
					r.LineNumber,
					sColorDim, r.File.Date.Format("2006-01-02"), sColorReset,
					r.Event.Time,
					sColorBlue, nick, sColorReset,
					highlightQuery(text, args[0]),
				)
			}
			fmt.Fprintln(os.Stderr, stats.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Log directory (default from config)")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Log file glob (default \"*.log\")")
	cmd.Flags().StringVar(&dialect, "dialect", "", "Force a timestamp dialect instead of per-line detection")
	cmd.Flags().IntVar(&limit, "limit", 100, "Max results (-1 for unlimited)")
	cmd.Flags().BoolVar(&dircproxy, "dircproxy", false, "Strip dircproxy mode prefixes from message text")

	return cmd
}
