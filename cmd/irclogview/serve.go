package main

import (
	"github.com/spf13/cobra"

	"github.com/irclogview/irclogview/internal/config"
	"github.com/irclogview/irclogview/internal/logparse"
	"github.com/irclogview/irclogview/internal/server"
)

func serveCmd() *cobra.Command {
	var addr, dir, chanDir, pattern, dialect string
	var dircproxy bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the converted logs over HTTP, with search",
		Long: `Serve a converted log archive: the generated pages, raw logs decoded to
UTF-8, the stylesheet and a /search page backed by a linear scan. With
--chan-dir the root lists one archive per channel subdirectory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr
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

			return server.New(server.Config{
				Addr:      addr,
				LogDir:    dir,
				ChanDir:   chanDir,
				Pattern:   pattern,
				Dircproxy: dircproxy || cfg.Dircproxy,
				Dialect:   d,
			}).Start()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Log directory (default from config)")
	cmd.Flags().StringVar(&chanDir, "chan-dir", "", "Directory of per-channel log directories")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Log file glob (default \"*.log\")")
	cmd.Flags().StringVar(&dialect, "dialect", "", "Force a timestamp dialect instead of per-line detection")
	cmd.Flags().BoolVar(&dircproxy, "dircproxy", false, "Strip dircproxy mode prefixes from message text")

	return cmd
}
