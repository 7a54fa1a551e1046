package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/irclogview/irclogview/internal/config"
	"github.com/irclogview/irclogview/internal/logfiles"
	"github.com/irclogview/irclogview/internal/logparse"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, log directory and dialect detection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			home, _ := os.UserHomeDir()
			cfgPath := filepath.Join(home, ".config", "irclogview", "config.toml")
			if _, err := os.Stat(cfgPath); err == nil {
				fmt.Printf("  File: %s (OK)\n", cfgPath)
			} else {
				fmt.Printf("  File: %s (not present, using defaults)\n", cfgPath)
			}
			fmt.Printf("  Log dir: %s\n", cfg.LogDir)
			fmt.Printf("  Pattern: %s\n", cfg.Pattern)

			fmt.Println("\n=== Log Directory ===")
			checkDir("Log dir", cfg.LogDir)

			files, err := logfiles.Find(cfg.LogDir, cfg.Pattern)
			if err != nil {
				fmt.Printf("  scan error: %v\n", err)
				return nil
			}
			fmt.Printf("  Dated log files: %d\n", len(files))
			if len(files) == 0 {
				return nil
			}
			fmt.Printf("  Oldest: %s\n", files[0].Title)
			fmt.Printf("  Newest: %s\n", files[len(files)-1].Title)

			upToDate := 0
			for _, f := range files {
				if f.UpToDate(cfg.LogDir) {
					upToDate++
				}
			}
			fmt.Printf("  Converted and up to date: %d of %d\n", upToDate, len(files))

			// Sample the first timestamped line of each file to see which
			// dialects the archive speaks.
			fmt.Println("\n=== Timestamp Dialects ===")
			counts := map[logparse.Dialect]int{}
			for _, f := range files {
				counts[sampleDialect(f.Path)]++
			}
			for _, d := range []logparse.Dialect{
				logparse.DialectClock, logparse.DialectISO8601,
				logparse.DialectDircproxy, logparse.DialectSupybot,
				logparse.DialectSyslog, logparse.DialectEpoch,
				logparse.DialectNone,
			} {
				if counts[d] > 0 {
					fmt.Printf("  %-10s %d files\n", d, counts[d])
				}
			}

			return nil
		},
	}
}

// sampleDialect detects the dialect of the first line that has one,
// giving up after a handful of lines.
func sampleDialect(path string) logparse.Dialect {
	r, err := logparse.OpenLogFile(path)
	if err != nil {
		return logparse.DialectNone
	}
	defer r.Close()

	scanner := bufio.NewScanner(r)
	for i := 0; i < 10 && scanner.Scan(); i++ {
		line := logparse.DecodeLine(scanner.Bytes())
		if d := logparse.Detect(line); d != logparse.DialectNone {
			return d
		}
	}
	return logparse.DialectNone
}

func checkDir(name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s: %s (NOT FOUND)\n", name, path)
	} else if !info.IsDir() {
		fmt.Printf("  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
