package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "irclogview",
		Short:   "irclogview - convert IRC logs to HTML and search them",
		Version: version,
	}

	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(stylesCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
