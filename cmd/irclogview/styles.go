package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/irclogview/irclogview/internal/htmlrender"
)

func stylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the available output styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range htmlrender.Styles() {
				marker := " "
				if s.Name() == htmlrender.DefaultStyle {
					marker = "*"
				}
				fmt.Printf("%s %-8s %s\n", marker, s.Name(), s.Description())
			}
			return nil
		},
	}
}
