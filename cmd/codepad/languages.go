package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newLanguagesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List highlighting languages and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := root.registry()
			names := reg.Languages()

			width := 0
			for _, name := range names {
				width = max(width, lipgloss.Width(name))
			}
			col := lipgloss.NewStyle().Width(width + 2)

			out := cmd.OutOrStdout()
			for _, name := range names {
				aliases := strings.Join(reg.Aliases(name), ", ")
				if _, err := fmt.Fprintln(out, strings.TrimRight(col.Render(name)+aliases, " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
