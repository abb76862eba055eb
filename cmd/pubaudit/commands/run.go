package commands

import (
	"github.com/pubaudit/pubaudit/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [workspace]",
		Short: "Fetch dependencies and analyze every package in the workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) == 1 {
				root = args[0]
			}
			packagesDir, _ := cmd.Flags().GetString("packages-dir")
			failLevel, _ := cmd.Flags().GetString("fail-level")
			exclude, _ := cmd.Flags().GetStringArray("exclude")
			color, _ := cmd.Flags().GetString("color")

			return c.app.Audit(cmd.Context(), app.AuditOptions{
				Root:        root,
				PackagesDir: packagesDir,
				Exclude:     exclude,
				FailLevel:   failLevel,
				Color:       color,
			})
		},
	}
	cmd.Flags().StringP("packages-dir", "p", "", "Directory whose children are package candidates (default from config)")
	cmd.Flags().String("fail-level", "", "Lowest analyzer severity treated as failure: info, warning, or error")
	cmd.Flags().StringArray("exclude", nil, "Package directory names to skip (repeatable, merged with config)")
	cmd.Flags().String("color", "auto", "Console coloring: auto, always, or never")
	return cmd
}
