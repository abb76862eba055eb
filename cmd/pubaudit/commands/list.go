package commands

import (
	"github.com/pubaudit/pubaudit/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [workspace]",
		Short: "List the workspace's packages without running any tool",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) == 1 {
				root = args[0]
			}
			packagesDir, _ := cmd.Flags().GetString("packages-dir")
			exclude, _ := cmd.Flags().GetStringArray("exclude")

			return c.app.List(cmd.Context(), app.ListOptions{
				Root:        root,
				PackagesDir: packagesDir,
				Exclude:     exclude,
			})
		},
	}
	cmd.Flags().StringP("packages-dir", "p", "", "Directory whose children are package candidates (default from config)")
	cmd.Flags().StringArray("exclude", nil, "Package directory names to skip (repeatable, merged with config)")
	return cmd
}
