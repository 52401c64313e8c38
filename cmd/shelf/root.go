package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "shelf",
		Short:         "Organize files by type, size, or date",
		Long:          "shelf classifies the files in a directory and moves them into\ncategory folders, with a dry-run preview before anything changes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newOrganizeCommand(ctx))
	rootCmd.AddCommand(newUndoCommand())
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newCleanCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
