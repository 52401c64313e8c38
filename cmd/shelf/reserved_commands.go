package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// The undo, history, and clean subcommands are reserved: running them today
// only reports that the feature has not shipped. Undo and history need a
// sidecar operation log, which the organizer does not keep yet.

func newUndoCommand() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "undo [directory]",
		Short: "Undo the last organization run (not implemented)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = dryRun
			fmt.Fprintln(cmd.OutOrStdout(), "undo is not implemented yet; it requires the operation log planned for a future release")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would be undone")
	return cmd
}

func newHistoryCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [directory]",
		Short: "Show past organization runs (not implemented)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = limit
			fmt.Fprintln(cmd.OutOrStdout(), "history is not implemented yet; it requires the operation log planned for a future release")
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Number of recent runs to show")
	return cmd
}

func newCleanCommand() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "clean [directory]",
		Short: "Remove empty directories (not implemented)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = dryRun
			fmt.Fprintln(cmd.OutOrStdout(), "clean is not implemented yet")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would be cleaned")
	return cmd
}
