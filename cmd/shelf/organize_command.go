package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"shelf/internal/organizer"
	"shelf/internal/plan"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var (
		modeFlag  string
		dryRun    bool
		recursive bool
		force     bool
		backup    bool
		filters   []string
	)

	cmd := &cobra.Command{
		Use:   "organize [directory]",
		Short: "Organize files in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			target := "."
			if len(args) == 1 {
				target = args[0]
			}
			target, err = filepath.Abs(target)
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			modeValue := modeFlag
			if modeValue == "" {
				modeValue = cfg.Organize.DefaultMode
			}
			mode, err := plan.ParseMode(modeValue)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("recursive") {
				recursive = cfg.Organize.Recursive
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Target directory: %s\n", color.GreenString(target))
			fmt.Fprintf(out, "Organization mode: %s\n", mode)
			if dryRun {
				fmt.Fprintln(out, color.YellowString("Dry run: no changes will be made"))
			}
			if len(filters) > 0 {
				fmt.Fprintf(out, "File filters: %s\n", strings.Join(filters, ", "))
			}
			if recursive {
				fmt.Fprintln(out, "Recursive mode enabled")
			}
			if backup {
				fmt.Fprintln(out, color.YellowString("Backups are not implemented yet; flag ignored"))
			}
			if force {
				// Reserved for when organize gains a confirmation prompt.
				logger.Debug("force flag set")
			}

			req := organizer.Request{
				TargetDir: target,
				Mode:      mode,
				Recursive: recursive,
				Filters:   filters,
				DryRun:    dryRun,
			}

			var bar *progressbar.ProgressBar
			if !dryRun && isInteractive(out) {
				req.Progress = func(done, total int) {
					if bar == nil {
						bar = progressbar.NewOptions(total,
							progressbar.OptionSetWriter(out),
							progressbar.OptionSetDescription("Moving files"),
							progressbar.OptionClearOnFinish(),
						)
					}
					_ = bar.Set(done)
				}
			}

			summary, err := organizer.New(cfg, logger).Organize(cmd.Context(), req)
			if err != nil {
				return err
			}
			if bar != nil {
				_ = bar.Finish()
			}

			renderRun(out, summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "Organization mode (extension, size, date, modified, custom)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Preview changes without applying them")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Include subdirectories")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompts")
	cmd.Flags().BoolVar(&backup, "backup", false, "Create a backup before organizing (not implemented)")
	cmd.Flags().StringSliceVar(&filters, "filter", nil, "Only organize these extensions (comma separated)")

	return cmd
}
