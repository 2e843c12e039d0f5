package main

import (
	"github.com/spf13/cobra"

	"cubby/internal/classify"
	"cubby/internal/config"
	"cubby/internal/faults"
	"cubby/internal/ignore"
	"cubby/internal/journal"
	"cubby/internal/mover"
	"cubby/internal/plan"
	"cubby/internal/preflight"
	"cubby/internal/scan"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var recursive bool

	cmd := &cobra.Command{
		Use:   "organize <directory>",
		Short: "Sort files into category folders",
		Long: `Scans the directory, classifies each file by extension, and moves it into
a category folder such as Documents or Images. Every move is journaled so
"cubby undo" can put the batch back exactly where it came from.

Files matching patterns in a .cubbyignore file in the target directory are
left alone. Use --dry-run to preview the plan without touching anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dir, err := config.ExpandPath(args[0])
			if err != nil {
				return faults.Wrap(faults.ErrInvalidTarget, "organize", "resolve target", args[0], err)
			}
			if err := preflight.EnsureTarget(dir); err != nil {
				return err
			}

			ignores, err := ignore.Load(dir)
			if err != nil {
				return faults.Wrap(faults.ErrValidation, "organize", "load ignore file", "", err)
			}

			table := classify.FromConfig(cfg)
			classifier := classify.New(table, ignores)

			entries, err := scan.Scan(dir, recursive, table.Names())
			if err != nil {
				return faults.Wrap(faults.ErrTransient, "organize", "scan directory", "", err)
			}

			movePlan, err := plan.Build(entries, classifier, dir)
			if err != nil {
				return faults.Wrap(faults.ErrTransient, "organize", "build plan", "", err)
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			var store *journal.Store
			if !dryRun {
				store, err = journal.Open(cfg)
				if err != nil {
					return faults.Wrap(faults.ErrTransient, "organize", "open journal", "", err)
				}
				defer store.Close()
			}

			result, err := mover.New(cfg, store, logger).Execute(cmd.Context(), movePlan, dryRun)
			if err != nil {
				return err
			}

			if ctx.JSONMode() {
				return writeOrganizeJSON(cmd, movePlan, result)
			}
			printOrganizeResult(cmd, movePlan, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the plan without moving files")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Organize files in subdirectories too")
	return cmd
}
