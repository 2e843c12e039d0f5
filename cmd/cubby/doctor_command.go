package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cubby/internal/config"
	"cubby/internal/faults"
	"cubby/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [directory]",
		Short: "Check that cubby can run",
		Long: `Verifies the state directory and the journal database, plus the target
directory when one is given. Each check reports on its own line; the
command fails if any check does.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			targetDir := ""
			if len(args) == 1 {
				expanded, err := config.ExpandPath(args[0])
				if err != nil {
					return faults.Wrap(faults.ErrInvalidTarget, "doctor", "resolve target", args[0], err)
				}
				targetDir = expanded
			}

			results := preflight.RunAll(cmd.Context(), cfg, targetDir)
			failed := 0
			for _, result := range results {
				if !result.Passed {
					failed++
				}
			}

			if ctx.JSONMode() {
				type jsonCheck struct {
					Name   string `json:"name"`
					Passed bool   `json:"passed"`
					Detail string `json:"detail"`
				}
				checks := make([]jsonCheck, 0, len(results))
				for _, result := range results {
					checks = append(checks, jsonCheck{Name: result.Name, Passed: result.Passed, Detail: result.Detail})
				}
				if err := writeJSON(cmd.OutOrStdout(), map[string]any{"checks": checks, "failed": failed}); err != nil {
					return err
				}
				if failed > 0 {
					return fmt.Errorf("%d check(s) failed", failed)
				}
				return nil
			}

			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			for _, line := range renderSectionHeader("Environment", colorize) {
				fmt.Fprintln(stdout, line)
			}
			for _, result := range results {
				kind := statusOK
				if !result.Passed {
					kind = statusError
				}
				fmt.Fprintln(stdout, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			fmt.Fprintln(stdout)

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			fmt.Fprintln(stdout, "All checks passed")
			return nil
		},
	}
}
