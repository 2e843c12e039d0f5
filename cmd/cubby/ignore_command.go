package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cubby/internal/config"
	"cubby/internal/ignore"
)

func newIgnoreCommand() *cobra.Command {
	ignoreCmd := &cobra.Command{
		Use:   "ignore",
		Short: "Ignore file utilities",
	}

	ignoreCmd.AddCommand(newIgnoreInitCommand())

	return ignoreCmd
}

func newIgnoreInitCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init [directory]",
		Short:       "Create a sample " + ignore.FileName + " file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			expanded, err := config.ExpandPath(dir)
			if err != nil {
				return fmt.Errorf("resolve directory: %w", err)
			}

			target := filepath.Join(expanded, ignore.FileName)
			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("ignore file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check ignore path: %w", err)
				}
			}

			if err := ignore.CreateSample(target); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample ignore file to %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing ignore file if present")
	return cmd
}
