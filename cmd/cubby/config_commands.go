package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cubby/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the categories table to control where files go.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(ctx.requestedConfigPath())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintf(out, "Categories: %d\n", len(cfg.Categories))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if ctx.JSONMode() {
				type jsonCategory struct {
					Name       string   `json:"name"`
					Extensions []string `json:"extensions"`
				}
				categories := make([]jsonCategory, 0, len(cfg.Categories))
				for _, category := range cfg.Categories {
					categories = append(categories, jsonCategory{Name: category.Name, Extensions: category.Extensions})
				}
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"config_path":       ctx.resolvedConfigPath(),
					"state_dir":         cfg.Paths.StateDir,
					"log_dir":           cfg.Paths.LogDir,
					"other_category":    cfg.Organize.OtherCategory,
					"remove_empty_dirs": cfg.Organize.RemoveEmptyDirs,
					"categories":        categories,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path:       %s\n", ctx.resolvedConfigPath())
			fmt.Fprintf(out, "State directory:   %s\n", cfg.Paths.StateDir)
			fmt.Fprintf(out, "Log directory:     %s\n", cfg.Paths.LogDir)
			fmt.Fprintf(out, "Other category:    %s\n", cfg.Organize.OtherCategory)
			fmt.Fprintf(out, "Remove empty dirs: %s\n", yesNo(cfg.Organize.RemoveEmptyDirs))
			fmt.Fprintln(out)

			rows := make([][]string, 0, len(cfg.Categories))
			for _, category := range cfg.Categories {
				rows = append(rows, []string{category.Name, strings.Join(category.Extensions, ", ")})
			}
			table := renderTable(
				[]string{"Category", "Extensions"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			)
			fmt.Fprintln(out, table)
			return nil
		},
	}
}
