package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"cubby/internal/classify"
	"cubby/internal/config"
	"cubby/internal/faults"
	"cubby/internal/inspect"
	"cubby/internal/preflight"
	"cubby/internal/scan"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "inspect <directory>",
		Short: "Preview how a directory would be categorized",
		Long: `Reports how many files each category would receive without moving
anything. Extensions no category claims are listed with a suggested
category name, and extensionless files are content-sniffed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dir, err := config.ExpandPath(args[0])
			if err != nil {
				return faults.Wrap(faults.ErrInvalidTarget, "inspect", "resolve target", args[0], err)
			}
			if err := preflight.EnsureTarget(dir); err != nil {
				return err
			}

			table := classify.FromConfig(cfg)
			entries, err := scan.Scan(dir, recursive, table.Names())
			if err != nil {
				return faults.Wrap(faults.ErrTransient, "inspect", "scan directory", "", err)
			}

			report := inspect.Build(dir, entries, table)

			if ctx.JSONMode() {
				return writeInspectJSON(cmd, report)
			}
			printInspectReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Inspect files in subdirectories too")
	return cmd
}

func printInspectReport(cmd *cobra.Command, report *inspect.Report) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Inspecting %s\n", report.Directory)
	if report.TotalFiles == 0 {
		fmt.Fprintln(out, "No files found")
		return
	}
	fmt.Fprintf(out, "%d file(s), %s\n\n", report.TotalFiles, humanize.Bytes(uint64(report.TotalBytes)))

	rows := make([][]string, 0, len(report.Categories))
	for _, category := range report.Categories {
		rows = append(rows, []string{
			category.Name,
			strconv.Itoa(category.Files),
			humanize.Bytes(uint64(category.Bytes)),
		})
	}
	table := renderTable(
		[]string{"Category", "Files", "Size"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	)
	fmt.Fprintln(out, table)

	if len(report.Uncategorized) > 0 {
		fmt.Fprintln(out, "\nExtensions without a category:")
		for _, suggestion := range report.Uncategorized {
			fmt.Fprintf(out, "  .%s (%d file(s)), suggested category %q\n",
				suggestion.Extension, suggestion.Files, suggestion.Category)
		}
	}

	if len(report.Extensionless) > 0 {
		fmt.Fprintln(out, "\nFiles without an extension:")
		for _, sniffed := range report.Extensionless {
			if sniffed.Kind == "unknown" {
				fmt.Fprintf(out, "  %s: content not recognized\n", sniffed.Name)
				continue
			}
			fmt.Fprintf(out, "  %s: looks like %s (%s)\n", sniffed.Name, sniffed.Kind, sniffed.MIME)
		}
	}
}

func writeInspectJSON(cmd *cobra.Command, report *inspect.Report) error {
	type jsonCategory struct {
		Name  string `json:"name"`
		Files int    `json:"files"`
		Bytes int64  `json:"bytes"`
	}
	type jsonSuggestion struct {
		Extension string `json:"extension"`
		Files     int    `json:"files"`
		Category  string `json:"suggested_category"`
	}
	type jsonSniffed struct {
		Name string `json:"name"`
		Kind string `json:"kind"`
		MIME string `json:"mime,omitempty"`
	}

	categories := make([]jsonCategory, 0, len(report.Categories))
	for _, category := range report.Categories {
		categories = append(categories, jsonCategory{Name: category.Name, Files: category.Files, Bytes: category.Bytes})
	}
	suggestions := make([]jsonSuggestion, 0, len(report.Uncategorized))
	for _, suggestion := range report.Uncategorized {
		suggestions = append(suggestions, jsonSuggestion{
			Extension: suggestion.Extension,
			Files:     suggestion.Files,
			Category:  suggestion.Category,
		})
	}
	sniffed := make([]jsonSniffed, 0, len(report.Extensionless))
	for _, entry := range report.Extensionless {
		sniffed = append(sniffed, jsonSniffed{Name: entry.Name, Kind: entry.Kind, MIME: entry.MIME})
	}

	return writeJSON(cmd.OutOrStdout(), map[string]any{
		"directory":     report.Directory,
		"total_files":   report.TotalFiles,
		"total_bytes":   report.TotalBytes,
		"categories":    categories,
		"uncategorized": suggestions,
		"extensionless": sniffed,
	})
}
