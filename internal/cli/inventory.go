package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohtmlint/internal/logging"
	"github.com/yaklabco/gohtmlint/pkg/inventory"
	"github.com/yaklabco/gohtmlint/pkg/runner"
)

type inventoryFlags struct {
	format string
	ignore []string
}

// inventoryOutput is the JSON shape of a census.
type inventoryOutput struct {
	Documents  int                   `json:"documents"`
	Unmarked   int                   `json:"unmarked"`
	Components []inventory.Component `json:"components"`
}

func newInventoryCommand() *cobra.Command {
	flags := &inventoryFlags{}

	cmd := &cobra.Command{
		Use:   "inventory [paths...]",
		Short: "Survey component markers across HTML files",
		Long: `Survey data-component markers across HTML files.

Reports each component name with its occurrence count, the data-state
and data-variant values seen inside it, and the files it appears in.
Parsing is lenient: documents the linter would reject are still
surveyed.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInventory(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")

	return cmd
}

func runInventory(cmd *cobra.Command, args []string, flags *inventoryFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	files, err := runner.Discover(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: flags.ignore,
	})
	if err != nil {
		return fmt.Errorf("discover files: %w", err)
	}

	census := inventory.New()
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := census.AddDocument(path, content); err != nil {
			return err
		}
	}

	if flags.format == formatJSON {
		return outputInventoryJSON(cmd, census)
	}

	logger := logging.Default()

	components := census.Components()
	if len(components) == 0 {
		logger.Info("no component markers found",
			"documents", census.Documents,
		)
		return nil
	}

	logger.Info("component inventory",
		"documents", census.Documents,
		"components", len(components),
	)

	for _, comp := range components {
		logger.Info(comp.Name,
			"count", comp.Count,
			"states", joinCounts(comp.States),
			"variants", joinCounts(comp.Variants),
			"files", len(comp.Files),
		)
	}

	if census.Unmarked > 0 {
		logger.Warn("state markers outside any component",
			"count", census.Unmarked,
		)
	}

	return nil
}

// joinCounts renders a count map as "a:2, b:1", sorted by key.
func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", key, counts[key]))
	}
	return strings.Join(parts, ", ")
}

func outputInventoryJSON(cmd *cobra.Command, census *inventory.Census) error {
	out := inventoryOutput{
		Documents:  census.Documents,
		Unmarked:   census.Unmarked,
		Components: census.Components(),
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}
	return nil
}
