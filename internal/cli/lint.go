package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohtmlint/internal/configloader"
	"github.com/yaklabco/gohtmlint/internal/logging"
	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/lint"
	_ "github.com/yaklabco/gohtmlint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/gohtmlint/pkg/parser/nethtml"
	"github.com/yaklabco/gohtmlint/pkg/reporter"
	"github.com/yaklabco/gohtmlint/pkg/runner"
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format       string
	ignore       []string
	enable       []string
	disable      []string
	fixRules     []string
	stateLexicon []string
	docs         bool
	strict       bool
	noContext    bool
	compact      bool
	perFile      bool
	ruleFormat   string
	summaryOrder string
	cpuprofile   string
	memprofile   string
	trace        string
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint HTML files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Lint HTML files for markup convention issues.

By default, lints all .html and .htm files in the current directory
and subdirectories. Specify paths to lint specific files or
directories, or "-" to read a single document from stdin. With --docs,
fenced html blocks inside Markdown files are linted too.

Examples:
  gohtmlint lint                    # Lint current directory
  gohtmlint lint pages/             # Lint pages directory
  gohtmlint lint index.html         # Lint single file
  gohtmlint lint - < index.html     # Lint stdin
  gohtmlint lint --fix              # Lint and auto-fix issues
  gohtmlint lint --fix --dry-run    # Show fixes without applying
  gohtmlint lint --format json      # Output as JSON for CI
  gohtmlint lint --strict           # Treat warnings as errors`

func runLint(cmd *cobra.Command, args []string, cfg *config.Config, flags *lintFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	// Only set values that were explicitly provided via CLI flags.
	cfg.Format = config.OutputFormat(flags.format)
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.FixRules = flags.fixRules
	cfg.IncludeDocs = flags.docs
	if len(flags.stateLexicon) > 0 {
		cfg.StateLexicon = flags.stateLexicon
	}

	// Load and merge configuration.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	// Get working directory for config discovery.
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	// Build load options.
	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return &ExitError{
			Code: ExitConfigError,
			err:  errors.Join(errors.New("failed to load configuration"), err),
		}
	}

	finalCfg := loadResult.Config

	// Log warnings from config loading.
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	// Log loaded configuration files.
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		"fix", finalCfg.Fix,
		"dry_run", finalCfg.DryRun,
		"jobs", finalCfg.Jobs,
	)

	// Use the default registry which has all built-in rules registered.
	registry := lint.DefaultRegistry

	// Create the lint engine with the strict document parser.
	engine := lint.NewEngine(nethtml.New(), registry)

	// Create the safety pipeline.
	pipeline := lint.NewPipeline(engine)

	var result *runner.Result

	if isStdinArg(args) {
		result, err = lintStdin(ctx, cmd.InOrStdin(), pipeline, finalCfg)
	} else {
		lintRunner := runner.New(pipeline)

		runOpts := runner.Options{
			Paths:        args,
			WorkingDir:   workDir,
			Extensions:   runner.DefaultExtensions(),
			IncludeDocs:  finalCfg.IncludeDocs,
			ExcludeGlobs: finalCfg.Ignore,
			Jobs:         finalCfg.Jobs,
			Config:       finalCfg,
		}

		logger.Debug("starting lint run",
			"paths", runOpts.Paths,
			"working_dir", runOpts.WorkingDir,
			"jobs", runOpts.Jobs,
		)

		result, err = lintRunner.Run(ctx, runOpts)
	}
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}

	// Parse output format.
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	// Create reporter.
	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		ErrorWriter:  cmd.ErrOrStderr(),
		Format:       format,
		Color:        colorMode,
		ShowContext:  !flags.noContext,
		ShowSummary:  true,
		GroupByFile:  true,
		Compact:      flags.compact,
		PerFile:      flags.perFile,
		RuleFormat:   config.RuleFormat(flags.ruleFormat),
		SummaryOrder: config.SummaryOrder(flags.summaryOrder),
		WorkingDir:   workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	// Report results.
	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", "error", err)
		return fmt.Errorf("report results: %w", err)
	}

	// Determine exit code based on result.
	switch exitCode := ExitCodeFromResult(result, flags.strict); exitCode {
	case ExitSuccess:
		return nil
	case ExitIOError:
		return &ExitError{Code: exitCode, err: errors.New("some files could not be processed")}
	default:
		return &ExitError{Code: exitCode, err: ErrLintIssuesFound}
	}
}

// isStdinArg reports whether the lone "-" argument was given.
func isStdinArg(args []string) bool {
	return len(args) == 1 && args[0] == "-"
}

// lintStdin lints a single document read from stdin. Fixes are not
// applied: there is no file to write back to.
func lintStdin(
	ctx context.Context,
	in io.Reader,
	pipeline *lint.Pipeline,
	cfg *config.Config,
) (*runner.Result, error) {
	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	opts := lint.PipelineOptionsFromConfig(cfg)
	opts.Fix = false
	opts.DryRun = false

	outcome := runner.FileOutcome{Path: "stdin"}
	pr, err := pipeline.ProcessContent(ctx, "stdin", content, cfg, opts)
	if err != nil {
		outcome.Error = err
	} else {
		outcome.Result = pr
	}

	result := &runner.Result{Stats: runner.NewStats()}
	result.Stats.FilesDiscovered = 1
	result.Accumulate(outcome)

	return result, nil
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically fix issues")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, sarif, diff, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "concurrency", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().StringSliceVar(&flags.fixRules, "fix-rules", nil, "limit auto-fix to specific rule IDs")
	cmd.Flags().StringSliceVar(&flags.stateLexicon, "state-lexicon", nil,
		"class tokens treated as state markers (replaces the default lexicon)")
	cmd.Flags().BoolVar(&flags.docs, "docs", false, "also lint fenced html blocks in Markdown files")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when fixing")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.perFile, "per-file", false, "output separate report for each file (table format)")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.summaryOrder, "summary-order", "rules",
		"order of tables in summary output: rules, files")

	// Profiling flags.
	cmd.Flags().StringVar(&flags.cpuprofile, "cpuprofile", "", "write CPU profile to file")
	cmd.Flags().StringVar(&flags.memprofile, "memprofile", "", "write memory profile to file")
	cmd.Flags().StringVar(&flags.trace, "trace", "", "write execution trace to file")
}
