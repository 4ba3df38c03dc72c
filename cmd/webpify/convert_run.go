package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"webpify/internal/config"
	"webpify/internal/convert"
	"webpify/internal/fileutil"
	"webpify/internal/logging"
	"webpify/internal/preflight"
	"webpify/internal/runlock"
	"webpify/internal/scan"
	"webpify/internal/services"
	"webpify/internal/services/codec"
)

type convertOptions struct {
	inputs         []string
	outputDir      string
	quality        int
	qualitySet     bool
	concurrency    int
	concurrencySet bool
	recursive      bool
	force          bool
	dryRun         bool
	jsonOut        bool
	quiet          bool
}

// newCodecService is swapped out by tests to avoid real image encoding.
var newCodecService = func() codec.Service { return codec.NewLibrary() }

func runConvert(cmd *cobra.Command, cctx *commandContext, opts convertOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := cctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	runCfg := *cfg
	if opts.qualitySet {
		runCfg.Conversion.Quality = config.ClampQuality(opts.quality)
	}
	if opts.concurrencySet {
		runCfg.Conversion.MaxConcurrency = opts.concurrency
	}

	logger, err := newRunLogger(&runCfg, opts)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger = logging.WithContext(ctx, logger)

	checker := preflight.NewChecker(logger, runCfg.Output.SpaceHeadroom)
	scanner := scan.NewScanner(logger, checker.Check)
	plan, err := scanner.Discover(ctx, opts.inputs, scan.Options{
		OutputDir: opts.outputDir,
		Recursive: opts.recursive,
	})
	if err != nil {
		// Discover surfaces the context error on cancellation; only
		// taxonomy aborts belong in the log.
		if services.Classify(err) == services.SeverityRun {
			logger.Error("conversion aborted", logging.Error(err))
		}
		return err
	}

	if opts.dryRun {
		return renderPlan(cmd, plan, opts)
	}

	if runCfg.Output.Lock && len(plan.Tasks) > 0 {
		root := lockRoot(opts.outputDir, plan)
		if err := fileutil.EnsureDir(root); err != nil {
			return fmt.Errorf("prepare output root %s: %w", root, err)
		}
		lock, err := runlock.Acquire(root)
		if err != nil {
			logger.Error("conversion aborted", logging.Error(err))
			return err
		}
		defer lock.Release()
		logger.Debug("run lock acquired", logging.String("path", lock.Path()))
	}

	runner := convert.NewRunner(logger, &runCfg, newCodecService())
	runner.SetForce(opts.force)

	bar := newProgressBar(cmd, len(plan.Tasks), opts)
	if bar != nil {
		runner.SetProgress(func(p convert.Progress) {
			_ = bar.Set(p.Completed)
		})
	}

	result, err := runner.Run(ctx, plan)
	if bar != nil {
		finishProgressBar(cmd, bar)
	}
	if err != nil {
		return err
	}

	if opts.jsonOut {
		if err := writeJSON(cmd, result); err != nil {
			return err
		}
	} else if !opts.quiet || !result.Succeeded() {
		printSummary(cmd.OutOrStdout(), result)
	}

	if !result.Succeeded() {
		return fmt.Errorf("%d of %d files failed", len(result.Failed), result.TotalFiles)
	}
	return nil
}

// newRunLogger builds the logger for one conversion run. JSON report mode
// moves console logging to stderr so stdout stays machine-readable.
func newRunLogger(cfg *config.Config, opts convertOptions) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if opts.quiet {
		level = quietLevel(level)
	}

	console := "stdout"
	if opts.jsonOut {
		console = "stderr"
	}
	outputs := []string{console}
	errorOutputs := []string{"stderr"}
	if cfg.Logging.Dir != "" {
		if err := fileutil.EnsureDir(cfg.Logging.Dir); err != nil {
			return nil, err
		}
		logPath := filepath.Join(cfg.Logging.Dir, "webpify.log")
		outputs = append(outputs, logPath)
		errorOutputs = append(errorOutputs, logPath)
	}

	return logging.New(logging.Options{
		Level:            level,
		Format:           cfg.Logging.Format,
		OutputPaths:      outputs,
		ErrorOutputPaths: errorOutputs,
	})
}

// quietLevel caps console logging at warnings unless the configured level
// is already stricter.
func quietLevel(level string) string {
	if strings.EqualFold(strings.TrimSpace(level), "error") {
		return level
	}
	return "warn"
}

// lockRoot picks the directory guarding a run against concurrent webpify
// invocations. With --output that is the output root, otherwise the
// directory receiving the first converted file.
func lockRoot(outputDir string, plan *scan.Plan) string {
	if outputDir != "" {
		return outputDir
	}
	return filepath.Dir(plan.Tasks[0].Output)
}

func renderPlan(cmd *cobra.Command, plan *scan.Plan, opts convertOptions) error {
	if opts.jsonOut {
		return writeJSON(cmd, plan)
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	for _, line := range renderSectionHeader("Conversion plan", colorize) {
		fmt.Fprintln(out, line)
	}
	if len(plan.Tasks) > 0 {
		rows := make([][]string, 0, len(plan.Tasks))
		for _, task := range plan.Tasks {
			rows = append(rows, []string{task.Input, task.Output})
		}
		fmt.Fprintln(out, renderTable([]string{"Input", "Output"}, rows))
	}
	if len(plan.Skips) > 0 {
		rows := make([][]string, 0, len(plan.Skips))
		for _, skip := range plan.Skips {
			rows = append(rows, []string{skip.Path, skip.Reason})
		}
		fmt.Fprintln(out, renderTable([]string{"Skipped", "Reason"}, rows))
	}
	fmt.Fprintf(out, "%d files: %d to convert, %d skipped\n", plan.Total(), len(plan.Tasks), len(plan.Skips))
	return nil
}
