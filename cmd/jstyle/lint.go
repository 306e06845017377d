package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"jstyle/internal/config"
	"jstyle/internal/diag"
	"jstyle/internal/diagfmt"
	"jstyle/internal/driver"
	"jstyle/internal/observ"
	"jstyle/internal/rule"
	"jstyle/internal/rules"
	"jstyle/internal/source"
	"jstyle/internal/ui"
	"jstyle/internal/version"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] <file.js|directory>...",
	Short: "Lint JavaScript files against the configured style rules",
	Long:  `Lint tokenizes each file and reports style violations. Exits 1 when any error-severity violation is found.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif)")
	lintCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = all CPUs)")
	lintCmd.Flags().Bool("no-cache", false, "skip the result cache")
	lintCmd.Flags().Int("max-violations", 0, "cap violations per file (0 = from config)")
	lintCmd.Flags().Bool("progress", true, "show live progress on a terminal")
}

// loadResolved finds the config for target and resolves it against the
// built-in registry. The --config flag wins over discovery.
func loadResolved(cmd *cobra.Command, target string) (*rule.Registry, *config.Resolved, error) {
	reg := rules.Builtin()

	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, nil, err
	}
	var cfg *config.File
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		dir := target
		if info, statErr := os.Stat(target); statErr == nil && !info.IsDir() {
			dir = filepath.Dir(target)
		}
		cfg, err = config.Discover(dir)
	}
	if err != nil {
		return nil, nil, err
	}

	resolved, err := config.Resolve(reg, cfg)
	if err != nil {
		return nil, nil, err
	}
	return reg, resolved, nil
}

func runLint(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch format {
	case "pretty", "json", "sarif":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	maxViolations, _ := cmd.Flags().GetInt("max-violations")
	showProgress, _ := cmd.Flags().GetBool("progress")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	colored := useColor(cmd, os.Stdout)

	timer := observ.NewTimer()

	phase := timer.Begin("config")
	reg, resolved, err := loadResolved(cmd, args[0])
	if err != nil {
		timer.End(phase, "")
		return err
	}
	if maxViolations > 0 {
		resolved.MaxViolations = maxViolations
	}
	timer.End(phase, "")

	opts := driver.Options{Jobs: jobs}
	if !noCache {
		if cache, cacheErr := driver.OpenResultCache("jstyle"); cacheErr == nil {
			opts.Cache = cache
		}
	}

	files, err := driver.ExpandPaths(args, resolved)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var (
		relay   *ui.Relay
		uiDone  chan error
		program *tea.Program
	)
	if showProgress && !quiet && format == "pretty" && isTerminal(os.Stderr) && len(files) > 1 {
		relay = ui.NewRelay()
		program = tea.NewProgram(
			ui.NewProgressModel("linting", files, relay.Events()),
			tea.WithOutput(os.Stderr),
		)
		opts.Observer = relay
		uiDone = make(chan error, 1)
		go func() {
			_, runErr := program.Run()
			// Quitting the UI early must not strand lint workers on
			// the event channel, and the run stops with it.
			relay.Detach()
			cancel()
			uiDone <- runErr
		}()
	}

	phase = timer.Begin("lint")
	fileSet, results, lintErr := driver.LintPaths(ctx, reg, resolved, args, opts)
	timer.End(phase, fmt.Sprintf("%d files", len(files)))

	if relay != nil {
		relay.Finish()
		<-uiDone
	}
	if lintErr != nil {
		if errors.Is(lintErr, context.Canceled) {
			return fmt.Errorf("lint cancelled")
		}
		return lintErr
	}

	phase = timer.Begin("report")
	summary := driver.Summarize(results)
	reportErr := reportResults(fileSet, results, summary, format, colored, quiet)
	timer.End(phase, "")

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if reportErr != nil {
		return reportErr
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) could not be linted", summary.Failed)
	}
	if summary.Errors > 0 {
		return errViolations
	}
	return nil
}

func reportResults(fileSet *source.FileSet, results []driver.FileResult, summary driver.Summary, format string, colored, quiet bool) error {
	var diagnostics []diag.Diagnostic
	for _, fr := range results {
		if fr.Err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", fr.Path, fr.Err)
			continue
		}
		if fr.Result != nil {
			diagnostics = append(diagnostics, fr.Result.Diagnostics...)
		}
	}

	switch format {
	case "json":
		return diagfmt.JSON(os.Stdout, diagnostics, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			IncludeFixes:     true,
		})
	case "sarif":
		return diagfmt.Sarif(os.Stdout, diagnostics, fileSet, diagfmt.SarifRunMeta{
			ToolName:    "jstyle",
			ToolVersion: version.Version,
		})
	}

	if err := diagfmt.Pretty(os.Stdout, diagnostics, fileSet, diagfmt.PrettyOpts{
		Color:     colored,
		ShowNotes: true,
		ShowFixes: true,
	}); err != nil {
		return err
	}
	if !quiet {
		printSummary(os.Stdout, summary)
	}
	return nil
}

func printSummary(out *os.File, s driver.Summary) {
	if s.Diagnostics == 0 {
		fmt.Fprintf(out, "%d file(s) clean", s.Files)
	} else {
		fmt.Fprintf(out, "%d problem(s) in %d file(s) (%d errors, %d warnings)",
			s.Diagnostics, s.Files, s.Errors, s.Warnings)
	}
	if s.Fixable > 0 {
		fmt.Fprintf(out, ", %d fixable with `jstyle fix`", s.Fixable)
	}
	if s.FromCache > 0 {
		fmt.Fprintf(out, ", %d from cache", s.FromCache)
	}
	fmt.Fprintln(out)
}
