package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jstyle/internal/diag"
	"jstyle/internal/driver"
	"jstyle/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.js|directory>...",
	Short: "Apply available fixes to JavaScript files",
	Long:  `Fix lints the given paths and rewrites files according to the chosen strategy. Only always-safe fixes are applied unless --heuristics is set.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every selectable fix (default)")
	fixCmd.Flags().Bool("once", false, "apply only the first available fix")
	fixCmd.Flags().String("id", "", "apply the fix with a specific identifier")
	fixCmd.Flags().Bool("heuristics", false, "also apply fixes that rely on heuristics")
	fixCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = all CPUs)")
}

func runFix(cmd *cobra.Command, args []string) error {
	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	applyOnce, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return err
	}
	heuristics, _ := cmd.Flags().GetBool("heuristics")
	jobs, _ := cmd.Flags().GetInt("jobs")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	if targetID != "" && (applyAll || applyOnce) {
		return fmt.Errorf("--id cannot be combined with --all or --once")
	}
	if applyAll && applyOnce {
		return fmt.Errorf("--all and --once are mutually exclusive")
	}

	mode := fix.ApplyModeAll
	if targetID != "" {
		mode = fix.ApplyModeID
	} else if applyOnce {
		mode = fix.ApplyModeOnce
	}
	applicability := diag.AlwaysSafe
	if heuristics {
		applicability = diag.SafeWithHeuristics
	}
	opts := fix.ApplyOptions{
		Mode:             mode,
		TargetID:         targetID,
		MaxApplicability: applicability,
	}

	reg, resolved, err := loadResolved(cmd, args[0])
	if err != nil {
		return err
	}

	// No cache here: every fix run must see the file content the spans
	// were computed against.
	fileSet, results, err := driver.LintPaths(cmd.Context(), reg, resolved, args, driver.Options{Jobs: jobs})
	if err != nil {
		return err
	}

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

	res, applyErr := fix.Apply(fileSet, diagnostics, opts)
	return renderApplyResult(res, applyErr, quiet)
}

func renderApplyResult(res *fix.ApplyResult, applyErr error, quiet bool) error {
	if res == nil {
		return applyErr
	}

	if len(res.Applied) > 0 && !quiet {
		fmt.Printf("Applied %d fix(es):\n", len(res.Applied))
		for _, item := range res.Applied {
			fmt.Printf("  %s [%s] %s (%d edit(s), %s)\n",
				item.Title, item.Rule, item.Path, item.EditCount, item.Applicability)
		}
	}
	if len(res.FileChanges) > 0 {
		fmt.Println("Updated files:")
		for _, change := range res.FileChanges {
			fmt.Printf("  %s (%d edit(s))\n", change.Path, change.EditCount)
		}
	}
	if len(res.Skipped) > 0 && !quiet {
		fmt.Println("Skipped fixes:")
		for _, skip := range res.Skipped {
			fmt.Printf("  [%s]: %s\n", skip.ID, skip.Reason)
		}
	}

	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) && len(res.Applied) == 0 {
			fmt.Println("No applicable fixes found.")
			return nil
		}
		return applyErr
	}
	if len(res.Applied) == 0 {
		fmt.Println("No fixes applied.")
	}
	return nil
}
