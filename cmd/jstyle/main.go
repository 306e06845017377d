package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jstyle/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "jstyle",
	Short: "Style linter for JavaScript source files",
	Long:  `jstyle tokenizes JavaScript files and checks them against configurable style rules`,
}

// errViolations signals a clean run that found error-severity
// diagnostics. main exits 1 without printing it.
var errViolations = errors.New("violations found")

func main() {
	rootCmd.Version = version.Version
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show phase timings on stderr")
	rootCmd.PersistentFlags().String("config", "", "path to a jstyle.toml or jstyle.json")

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errViolations) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the output terminal and
// syncs the global fatih/color switch.
func useColor(cmd *cobra.Command, out *os.File) bool {
	flag, _ := cmd.Root().PersistentFlags().GetString("color")
	on := flag == "on" || (flag == "auto" && isTerminal(out))
	color.NoColor = !on
	return on
}
