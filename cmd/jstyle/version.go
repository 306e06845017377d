package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jstyle/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show jstyle build metadata",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	versionCmd.Flags().Bool("full", false, "include commit hash and build date")
}

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	full, _ := cmd.Flags().GetBool("full")

	switch format {
	case "json":
		payload := versionPayload{Tool: "jstyle", Version: version.Version}
		if full {
			payload.GitCommit = version.GitCommit
			payload.BuildDate = version.BuildDate
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "pretty":
		useColor(cmd, os.Stdout)
		fmt.Printf("jstyle %s\n", version.Pretty())
		if full {
			fmt.Printf("commit: %s\n", valueOrUnknown(version.GitCommit))
			fmt.Printf("built:  %s\n", valueOrUnknown(version.BuildDate))
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
