package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jstyle/internal/rule"
	"jstyle/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [flags]",
	Short: "List the built-in style rules",
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type ruleOptionPayload struct {
	Name    string `json:"name"`
	Doc     string `json:"doc"`
	Default any    `json:"default"`
}

type rulePayload struct {
	ID          string              `json:"id"`
	Description string              `json:"description"`
	Severity    string              `json:"severity"`
	Enabled     bool                `json:"enabled"`
	Options     []ruleOptionPayload `json:"options,omitempty"`
}

func runRules(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	var descriptors []rule.Descriptor
	for _, r := range rules.Builtin().All() {
		descriptors = append(descriptors, rule.Describe(r))
	}

	switch format {
	case "json":
		payload := make([]rulePayload, 0, len(descriptors))
		for _, d := range descriptors {
			p := rulePayload{
				ID:          d.ID,
				Description: d.Description,
				Severity:    d.DefaultSeverity.ConfigString(),
				Enabled:     d.DefaultEnabled,
			}
			for _, opt := range d.Options {
				p.Options = append(p.Options, ruleOptionPayload{
					Name:    opt.Name,
					Doc:     opt.Doc,
					Default: opt.Default,
				})
			}
			payload = append(payload, p)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "pretty":
		useColor(cmd, os.Stdout)
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		for _, d := range descriptors {
			state := "on"
			if !d.DefaultEnabled {
				state = "off"
			}
			fmt.Printf("%s (%s, %s)\n", bold.Sprint(d.ID), d.DefaultSeverity.ConfigString(), state)
			fmt.Printf("  %s\n", d.Description)
			for _, opt := range d.Options {
				faint.Printf("  %s = %v  %s\n", opt.Name, opt.Default, opt.Doc)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
