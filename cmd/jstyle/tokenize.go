package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jstyle/internal/diagfmt"
	"jstyle/internal/lexer"
	"jstyle/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.js",
	Short: "Tokenize a JavaScript source file",
	Long:  `Tokenize breaks a JavaScript source file into its token stream. Concatenating token texts reproduces the file exactly.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	fileSet := source.NewFileSet()
	id, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}
	tokens := lexer.Tokenize(fileSet.Get(id))

	switch format {
	case "pretty":
		useColor(cmd, os.Stdout)
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, fileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
