// Package notrailingspace flags whitespace before a line break.
package notrailingspace

import (
	"jstyle/internal/diag"
	"jstyle/internal/rule"
	"jstyle/internal/token"
)

type Rule struct{}

func New() Rule { return Rule{} }

func (Rule) ID() string                     { return "no-trailing-space" }
func (Rule) Description() string            { return "disallow trailing whitespace at line ends" }
func (Rule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (Rule) DefaultEnabled() bool           { return true }
func (Rule) Options() []rule.OptionSpec     { return nil }

func (r Rule) Check(ctx *rule.Context) {
	toks := ctx.Tokens
	for i, tok := range toks {
		if tok.Kind != token.Whitespace {
			continue
		}
		if i+1 >= len(toks) {
			continue
		}
		switch toks[i+1].Kind {
		case token.Newline, token.EOF:
		default:
			continue
		}
		ctx.Report(tok.Span, "trailing whitespace").
			WithFix(diag.Edit("remove trailing whitespace", diag.AlwaysSafe, tok.Span, tok.Text, "")).
			Emit()
	}
}
