// Package syntaxanomaly surfaces scanner-level problems as diagnostics.
package syntaxanomaly

import (
	"jstyle/internal/diag"
	"jstyle/internal/rule"
	"jstyle/internal/token"
)

// Rule reports what the scanner could not make sense of: byte runs
// outside the language and literals cut off by a newline or the end of
// the file. The scanner itself never reports; it encodes anomalies in
// the stream and this rule is where they become visible.
type Rule struct{}

func New() Rule { return Rule{} }

func (Rule) ID() string                     { return "syntax-anomaly" }
func (Rule) Description() string            { return "report unrecognized input and unterminated literals" }
func (Rule) DefaultSeverity() diag.Severity { return diag.SevError }
func (Rule) DefaultEnabled() bool           { return true }
func (Rule) Options() []rule.OptionSpec     { return nil }

func (r Rule) Check(ctx *rule.Context) {
	for _, tok := range ctx.Tokens {
		switch {
		case tok.Kind == token.Unknown:
			ctx.Report(tok.Span, "unrecognized characters").Emit()
		case tok.Kind == token.String && tok.Unterminated:
			ctx.Report(tok.Span, "unterminated string literal").Emit()
		case tok.Kind == token.Comment && tok.Unterminated:
			ctx.Report(tok.Span, "unterminated block comment").Emit()
		}
	}
}
