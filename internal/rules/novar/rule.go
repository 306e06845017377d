// Package novar bans var declarations in favor of let and const.
package novar

import (
	"jstyle/internal/diag"
	"jstyle/internal/rule"
	"jstyle/internal/token"
)

// Rule flags every var keyword. The suggested replacement is let;
// switching to block scoping can change behavior in loops with
// closures, hence the heuristic applicability.
type Rule struct{}

func New() Rule { return Rule{} }

func (Rule) ID() string                     { return "no-var" }
func (Rule) Description() string            { return "require let or const instead of var" }
func (Rule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (Rule) DefaultEnabled() bool           { return true }
func (Rule) Options() []rule.OptionSpec     { return nil }

func (r Rule) Check(ctx *rule.Context) {
	for _, tok := range ctx.Tokens {
		if tok.Kind != token.Keyword || tok.Text != "var" {
			continue
		}
		ctx.Report(tok.Span, "use let or const instead of var").
			WithFix(diag.Edit("replace var with let", diag.SafeWithHeuristics, tok.Span, "var", "let")).
			Emit()
	}
}
