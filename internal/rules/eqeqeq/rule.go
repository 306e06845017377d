// Package eqeqeq bans loose equality operators.
package eqeqeq

import (
	"jstyle/internal/diag"
	"jstyle/internal/rule"
	"jstyle/internal/token"
)

// Rule flags == and != and suggests the strict forms. The replacement
// changes behavior when code relies on coercion, so the fix is marked
// accordingly.
type Rule struct{}

func New() Rule { return Rule{} }

func (Rule) ID() string                     { return "eqeqeq" }
func (Rule) Description() string            { return "require === and !== over == and !=" }
func (Rule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (Rule) DefaultEnabled() bool           { return true }

func (Rule) Options() []rule.OptionSpec {
	return []rule.OptionSpec{{
		Name:     "allow-null",
		Doc:      "permit == and != when one operand is the null literal",
		Default:  false,
		Validate: rule.BoolOption(),
	}}
}

func (r Rule) Check(ctx *rule.Context) {
	allowNull := ctx.BoolOption("allow-null", false)
	toks := ctx.Tokens
	for i, tok := range toks {
		if tok.Kind != token.Punct {
			continue
		}
		var strict string
		switch tok.Text {
		case "==":
			strict = "==="
		case "!=":
			strict = "!=="
		default:
			continue
		}
		if allowNull && nextToNull(toks, i) {
			continue
		}
		ctx.Report(tok.Span, "use "+strict+" instead of "+tok.Text).
			WithFix(diag.Edit("use strict operator", diag.SafeWithHeuristics, tok.Span, tok.Text, strict)).
			Emit()
	}
}

func nextToNull(toks []token.Token, i int) bool {
	if p := rule.PrevCode(toks, i-1); p >= 0 && toks[p].IsKeyword("null") {
		return true
	}
	if n := rule.NextCode(toks, i+1); n < len(toks) && toks[n].IsKeyword("null") {
		return true
	}
	return false
}
