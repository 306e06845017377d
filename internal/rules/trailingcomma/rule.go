// Package trailingcomma controls commas before closing brackets.
package trailingcomma

import (
	"jstyle/internal/diag"
	"jstyle/internal/rule"
	"jstyle/internal/source"
	"jstyle/internal/token"
)

// Rule enforces one of two policies. "never" removes commas directly
// before ), ] or }. "always" requires a trailing comma in multiline
// array and object literals; blocks are told apart from object literals
// by the token before the opening brace.
type Rule struct{}

func New() Rule { return Rule{} }

func (Rule) ID() string                     { return "trailing-comma" }
func (Rule) Description() string            { return "disallow or require trailing commas in literals" }
func (Rule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (Rule) DefaultEnabled() bool           { return true }

func (Rule) Options() []rule.OptionSpec {
	return []rule.OptionSpec{{
		Name:     "mode",
		Doc:      "never: forbid trailing commas; always: require them in multiline literals",
		Default:  "never",
		Validate: rule.OneOf("never", "always"),
	}}
}

func (r Rule) Check(ctx *rule.Context) {
	if ctx.StringOption("mode", "never") == "always" {
		r.checkAlways(ctx)
		return
	}
	r.checkNever(ctx)
}

func (r Rule) checkNever(ctx *rule.Context) {
	toks := ctx.Tokens
	for i, tok := range toks {
		if !tok.IsPunct(",") {
			continue
		}
		next := rule.NextCode(toks, i+1)
		if next >= len(toks) {
			continue
		}
		switch toks[next].Text {
		case ")", "]", "}":
		default:
			continue
		}
		if toks[next].Kind != token.Punct {
			continue
		}
		ctx.Report(tok.Span, "trailing comma before "+toks[next].Text).
			WithFix(diag.Edit("remove trailing comma", diag.AlwaysSafe, tok.Span, ",", "")).
			Emit()
	}
}

func (r Rule) checkAlways(ctx *rule.Context) {
	toks := ctx.Tokens
	for i, tok := range toks {
		if tok.Kind != token.Punct {
			continue
		}
		if tok.Text != "]" && tok.Text != "}" {
			continue
		}
		prev := rule.PrevCode(toks, i-1)
		if prev < 0 || toks[prev].Text == "," {
			continue
		}
		open := matchingOpener(toks, i)
		if open < 0 || prev == open {
			continue
		}
		if tok.Text == "}" && !isObjectLiteral(toks, open) {
			continue
		}
		if rule.SameLine(toks, prev, i) {
			continue
		}
		end := toks[prev].Span.End
		at := source.Span{File: tok.Span.File, Start: end, End: end}
		ctx.Report(at, "missing trailing comma in multiline literal").
			WithFix(diag.Edit("insert trailing comma", diag.AlwaysSafe, at, "", ",")).
			Emit()
	}
}

// matchingOpener walks back to the bracket that i closes.
func matchingOpener(toks []token.Token, i int) int {
	closer := toks[i].Text
	opener := "["
	if closer == "}" {
		opener = "{"
	}
	depth := 0
	for j := i; j >= 0; j-- {
		if toks[j].Kind != token.Punct {
			continue
		}
		switch toks[j].Text {
		case closer:
			depth++
		case opener:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// isObjectLiteral guesses whether the { at index open starts an object
// literal rather than a block, from the token before it.
func isObjectLiteral(toks []token.Token, open int) bool {
	p := rule.PrevCode(toks, open-1)
	if p < 0 {
		return false
	}
	prev := toks[p]
	if prev.Kind == token.Keyword {
		return prev.Text == "return" || prev.Text == "in" || prev.Text == "typeof" || prev.Text == "new"
	}
	if prev.Kind != token.Punct {
		return false
	}
	switch prev.Text {
	case "=", "(", "[", ",", ":", "=>":
		return true
	}
	return false
}
