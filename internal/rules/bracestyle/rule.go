// Package bracestyle enforces brace placement for blocks.
package bracestyle

import (
	"jstyle/internal/diag"
	"jstyle/internal/rule"
	"jstyle/internal/source"
	"jstyle/internal/token"
)

// Rule checks the one-true-brace style by default: an opening brace
// stays on the line of its clause, and else/catch/finally cuddle up to
// the closing brace. The allman option inverts the first check.
type Rule struct{}

func New() Rule { return Rule{} }

func (Rule) ID() string                     { return "brace-style" }
func (Rule) Description() string            { return "enforce brace placement (1tbs or allman)" }
func (Rule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (Rule) DefaultEnabled() bool           { return true }

func (Rule) Options() []rule.OptionSpec {
	return []rule.OptionSpec{{
		Name:     "style",
		Doc:      "1tbs: brace on the clause line; allman: brace on its own line",
		Default:  "1tbs",
		Validate: rule.OneOf("1tbs", "allman"),
	}}
}

// clauseStart reports whether toks[i] can end a block clause before its {.
func clauseStart(toks []token.Token, i int) bool {
	tok := toks[i]
	if tok.Kind == token.Keyword {
		switch tok.Text {
		case "else", "do", "try", "finally":
			return true
		}
		return false
	}
	return tok.IsPunct(")")
}

func (r Rule) Check(ctx *rule.Context) {
	allman := ctx.StringOption("style", "1tbs") == "allman"
	toks := ctx.Tokens
	for i, tok := range toks {
		switch {
		case tok.IsPunct("{"):
			prev := rule.PrevCode(toks, i-1)
			if prev < 0 || !clauseStart(toks, prev) {
				continue
			}
			sameLine := rule.SameLine(toks, prev, i)
			if allman {
				if sameLine {
					ctx.Report(tok.Span, "opening brace should be on its own line").Emit()
				}
				continue
			}
			if !sameLine {
				r.reportJoin(ctx, toks, prev, i, "opening brace should be on the same line as its clause")
			}

		case tok.Kind == token.Keyword && isCuddleKeyword(tok.Text):
			prev := rule.PrevCode(toks, i-1)
			if prev < 0 || !toks[prev].IsPunct("}") {
				continue
			}
			if allman || rule.SameLine(toks, prev, i) {
				continue
			}
			r.reportJoin(ctx, toks, prev, i, tok.Text+" should be on the same line as the closing brace")
		}
	}
}

func isCuddleKeyword(text string) bool {
	return text == "else" || text == "catch" || text == "finally"
}

// reportJoin flags toks[i] and, when only blank trivia separates the
// two tokens, offers to join the lines with a single space.
func (r Rule) reportJoin(ctx *rule.Context, toks []token.Token, prev, i int, msg string) {
	b := ctx.Report(toks[i].Span, msg)
	if onlyBlankBetween(toks, prev, i) {
		gap := source.Span{
			File:  toks[i].Span.File,
			Start: toks[prev].Span.End,
			End:   toks[i].Span.Start,
		}
		old := ctx.File.Content[gap.Start:gap.End]
		b.WithFix(diag.Edit("join lines", diag.AlwaysSafe, gap, string(old), " "))
	}
	b.Emit()
}

func onlyBlankBetween(toks []token.Token, i, j int) bool {
	for k := i + 1; k < j; k++ {
		switch toks[k].Kind {
		case token.Whitespace, token.Newline:
		default:
			return false
		}
	}
	return true
}
