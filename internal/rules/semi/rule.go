// Package semi requires explicit statement-terminating semicolons.
package semi

import (
	"jstyle/internal/diag"
	"jstyle/internal/rule"
	"jstyle/internal/source"
	"jstyle/internal/token"
)

// Rule flags line ends where automatic semicolon insertion would kick
// in. Without a parse tree this is a heuristic: it only fires when the
// last token of a line can end an expression and the next line cannot
// continue one.
type Rule struct{}

func New() Rule { return Rule{} }

func (Rule) ID() string                     { return "semi" }
func (Rule) Description() string            { return "require semicolons at statement ends" }
func (Rule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (Rule) DefaultEnabled() bool           { return true }
func (Rule) Options() []rule.OptionSpec     { return nil }

// endKeywords are reserved words that can terminate a statement.
var endKeywords = map[string]bool{
	"this": true, "true": true, "false": true, "null": true,
	"return": true, "break": true, "continue": true, "debugger": true,
}

// continuers are punctuators that extend the previous line's
// expression, so no semicolon belongs before them. Opening brackets are
// absent on purpose: a line starting with ( or [ is exactly where ASI
// bites.
var continuers = map[string]bool{
	".": true, "?.": true, ",": true, "?": true, ":": true,
	"+": true, "-": true, "*": true, "/": true, "%": true, "**": true,
	"=": true, "==": true, "===": true, "!=": true, "!==": true,
	"<": true, ">": true, "<=": true, ">=": true,
	"&&": true, "||": true, "??": true, "&": true, "|": true, "^": true,
	"=>": true, "{": true, "}": true, ";": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&&=": true, "||=": true, "??=": true,
	"<<": true, ">>": true, ">>>": true,
}

func (r Rule) Check(ctx *rule.Context) {
	toks := ctx.Tokens
	for i, tok := range toks {
		if tok.Kind != token.Newline && tok.Kind != token.EOF {
			continue
		}
		last := rule.PrevCode(toks, i-1)
		if last < 0 || !rule.SameLine(toks, last, i) {
			continue
		}
		if !endsExpression(toks, last) {
			continue
		}
		next := rule.NextCode(toks, i)
		if next < len(toks) && continuesExpression(toks[next]) {
			continue
		}
		end := toks[last].Span.End
		at := source.Span{File: toks[last].Span.File, Start: end, End: end}
		ctx.Report(at, "missing semicolon").
			WithFix(diag.Edit("insert semicolon", diag.SafeWithHeuristics, at, "", ";")).
			Emit()
	}
}

func endsExpression(toks []token.Token, i int) bool {
	tok := toks[i]
	switch tok.Kind {
	case token.Ident, token.Number:
		return true
	case token.String:
		return !tok.Unterminated
	case token.Keyword:
		return endKeywords[tok.Text]
	case token.Punct:
		switch tok.Text {
		case "++", "--", "]":
			return true
		case ")":
			return !isControlClause(toks, i)
		}
	}
	return false
}

// isControlClause reports whether the ) at index i closes the condition
// of if/for/while/switch/catch/with, where no semicolon belongs.
func isControlClause(toks []token.Token, i int) bool {
	depth := 0
	for j := i; j >= 0; j-- {
		if toks[j].Kind != token.Punct {
			continue
		}
		switch toks[j].Text {
		case ")":
			depth++
		case "(":
			depth--
			if depth == 0 {
				k := rule.PrevCode(toks, j-1)
				if k < 0 {
					return false
				}
				switch toks[k].Text {
				case "if", "for", "while", "switch", "catch", "with":
					return toks[k].Kind == token.Keyword
				}
				return false
			}
		}
	}
	return false
}

func continuesExpression(tok token.Token) bool {
	return tok.Kind == token.Punct && continuers[tok.Text]
}
