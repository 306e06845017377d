// Package quotestyle enforces one quote character for string literals.
package quotestyle

import (
	"fmt"
	"strings"

	"jstyle/internal/diag"
	"jstyle/internal/rule"
	"jstyle/internal/token"
)

// Rule flags string literals using the non-preferred quote character.
// Template literals are always left alone.
type Rule struct{}

func New() Rule { return Rule{} }

func (Rule) ID() string                     { return "quote-style" }
func (Rule) Description() string            { return "enforce single or double quotes for string literals" }
func (Rule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (Rule) DefaultEnabled() bool           { return true }

func (Rule) Options() []rule.OptionSpec {
	return []rule.OptionSpec{{
		Name:     "preferred",
		Doc:      "quote character to enforce: single or double",
		Default:  "single",
		Validate: rule.OneOf("single", "double"),
	}}
}

func (r Rule) Check(ctx *rule.Context) {
	want := byte('\'')
	other := byte('"')
	if ctx.StringOption("preferred", "single") == "double" {
		want, other = other, want
	}

	for _, tok := range ctx.Tokens {
		if tok.Kind != token.String || tok.Unterminated {
			continue
		}
		q := tok.Quote()
		if q != other {
			continue
		}
		b := ctx.Report(tok.Span, fmt.Sprintf("string should use %s quotes", quoteName(want)))
		if fixed, ok := requote(tok.Text, want); ok {
			b.WithFix(diag.Edit("replace quotes", diag.AlwaysSafe, tok.Span, tok.Text, fixed))
		}
		b.Emit()
	}
}

// requote swaps the delimiters of a complete string literal. Literals
// whose body contains the target quote or a backslash are left for a
// human: re-escaping them is not worth the risk.
func requote(text string, want byte) (string, bool) {
	if len(text) < 2 {
		return "", false
	}
	body := text[1 : len(text)-1]
	if strings.IndexByte(body, want) >= 0 || strings.IndexByte(body, '\\') >= 0 {
		return "", false
	}
	return string(want) + body + string(want), true
}

func quoteName(q byte) string {
	if q == '\'' {
		return "single"
	}
	return "double"
}
