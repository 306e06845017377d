// Package identcase enforces naming conventions for declared names.
package identcase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"jstyle/internal/diag"
	"jstyle/internal/rule"
	"jstyle/internal/token"
)

// Rule checks names at their declaration site: class names are
// PascalCase, variables are camelCase (const also accepts
// UPPER_SNAKE), and functions are camelCase unless they act as a
// constructor. A function counts as a constructor when its body
// assigns to a property of this.
//
// Renaming is never offered as a fix; a note carries the suggested
// spelling instead.
type Rule struct{}

func New() Rule { return Rule{} }

func (Rule) ID() string                     { return "ident-case" }
func (Rule) Description() string            { return "enforce camelCase and PascalCase naming" }
func (Rule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (Rule) DefaultEnabled() bool           { return true }
func (Rule) Options() []rule.OptionSpec     { return nil }

func (r Rule) Check(ctx *rule.Context) {
	toks := ctx.Tokens
	for i, tok := range toks {
		if tok.Kind != token.Keyword {
			continue
		}
		switch tok.Text {
		case "class":
			name := rule.NextCode(toks, i+1)
			if name < len(toks) && toks[name].Kind == token.Ident {
				r.require(ctx, toks[name], pascal)
			}
		case "function":
			name := rule.NextCode(toks, i+1)
			if name >= len(toks) || toks[name].Kind != token.Ident {
				continue
			}
			want := camel
			if isConstructor(toks, name) {
				want = pascal
			}
			r.require(ctx, toks[name], want)
		case "var", "let", "const":
			name := rule.NextCode(toks, i+1)
			if name >= len(toks) || toks[name].Kind != token.Ident {
				continue
			}
			if tok.Text == "const" && isUpperSnake(toks[name].Text) {
				continue
			}
			r.require(ctx, toks[name], camel)
		}
	}
}

type convention uint8

const (
	camel convention = iota
	pascal
)

func (c convention) describe() string {
	if c == pascal {
		return "PascalCase"
	}
	return "camelCase"
}

func (c convention) check(name string) bool {
	if strings.ContainsRune(name, '_') {
		return false
	}
	first := name[0]
	if c == pascal {
		return first >= 'A' && first <= 'Z'
	}
	return first == '$' || (first >= 'a' && first <= 'z')
}

func (r Rule) require(ctx *rule.Context, tok token.Token, want convention) {
	name := tok.Text
	if name == "" || want.check(name) {
		return
	}
	b := ctx.Report(tok.Span, name+" should be "+want.describe())
	if s := suggest(name, want); s != "" && s != name {
		b.WithNote(tok.Span, "consider "+s)
	}
	b.Emit()
}

// suggest rewrites name into the target convention: underscores split
// segments, the first segment keeps or drops its capital, and the rest
// are title-cased.
func suggest(name string, want convention) string {
	segments := strings.FieldsFunc(name, func(r rune) bool { return r == '_' })
	if len(segments) == 0 {
		return ""
	}
	// Casers are stateful, so one per call; Check must stay safe for
	// concurrent use across files.
	titler := cases.Title(language.English)
	var sb strings.Builder
	for i, seg := range segments {
		if i == 0 && want == camel {
			sb.WriteString(strings.ToLower(seg[:1]) + seg[1:])
			continue
		}
		sb.WriteString(titler.String(strings.ToLower(seg)))
	}
	return sb.String()
}

func isUpperSnake(name string) bool {
	for i := 0; i < len(name); i++ {
		b := name[i]
		switch {
		case b >= 'A' && b <= 'Z':
		case b >= '0' && b <= '9':
		case b == '_' || b == '$':
		default:
			return false
		}
	}
	return true
}

// isConstructor looks inside the function body for an assignment to a
// property of this.
func isConstructor(toks []token.Token, name int) bool {
	// Skip the parameter list, then enter the body.
	open := rule.NextCode(toks, name+1)
	if open >= len(toks) || !toks[open].IsPunct("(") {
		return false
	}
	depth := 0
	i := open
	for ; i < len(toks); i++ {
		if toks[i].IsPunct("(") {
			depth++
		} else if toks[i].IsPunct(")") {
			depth--
			if depth == 0 {
				break
			}
		}
	}
	body := rule.NextCode(toks, i+1)
	if body >= len(toks) || !toks[body].IsPunct("{") {
		return false
	}
	depth = 0
	for j := body; j < len(toks); j++ {
		if toks[j].IsPunct("{") {
			depth++
		} else if toks[j].IsPunct("}") {
			depth--
			if depth == 0 {
				return false
			}
		}
		if !toks[j].IsKeyword("this") {
			continue
		}
		dot := rule.NextCode(toks, j+1)
		if dot >= len(toks) || !toks[dot].IsPunct(".") {
			continue
		}
		prop := rule.NextCode(toks, dot+1)
		if prop >= len(toks) || toks[prop].Kind != token.Ident {
			continue
		}
		eq := rule.NextCode(toks, prop+1)
		if eq < len(toks) && toks[eq].IsPunct("=") {
			return true
		}
	}
	return false
}
