package token

// JavaScript reserved words, including the value keywords true/false/null.
// Contextual names (undefined, async, get, set) stay identifiers.
var keywords = map[string]struct{}{
	"break":      {},
	"case":       {},
	"catch":      {},
	"class":      {},
	"const":      {},
	"continue":   {},
	"debugger":   {},
	"default":    {},
	"delete":     {},
	"do":         {},
	"else":       {},
	"export":     {},
	"extends":    {},
	"false":      {},
	"finally":    {},
	"for":        {},
	"function":   {},
	"if":         {},
	"import":     {},
	"in":         {},
	"instanceof": {},
	"let":        {},
	"new":        {},
	"null":       {},
	"return":     {},
	"super":      {},
	"switch":     {},
	"this":       {},
	"throw":      {},
	"true":       {},
	"try":        {},
	"typeof":     {},
	"var":        {},
	"void":       {},
	"while":      {},
	"with":       {},
	"yield":      {},
}

// IsKeywordText reports whether ident is a reserved word. Matching is
// case-sensitive; only lowercase forms are reserved.
func IsKeywordText(ident string) bool {
	_, ok := keywords[ident]
	return ok
}
