package rule

import "jstyle/internal/token"

// NextCode returns the index of the first non-trivia token at or after
// i, or len(tokens) when none remains. EOF counts as code.
func NextCode(tokens []token.Token, i int) int {
	for ; i < len(tokens); i++ {
		if !tokens[i].IsTrivia() {
			return i
		}
	}
	return len(tokens)
}

// PrevCode returns the index of the last non-trivia token at or before
// i, or -1 when none exists.
func PrevCode(tokens []token.Token, i int) int {
	for ; i >= 0; i-- {
		if i < len(tokens) && !tokens[i].IsTrivia() {
			return i
		}
	}
	return -1
}

// SameLine reports whether no newline token sits between indexes i and
// j (exclusive bounds ordered either way).
func SameLine(tokens []token.Token, i, j int) bool {
	if i > j {
		i, j = j, i
	}
	for k := i + 1; k < j && k < len(tokens); k++ {
		if tokens[k].Kind == token.Newline {
			return false
		}
	}
	return true
}
