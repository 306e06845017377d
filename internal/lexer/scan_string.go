package lexer

import (
	"jstyle/internal/token"
)

// scanString consumes a string literal delimited by ', ", or `.
// Quoted strings end at the closing quote or, when the author forgot
// one, before the newline with Unterminated set. Template literals may
// span lines. An escaped newline inside a quoted string is a legal
// line continuation.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	template := quote == '`'

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			return lx.emit(token.String, start)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' && !template {
			tok := lx.emit(token.String, start)
			tok.Unterminated = true
			return tok
		}
		lx.cursor.Bump()
	}

	tok := lx.emit(token.String, start)
	tok.Unterminated = true
	return tok
}
