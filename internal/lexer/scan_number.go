package lexer

import (
	"jstyle/internal/token"
)

// scanNumber consumes a numeric literal: decimal with optional fraction
// and exponent, or a 0x/0b/0o prefixed integer. Malformed digits are not
// validated here; rules inspect the text if they care.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.emit(token.Number, start)
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'b' || b1 == 'B' || b1 == 'o' || b1 == 'O') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.emit(token.Number, start)
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// fraction
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else if lx.cursor.Peek() == '.' && lx.spanLen(start) > 0 {
		// trailing dot as in "1." — part of the literal
		next := lx.cursor.Off + 1
		if next >= lx.cursor.Limit || !isIdentStartByte(lx.file.Content[next]) && lx.file.Content[next] != '.' {
			lx.cursor.Bump()
		}
	}

	// exponent
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		} else {
			lx.cursor.Reset(mark)
		}
	}

	return lx.emit(token.Number, start)
}

func (lx *Lexer) spanLen(start Mark) uint32 {
	return lx.cursor.Off - uint32(start)
}
