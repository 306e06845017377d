package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Unknown indicates a run of bytes the scanner could not classify.
	Unknown Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Ident represents an identifier token.
	Ident
	// Keyword represents a reserved word.
	Keyword
	// String represents a string literal, including its quotes.
	String
	// Number represents a numeric literal.
	Number
	// Punct represents an operator or punctuation token.
	Punct
	// Comment represents a line or block comment, delimiters included.
	Comment
	// Whitespace represents a run of spaces and tabs.
	Whitespace
	// Newline represents a single line feed.
	Newline
)

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Keyword:
		return "Keyword"
	case String:
		return "String"
	case Number:
		return "Number"
	case Punct:
		return "Punct"
	case Comment:
		return "Comment"
	case Whitespace:
		return "Whitespace"
	case Newline:
		return "Newline"
	}
	return "Invalid"
}

// CommentStyle distinguishes comment delimiters without splitting the kind.
type CommentStyle uint8

const (
	// StyleNone is the zero value for non-comment tokens.
	StyleNone CommentStyle = iota
	// StyleLine is a // comment running to end of line.
	StyleLine
	// StyleBlock is a /* */ comment.
	StyleBlock
)

func (s CommentStyle) String() string {
	switch s {
	case StyleLine:
		return "line"
	case StyleBlock:
		return "block"
	}
	return "none"
}
