// Package token defines the lexical vocabulary shared by the lexer,
// the rules, and the formatters.
//
// The token model is deliberately small: nine kinds plus EOF. Style
// rules need to see everything the author typed, so whitespace runs,
// newlines, and comments are first-class tokens rather than attached
// trivia. The partition invariant follows from that: tokens cover the
// source exactly, with no gaps and no overlaps, and the concatenation
// of their Text fields reproduces the input byte-for-byte.
//
// Comments keep their delimiter style (line vs block) as an attribute
// instead of separate kinds, since most rules treat comments uniformly
// and the few that care (directive scanning) can branch on Style.
//
// Unknown is not an error: the lexer never fails, it emits Unknown
// tokens for byte runs it cannot classify and leaves reporting to the
// syntax-anomaly rule.
package token
