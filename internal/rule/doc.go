// Package rule defines the rule contract and the registry.
//
// A Rule is a pure predicate over the token stream of one file: given a
// Context (file, tokens, merged options, reporter) it emits zero or
// more diagnostics and never mutates anything. Statelessness is the
// core requirement; the engine runs rules for different files
// concurrently.
//
// The Registry maps ids to rules. Ids are unique: a second Register of
// the same id fails with ErrDuplicateRule, and lookups of unregistered
// ids fail with ErrUnknownRule. Build the registry once during startup,
// then share it read-only.
//
// Options are declared through OptionSpec so the config resolver can
// reject unknown keys and bad values before any file is linted.
package rule
