// Package diag defines the diagnostic model shared by the lexer-level
// rules, the engine, and the formatters.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Rule – the string id of the rule that fired.
//   - Severity – tri-level enum (Info, Warning, Error).
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing at the issue.
//   - Notes – optional secondary spans with additional context.
//   - Fixes – optional Fix records describing automated corrections.
//
// # Fix suggestions
//
// A Fix carries a title, an applicability level (AlwaysSafe,
// SafeWithHeuristics, ManualReview), and concrete TextEdits. Edits use
// source byte spans; OldText acts as an optional guard the fix engine
// checks before touching anything. Fixes are data-only: this package
// never applies them.
//
// # Emitting
//
// Rules receive a Reporter and either call Report directly or chain a
// ReportBuilder (WithNote / WithFix, then Emit). BagReporter collects
// into a Bag, which supports capping, sorting, deduplication, and
// merging across files.
//
// Keep the model deterministic and side-effect free so results can be
// serialized for caching and compared byte-for-byte in tests.
package diag
