package rule

import (
	"jstyle/internal/diag"
	"jstyle/internal/source"
	"jstyle/internal/token"
)

// Context is everything a rule sees for one file: the file, its full
// token stream, the resolved options, and a reporter. The engine builds
// one Context per (file, rule) pair with severity already resolved.
type Context struct {
	File     *source.File
	Tokens   []token.Token
	Severity diag.Severity

	ruleID   string
	options  map[string]any
	reporter diag.Reporter
}

// NewContext wires a context for one rule run. options must already be
// merged (defaults plus overrides).
func NewContext(file *source.File, tokens []token.Token, ruleID string, sev diag.Severity, options map[string]any, reporter diag.Reporter) *Context {
	return &Context{
		File:     file,
		Tokens:   tokens,
		Severity: sev,
		ruleID:   ruleID,
		options:  options,
		reporter: reporter,
	}
}

// Option returns the merged value for name, or nil if unset.
func (c *Context) Option(name string) any {
	return c.options[name]
}

// StringOption returns the option as a string, falling back to def.
func (c *Context) StringOption(name, def string) string {
	if s, ok := c.options[name].(string); ok {
		return s
	}
	return def
}

// BoolOption returns the option as a bool, falling back to def.
func (c *Context) BoolOption(name string, def bool) bool {
	if b, ok := c.options[name].(bool); ok {
		return b
	}
	return def
}

// IntOption returns the option as an int, falling back to def.
func (c *Context) IntOption(name string, def int) int {
	if n, ok := toInt(c.options[name]); ok {
		return int(n)
	}
	return def
}

// Report starts a diagnostic for this rule at sp. Call Emit on the
// returned builder (or chain WithFix/WithNote first).
func (c *Context) Report(sp source.Span, msg string) *diag.ReportBuilder {
	return diag.NewReportBuilder(c.reporter, c.ruleID, c.Severity, sp, msg)
}
