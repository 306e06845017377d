package rule

import (
	"fmt"

	"jstyle/internal/diag"
)

// Rule is a pure check over the token stream of one file. Implementations
// must be stateless: the engine may call Check concurrently for
// different files.
type Rule interface {
	// ID is the stable identifier used in config files and output,
	// kebab-case by convention.
	ID() string
	// Description is a one-line summary for listings.
	Description() string
	// DefaultSeverity is used when config does not override it.
	DefaultSeverity() diag.Severity
	// DefaultEnabled reports whether the rule runs without explicit
	// opt-in.
	DefaultEnabled() bool
	// Options declares the rule's option schema. Rules without options
	// return nil.
	Options() []OptionSpec
	// Check inspects ctx.Tokens and reports violations through ctx.
	Check(ctx *Context)
}

// FileFilter is an optional interface for rules that only want a
// subset of files. Rules without it apply to every linted file.
type FileFilter interface {
	AppliesTo(path string) bool
}

// AppliesTo reports whether r wants to check the file at path.
func AppliesTo(r Rule, path string) bool {
	if f, ok := r.(FileFilter); ok {
		return f.AppliesTo(path)
	}
	return true
}

// OptionSpec declares one configurable option of a rule.
type OptionSpec struct {
	Name    string
	Doc     string
	Default any
	// Validate rejects bad values. Nil means any value of the default's
	// dynamic type is accepted.
	Validate func(value any) error
}

// OneOf builds a validator accepting only the listed string values.
func OneOf(allowed ...string) func(any) error {
	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("want a string, got %T", value)
		}
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return fmt.Errorf("%q is not one of %v", s, allowed)
	}
}

// PositiveInt builds a validator accepting integers greater than zero.
// Config decoders hand integers over as int64.
func PositiveInt() func(any) error {
	return func(value any) error {
		n, ok := toInt(value)
		if !ok {
			return fmt.Errorf("want an integer, got %T", value)
		}
		if n <= 0 {
			return fmt.Errorf("want a positive integer, got %d", n)
		}
		return nil
	}
}

// BoolOption builds a validator accepting booleans.
func BoolOption() func(any) error {
	return func(value any) error {
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("want a boolean, got %T", value)
		}
		return nil
	}
}

func toInt(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}

// ValidateOptions checks opts against the rule's schema: every key must
// be declared and every value must pass its validator.
func ValidateOptions(r Rule, opts map[string]any) error {
	specs := r.Options()
	byName := make(map[string]OptionSpec, len(specs))
	for _, s := range specs {
		byName[s.Name] = s
	}
	for name, value := range opts {
		spec, ok := byName[name]
		if !ok {
			return fmt.Errorf("rule %s has no option %q", r.ID(), name)
		}
		if spec.Validate != nil {
			if err := spec.Validate(value); err != nil {
				return fmt.Errorf("rule %s option %q: %w", r.ID(), name, err)
			}
		}
	}
	return nil
}

// Descriptor is the static metadata of a rule, for listings and caching.
type Descriptor struct {
	ID              string
	Description     string
	DefaultSeverity diag.Severity
	DefaultEnabled  bool
	Options         []OptionSpec
}

// Describe extracts a Descriptor from a rule.
func Describe(r Rule) Descriptor {
	return Descriptor{
		ID:              r.ID(),
		Description:     r.Description(),
		DefaultSeverity: r.DefaultSeverity(),
		DefaultEnabled:  r.DefaultEnabled(),
		Options:         r.Options(),
	}
}
