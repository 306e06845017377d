package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"jstyle/internal/diag"
	"jstyle/internal/rule"
)

// ErrInvalidOption marks a rule option rejected by its schema.
var ErrInvalidOption = errors.New("invalid option")

// DefaultMaxViolations caps diagnostics per run unless configured.
const DefaultMaxViolations = 1000

// ResolvedRule is the effective setting for one rule.
type ResolvedRule struct {
	ID       string
	Enabled  bool
	Severity diag.Severity
	Options  map[string]any
}

// Resolved is the outcome of merging registry defaults with a config
// file. Immutable after Resolve; safe to share across goroutines.
type Resolved struct {
	MaxViolations int

	rules     map[string]ResolvedRule
	order     []string
	ignore    []glob.Glob
	ignoreSrc []string
	overrides []compiledOverride
}

type compiledOverride struct {
	globs    []glob.Glob
	patterns []string
	rules    map[string]RuleConfig
}

// Resolve merges cfg over the registry defaults. Every rule id, every
// severity string, and every option is validated; the first problem
// aborts with an error so a broken config never half-applies.
func Resolve(reg *rule.Registry, cfg *File) (*Resolved, error) {
	if cfg == nil {
		cfg = Default()
	}
	res := &Resolved{
		MaxViolations: DefaultMaxViolations,
		rules:         make(map[string]ResolvedRule, reg.Len()),
		order:         reg.IDs(),
	}
	if cfg.MaxViolations > 0 {
		res.MaxViolations = cfg.MaxViolations
	}

	for _, r := range reg.All() {
		opts := make(map[string]any)
		for _, spec := range r.Options() {
			opts[spec.Name] = spec.Default
		}
		res.rules[r.ID()] = ResolvedRule{
			ID:       r.ID(),
			Enabled:  r.DefaultEnabled(),
			Severity: r.DefaultSeverity(),
			Options:  opts,
		}
	}

	ids := make([]string, 0, len(cfg.Rules))
	for id := range cfg.Rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		merged, err := applyRuleConfig(reg, res.rules[id], id, cfg.Rules[id])
		if err != nil {
			return nil, err
		}
		res.rules[id] = merged
	}

	for _, pattern := range cfg.Ignore {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("ignore pattern %q: %w", pattern, err)
		}
		res.ignore = append(res.ignore, g)
		res.ignoreSrc = append(res.ignoreSrc, pattern)
	}

	for _, ov := range cfg.Overrides {
		if len(ov.Files) == 0 {
			return nil, errors.New("override without files patterns")
		}
		co := compiledOverride{rules: ov.Rules, patterns: ov.Files}
		for _, pattern := range ov.Files {
			g, err := glob.Compile(pattern, '/')
			if err != nil {
				return nil, fmt.Errorf("override pattern %q: %w", pattern, err)
			}
			co.globs = append(co.globs, g)
		}
		// Validate override ids and options up front.
		for id, rc := range ov.Rules {
			if _, err := applyRuleConfig(reg, res.rules[id], id, rc); err != nil {
				return nil, err
			}
		}
		res.overrides = append(res.overrides, co)
	}

	return res, nil
}

// applyRuleConfig merges rc over base field by field. Options merge
// key by key so setting one option keeps the defaults of the others.
func applyRuleConfig(reg *rule.Registry, base ResolvedRule, id string, rc RuleConfig) (ResolvedRule, error) {
	r, err := reg.Get(id)
	if err != nil {
		return base, err
	}
	if rc.Enabled != nil {
		base.Enabled = *rc.Enabled
	}
	if rc.Severity != "" {
		sev, err := diag.ParseSeverity(rc.Severity)
		if err != nil {
			return base, fmt.Errorf("rule %s: %w", id, err)
		}
		base.Severity = sev
	}
	if len(rc.Options) > 0 {
		if err := rule.ValidateOptions(r, rc.Options); err != nil {
			return base, fmt.Errorf("%w: %v", ErrInvalidOption, err)
		}
		merged := make(map[string]any, len(base.Options)+len(rc.Options))
		for k, v := range base.Options {
			merged[k] = v
		}
		for k, v := range rc.Options {
			merged[k] = v
		}
		base.Options = merged
	}
	return base, nil
}

// Rule returns the effective setting for id.
func (res *Resolved) Rule(id string) (ResolvedRule, bool) {
	r, ok := res.rules[id]
	return r, ok
}

// Rules returns all effective settings in id order.
func (res *Resolved) Rules() []ResolvedRule {
	out := make([]ResolvedRule, 0, len(res.order))
	for _, id := range res.order {
		out = append(out, res.rules[id])
	}
	return out
}

// RulesFor returns the effective settings for one file, with matching
// overrides applied in declaration order. reg must be the registry the
// config was resolved against; override contents were validated during
// Resolve, so application cannot fail.
func (res *Resolved) RulesFor(reg *rule.Registry, path string) []ResolvedRule {
	norm := filepath.ToSlash(path)
	effective := res.rules
	copied := false
	for _, ov := range res.overrides {
		if !matchAny(ov.globs, norm) {
			continue
		}
		if !copied {
			clone := make(map[string]ResolvedRule, len(effective))
			for k, v := range effective {
				clone[k] = v
			}
			effective = clone
			copied = true
		}
		for id, rc := range ov.rules {
			if merged, err := applyRuleConfig(reg, effective[id], id, rc); err == nil {
				effective[id] = merged
			}
		}
	}
	out := make([]ResolvedRule, 0, len(res.order))
	for _, id := range res.order {
		out = append(out, effective[id])
	}
	return out
}

// Ignored reports whether the path matches an ignore pattern.
func (res *Resolved) Ignored(path string) bool {
	return matchAny(res.ignore, filepath.ToSlash(path))
}

func matchAny(globs []glob.Glob, path string) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}
