package rule

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownRule is returned when a rule id is not registered.
	ErrUnknownRule = errors.New("unknown rule")
	// ErrDuplicateRule is returned when an id is registered twice.
	ErrDuplicateRule = errors.New("duplicate rule")
)

// Registry holds the known rules keyed by id. Build it once at startup
// and treat it as read-only afterwards; lookups are then safe from any
// goroutine.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register adds a rule. Registering an id twice is a programming error
// and fails with ErrDuplicateRule.
func (reg *Registry) Register(r Rule) error {
	id := r.ID()
	if id == "" {
		return errors.New("rule with empty id")
	}
	if _, exists := reg.rules[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, id)
	}
	reg.rules[id] = r
	return nil
}

// MustRegister is Register for init-time wiring of built-ins.
func (reg *Registry) MustRegister(r Rule) {
	if err := reg.Register(r); err != nil {
		panic(err)
	}
}

// Get looks up a rule by id.
func (reg *Registry) Get(id string) (Rule, error) {
	r, ok := reg.rules[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, id)
	}
	return r, nil
}

// Has reports whether id is registered.
func (reg *Registry) Has(id string) bool {
	_, ok := reg.rules[id]
	return ok
}

// Len returns the number of registered rules.
func (reg *Registry) Len() int {
	return len(reg.rules)
}

// All returns the rules sorted by id.
func (reg *Registry) All() []Rule {
	out := make([]Rule, 0, len(reg.rules))
	for _, r := range reg.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// IDs returns the registered ids sorted ascending.
func (reg *Registry) IDs() []string {
	out := make([]string, 0, len(reg.rules))
	for id := range reg.rules {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
