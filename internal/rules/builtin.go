// Package rules wires the built-in rule set into a registry.
package rules

import (
	"jstyle/internal/rule"
	"jstyle/internal/rules/bracestyle"
	"jstyle/internal/rules/eqeqeq"
	"jstyle/internal/rules/identcase"
	"jstyle/internal/rules/indent"
	"jstyle/internal/rules/maxlinelength"
	"jstyle/internal/rules/nomultipleblanks"
	"jstyle/internal/rules/notrailingspace"
	"jstyle/internal/rules/novar"
	"jstyle/internal/rules/nowarningcomments"
	"jstyle/internal/rules/quotestyle"
	"jstyle/internal/rules/semi"
	"jstyle/internal/rules/syntaxanomaly"
	"jstyle/internal/rules/trailingcomma"
)

// Builtin returns a fresh registry with every built-in rule.
func Builtin() *rule.Registry {
	reg := rule.NewRegistry()
	reg.MustRegister(bracestyle.New())
	reg.MustRegister(eqeqeq.New())
	reg.MustRegister(identcase.New())
	reg.MustRegister(indent.New())
	reg.MustRegister(maxlinelength.New())
	reg.MustRegister(nomultipleblanks.New())
	reg.MustRegister(notrailingspace.New())
	reg.MustRegister(novar.New())
	reg.MustRegister(nowarningcomments.New())
	reg.MustRegister(quotestyle.New())
	reg.MustRegister(semi.New())
	reg.MustRegister(syntaxanomaly.New())
	reg.MustRegister(trailingcomma.New())
	return reg
}
