package ruleform

import (
	"github.com/sirkon/ruleform/internal/form"
)

// Result is the outcome of one transform invocation.
type Result struct {
	// Forms is the rewritten sequence, error markers included.
	Forms form.Forms

	// Module is the resolved module name, or a synthesized placeholder
	// when the input declares none.
	Module string

	// Rules lists every discovered rule identity in canonical order.
	Rules []form.NameArity

	// Errors are the markers emitted by this invocation, in emission
	// order. They are already embedded in Forms; the slice is for callers
	// that only need the diagnostics.
	Errors []*form.ErrorMarker
}

// Transform rewrites a module's declaration sequence in a single pass.
// Every rule declaration becomes an ordinary function, generator
// expressions inside rule bodies become explicit bindings, and synthetic
// declarations are spliced in: position markers, an export list, and an
// introspection function enumerating all discovered rules.
//
// The call never fails on the violations it diagnoses; both a
// parameterized module declaration and a binary generator inside a rule
// body become error marker forms in the output while the rest of the
// module is still processed.
//
// A nil fresh falls back to a private instance. The input must not have
// been processed by this transform before: running it on its own output
// would duplicate the export list and the introspection function.
func Transform(forms form.Forms, cfg Config, fresh *FreshNames) Result {
	cfg = cfg.withDefaults()
	if fresh == nil {
		fresh = NewFreshNames("")
	}

	mod := analyze(forms, cfg, fresh)
	header, body := splitHeader(mod.rest)
	rules := collectRules(forms)
	rewritten, rerrs := rewriteBody(cfg, body)

	errs := make([]*form.ErrorMarker, 0, len(mod.errs)+len(rerrs))
	errs = append(errs, mod.errs...)
	errs = append(errs, rerrs...)

	return Result{
		Forms:  assemble(cfg, mod, header, rewritten, rules, errs),
		Module: mod.name,
		Rules:  rules,
		Errors: errs,
	}
}
