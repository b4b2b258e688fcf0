package ruleform

import (
	"github.com/sirkon/ruleform/internal/form"
)

// assemble deterministically composes the final output sequence:
//
//	prefix ++ error markers ++ [position marker] ++ [export] ++
//	header attributes ++ [position marker] ++ [introspection function] ++
//	transformed body forms
//
// Synthetic forms are spliced at two points, and each splice is followed by
// a copy of the current position marker so that diagnostics emitted by later
// stages against the real, following forms still report correct locations.
func assemble(
	cfg Config,
	mod moduleInfo,
	header form.Forms,
	body form.Forms,
	rules []form.NameArity,
	errs []*form.ErrorMarker,
) form.Forms {
	exported := make([]form.NameArity, 0, len(rules)+1)
	exported = append(exported, form.NameArity{Name: cfg.InfoFunc, Arity: 0})
	exported = append(exported, rules...)

	out := make(form.Forms, 0, len(mod.prefix)+len(errs)+len(header)+len(body)+4)
	out = append(out, mod.prefix...)
	for _, e := range errs {
		out = append(out, e)
	}

	marker := mod.marker
	out = append(out, &marker)
	out = append(out, &form.Export{Pos: marker.Pos, Funcs: exported})
	out = append(out, header...)

	again := mod.marker
	out = append(out, &again)
	out = append(out, infoFunction(cfg, marker.Pos, rules))
	out = append(out, body...)

	return out
}

// infoFunction builds the zero-argument introspection function whose single
// clause evaluates to the literal canonical rule identity sequence.
func infoFunction(cfg Config, pos form.Pos, rules []form.NameArity) *form.Function {
	return &form.Function{
		Pos:  pos,
		Name: cfg.InfoFunc,
		Clauses: []form.Clause{{
			Pos:  pos,
			Body: []form.Expr{&form.NameArityList{Pos: pos, Pairs: rules}},
		}},
	}
}
