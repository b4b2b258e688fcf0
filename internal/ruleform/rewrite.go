package ruleform

import (
	"github.com/sirkon/ruleform/internal/form"
)

// rewriteBody converts every rule form among the body forms into a function
// form, rewriting generator expressions in its clause bodies. All other
// forms pass through unchanged, in their original relative order. Errors
// from all clauses concatenate in traversal order.
func rewriteBody(cfg Config, body form.Forms) (form.Forms, []*form.ErrorMarker) {
	out := make(form.Forms, 0, len(body))
	var errs []*form.ErrorMarker

	for _, f := range body {
		r, ok := f.(*form.Rule)
		if !ok {
			out = append(out, f)
			continue
		}

		fn, ferrs := rewriteRule(cfg, r)
		out = append(out, fn)
		errs = append(errs, ferrs...)
	}

	return out, errs
}

// rewriteRule turns a rule into a function of the same name and clause
// count, carrying the rule's position. Inside clause bodies:
//
//   - a plain generator becomes a binding whose right-hand side calls the
//     runtime support hook with the original source expression quoted;
//   - a binary generator becomes a plain binding of its pattern to the
//     source expression, plus a binary_generator marker — neutralized but
//     flagged, never dropped;
//   - anything else passes through with its position untouched.
func rewriteRule(cfg Config, r *form.Rule) (*form.Function, []*form.ErrorMarker) {
	clauses := make([]form.Clause, len(r.Clauses))
	var errs []*form.ErrorMarker

	for i, c := range r.Clauses {
		var body []form.Expr
		if c.Body != nil {
			body = make([]form.Expr, len(c.Body))
		}
		for j, e := range c.Body {
			switch v := e.(type) {
			case *form.Generator:
				body[j] = &form.Match{
					Pos:     v.Pos,
					Pattern: v.Pattern,
					Value: &form.Call{
						Pos: v.Pos,
						Ref: cfg.Support,
						Args: []form.Expr{
							&form.Quoted{Pos: v.Source.ExprPos(), Expr: v.Source},
						},
					},
				}

			case *form.BinaryGenerator:
				body[j] = &form.Match{Pos: v.Pos, Pattern: v.Pattern, Value: v.Source}
				errs = append(errs, &form.ErrorMarker{
					Pos:    exprPosOr(v.Source, v.Pos),
					Origin: cfg.Origin,
					Kind:   form.ErrBinaryGenerator,
				})

			default:
				body[j] = e
			}
		}

		clauses[i] = form.Clause{
			Pos:      c.Pos,
			Patterns: c.Patterns,
			Guard:    c.Guard,
			Body:     body,
		}
	}

	return &form.Function{Pos: r.Pos, Name: r.Name, Clauses: clauses}, errs
}

// exprPosOr prefers the expression's own position, falling back when the
// expression carries none.
func exprPosOr(e form.Expr, fallback form.Pos) form.Pos {
	if e == nil {
		return fallback
	}
	if pos := e.ExprPos(); pos != (form.Pos{}) {
		return pos
	}

	return fallback
}
