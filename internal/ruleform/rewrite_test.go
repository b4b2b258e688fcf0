package ruleform

import (
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/ruleform/internal/form"
)

func TestRewriteRule(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("plain generator", func(t *testing.T) {
		genPos := form.Pos{File: "routes.rl", Line: 6, Col: 9}
		srcPos := form.Pos{File: "routes.rl", Line: 6, Col: 14}
		r := &form.Rule{
			Pos:  form.Pos{File: "routes.rl", Line: 5},
			Name: "path",
			Clauses: []form.Clause{{
				Patterns: []form.Expr{&form.Term{Text: "X"}},
				Body: []form.Expr{&form.Generator{
					Pos:     genPos,
					Pattern: &form.Term{Text: "Z"},
					Source:  &form.Term{Pos: srcPos, Text: "edges(X)"},
				}},
			}},
		}

		fn, errs := rewriteRule(cfg, r)
		if len(errs) != 0 {
			t.Fatalf("no errors were expected, got %v", errs)
		}

		want := &form.Function{
			Pos:  r.Pos,
			Name: "path",
			Clauses: []form.Clause{{
				Patterns: []form.Expr{&form.Term{Text: "X"}},
				Body: []form.Expr{&form.Match{
					Pos:     genPos,
					Pattern: &form.Term{Text: "Z"},
					Value: &form.Call{
						Pos: genPos,
						Ref: form.Ref{Module: "ruleform_rt", Name: "eval_generator"},
						Args: []form.Expr{&form.Quoted{
							Pos:  srcPos,
							Expr: &form.Term{Pos: srcPos, Text: "edges(X)"},
						}},
					},
				}},
			}},
		}
		if !reflect.DeepEqual(want, fn) {
			deepequal.SideBySide(t, "function", want, fn)
		}
	})

	t.Run("binary generator", func(t *testing.T) {
		srcPos := form.Pos{File: "caps.rl", Line: 5, Col: 14}
		r := &form.Rule{
			Pos:  form.Pos{File: "caps.rl", Line: 4},
			Name: "burst",
			Clauses: []form.Clause{{
				Patterns: []form.Expr{&form.Term{Text: "N"}},
				Body: []form.Expr{&form.BinaryGenerator{
					Pos:     form.Pos{File: "caps.rl", Line: 5, Col: 9},
					Pattern: &form.Term{Text: "P"},
					Source:  &form.Term{Pos: srcPos, Text: "packets(N)"},
				}},
			}},
		}

		fn, errs := rewriteRule(cfg, r)

		// The construct is neutralized into a plain binding, not dropped.
		want := []form.Expr{&form.Match{
			Pos:     form.Pos{File: "caps.rl", Line: 5, Col: 9},
			Pattern: &form.Term{Text: "P"},
			Value:   &form.Term{Pos: srcPos, Text: "packets(N)"},
		}}
		if !reflect.DeepEqual(want, fn.Clauses[0].Body) {
			deepequal.SideBySide(t, "clause body", want, fn.Clauses[0].Body)
		}

		if len(errs) != 1 {
			t.Fatalf("exactly one error was expected, got %v", errs)
		}
		if errs[0].Kind != form.ErrBinaryGenerator {
			t.Fatalf("unexpected error kind %s", errs[0].Kind)
		}
		if errs[0].Pos != srcPos {
			t.Fatalf("the error must point at the source expression, got %s", errs[0].Pos)
		}
		if errs[0].Origin != cfg.Origin {
			t.Fatalf("unexpected error origin %q", errs[0].Origin)
		}
	})

	t.Run("other expressions pass through", func(t *testing.T) {
		keepMe := &form.Term{Pos: form.Pos{File: "m.rl", Line: 3}, Text: "reach(Z)"}
		r := &form.Rule{
			Name: "walk",
			Clauses: []form.Clause{{
				Patterns: []form.Expr{&form.Term{Text: "X"}},
				Guard:    []form.Expr{&form.Term{Text: "is_atom(X)"}},
				Body:     []form.Expr{keepMe},
			}},
		}

		fn, errs := rewriteRule(cfg, r)
		if len(errs) != 0 {
			t.Fatalf("no errors were expected, got %v", errs)
		}
		if fn.Clauses[0].Body[0] != form.Expr(keepMe) {
			t.Fatal("pass-through expressions must be kept as is")
		}
		if len(fn.Clauses[0].Guard) != 1 {
			t.Fatal("guards must be kept")
		}
	})
}

func TestRewriteBody(t *testing.T) {
	cfg := DefaultConfig()

	attr := &form.Attribute{Name: "late"}
	free := &form.Function{Name: "free"}
	r := &form.Rule{
		Pos:  form.Pos{File: "m.rl", Line: 4},
		Name: "foo",
		Clauses: []form.Clause{
			{Body: []form.Expr{&form.BinaryGenerator{
				Pattern: &form.Term{Text: "A"},
				Source:  &form.Term{Pos: form.Pos{File: "m.rl", Line: 5}, Text: "one()"},
			}}},
			{Body: []form.Expr{&form.BinaryGenerator{
				Pattern: &form.Term{Text: "B"},
				Source:  &form.Term{Pos: form.Pos{File: "m.rl", Line: 6}, Text: "two()"},
			}}},
		},
	}

	out, errs := rewriteBody(cfg, form.Forms{attr, r, free})

	if len(out) != 3 {
		t.Fatalf("expected 3 forms, got %d", len(out))
	}
	if out[0] != form.Form(attr) || out[2] != form.Form(free) {
		t.Fatal("non-rule forms must pass through in their original order")
	}
	fn, ok := out[1].(*form.Function)
	if !ok {
		t.Fatalf("the rule must become a function, got %T", out[1])
	}
	if fn.Name != "foo" || len(fn.Clauses) != 2 || fn.Pos != r.Pos {
		t.Fatal("the function must keep the rule's name, clause count and position")
	}

	// One marker per occurrence, in traversal order.
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0].Pos.Line != 5 || errs[1].Pos.Line != 6 {
		t.Fatalf("errors are out of order: %s, %s", errs[0].Pos, errs[1].Pos)
	}
}
