package form

import (
	"testing"
)

func TestPretty(t *testing.T) {
	fs := Forms{
		&FileMarker{File: "routes.rl", Line: 1},
		&Module{Name: "routes"},
		&Export{Funcs: []NameArity{{Name: "rule_info", Arity: 0}, {Name: "path", Arity: 2}}},
		&Attribute{Name: "author", Value: &Term{Text: "nid"}},
		&Rule{Name: "path", Clauses: []Clause{{
			Patterns: []Expr{&Term{Text: "X"}, &Term{Text: "Y"}},
			Guard:    []Expr{&Term{Text: "is_atom(X)"}},
			Body: []Expr{&Generator{
				Pattern: &Term{Text: "Z"},
				Source:  &Term{Text: "edges(X)"},
			}},
		}}},
		&Function{Name: "rule_info", Clauses: []Clause{{
			Body: []Expr{&NameArityList{Pairs: []NameArity{{Name: "path", Arity: 2}}}},
		}}},
		&ErrorMarker{
			Pos:    Pos{File: "routes.rl", Line: 5, Col: 9},
			Origin: "ruleform",
			Kind:   ErrBinaryGenerator,
		},
		&Opaque{Text: "eof"},
	}

	const want = `FileMarker "routes.rl" 1
Module routes
Export [rule_info/0, path/2]
Attribute author <- nid
Rule path/2 {
  (X, Y) when is_atom(X) ->
    Z <- edges(X)
}
Function rule_info/0 {
  () ->
    [path/2]
}
ErrorMarker binary_generator (ruleform) @ routes.rl:5:9
Opaque eof
`

	got := fs.Pretty()
	if got != want {
		t.Fatalf("unexpected rendering:\n%s\nexpected:\n%s", got, want)
	}
}

func TestRenderRewrittenBinding(t *testing.T) {
	fs := Forms{
		&Function{Name: "path", Clauses: []Clause{{
			Patterns: []Expr{&Term{Text: "X"}},
			Body: []Expr{&Match{
				Pattern: &Term{Text: "Z"},
				Value: &Call{
					Ref:  Ref{Module: "ruleform_rt", Name: "eval_generator"},
					Args: []Expr{&Quoted{Expr: &Term{Text: "edges(X)"}}},
				},
			}},
		}}},
	}

	const want = `Function path/1 {
  (X) ->
    Z = ruleform_rt:eval_generator(quote(edges(X)))
}
`

	got := fs.Pretty()
	if got != want {
		t.Fatalf("unexpected rendering:\n%s\nexpected:\n%s", got, want)
	}
}
