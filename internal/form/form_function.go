package form

// Clause is one pattern/guard/body alternative of a rule or function.
// Guard may be empty. Body expressions keep their source order.
type Clause struct {
	Pos      Pos
	Patterns []Expr
	Guard    []Expr
	Body     []Expr
}

// Function is an ordinary function declaration.
type Function struct {
	Pos     Pos
	Name    string
	Clauses []Clause
}

// Arity returns the parameter count of the function. Clauses of one
// function share the same parameter count.
func (f *Function) Arity() int {
	if len(f.Clauses) == 0 {
		return 0
	}

	return len(f.Clauses[0].Patterns)
}

// ID returns the function's name/arity identity.
func (f *Function) ID() NameArity {
	return NameArity{Name: f.Name, Arity: f.Arity()}
}

// Rule is a domain-specific declaration kind. It is structurally a function
// whose clause bodies may contain generator expressions; the transform
// converts every rule into a Function of the same name and clause count.
type Rule struct {
	Pos     Pos
	Name    string
	Clauses []Clause
}

// Arity returns the parameter count of the rule. Clauses of one rule share
// the same parameter count.
func (r *Rule) Arity() int {
	if len(r.Clauses) == 0 {
		return 0
	}

	return len(r.Clauses[0].Patterns)
}

// ID returns the rule's name/arity identity.
func (r *Rule) ID() NameArity {
	return NameArity{Name: r.Name, Arity: r.Arity()}
}

func (f *Function) isForm()      {}
func (f *Function) FormPos() Pos { return f.Pos }
func (r *Rule) isForm()          {}
func (r *Rule) FormPos() Pos     { return r.Pos }
