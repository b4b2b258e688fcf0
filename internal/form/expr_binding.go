package form

// Match is a plain unconditional destructuring binding of Pattern
// to the value of Value.
//
//	X = edges(N) // Pattern: <Term>("X"), Value: <Term>("edges(N)")
type Match struct {
	Pos     Pos
	Pattern Expr
	Value   Expr
}

// Call invokes an externally defined function.
//
//	ruleform_rt:eval_generator(…) // Ref: "ruleform_rt"."eval_generator"
type Call struct {
	Pos  Pos
	Ref  Ref
	Args []Expr
}

// Quoted holds a snapshot of an expression captured verbatim as a data
// value. The expression is never evaluated here; its structure is handed
// over for later runtime interpretation.
type Quoted struct {
	Pos  Pos
	Expr Expr
}

// NameArityList is a literal ordered list of name/arity pairs. It forms
// the body of the generated introspection function.
//
//	[{bar, 0}, {foo, 1}] // Pairs: [{bar, 0}, {foo, 1}]
type NameArityList struct {
	Pos   Pos
	Pairs []NameArity
}

func (m *Match) isExpr()              {}
func (m *Match) ExprPos() Pos         { return m.Pos }
func (c *Call) isExpr()               {}
func (c *Call) ExprPos() Pos          { return c.Pos }
func (q *Quoted) isExpr()             {}
func (q *Quoted) ExprPos() Pos        { return q.Pos }
func (l *NameArityList) isExpr()      {}
func (l *NameArityList) ExprPos() Pos { return l.Pos }
