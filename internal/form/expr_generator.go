package form

// Generator is a comprehension-style expression binding Pattern to
// successive values produced by evaluating Source.
//
//	X <- edges(N) // Pattern: <Term>("X"), Source: <Term>("edges(N)")
type Generator struct {
	Pos     Pos
	Pattern Expr
	Source  Expr
}

// BinaryGenerator is the generator variant operating over binary-pattern
// matches. Its evaluation model is ambiguous under the rule-evaluation
// contract, so it is disallowed inside rule bodies and gets reported.
//
//	X <= packets(N)
type BinaryGenerator struct {
	Pos     Pos
	Pattern Expr
	Source  Expr
}

func (g *Generator) isExpr()             {}
func (g *Generator) ExprPos() Pos        { return g.Pos }
func (g *BinaryGenerator) isExpr()       {}
func (g *BinaryGenerator) ExprPos() Pos  { return g.Pos }
