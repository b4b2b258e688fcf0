package form

// Term is an expression the transform has no interest in. It is carried
// through with its source text untouched. Terms double as patterns.
type Term struct {
	Pos  Pos
	Text string
}

func (t *Term) isExpr()      {}
func (t *Term) ExprPos() Pos { return t.Pos }
