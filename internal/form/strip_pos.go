package form

// StripPos returns a deep copy of the sequence with all Pos fields zeroed.
// This is useful for equality testing (ignoring source positions).
func StripPos(fs Forms) Forms {
	if fs == nil {
		return nil
	}

	out := make(Forms, len(fs))
	for i, f := range fs {
		out[i] = stripFormPos(f)
	}

	return out
}

func stripFormPos(f Form) Form {
	switch x := f.(type) {
	case *Module:
		cp := *x
		cp.Pos = Pos{}
		return &cp
	case *FileMarker:
		cp := *x
		cp.Pos = Pos{}
		return &cp
	case *Attribute:
		cp := *x
		cp.Pos = Pos{}
		cp.Value = stripExprPos(x.Value)
		return &cp
	case *Export:
		cp := *x
		cp.Pos = Pos{}
		return &cp
	case *ErrorMarker:
		cp := *x
		cp.Pos = Pos{}
		return &cp
	case *Function:
		cp := *x
		cp.Pos = Pos{}
		cp.Clauses = stripClausesPos(x.Clauses)
		return &cp
	case *Rule:
		cp := *x
		cp.Pos = Pos{}
		cp.Clauses = stripClausesPos(x.Clauses)
		return &cp
	case *Opaque:
		cp := *x
		cp.Pos = Pos{}
		return &cp
	default:
		return f
	}
}

func stripClausesPos(clauses []Clause) []Clause {
	out := make([]Clause, len(clauses))
	for i, c := range clauses {
		out[i] = Clause{
			Patterns: stripExprsPos(c.Patterns),
			Guard:    stripExprsPos(c.Guard),
			Body:     stripExprsPos(c.Body),
		}
	}

	return out
}

func stripExprsPos(exprs []Expr) []Expr {
	if exprs == nil {
		return nil
	}

	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		out[i] = stripExprPos(e)
	}

	return out
}

func stripExprPos(e Expr) Expr {
	switch x := e.(type) {
	case nil:
		return nil
	case *Term:
		cp := *x
		cp.Pos = Pos{}
		return &cp
	case *Generator:
		cp := *x
		cp.Pos = Pos{}
		cp.Pattern = stripExprPos(x.Pattern)
		cp.Source = stripExprPos(x.Source)
		return &cp
	case *BinaryGenerator:
		cp := *x
		cp.Pos = Pos{}
		cp.Pattern = stripExprPos(x.Pattern)
		cp.Source = stripExprPos(x.Source)
		return &cp
	case *Match:
		cp := *x
		cp.Pos = Pos{}
		cp.Pattern = stripExprPos(x.Pattern)
		cp.Value = stripExprPos(x.Value)
		return &cp
	case *Call:
		cp := *x
		cp.Pos = Pos{}
		cp.Args = stripExprsPos(x.Args)
		return &cp
	case *Quoted:
		cp := *x
		cp.Pos = Pos{}
		cp.Expr = stripExprPos(x.Expr)
		return &cp
	case *NameArityList:
		cp := *x
		cp.Pos = Pos{}
		return &cp
	default:
		return e
	}
}
