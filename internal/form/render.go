package form

import (
	"fmt"
	"strings"
)

// Pretty renders the sequence in a compact human-readable form. The output
// is meant for eyes and test fixtures, not for the downstream compiler.
func (fs Forms) Pretty() string {
	var b strings.Builder
	for _, f := range fs {
		renderForm(&b, f)
	}

	return b.String()
}

func renderForm(b *strings.Builder, f Form) {
	switch x := f.(type) {
	case *Module:
		if x.Parameterized() {
			fmt.Fprintf(b, "Module %s(%s)\n", x.Name, strings.Join(x.Params, ", "))
		} else {
			fmt.Fprintf(b, "Module %s\n", x.Name)
		}
	case *FileMarker:
		fmt.Fprintf(b, "FileMarker %q %d\n", x.File, x.Line)
	case *Attribute:
		if x.Value == nil {
			fmt.Fprintf(b, "Attribute %s\n", x.Name)
		} else {
			fmt.Fprintf(b, "Attribute %s <- %s\n", x.Name, renderExpr(x.Value))
		}
	case *Export:
		fmt.Fprintf(b, "Export %s\n", renderNameArities(x.Funcs))
	case *ErrorMarker:
		fmt.Fprintf(b, "ErrorMarker %s (%s) @ %s\n", x.Kind, x.Origin, x.Pos)
	case *Function:
		renderClauses(b, "Function", x.ID(), x.Clauses)
	case *Rule:
		renderClauses(b, "Rule", x.ID(), x.Clauses)
	case *Opaque:
		fmt.Fprintf(b, "Opaque %s\n", x.Text)
	}
}

func renderClauses(b *strings.Builder, kind string, id NameArity, clauses []Clause) {
	fmt.Fprintf(b, "%s %s {\n", kind, id)
	for _, c := range clauses {
		var pats []string
		for _, p := range c.Patterns {
			pats = append(pats, renderExpr(p))
		}
		fmt.Fprintf(b, "  (%s)", strings.Join(pats, ", "))
		if len(c.Guard) > 0 {
			var guards []string
			for _, g := range c.Guard {
				guards = append(guards, renderExpr(g))
			}
			fmt.Fprintf(b, " when %s", strings.Join(guards, ", "))
		}
		b.WriteString(" ->\n")
		for _, e := range c.Body {
			fmt.Fprintf(b, "    %s\n", renderExpr(e))
		}
	}
	b.WriteString("}\n")
}

func renderExpr(e Expr) string {
	switch x := e.(type) {
	case *Term:
		return x.Text
	case *Generator:
		return renderExpr(x.Pattern) + " <- " + renderExpr(x.Source)
	case *BinaryGenerator:
		return renderExpr(x.Pattern) + " <= " + renderExpr(x.Source)
	case *Match:
		return renderExpr(x.Pattern) + " = " + renderExpr(x.Value)
	case *Call:
		var args []string
		for _, a := range x.Args {
			args = append(args, renderExpr(a))
		}
		return fmt.Sprintf("%s(%s)", x.Ref, strings.Join(args, ", "))
	case *Quoted:
		return fmt.Sprintf("quote(%s)", renderExpr(x.Expr))
	case *NameArityList:
		return renderNameArities(x.Pairs)
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func renderNameArities(pairs []NameArity) string {
	var items []string
	for _, p := range pairs {
		items = append(items, p.String())
	}

	return "[" + strings.Join(items, ", ") + "]"
}
