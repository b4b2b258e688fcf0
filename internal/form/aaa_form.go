package form

import (
	"bytes"
	"fmt"
)

// Form is the base interface implemented by all top-level declaration
// variants. Each form denotes a single declaration unit in a module's
// ordered declaration sequence.
type Form interface {
	isForm()

	// FormPos reports the source position of the declaration.
	FormPos() Pos
}

// Attr marks attribute-kind forms: module declarations, file markers,
// exports and generic attributes.
type Attr interface {
	isAttr()
}

// Expr marks expressions appearing in clause patterns, guards and bodies.
type Expr interface {
	isExpr()

	// ExprPos reports the source position of the expression.
	ExprPos() Pos
}

// Pos locates an entity in the original source text.
type Pos struct {
	File string
	Line int
	Col  int
}

// String renders the position the way compiler diagnostics do.
func (p Pos) String() string {
	if p.Col != 0 {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
	}

	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Ref identifies an externally defined function as a module/name pair.
//
//	ruleform_rt:eval_generator // Module: "ruleform_rt", Name: "eval_generator"
type Ref struct {
	Module string
	Name   string
}

// String renders the reference in module:name notation.
func (r Ref) String() string {
	if r.Module == "" {
		return r.Name
	}

	return r.Module + ":" + r.Name
}

// MarshalText renders the reference for configs and CLI flags.
func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
// Accepts module:name notation, the module part is optional.
func (r *Ref) UnmarshalText(rawtext []byte) error {
	text := bytes.TrimSpace(rawtext)
	if len(text) == 0 {
		return fmt.Errorf("empty function reference")
	}

	module, name, ok := bytes.Cut(text, []byte(":"))
	if !ok {
		r.Module = ""
		r.Name = string(text)
		return nil
	}

	if len(module) == 0 || len(name) == 0 {
		return fmt.Errorf("malformed function reference %q", rawtext)
	}

	r.Module = string(module)
	r.Name = string(name)
	return nil
}
