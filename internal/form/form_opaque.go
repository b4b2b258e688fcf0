package form

// Opaque is a top-level form of no interest to the transform. It is carried
// through with its source text untouched.
type Opaque struct {
	Pos  Pos
	Text string
}

func (o *Opaque) isForm()      {}
func (o *Opaque) FormPos() Pos { return o.Pos }

// IsAttr reports whether the given form is attribute-kind.
func IsAttr(f Form) bool {
	_, ok := f.(Attr)
	return ok
}
