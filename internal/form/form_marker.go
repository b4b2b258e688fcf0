package form

import "fmt"

// ErrorMarker is a form-shaped diagnostic. Downstream tooling renders it
// as a compiler error and treats its presence as a failed compilation.
// Emitting a marker never aborts the transform that produced it.
type ErrorMarker struct {
	Pos    Pos
	Origin string
	Kind   ErrorKind
}

// ErrorKind describes varieties of violations the transform diagnoses.
type ErrorKind int

const (
	errorKindInvalid ErrorKind = iota

	// ErrParameterizedModule marks a module declaration carrying
	// parameters. Emitted at most once per module.
	ErrParameterizedModule

	// ErrBinaryGenerator marks a binary-pattern generator inside a rule
	// clause body. Emitted once per occurrence.
	ErrBinaryGenerator
)

var errorKindValueMap = map[ErrorKind]string{
	ErrParameterizedModule: "parameterized_module",
	ErrBinaryGenerator:     "binary_generator",
}

func (k ErrorKind) String() string {
	v, ok := errorKindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// Description returns the human-readable message rendered for the kind.
func (k ErrorKind) Description() string {
	switch k {
	case ErrParameterizedModule:
		return "parameterized module declarations are not allowed"
	case ErrBinaryGenerator:
		return "binary generators are not allowed in rule bodies"
	default:
		return fmt.Sprintf("invalid error kind (%d)", k)
	}
}

// MarshalText renders the kind for serialized forms and configs.
func (k ErrorKind) MarshalText() ([]byte, error) {
	v, ok := errorKindValueMap[k]
	if !ok {
		return nil, fmt.Errorf("invalid error kind (%d)", k)
	}

	return []byte(v), nil
}

// UnmarshalText for setting values with configs, serialized forms, etc.
func (k *ErrorKind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for key, v := range errorKindValueMap {
		if v == text {
			*k = key
			return nil
		}
	}

	return fmt.Errorf("unknown error kind %q", text)
}

func (m *ErrorMarker) isForm()      {}
func (m *ErrorMarker) FormPos() Pos { return m.Pos }
