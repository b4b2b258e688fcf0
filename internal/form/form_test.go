package form

import (
	"testing"
)

func TestRefText(t *testing.T) {
	type test struct {
		name    string
		text    string
		want    Ref
		invalid bool
	}

	tests := []test{
		{
			name: "qualified",
			text: "ruleform_rt:eval_generator",
			want: Ref{Module: "ruleform_rt", Name: "eval_generator"},
		},
		{
			name: "bare name",
			text: "eval_generator",
			want: Ref{Name: "eval_generator"},
		},
		{
			name:    "empty",
			text:    "",
			invalid: true,
		},
		{
			name:    "missing name",
			text:    "ruleform_rt:",
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Ref
			err := r.UnmarshalText([]byte(tt.text))
			if tt.invalid {
				if err == nil {
					t.Fatalf("error was expected for %q, got %v", tt.text, r)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %s", tt.text, err)
			}
			if r != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, r)
			}
			if r.String() != tt.text {
				t.Fatalf("round trip mismatch: %q became %q", tt.text, r)
			}
		})
	}
}

func TestErrorKindText(t *testing.T) {
	for _, k := range []ErrorKind{ErrParameterizedModule, ErrBinaryGenerator} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %s", int(k), err)
		}

		var back ErrorKind
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %s", text, err)
		}
		if back != k {
			t.Fatalf("round trip mismatch: %s became %s", k, back)
		}
	}

	var k ErrorKind
	if err := k.UnmarshalText([]byte("whatever")); err == nil {
		t.Fatal("error was expected for an unknown kind")
	}
}

func TestIsAttr(t *testing.T) {
	attrs := []Form{
		&Module{Name: "routes"},
		&FileMarker{File: "routes.rl", Line: 1},
		&Attribute{Name: "author"},
		&Export{},
	}
	for _, f := range attrs {
		if !IsAttr(f) {
			t.Fatalf("%T must be attribute-kind", f)
		}
	}

	others := []Form{
		&Function{Name: "f"},
		&Rule{Name: "r"},
		&ErrorMarker{},
		&Opaque{Text: "eof"},
	}
	for _, f := range others {
		if IsAttr(f) {
			t.Fatalf("%T must not be attribute-kind", f)
		}
	}
}
