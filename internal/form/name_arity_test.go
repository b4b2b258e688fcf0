package form

import (
	"reflect"
	"testing"
)

func TestSortDedup(t *testing.T) {
	type test struct {
		name  string
		input []NameArity
		want  []NameArity
	}

	tests := []test{
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
		{
			name: "sorts by name then arity",
			input: []NameArity{
				{Name: "foo", Arity: 2},
				{Name: "foo", Arity: 1},
				{Name: "bar", Arity: 0},
			},
			want: []NameArity{
				{Name: "bar", Arity: 0},
				{Name: "foo", Arity: 1},
				{Name: "foo", Arity: 2},
			},
		},
		{
			name: "collapses duplicates",
			input: []NameArity{
				{Name: "foo", Arity: 1},
				{Name: "bar", Arity: 0},
				{Name: "foo", Arity: 1},
				{Name: "foo", Arity: 1},
			},
			want: []NameArity{
				{Name: "bar", Arity: 0},
				{Name: "foo", Arity: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := append([]NameArity(nil), tt.input...)
			got := SortDedup(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if !reflect.DeepEqual(tt.input, input) {
				t.Fatalf("input was modified: %v", tt.input)
			}
		})
	}
}

func TestNameArityString(t *testing.T) {
	na := NameArity{Name: "route", Arity: 2}
	if na.String() != "route/2" {
		t.Fatalf("expected route/2, got %s", na)
	}
}
