package form

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// NameArity is the unique identity of a rule or function: its name paired
// with the parameter count of its clauses.
type NameArity struct {
	Name  string
	Arity int
}

// String renders the identity in the usual name/arity notation.
func (na NameArity) String() string {
	return fmt.Sprintf("%s/%d", na.Name, na.Arity)
}

// SortDedup returns a canonical copy of the given identities: sorted
// ascending by name then by arity, duplicates collapsed to one entry.
// The input is left untouched.
func SortDedup(pairs []NameArity) []NameArity {
	out := slices.Clone(pairs)
	slices.SortFunc(out, func(a, b NameArity) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}

		return cmp.Compare(a.Arity, b.Arity)
	})

	return slices.Compact(out)
}
