package ruleform

import (
	"github.com/sirkon/ruleform/internal/form"
)

// splitHeader splits the remainder into the maximal contiguous run of
// attribute forms directly following the module declaration and the
// trailing body forms. Attributes showing up after the first non-attribute
// form stay in the body and are never reordered.
func splitHeader(rest form.Forms) (header, body form.Forms) {
	for i, f := range rest {
		if !form.IsAttr(f) {
			return rest[:i], rest[i:]
		}
	}

	return rest, nil
}
