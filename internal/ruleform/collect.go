package ruleform

import (
	"github.com/sirkon/ruleform/internal/form"
)

// collectRules lists every rule identity declared anywhere in the module.
// It scans the original full sequence, not the analyzer's split: rules
// interleaved between later attributes still count. The result is canonical
// regardless of declaration order or duplication in the source, which keeps
// the generated export list and introspection function stable.
func collectRules(forms form.Forms) []form.NameArity {
	var ids []form.NameArity
	for _, f := range forms {
		if r, ok := f.(*form.Rule); ok {
			ids = append(ids, r.ID())
		}
	}

	return form.SortDedup(ids)
}
