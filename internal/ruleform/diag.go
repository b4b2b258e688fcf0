package ruleform

import (
	"fmt"

	"github.com/sirkon/ruleform/internal/form"
)

// Diagnostics renders error markers the way a compiler reports them, one
// line per marker, in emission order:
//
//	routes.rl:5:9: ruleform: binary generators are not allowed in rule bodies
func Diagnostics(markers []*form.ErrorMarker) []string {
	if len(markers) == 0 {
		return nil
	}

	out := make([]string, len(markers))
	for i, m := range markers {
		out[i] = fmt.Sprintf("%s: %s: %s", m.Pos, m.Origin, m.Kind.Description())
	}

	return out
}
