package ruleform

import "fmt"

// FreshNames produces unique placeholder identifiers. The analyzer needs
// one when a module declares no name at all; the source is injected by the
// caller, so the transform holds no ambient process-wide state.
type FreshNames struct {
	prefix string
	n      int
}

// NewFreshNames is a [FreshNames] constructor. An empty prefix defaults
// to "module".
func NewFreshNames(prefix string) *FreshNames {
	if prefix == "" {
		prefix = "module"
	}

	return &FreshNames{prefix: prefix}
}

// Next returns the next unused placeholder.
func (f *FreshNames) Next() string {
	f.n++
	return fmt.Sprintf("%s-%d", f.prefix, f.n)
}
