package ruleform

import (
	"github.com/sirkon/ruleform/internal/form"
)

// moduleInfo is what the analyzer learns about the head of a form sequence.
type moduleInfo struct {
	// marker is the current position marker: the last file marker seen
	// before the module declaration. Stays zero-valued when the input
	// carries none.
	marker form.FileMarker

	// name is the declared module name, or a synthesized placeholder when
	// no module declaration exists.
	name string

	// prefix holds the verified leading forms, module declaration included
	// when one was found. rest holds everything after it.
	prefix form.Forms
	rest   form.Forms

	// errs carries at most one marker, for a parameterized module.
	errs []*form.ErrorMarker
}

// analyze walks forms from the start up to the module declaration. File
// markers and pre-existing error markers accumulate into the prefix; any
// other form kind ahead of a module declaration means the module declares
// no name at all, and a placeholder from fresh takes its place.
func analyze(forms form.Forms, cfg Config, fresh *FreshNames) moduleInfo {
	var info moduleInfo
	var before form.Forms

	for i, f := range forms {
		switch v := f.(type) {
		case *form.Module:
			if v.Parameterized() {
				info.errs = append(info.errs, &form.ErrorMarker{
					Pos:    v.Pos,
					Origin: cfg.Origin,
					Kind:   form.ErrParameterizedModule,
				})
			}
			info.name = v.Name
			info.prefix = append(before, f)
			info.rest = forms[i+1:]
			return info

		case *form.FileMarker:
			// Later markers override earlier ones.
			info.marker = *v
			before = append(before, f)

		case *form.ErrorMarker:
			// Pre-existing diagnostics are preserved verbatim.
			before = append(before, f)

		default:
			info.name = fresh.Next()
			info.prefix = before
			info.rest = forms[i:]
			return info
		}
	}

	info.name = fresh.Next()
	info.prefix = before
	return info
}
