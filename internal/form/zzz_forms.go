package form

// Forms is an ordered top-level declaration sequence. The order is
// semantically meaningful and is preserved by every transformation.
type Forms []Form

// Markers returns every error marker of the sequence, in order.
func (fs Forms) Markers() []*ErrorMarker {
	var out []*ErrorMarker
	for _, f := range fs {
		if m, ok := f.(*ErrorMarker); ok {
			out = append(out, m)
		}
	}

	return out
}
