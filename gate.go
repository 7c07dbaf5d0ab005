package histz

// Gate classifies rows of a two-column table against a Region, returning the
// row mask used to filter the table before it is filled into histograms.
func Gate(r *Region, xs, ys []float64) ([]bool, error) {
	return r.ContainsColumns(xs, ys)
}

// Apply returns the values whose mask entry is true, preserving order.
func Apply(mask []bool, values []float64) ([]float64, error) {
	if len(mask) != len(values) {
		return nil, InvalidRange.New("mask length %d does not match column length %d", len(mask), len(values))
	}
	n := 0
	for _, keep := range mask {
		if keep {
			n++
		}
	}
	out := make([]float64, 0, n)
	for i, keep := range mask {
		if keep {
			out = append(out, values[i])
		}
	}
	return out, nil
}
