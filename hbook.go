package histz

import "go-hep.org/x/hep/hbook"

// H1D converts the histogram to a go-hep histogram with the same binning,
// for plotting with hplot. Each bin is filled once at its centre with its
// count as weight; under- and overflow are not carried over.
func (h *Histogram1D) H1D() *hbook.H1D {
	out := hbook.NewH1D(h.x.bins(), h.x.lo(), h.x.hi())
	for i, c := range h.counts.bins {
		if c == 0 {
			continue
		}
		out.Fill(h.x.edges[i]+h.x.width/2, c)
	}
	return out
}

// H2D converts the histogram to a go-hep 2-D histogram with the same grid.
func (h *Histogram2D) H2D() *hbook.H2D {
	out := hbook.NewH2D(h.x.bins(), h.x.lo(), h.x.hi(), h.y.bins(), h.y.lo(), h.y.hi())
	for j, row := range h.counts.cells {
		yc := h.y.edges[j] + h.y.width/2
		for i, c := range row {
			if c == 0 {
				continue
			}
			out.Fill(h.x.edges[i]+h.x.width/2, yc, c)
		}
	}
	return out
}
