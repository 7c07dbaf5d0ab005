package histz

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Histogram2D counts (x, y) pairs into a regular grid.
//
// Counts are stored row-major with rows along y: Counts()[yBin][xBin]. This
// is the layout a color mesh over (XBinEdges, YBinEdges) expects, and Fill
// and StatsForRange both use it.
//
// A pair with either coordinate outside its axis domain is dropped as a whole
// and tallied in Dropped.
type Histogram2D struct {
	name   string
	x, y   axis
	counts counts2D
}

type counts2D struct {
	cells   [][]float64 // [yBin][xBin]
	dropped uint64
}

func newCounts2D(xBins, yBins int) counts2D {
	cells := make([][]float64, yBins)
	backing := make([]float64, xBins*yBins)
	for j := range cells {
		cells[j] = backing[j*xBins : (j+1)*xBins : (j+1)*xBins]
	}
	return counts2D{cells: cells}
}

// NewHistogram2D creates an empty histogram with xBins by yBins cells over
// the ranges xr and yr.
func NewHistogram2D(name string, xBins, yBins int, xr, yr Range) (*Histogram2D, error) {
	x, err := newAxis("x", xBins, xr)
	if err != nil {
		return nil, err
	}
	y, err := newAxis("y", yBins, yr)
	if err != nil {
		return nil, err
	}
	return &Histogram2D{
		name:   name,
		x:      x,
		y:      y,
		counts: newCounts2D(xBins, yBins),
	}, nil
}

func (*Histogram2D) isHistogram() {}

// Name returns the histogram's name.
func (h *Histogram2D) Name() string { return h.name }

// Bins returns the bin counts along x and y.
func (h *Histogram2D) Bins() (xBins, yBins int) { return h.x.bins(), h.y.bins() }

// XBinWidth returns the width of every x bin.
func (h *Histogram2D) XBinWidth() float64 { return h.x.width }

// YBinWidth returns the width of every y bin.
func (h *Histogram2D) YBinWidth() float64 { return h.y.width }

// XBinEdges returns a copy of the x bin edges.
func (h *Histogram2D) XBinEdges() []float64 { return slices.Clone(h.x.edges) }

// YBinEdges returns a copy of the y bin edges.
func (h *Histogram2D) YBinEdges() []float64 { return slices.Clone(h.y.edges) }

// Counts returns a copy of the grid, indexed [yBin][xBin].
func (h *Histogram2D) Counts() [][]float64 {
	out := make([][]float64, len(h.counts.cells))
	for j, row := range h.counts.cells {
		out[j] = slices.Clone(row)
	}
	return out
}

// Entries returns the total of all cell counts.
func (h *Histogram2D) Entries() float64 {
	var total float64
	for _, row := range h.counts.cells {
		total += floats.Sum(row)
	}
	return total
}

// Dropped returns the number of pairs that fell outside the grid.
func (h *Histogram2D) Dropped() uint64 { return h.counts.dropped }

// BinOf returns the cell holding (x, y).
func (h *Histogram2D) BinOf(x, y float64) (xBin, yBin int, ok bool) {
	xBin, ok = h.x.binOf(x)
	if !ok {
		return 0, 0, false
	}
	yBin, ok = h.y.binOf(y)
	if !ok {
		return 0, 0, false
	}
	return xBin, yBin, true
}

// Fill adds each pair (xs[i], ys[i]) to its cell. The columns must have equal
// length; on mismatch nothing is filled.
func (h *Histogram2D) Fill(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return InvalidRange.New("column lengths differ: x=%d y=%d", len(xs), len(ys))
	}
	h.counts.add(&h.x, &h.y, xs, ys)
	return nil
}

// FillConcurrent is Fill with the pairs partitioned across up to workers
// goroutines. Counts are identical to Fill.
func (h *Histogram2D) FillConcurrent(xs, ys []float64, workers int) error {
	if len(xs) != len(ys) {
		return InvalidRange.New("column lengths differ: x=%d y=%d", len(xs), len(ys))
	}
	parts := partition(len(xs), workers)
	if len(parts) <= 1 {
		h.counts.add(&h.x, &h.y, xs, ys)
		return nil
	}
	locals := make([]counts2D, len(parts))
	fanOut(parts, func(p int, s span) {
		locals[p] = newCounts2D(h.x.bins(), h.y.bins())
		locals[p].add(&h.x, &h.y, xs[s.lo:s.hi], ys[s.lo:s.hi])
	})
	for i := range locals {
		h.counts.merge(&locals[i])
	}
	return nil
}

// StatsForRange returns windowed statistics over the rectangle xr × yr. Each
// axis is clamped and windowed as in Histogram1D.StatsForRange. The means and
// spreads come from the marginal of the sub-grid along each axis. ok is false
// when either window is empty or the sub-grid holds no counts.
func (h *Histogram2D) StatsForRange(xr, yr Range) (Stats2D, bool) {
	x0, x1, ok := h.x.window(xr.Min, xr.Max)
	if !ok {
		return Stats2D{}, false
	}
	y0, y1, ok := h.y.window(yr.Min, yr.Max)
	if !ok {
		return Stats2D{}, false
	}

	xMarginal := make([]float64, x1-x0)
	yMarginal := make([]float64, y1-y0)
	for j := y0; j < y1; j++ {
		row := h.counts.cells[j][x0:x1]
		floats.Add(xMarginal, row)
		yMarginal[j-y0] = floats.Sum(row)
	}

	meanX, stdX, ok := moments(h.x.edges[x0:x1], xMarginal)
	if !ok {
		return Stats2D{}, false
	}
	meanY, stdY, ok := moments(h.y.edges[y0:y1], yMarginal)
	if !ok {
		return Stats2D{}, false
	}
	return Stats2D{
		Integral: floats.Sum(yMarginal),
		MeanX:    meanX,
		MeanY:    meanY,
		StdDevX:  stdX,
		StdDevY:  stdY,
	}, true
}

func (c *counts2D) add(x, y *axis, xs, ys []float64) {
	for i := range xs {
		xi, ok := x.binOf(xs[i])
		if !ok {
			c.dropped++
			continue
		}
		yi, ok := y.binOf(ys[i])
		if !ok {
			c.dropped++
			continue
		}
		c.cells[yi][xi]++
	}
}

func (c *counts2D) merge(o *counts2D) {
	for j := range c.cells {
		floats.Add(c.cells[j], o.cells[j])
	}
	c.dropped += o.dropped
}
