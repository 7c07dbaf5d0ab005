package histz

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Histogram1D counts values into regularly spaced bins. Bin i covers
// [edges[i], edges[i+1]); the last bin is also closed at its upper edge.
//
// Counts only grow. Values outside the domain are dropped and tallied in
// Underflow and Overflow. A Histogram1D performs no locking: callers must not
// fill while another goroutine reads.
type Histogram1D struct {
	name   string
	x      axis
	counts counts1D
}

// counts1D is the mutable state of a 1-D fill. Partitioned fills build one
// per partition and merge them.
type counts1D struct {
	bins      []float64
	underflow uint64
	overflow  uint64
}

// NewHistogram1D creates an empty histogram with bins equal-width bins over r.
func NewHistogram1D(name string, bins int, r Range) (*Histogram1D, error) {
	x, err := newAxis("x", bins, r)
	if err != nil {
		return nil, err
	}
	return &Histogram1D{
		name:   name,
		x:      x,
		counts: counts1D{bins: make([]float64, bins)},
	}, nil
}

func (*Histogram1D) isHistogram() {}

// Name returns the histogram's name.
func (h *Histogram1D) Name() string { return h.name }

// Bins returns the number of bins.
func (h *Histogram1D) Bins() int { return h.x.bins() }

// BinWidth returns the common width of every bin.
func (h *Histogram1D) BinWidth() float64 { return h.x.width }

// Range returns the histogram domain [first edge, last edge].
func (h *Histogram1D) Range() Range { return Range{Min: h.x.lo(), Max: h.x.hi()} }

// BinEdges returns a copy of the bin edges. Together with Counts it is the
// input of a step plot.
func (h *Histogram1D) BinEdges() []float64 { return slices.Clone(h.x.edges) }

// Counts returns a copy of the bin counts.
func (h *Histogram1D) Counts() []float64 { return slices.Clone(h.counts.bins) }

// Entries returns the total of all bin counts.
func (h *Histogram1D) Entries() float64 { return floats.Sum(h.counts.bins) }

// Underflow returns the number of dropped values below the domain.
func (h *Histogram1D) Underflow() uint64 { return h.counts.underflow }

// Overflow returns the number of dropped values above the domain.
func (h *Histogram1D) Overflow() uint64 { return h.counts.overflow }

// BinOf returns the bin holding x. A value equal to the upper edge belongs to
// the last bin.
func (h *Histogram1D) BinOf(x float64) (int, bool) {
	return h.x.binOf(x)
}

// Fill adds each value to its bin. The result does not depend on how data is
// split across calls.
func (h *Histogram1D) Fill(data []float64) {
	h.counts.add(&h.x, data)
}

// FillConcurrent is Fill with data partitioned across up to workers
// goroutines. Counts are identical to Fill.
func (h *Histogram1D) FillConcurrent(data []float64, workers int) {
	parts := partition(len(data), workers)
	if len(parts) <= 1 {
		h.Fill(data)
		return
	}
	locals := make([]counts1D, len(parts))
	fanOut(parts, func(p int, s span) {
		locals[p].bins = make([]float64, h.x.bins())
		locals[p].add(&h.x, data[s.lo:s.hi])
	})
	for i := range locals {
		h.counts.merge(&locals[i])
	}
}

// StatsForRange returns the integral, mean, and standard deviation of the bins
// in the window [lo, hi]. The window is first clamped to the histogram domain
// and then covers bins [BinOf(lo), BinOf(hi)), so the bin holding hi is
// excluded. The mean and spread are weighted over bin lower edges. ok is false
// when the window is empty, lies outside the domain, or holds no counts.
func (h *Histogram1D) StatsForRange(lo, hi float64) (Stats1D, bool) {
	first, last, ok := h.x.window(lo, hi)
	if !ok {
		return Stats1D{}, false
	}
	weights := h.counts.bins[first:last]
	mean, stdDev, ok := moments(h.x.edges[first:last], weights)
	if !ok {
		return Stats1D{}, false
	}
	return Stats1D{
		Integral: floats.Sum(weights),
		Mean:     mean,
		StdDev:   stdDev,
	}, true
}

func (c *counts1D) add(x *axis, data []float64) {
	for _, v := range data {
		i, ok := x.binOf(v)
		if ok {
			c.bins[i]++
			continue
		}
		switch {
		case v < x.lo():
			c.underflow++
		case v > x.hi():
			c.overflow++
		}
	}
}

func (c *counts1D) merge(o *counts1D) {
	floats.Add(c.bins, o.bins)
	c.underflow += o.underflow
	c.overflow += o.overflow
}
