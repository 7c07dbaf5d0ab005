package histz

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// axis is one regular-binned dimension. edges has bins+1 entries with
// edges[i] = min + i*width, except that the first and last are exactly min
// and max; it is never modified after creation.
type axis struct {
	edges []float64
	width float64
}

func newAxis(label string, bins int, r Range) (axis, error) {
	if bins <= 0 {
		return axis{}, InvalidRange.New("%s axis bin count must be positive: got=%d", label, bins)
	}
	if !isFinite(r.Min) || !isFinite(r.Max) {
		return axis{}, InvalidRange.New("%s axis bounds must be finite: [%g, %g]", label, r.Min, r.Max)
	}
	if r.Max <= r.Min {
		return axis{}, InvalidRange.New("%s axis max must exceed min: [%g, %g]", label, r.Min, r.Max)
	}
	edges := floats.Span(make([]float64, bins+1), r.Min, r.Max)
	// Span can round the last edge below Max; a value equal to Max must
	// still land in the last bin.
	edges[bins] = r.Max
	return axis{
		edges: edges,
		width: (r.Max - r.Min) / float64(bins),
	}, nil
}

func (a *axis) bins() int { return len(a.edges) - 1 }

func (a *axis) lo() float64 { return a.edges[0] }

func (a *axis) hi() float64 { return a.edges[len(a.edges)-1] }

// binOf returns the bin holding x using the closed-form index. A value equal
// to the upper edge belongs to the last bin. Values outside [lo, hi] and NaN
// have no bin.
func (a *axis) binOf(x float64) (int, bool) {
	if !(x >= a.lo() && x <= a.hi()) {
		return 0, false
	}
	n := a.bins()
	i := int(math.Floor((x - a.lo()) / a.width))
	i = min(max(i, 0), n-1)

	// Rounding in the division can land one bin off near an edge; settle
	// against the stored edges so edges[i] <= x < edges[i+1] holds.
	switch {
	case i+1 < n && x >= a.edges[i+1]:
		i++
	case i > 0 && x < a.edges[i]:
		i--
	}
	return i, true
}

// window clamps [lo, hi] into the axis domain and returns the half-open bin
// range [first, last) it spans. ok is false when the window is empty or lies
// outside the domain.
func (a *axis) window(lo, hi float64) (first, last int, ok bool) {
	lo = math.Max(lo, a.lo())
	hi = math.Min(hi, a.hi())
	first, ok = a.binOf(lo)
	if !ok {
		return 0, 0, false
	}
	last, ok = a.binOf(hi)
	if !ok || first >= last {
		return 0, 0, false
	}
	return first, last, true
}
