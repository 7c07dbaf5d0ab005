package histz

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram is the sum type held by a Registry. It is implemented only by
// *Histogram1D and *Histogram2D; switch on the concrete type to reach either.
type Histogram interface {
	// Name returns the histogram's name.
	Name() string
	// Entries returns the total of all bin counts.
	Entries() float64

	isHistogram()
}

var (
	_ Histogram = (*Histogram1D)(nil)
	_ Histogram = (*Histogram2D)(nil)
)

// Range is a closed numeric interval [Min, Max].
type Range struct {
	Min, Max float64
}

// Stats1D holds windowed statistics of a 1-D histogram.
type Stats1D struct {
	Integral float64
	Mean     float64
	StdDev   float64
}

// Stats2D holds windowed statistics of a 2-D histogram.
type Stats2D struct {
	Integral float64
	MeanX    float64
	MeanY    float64
	StdDevX  float64
	StdDevY  float64
}

// moments returns the weighted mean and standard deviation of the bin lower
// edges. ok is false when the total weight is zero.
func moments(edges, weights []float64) (mean, stdDev float64, ok bool) {
	if floats.Sum(weights) <= 0 {
		return 0, 0, false
	}
	mean = stat.Mean(edges, weights)
	dev := make([]float64, len(edges))
	for i, e := range edges {
		d := e - mean
		dev[i] = d * d
	}
	return mean, math.Sqrt(stat.Mean(dev, weights)), true
}
