package testing

import (
	"math/rand/v2"
	"testing"
)

// BatchConfig describes synthetic column data for fill tests.
type BatchConfig struct {
	Value func(rng *rand.Rand) float64 // Draws one value; defaults to uniform over [Min, Max)
	Rows  int                          // Total rows
	Min   float64                      // Lower bound for the default draw
	Max   float64                      // Upper bound for the default draw
	Seed  uint64                       // Seed for reproducible data
}

// GenerateColumn draws Rows values from a seeded source, so repeated calls
// with the same config return the same column.
func GenerateColumn(_ *testing.T, config BatchConfig) []float64 {
	rng := rand.New(rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15))
	draw := config.Value
	if draw == nil {
		draw = func(rng *rand.Rand) float64 {
			return config.Min + rng.Float64()*(config.Max-config.Min)
		}
	}

	column := make([]float64, config.Rows)
	for i := range column {
		column[i] = draw(rng)
	}
	return column
}

// Split cuts column into consecutive batches whose sizes are given by sizes,
// cycling through sizes until the column is exhausted. Used to check that
// filling in batches matches filling at once.
func Split(column []float64, sizes ...int) [][]float64 {
	if len(sizes) == 0 {
		return [][]float64{column}
	}
	var batches [][]float64
	for i, lo := 0, 0; lo < len(column); i++ {
		size := max(sizes[i%len(sizes)], 1)
		hi := min(lo+size, len(column))
		batches = append(batches, column[lo:hi])
		lo = hi
	}
	return batches
}
