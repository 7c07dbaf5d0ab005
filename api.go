// Package histz gates particle-detector event data with polygonal cuts and
// accumulates the gated columns into regular-binned histograms with on-demand
// windowed statistics.
//
// # Cuts
//
// A Region is a named closed polygon. Contains classifies a point, and
// ContainsColumns classifies two equal-length columns at once, producing the
// row mask used to filter an event table:
//
//	cut, err := histz.LoadRegion("edeCut.json")
//	mask, err := cut.ContainsColumns(scintLeft, cathode)
//	xavg, err = histz.Apply(mask, xavg)
//
// Boundary points are inside. Self-intersecting outlines use the even-odd
// rule.
//
// # Histograms
//
// Histogram1D and Histogram2D have uniform bins fixed at creation. Fill only
// adds: the final counts do not depend on how the data is batched, and values
// outside the domain are dropped rather than reported. A value equal to the
// upper edge lands in the last bin.
//
// StatsForRange reduces a window of bins to its integral, mean, and standard
// deviation. The requested window is clamped to the domain and never grows;
// an empty window reports ok=false instead of NaN.
//
// # Registry
//
// The Registry holds histograms of either dimensionality under a Key:
//
//	const XAvg = histz.Key("xavg")
//
//	reg := histz.New()
//	reg.Add1D(XAvg, 600, histz.Range{Min: -300, Max: 300})
//	reg.Fill1D(XAvg, xavg)
//	h, ok := reg.Get1D(XAvg)
//
// Fill and Get are type-checked: using a 2-D key with Fill1D returns false
// and changes nothing, so a loop over many histograms does not abort on one
// misconfigured name. Re-adding a key replaces the entry and logs a warning.
//
// The Registry also keeps overlay state for a rendering surface: bind a
// surface to a histogram, and OnPointerEnter returns a formatted statistics
// summary for the visible axis bounds.
//
// # Concurrency
//
// Operations are synchronous and single-threaded in their semantics. The
// Registry guards its own maps, but histograms do no locking: a histogram
// must not be filled while it is being read. FillConcurrent and WithWorkers
// partition large batches across goroutines with per-partition counters, and
// produce exactly the counts of a sequential fill.
package histz

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/zoobzio/clockz"
)

// Key names a histogram in a Registry.
type Key string

// Registry is a named collection of 1-D and 2-D histograms.
type Registry struct {
	entries  map[Key]Histogram
	overlays map[SurfaceID]*overlayState
	metrics  *instruments
	clock    clockz.Clock
	logger   *slog.Logger
	workers  int
	mu       sync.RWMutex
}

// New creates an empty Registry that fills on the calling goroutine and logs
// through the package logger.
func New() *Registry {
	return &Registry{
		entries:  make(map[Key]Histogram),
		overlays: make(map[SurfaceID]*overlayState),
		metrics:  newInstruments(clockz.RealClock),
		clock:    clockz.RealClock,
		workers:  1,
	}
}

// WithClock sets the clock used to time fills. Used with a fake clock in
// tests. Fill metrics recorded so far are discarded.
func (r *Registry) WithClock(clock clockz.Clock) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clock = clock
	r.metrics = newInstruments(clock)
	return r
}

// WithLogger sets the logger for this registry, overriding the package logger.
func (r *Registry) WithLogger(l *slog.Logger) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger = l
	return r
}

// WithWorkers sets how many goroutines a large fill may be split across.
// Values below 1 are treated as 1.
func (r *Registry) WithWorkers(n int) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.workers = max(n, 1)
	return r
}

func (r *Registry) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}

// Add1D creates a 1-D histogram under key, replacing any existing entry.
// If construction fails the existing entry is left in place.
func (r *Registry) Add1D(key Key, bins int, rng Range) (*Histogram1D, error) {
	h, err := NewHistogram1D(string(key), bins, rng)
	if err != nil {
		return nil, err
	}
	r.put(key, h)
	return h, nil
}

// Add2D creates a 2-D histogram under key, replacing any existing entry.
// If construction fails the existing entry is left in place.
func (r *Registry) Add2D(key Key, xBins, yBins int, xr, yr Range) (*Histogram2D, error) {
	h, err := NewHistogram2D(string(key), xBins, yBins, xr, yr)
	if err != nil {
		return nil, err
	}
	r.put(key, h)
	return h, nil
}

func (r *Registry) put(key Key, h Histogram) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, exists := r.entries[key]; exists {
		r.log().Warn("overwriting histogram",
			slog.String("key", string(key)),
			slog.String("previous", kind(old)),
			slog.String("replacement", kind(h)))
	}
	r.entries[key] = h
}

// Fill1D adds data to the 1-D histogram under key. It returns false, without
// changing anything, if key is absent or holds a 2-D histogram.
func (r *Registry) Fill1D(key Key, data []float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.entries[key].(*Histogram1D)
	if !ok {
		r.reject(key, "fill1d")
		return false
	}

	sw := r.metrics.fillTime.start()
	h.FillConcurrent(data, r.workers)
	sw.stop()

	r.metrics.fills.inc()
	r.metrics.rows.add(len(data))
	return true
}

// Fill2D adds the pairs (xs[i], ys[i]) to the 2-D histogram under key. It
// returns false, without changing anything, if key is absent, holds a 1-D
// histogram, or the columns differ in length.
func (r *Registry) Fill2D(key Key, xs, ys []float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.entries[key].(*Histogram2D)
	if !ok || len(xs) != len(ys) {
		r.reject(key, "fill2d")
		return false
	}

	sw := r.metrics.fillTime.start()
	// Lengths are checked above, so FillConcurrent cannot fail.
	_ = h.FillConcurrent(xs, ys, r.workers)
	sw.stop()

	r.metrics.fills.inc()
	r.metrics.rows.add(len(xs))
	return true
}

func (r *Registry) reject(key Key, op string) {
	r.metrics.rejected.inc()
	held := "absent"
	if h, ok := r.entries[key]; ok {
		held = kind(h)
	}
	r.log().Debug("fill rejected",
		slog.String("op", op),
		slog.String("key", string(key)),
		slog.String("held", held))
}

// Get returns the histogram under key, of either dimensionality.
func (r *Registry) Get(key Key) (Histogram, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.entries[key]
	return h, ok
}

// Get1D returns the histogram under key if it is 1-D.
func (r *Registry) Get1D(key Key) (*Histogram1D, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.entries[key].(*Histogram1D)
	return h, ok
}

// Get2D returns the histogram under key if it is 2-D.
func (r *Registry) Get2D(key Key) (*Histogram2D, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.entries[key].(*Histogram2D)
	return h, ok
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]Key, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of registered histograms.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Metrics returns a snapshot of fill activity.
func (r *Registry) Metrics() FillMetrics {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.metrics.snapshot()
}

// Reset drops every histogram, surface binding, and fill metric.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[Key]Histogram)
	r.overlays = make(map[SurfaceID]*overlayState)
	r.metrics = newInstruments(r.clock)
}

func kind(h Histogram) string {
	switch h.(type) {
	case *Histogram1D:
		return "1d"
	case *Histogram2D:
		return "2d"
	}
	return "unknown"
}
