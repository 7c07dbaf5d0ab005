package histz

import "fmt"

// SurfaceID identifies a plotting surface. The rendering side chooses the
// value; the Registry only compares it.
type SurfaceID string

// View is the currently visible axis bounds of a surface. Y is ignored for
// 1-D histograms.
type View struct {
	X, Y Range
}

// overlayState is the hover state of one surface. annotation is owned by the
// rendering side and is never inspected here.
type overlayState struct {
	key        Key
	annotation any
	shown      bool
}

// BindSurface associates a surface with the histogram under key. The key need
// not exist yet; it is resolved on each pointer event. Rebinding keeps any
// annotation already recorded for the surface.
func (r *Registry) BindSurface(id SurfaceID, key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st, ok := r.overlays[id]; ok {
		st.key = key
		return
	}
	r.overlays[id] = &overlayState{key: key}
}

// UnbindSurface forgets a surface and returns its last annotation, if any,
// so the caller can remove it.
func (r *Registry) UnbindSurface(id SurfaceID) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.overlays[id]
	if !ok {
		return nil, false
	}
	delete(r.overlays, id)
	return st.annotation, st.shown
}

// OnPointerEnter computes windowed statistics of the surface's histogram over
// the visible bounds and returns them as a summary for display. It returns
// false if the surface is unbound, the histogram is missing, or the visible
// window holds no counts.
func (r *Registry) OnPointerEnter(id SurfaceID, view View) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.overlays[id]
	if !ok {
		return "", false
	}
	h, ok := r.entries[st.key]
	if !ok {
		return "", false
	}
	return Summary(h, view)
}

// SetAnnotation records the handle of the annotation the rendering side drew
// for the last summary. It returns false if the surface is unbound.
func (r *Registry) SetAnnotation(id SurfaceID, handle any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.overlays[id]
	if !ok {
		return false
	}
	st.annotation = handle
	st.shown = true
	return true
}

// OnPointerLeave returns and clears the surface's annotation handle so the
// rendering side can remove it. It returns false if nothing was shown.
func (r *Registry) OnPointerLeave(id SurfaceID) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.overlays[id]
	if !ok || !st.shown {
		return nil, false
	}
	handle := st.annotation
	st.annotation = nil
	st.shown = false
	return handle, true
}

// Summary formats the windowed statistics of h over view.
func Summary(h Histogram, view View) (string, bool) {
	switch h := h.(type) {
	case *Histogram1D:
		s, ok := h.StatsForRange(view.X.Min, view.X.Max)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("Integral: %.0f\nCentroid: %.4g\nSigma: %.4g",
			s.Integral, s.Mean, s.StdDev), true
	case *Histogram2D:
		s, ok := h.StatsForRange(view.X, view.Y)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("Integral: %.0f\nCentroid X: %.4g\nCentroid Y: %.4g\nSigma X: %.4g\nSigma Y: %.4g",
			s.Integral, s.MeanX, s.MeanY, s.StdDevX, s.StdDevY), true
	}
	return "", false
}
