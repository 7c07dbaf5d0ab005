package histz

import (
	"fmt"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Selector collects Regions drawn interactively. Pass OnSelect as the
// completion callback of a polygon selection tool; each completed outline is
// stored under a default name "cut_<n>" where n is the number of cuts already
// held, or the next free number after it.
//
// A Selector is not safe for concurrent use.
type Selector struct {
	cuts map[string]*Region
}

// NewSelector returns an empty Selector.
func NewSelector() *Selector {
	return &Selector{cuts: make(map[string]*Region)}
}

// OnSelect stores the outline as a new Region and returns it. It never
// replaces a stored cut.
func (s *Selector) OnSelect(vertices []vec.Vec2) (*Region, error) {
	r, err := NewRegion(s.nextName(), vertices)
	if err != nil {
		return nil, err
	}
	s.cuts[r.name] = r
	return r, nil
}

func (s *Selector) nextName() string {
	for n := len(s.cuts); ; n++ {
		name := fmt.Sprintf("cut_%d", n)
		if _, taken := s.cuts[name]; !taken {
			return name
		}
	}
}

// Cut returns the Region stored under name.
func (s *Selector) Cut(name string) (*Region, bool) {
	r, ok := s.cuts[name]
	return r, ok
}

// Rename re-keys a stored cut. The Region is rebuilt under the new name so
// that it persists with it.
func (s *Selector) Rename(from, to string) error {
	r, ok := s.cuts[from]
	if !ok {
		return InvalidName.New("no cut named %q", from)
	}
	if _, taken := s.cuts[to]; taken && to != from {
		return InvalidName.New("cut %q already exists", to)
	}
	renamed := &Region{name: to, vertices: r.vertices, bounds: r.bounds}
	delete(s.cuts, from)
	s.cuts[to] = renamed
	return nil
}

// Names returns the stored cut names in sorted order.
func (s *Selector) Names() []string {
	names := make([]string, 0, len(s.cuts))
	for name := range s.cuts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
