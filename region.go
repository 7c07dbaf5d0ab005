package histz

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BoundaryTolerance is the distance within which a point is considered to lie
// on a Region's edge. Boundary points are inside.
const BoundaryTolerance = 1e-9

// Region is a named closed polygon used as a boolean gate over 2-D points.
//
// The polygon is implicitly closed: the last vertex connects back to the
// first. It may be concave or self-intersecting. Interior points are
// classified with the even-odd rule (ray casting over the edges in the order
// given), so a lobe wound twice by a self-intersecting outline is outside.
// Points on an edge or vertex are inside.
//
// A Region is immutable and safe for concurrent readers.
type Region struct {
	name     string
	vertices []vec.Vec2
	bounds   rect.Rect
}

// NewRegion creates a Region from an explicit vertex list. The vertices are
// copied verbatim: no deduplication, no reordering.
func NewRegion(name string, vertices []vec.Vec2) (*Region, error) {
	if len(vertices) < 3 {
		return nil, InvalidGeometry.New("region %q requires 3 or more vertices: got=%d", name, len(vertices))
	}
	bounds := rect.Rect{LLx: vertices[0].X, LLy: vertices[0].Y, URx: vertices[0].X, URy: vertices[0].Y}
	for i, v := range vertices {
		if !isFinite(v.X) || !isFinite(v.Y) {
			return nil, InvalidGeometry.New("region %q vertex %d is not finite: (%g, %g)", name, i, v.X, v.Y)
		}
		bounds.LLx = math.Min(bounds.LLx, v.X)
		bounds.LLy = math.Min(bounds.LLy, v.Y)
		bounds.URx = math.Max(bounds.URx, v.X)
		bounds.URy = math.Max(bounds.URy, v.Y)
	}
	return &Region{
		name:     name,
		vertices: slices.Clone(vertices),
		bounds:   bounds,
	}, nil
}

// Name returns the region's name.
func (r *Region) Name() string {
	return r.name
}

// Vertices returns a copy of the vertex list.
func (r *Region) Vertices() []vec.Vec2 {
	return slices.Clone(r.vertices)
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (r *Region) Bounds() rect.Rect {
	return r.bounds
}

// Path returns the closed outline of the region, for drawing.
func (r *Region) Path() *path.Data {
	p := (&path.Data{}).MoveTo(r.vertices[0])
	for _, v := range r.vertices[1:] {
		p = p.LineTo(v)
	}
	return p.Close()
}

// Contains reports whether (x, y) lies on or inside the polygon.
func (r *Region) Contains(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	const tol = BoundaryTolerance
	if x < r.bounds.LLx-tol || x > r.bounds.URx+tol || y < r.bounds.LLy-tol || y > r.bounds.URy+tol {
		return false
	}

	p := vec.Vec2{X: x, Y: y}
	in := false
	a := r.vertices[len(r.vertices)-1]
	for _, b := range r.vertices {
		if onSegment(p, a, b, tol) {
			return true
		}
		if crosses(p, a, b) {
			in = !in
		}
		a = b
	}
	return in
}

// ContainsBatch classifies each point, returning a mask of the same length
// and order as points.
func (r *Region) ContainsBatch(points []vec.Vec2) []bool {
	mask := make([]bool, len(points))
	for i, p := range points {
		mask[i] = r.Contains(p.X, p.Y)
	}
	return mask
}

// ContainsColumns classifies the points (xs[i], ys[i]). The columns must have
// equal length.
func (r *Region) ContainsColumns(xs, ys []float64) ([]bool, error) {
	if len(xs) != len(ys) {
		return nil, InvalidRange.New("column lengths differ: x=%d y=%d", len(xs), len(ys))
	}
	mask := make([]bool, len(xs))
	for i := range xs {
		mask[i] = r.Contains(xs[i], ys[i])
	}
	return mask, nil
}

// crosses reports whether a ray cast from p towards +x crosses edge a→b.
// The half-open comparison on y counts a vertex shared by two edges once.
func crosses(p, a, b vec.Vec2) bool {
	return (a.Y > p.Y) != (b.Y > p.Y) &&
		p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X
}

// onSegment reports whether p lies within tol of the segment a→b.
func onSegment(p, a, b vec.Vec2, tol float64) bool {
	d := b.Sub(a)
	w := p.Sub(a)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return w.X*w.X+w.Y*w.Y <= tol*tol
	}
	cross := d.X*w.Y - d.Y*w.X
	if cross*cross > tol*tol*l2 {
		return false
	}
	t := d.X*w.X + d.Y*w.Y
	slack := tol * math.Sqrt(l2)
	return t >= -slack && t <= l2+slack
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
