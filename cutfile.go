package histz

import (
	"encoding/json"
	"io"
	"os"

	"github.com/zeebo/errs"
	"seehuhn.de/go/geom/vec"
)

// cutFile is the persisted form of a Region:
//
//	{"name": "ede", "vertices": [[x0, y0], [x1, y1], ...]}
//
// Pointers distinguish a missing key from a zero value.
type cutFile struct {
	Name     *string      `json:"name"`
	Vertices *[][]float64 `json:"vertices"`
}

// MarshalJSON encodes the region in its persisted form.
func (r *Region) MarshalJSON() ([]byte, error) {
	vertices := make([][]float64, len(r.vertices))
	for i, v := range r.vertices {
		vertices[i] = []float64{v.X, v.Y}
	}
	name := r.name
	return json.Marshal(cutFile{Name: &name, Vertices: &vertices})
}

// ReadRegion decodes a persisted Region. A document missing either key, or
// holding a vertex that is not an [x, y] pair, fails with InvalidFormat and
// no Region is returned.
func ReadRegion(rd io.Reader) (*Region, error) {
	return readRegion(rd, "cut")
}

// readRegion decodes a Region, naming source in format errors.
func readRegion(rd io.Reader, source string) (*Region, error) {
	var cf cutFile
	if err := json.NewDecoder(rd).Decode(&cf); err != nil {
		return nil, InvalidFormat.New("%s: %v", source, err)
	}
	if cf.Name == nil || cf.Vertices == nil {
		return nil, InvalidFormat.New("%s: requires both \"name\" and \"vertices\"", source)
	}
	vertices := make([]vec.Vec2, len(*cf.Vertices))
	for i, pair := range *cf.Vertices {
		if len(pair) != 2 {
			return nil, InvalidFormat.New("%s: cut %q vertex %d has %d coordinates, want 2", source, *cf.Name, i, len(pair))
		}
		vertices[i] = vec.Vec2{X: pair[0], Y: pair[1]}
	}
	return NewRegion(*cf.Name, vertices)
}

// LoadRegion reads a persisted Region from the file at path. Format errors
// name the file.
func LoadRegion(path string) (*Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	defer f.Close()

	return readRegion(f, path)
}

// WriteRegion writes r to the file at path in its persisted form.
func WriteRegion(path string, r *Region) (err error) {
	data, err := r.MarshalJSON()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errs.Wrap(cerr)
		}
	}()
	_, err = f.Write(data)
	return errs.Wrap(err)
}
