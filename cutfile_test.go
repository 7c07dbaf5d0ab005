package histz_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/zoobzio/histz"
	"seehuhn.de/go/geom/vec"
)

func TestWriteRegion_LoadRegion(t *testing.T) {
	original, err := histz.NewRegion("edeCut", []vec.Vec2{{X: 100, Y: 200}, {X: 400, Y: 250}, {X: 350, Y: 900}, {X: 120, Y: 700}})
	if err != nil {
		t.Fatalf("NewRegion failed: %v", err)
	}

	file := filepath.Join(t.TempDir(), "edeCut.json")
	if err := histz.WriteRegion(file, original); err != nil {
		t.Fatalf("WriteRegion failed: %v", err)
	}

	loaded, err := histz.LoadRegion(file)
	if err != nil {
		t.Fatalf("LoadRegion failed: %v", err)
	}
	if loaded.Name() != "edeCut" {
		t.Errorf("Expected name edeCut, got %q", loaded.Name())
	}
	if !slices.Equal(loaded.Vertices(), original.Vertices()) {
		t.Errorf("Expected vertices %v, got %v", original.Vertices(), loaded.Vertices())
	}
}

func TestMarshalJSON_Shape(t *testing.T) {
	r, err := histz.NewRegion("tri", []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}})
	if err != nil {
		t.Fatalf("NewRegion failed: %v", err)
	}

	data, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	expected := `{"name":"tri","vertices":[[0,0],[4,0],[0,4]]}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}

func TestReadRegion_InvalidFormat(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing name", `{"vertices": [[0,0],[1,0],[0,1]]}`},
		{"missing vertices", `{"name": "cut"}`},
		{"null vertices", `{"name": "cut", "vertices": null}`},
		{"vertex triple", `{"name": "cut", "vertices": [[0,0,0],[1,0],[0,1]]}`},
		{"vertex single", `{"name": "cut", "vertices": [[0],[1,0],[0,1]]}`},
		{"not json", `name: cut`},
		{"wrong types", `{"name": 3, "vertices": "abc"}`},
	}

	for _, tc := range cases {
		r, err := histz.ReadRegion(strings.NewReader(tc.doc))
		if !histz.InvalidFormat.Has(err) {
			t.Errorf("%s: expected InvalidFormat, got %v", tc.name, err)
		}
		if r != nil {
			t.Errorf("%s: expected no region on error", tc.name)
		}
	}
}

func TestReadRegion_TooFewVertices(t *testing.T) {
	_, err := histz.ReadRegion(strings.NewReader(`{"name": "cut", "vertices": [[0,0],[1,1]]}`))
	if !histz.InvalidGeometry.Has(err) {
		t.Errorf("Expected InvalidGeometry, got %v", err)
	}
}

func TestLoadRegion_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := histz.LoadRegion(filepath.Join(dir, "absent.json")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"name": "cut"}`), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := histz.LoadRegion(bad)
	if !histz.InvalidFormat.Has(err) {
		t.Errorf("Expected InvalidFormat from LoadRegion, got %v", err)
	}
	if !strings.Contains(err.Error(), bad) {
		t.Errorf("Expected error to name the file, got %v", err)
	}
}
