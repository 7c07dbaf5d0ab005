package histz_test

import (
	"testing"

	"github.com/zoobzio/histz"
	histztesting "github.com/zoobzio/histz/testing"
)

const mainSurface histz.SurfaceID = "main"

type annotation struct {
	text string
}

func TestOverlay_Summary1D(t *testing.T) {
	registry := histztesting.NewTestRegistry(t)
	if _, err := registry.Add1D(TestHistKey, 10, unitRange); err != nil {
		t.Fatalf("Add1D failed: %v", err)
	}
	registry.Fill1D(TestHistKey, []float64{1.5, 2.5, 2.5, 3.5, 7.5})
	registry.BindSurface(mainSurface, TestHistKey)

	got, ok := registry.OnPointerEnter(mainSurface, histz.View{X: histz.Range{Min: 1, Max: 4}})
	if !ok {
		t.Fatal("Expected a summary for a populated window")
	}
	want := "Integral: 4\nCentroid: 2\nSigma: 0.7071"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestOverlay_Summary2D(t *testing.T) {
	registry := histztesting.NewTestRegistry(t)
	if _, err := registry.Add2D(TestHist2DKey, 4, 2, histz.Range{Min: 0, Max: 4}, histz.Range{Min: 0, Max: 2}); err != nil {
		t.Fatalf("Add2D failed: %v", err)
	}
	registry.Fill2D(TestHist2DKey, []float64{0.5, 1.5, 1.5}, []float64{0.5, 0.5, 0.5})
	registry.BindSurface(mainSurface, TestHist2DKey)

	view := histz.View{X: histz.Range{Min: 0, Max: 4}, Y: histz.Range{Min: 0, Max: 2}}
	got, ok := registry.OnPointerEnter(mainSurface, view)
	if !ok {
		t.Fatal("Expected a summary for a populated window")
	}
	want := "Integral: 3\nCentroid X: 0.6667\nCentroid Y: 0\nSigma X: 0.4714\nSigma Y: 0"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestOverlay_NoSummary(t *testing.T) {
	registry := histztesting.NewTestRegistry(t)
	if _, err := registry.Add1D(TestHistKey, 10, unitRange); err != nil {
		t.Fatalf("Add1D failed: %v", err)
	}
	registry.Fill1D(TestHistKey, []float64{5.5})

	if _, ok := registry.OnPointerEnter(mainSurface, histz.View{X: unitRange}); ok {
		t.Error("Unbound surface should produce no summary")
	}

	registry.BindSurface(mainSurface, MissingKey)
	if _, ok := registry.OnPointerEnter(mainSurface, histz.View{X: unitRange}); ok {
		t.Error("Surface bound to a missing key should produce no summary")
	}

	registry.BindSurface(mainSurface, TestHistKey)
	if _, ok := registry.OnPointerEnter(mainSurface, histz.View{X: histz.Range{Min: 0, Max: 4}}); ok {
		t.Error("Empty visible window should produce no summary")
	}
}

func TestOverlay_BindBeforeAdd(t *testing.T) {
	registry := histztesting.NewTestRegistry(t)
	registry.BindSurface(mainSurface, TestHistKey)

	if _, err := registry.Add1D(TestHistKey, 10, unitRange); err != nil {
		t.Fatalf("Add1D failed: %v", err)
	}
	registry.Fill1D(TestHistKey, []float64{1.5, 2.5})

	if _, ok := registry.OnPointerEnter(mainSurface, histz.View{X: unitRange}); !ok {
		t.Error("Key should be resolved at pointer time, not bind time")
	}
}

func TestOverlay_AnnotationLifecycle(t *testing.T) {
	registry := histztesting.NewTestRegistry(t)

	if registry.SetAnnotation(mainSurface, &annotation{}) {
		t.Error("SetAnnotation on an unbound surface should return false")
	}

	registry.BindSurface(mainSurface, TestHistKey)
	if _, ok := registry.OnPointerLeave(mainSurface); ok {
		t.Error("Leave with nothing shown should return false")
	}

	shown := &annotation{text: "Integral: 4"}
	if !registry.SetAnnotation(mainSurface, shown) {
		t.Fatal("SetAnnotation on a bound surface should succeed")
	}

	handle, ok := registry.OnPointerLeave(mainSurface)
	if !ok {
		t.Fatal("Leave after SetAnnotation should return the handle")
	}
	if handle != shown {
		t.Errorf("Expected the stored handle back, got %v", handle)
	}

	if _, ok := registry.OnPointerLeave(mainSurface); ok {
		t.Error("Second leave should find nothing to remove")
	}
}

func TestOverlay_RebindKeepsAnnotation(t *testing.T) {
	registry := histztesting.NewTestRegistry(t)
	registry.BindSurface(mainSurface, TestHistKey)

	shown := &annotation{text: "old"}
	registry.SetAnnotation(mainSurface, shown)
	registry.BindSurface(mainSurface, OtherHistKey)

	handle, ok := registry.OnPointerLeave(mainSurface)
	if !ok || handle != shown {
		t.Error("Rebinding should not drop the annotation already on screen")
	}
}

func TestOverlay_Unbind(t *testing.T) {
	registry := histztesting.NewTestRegistry(t)

	if _, ok := registry.UnbindSurface(mainSurface); ok {
		t.Error("Unbinding an unknown surface should return false")
	}

	registry.BindSurface(mainSurface, TestHistKey)
	shown := &annotation{text: "shown"}
	registry.SetAnnotation(mainSurface, shown)

	handle, ok := registry.UnbindSurface(mainSurface)
	if !ok || handle != shown {
		t.Error("Unbind should return the annotation still on screen")
	}
	if registry.SetAnnotation(mainSurface, shown) {
		t.Error("Surface should be unbound")
	}
}

func TestSummary_Direct(t *testing.T) {
	h, err := histz.NewHistogram1D("direct", 4, histz.Range{Min: 0, Max: 4})
	if err != nil {
		t.Fatalf("NewHistogram1D failed: %v", err)
	}
	h.Fill([]float64{0.5, 1.5})

	got, ok := histz.Summary(h, histz.View{X: histz.Range{Min: 0, Max: 4}})
	if !ok {
		t.Fatal("Expected a summary")
	}
	want := "Integral: 2\nCentroid: 0.5\nSigma: 0.5"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
