package histz_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/zoobzio/histz"
	histztesting "github.com/zoobzio/histz/testing"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	if histz.Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("Default logger should not be enabled at any level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	histz.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { histz.SetLogger(nil) })

	registry := histztesting.NewTestRegistry(t)
	if _, err := registry.Add1D(TestHistKey, 10, unitRange); err != nil {
		t.Fatalf("Add1D failed: %v", err)
	}
	if _, err := registry.Add1D(TestHistKey, 20, unitRange); err != nil {
		t.Fatalf("Add1D failed: %v", err)
	}

	if !strings.Contains(buf.String(), "overwriting histogram") {
		t.Errorf("Package logger should receive the overwrite warning, got %q", buf.String())
	}
}

func TestSetLogger_NilRestoresSilent(t *testing.T) {
	var buf bytes.Buffer
	histz.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	histz.SetLogger(nil)

	if histz.Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}

func TestWithLogger_OverridesPackageLogger(t *testing.T) {
	var pkg, own bytes.Buffer
	histz.SetLogger(slog.New(slog.NewTextHandler(&pkg, nil)))
	t.Cleanup(func() { histz.SetLogger(nil) })

	registry := histztesting.NewTestRegistry(t).WithLogger(slog.New(slog.NewTextHandler(&own, nil)))
	for range 2 {
		if _, err := registry.Add1D(TestHistKey, 10, unitRange); err != nil {
			t.Fatalf("Add1D failed: %v", err)
		}
	}

	if pkg.Len() != 0 {
		t.Errorf("Package logger should be bypassed, got %q", pkg.String())
	}
	if !strings.Contains(own.String(), "overwriting histogram") {
		t.Errorf("Registry logger should receive the warning, got %q", own.String())
	}
}
