package integration

import "github.com/zoobzio/histz"

// Shared histogram keys for all integration tests.
const (
	// Detector plots.
	XAvgKey         histz.Key = "xavg"
	XAvgThetaKey    histz.Key = "xavg_theta"
	ScintCathodeKey histz.Key = "scint_cathode"

	// Gated variants.
	XAvgGatedKey histz.Key = "xavg_gated"

	// Race test keys.
	SharedHistKey histz.Key = "shared_hist"
	OtherHistKey  histz.Key = "other_hist"
)

// Surfaces used by the overlay tests.
const (
	FocalPlaneSurface histz.SurfaceID = "focal_plane"
	PIDSurface        histz.SurfaceID = "pid"
)
