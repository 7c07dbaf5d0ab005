package histz

import "github.com/zeebo/errs"

// Error classes for construction and decoding failures. Test membership with
// Has, e.g. InvalidRange.Has(err).
var (
	// InvalidGeometry is returned for a polygon with fewer than three vertices
	// or with non-finite coordinates.
	InvalidGeometry = errs.Class("invalid geometry")

	// InvalidRange is returned for a non-positive bin count, an inverted or
	// degenerate range, or mismatched column lengths.
	InvalidRange = errs.Class("invalid range")

	// InvalidFormat is returned when a persisted cut cannot be decoded.
	InvalidFormat = errs.Class("invalid format")

	// InvalidName is returned when a Selector rename names a cut that does
	// not exist or a name already taken.
	InvalidName = errs.Class("invalid name")
)
