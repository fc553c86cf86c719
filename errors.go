package cadgeo

import "errors"

// Sentinel errors. All failures are local validation failures raised
// synchronously at the point of misuse; callers match them with
// [errors.Is].
var (
	// ErrInvalidArity is returned when a cubic Bézier is constructed from
	// anything but exactly four control points.
	ErrInvalidArity = errors.New("cadgeo: exactly four control points required")

	// ErrOutOfRange is returned when a curve is evaluated outside the
	// parameter range [0, 1].
	ErrOutOfRange = errors.New("cadgeo: parameter t out of range [0, 1]")

	// ErrInvalidArgument is returned for malformed numeric arguments, such
	// as a non-positive segment count.
	ErrInvalidArgument = errors.New("cadgeo: invalid argument")

	// ErrMissingKey is returned when a wire-form mapping lacks "type" or the
	// type-specific required key.
	ErrMissingKey = errors.New("cadgeo: required key missing")

	// ErrUnknownType is returned for a "type" value outside the nine
	// recognized geometry tags.
	ErrUnknownType = errors.New("cadgeo: unknown geometry type")

	// ErrTooFewVertices is returned when a ring or vertex sequence is too
	// short to form the requested geometry.
	ErrTooFewVertices = errors.New("cadgeo: too few vertices")

	// ErrTypeMismatch is returned when geometries of different tags are
	// joined, or a non-geometry node is used where a geometry is required.
	ErrTypeMismatch = errors.New("cadgeo: geometry type mismatch")

	// ErrUnsupportedEntity is returned for entity kinds outside the
	// supported subset, including mesh and face-record polylines.
	ErrUnsupportedEntity = errors.New("cadgeo: unsupported entity")
)
