package tessel

import "errors"

// Shape-level entry points validate their input and wrap one of these with
// the offending values. Raw PointSources and Tessellator.Stream never check;
// the preconditions documented on each source are the caller's obligation.
var (
	// ErrOddPolygon reports a flat coordinate slice with an odd length.
	ErrOddPolygon = errors.New("polygon coordinate count is odd")
	// ErrNoFrames reports a tween set with no polygon frames.
	ErrNoFrames = errors.New("tween set has no frames")
	// ErrFrameMismatch reports tween frames with differing point counts.
	ErrFrameMismatch = errors.New("tween frames differ in length")
	// ErrFactor reports a tween factor that is NaN or infinite.
	ErrFactor = errors.New("tween factor is not finite")
	// ErrResolution reports a curve resolution too small for its
	// parameterization (arcs need at least 2 samples).
	ErrResolution = errors.New("resolution too small")
	// ErrNoTriList reports a back-end that cannot draw colored triangle
	// lists. There is no software tessellation fallback.
	ErrNoTriList = errors.New("back-end does not support colored triangle lists")
)
