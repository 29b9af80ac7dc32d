package tessel

// Backend is the rendering collaborator a Context draws through. Draw and
// clear support are queried before use; calling TriList or Clear when the
// matching Supports method reports false is undefined.
type Backend interface {
	// SupportsTriList reports whether TriList is available.
	SupportsTriList() bool
	// TriList draws a triangle list with 2 vertex floats (x, y) and 4 color
	// floats (r, g, b, a, straight alpha) per vertex. The slices are only
	// valid for the duration of the call.
	TriList(vertices, colors []float32)
	// EnableAlphaBlend switches subsequent draws to source-over blending.
	EnableAlphaBlend()
	// DisableAlphaBlend switches subsequent draws back to opaque copies.
	DisableAlphaBlend()

	// SupportsClear reports whether Clear is available.
	SupportsClear() bool
	// Clear fills the whole target with one color.
	Clear(r, g, b, a float32)
}
