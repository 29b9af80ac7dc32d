package tessel

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// White pixel singleton. Back-ends are single-threaded, so no sync.Once.

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image that
// untextured triangles sample from.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// EbitenBackend draws triangle-list batches onto an ebiten image.
//
// Each TriList call becomes one DrawTriangles32 call. Vertex and index
// buffers grow to the largest batch seen and are then reused.
type EbitenBackend struct {
	// Target receives all draws.
	Target *ebiten.Image
	// AlphaBlend is the blend used while alpha blending is enabled.
	// Zero means BlendNormal.
	AlphaBlend BlendMode

	blend BlendMode
	verts []ebiten.Vertex
	inds  []uint32

	drawCalls int
	triangles int
}

// NewEbitenBackend returns a back-end drawing onto target with alpha
// blending initially disabled.
func NewEbitenBackend(target *ebiten.Image) *EbitenBackend {
	return &EbitenBackend{Target: target, blend: BlendNone}
}

// SupportsTriList reports true.
func (e *EbitenBackend) SupportsTriList() bool { return true }

// SupportsClear reports true.
func (e *EbitenBackend) SupportsClear() bool { return true }

// EnableAlphaBlend switches to the AlphaBlend mode.
func (e *EbitenBackend) EnableAlphaBlend() {
	e.blend = e.AlphaBlend
	if e.blend == BlendNone {
		e.blend = BlendNormal
	}
}

// DisableAlphaBlend switches to opaque copies.
func (e *EbitenBackend) DisableAlphaBlend() { e.blend = BlendNone }

// Blend returns the blend mode the next draw uses.
func (e *EbitenBackend) Blend() BlendMode { return e.blend }

// Clear fills the target with the given straight-alpha color.
func (e *EbitenBackend) Clear(r, g, b, a float32) {
	e.Target.Fill(clearColor(r, g, b, a))
}

func clearColor(r, g, b, a float32) color.NRGBA {
	return Color{float64(r), float64(g), float64(b), float64(a)}.toNRGBA()
}

// TriList converts the flat batch into premultiplied ebiten vertices and
// draws it.
func (e *EbitenBackend) TriList(vertices, colors []float32) {
	n := len(vertices) / vertexStride
	if n == 0 {
		return
	}
	e.fillVertices(vertices, colors)

	op := e.drawOptions()
	e.Target.DrawTriangles32(e.verts, e.inds, ensureWhitePixel(), &op)
	e.drawCalls++
	e.triangles += n / 3
}

// drawOptions returns the options for the next DrawTriangles32 call.
func (e *EbitenBackend) drawOptions() ebiten.DrawTrianglesOptions {
	var op ebiten.DrawTrianglesOptions
	op.Blend = e.blend.EbitenBlend()
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	return op
}

// DrawCalls returns the number of DrawTriangles32 calls since the last
// ResetCounters.
func (e *EbitenBackend) DrawCalls() int { return e.drawCalls }

// Triangles returns the number of triangles drawn since the last
// ResetCounters.
func (e *EbitenBackend) Triangles() int { return e.triangles }

// ResetCounters zeroes DrawCalls and Triangles. Call it once per frame.
func (e *EbitenBackend) ResetCounters() {
	e.drawCalls = 0
	e.triangles = 0
}

// fillVertices rebuilds e.verts and e.inds for one batch. The batch is
// already a plain triangle list, so indices are sequential.
func (e *EbitenBackend) fillVertices(vertices, colors []float32) {
	n := len(vertices) / vertexStride

	// Grow to high-water mark.
	if cap(e.verts) < n {
		e.verts = make([]ebiten.Vertex, n)
	}
	e.verts = e.verts[:n]
	if cap(e.inds) < n {
		e.inds = make([]uint32, n)
		for i := range e.inds {
			e.inds[i] = uint32(i)
		}
	}
	e.inds = e.inds[:n]

	for i := 0; i < n; i++ {
		ci := i * colorStride
		a := colors[ci+3]
		e.verts[i] = ebiten.Vertex{
			DstX: vertices[i*vertexStride],
			DstY: vertices[i*vertexStride+1],
			// Untextured: map to center of white pixel (0.5, 0.5)
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: colors[ci] * a,
			ColorG: colors[ci+1] * a,
			ColorB: colors[ci+2] * a,
			ColorA: a,
		}
	}
}
