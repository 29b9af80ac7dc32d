package tessel

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"
)

// SoftwareBackend rasterizes triangle-list batches on the CPU into an
// *image.RGBA. It is meant for headless rendering, golden images and tools;
// it anti-aliases edges but does not interpolate per-vertex colors (each
// triangle takes the color of its first vertex, which is exact for the flat
// colors a Context emits).
type SoftwareBackend struct {
	img   *image.RGBA
	ras   *vector.Rasterizer
	alpha bool
	draws int
}

// NewSoftwareBackend returns a back-end with a transparent w×h canvas.
func NewSoftwareBackend(w, h int) *SoftwareBackend {
	return &SoftwareBackend{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		ras: vector.NewRasterizer(w, h),
	}
}

// Image returns the canvas.
func (s *SoftwareBackend) Image() *image.RGBA { return s.img }

// DrawCount returns the number of rasterizer passes so far. Consecutive
// triangles of one color share a pass.
func (s *SoftwareBackend) DrawCount() int { return s.draws }

// SupportsTriList reports true.
func (s *SoftwareBackend) SupportsTriList() bool { return true }

// SupportsClear reports true.
func (s *SoftwareBackend) SupportsClear() bool { return true }

// EnableAlphaBlend makes subsequent triangles composite over the canvas with
// their alpha.
func (s *SoftwareBackend) EnableAlphaBlend() { s.alpha = true }

// DisableAlphaBlend makes subsequent triangles opaque.
func (s *SoftwareBackend) DisableAlphaBlend() { s.alpha = false }

// Clear replaces every pixel with the given straight-alpha color.
func (s *SoftwareBackend) Clear(r, g, b, a float32) {
	c := Color{float64(r), float64(g), float64(b), float64(a)}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.toNRGBA()), image.Point{}, draw.Src)
}

// TriList rasterizes the batch.
func (s *SoftwareBackend) TriList(vertices, colors []float32) {
	tris := len(vertices) / (3 * vertexStride)
	if tris == 0 {
		return
	}

	b := s.img.Bounds()
	s.ras.Reset(b.Dx(), b.Dy())
	run := s.triColor(colors, 0)
	pending := false
	for i := 0; i < tris; i++ {
		c := s.triColor(colors, i)
		if pending && c != run {
			s.flush(run)
			s.ras.Reset(b.Dx(), b.Dy())
		}
		run = c

		v := vertices[i*3*vertexStride:]
		s.ras.MoveTo(v[0], v[1])
		s.ras.LineTo(v[2], v[3])
		s.ras.LineTo(v[4], v[5])
		s.ras.ClosePath()
		pending = true
	}
	s.flush(run)
}

// triColor returns the color of triangle i's first vertex as drawn under the
// current blend state.
func (s *SoftwareBackend) triColor(colors []float32, i int) color.NRGBA {
	ci := i * 3 * colorStride
	c := Color{float64(colors[ci]), float64(colors[ci+1]), float64(colors[ci+2]), float64(colors[ci+3])}
	if !s.alpha {
		c.A = 1
	}
	return c.toNRGBA()
}

func (s *SoftwareBackend) flush(c color.NRGBA) {
	s.ras.DrawOp = draw.Over
	s.ras.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
	s.draws++
}

// WritePNG encodes the canvas to a PNG file at path.
func (s *SoftwareBackend) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tessel: create %s: %w", path, err)
	}
	if err := png.Encode(f, s.img); err != nil {
		f.Close()
		return fmt.Errorf("tessel: encode %s: %w", path, err)
	}
	return f.Close()
}
