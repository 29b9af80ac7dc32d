package tessel

import (
	"context"
	"fmt"
	"math"
)

// PointSource is a forward-only, single-pass producer of object-space points.
// Next returns ok == false once the sequence is exhausted; after that it keeps
// returning false. Concrete sources in this package can be replayed with
// Reset.
type PointSource interface {
	Next() (x, y float64, ok bool)
}

// PointsFunc adapts a plain function to a PointSource.
type PointsFunc func() (x, y float64, ok bool)

// Next calls f.
func (f PointsFunc) Next() (float64, float64, bool) { return f() }

// WithContext wraps src so the sequence ends early once ctx is done. The
// tessellator then flushes whatever it has already produced.
func WithContext(ctx context.Context, src PointSource) PointSource {
	return &ctxPoints{done: ctx.Done(), src: src}
}

type ctxPoints struct {
	done <-chan struct{}
	src  PointSource
}

func (c *ctxPoints) Next() (float64, float64, bool) {
	select {
	case <-c.done:
		return 0, 0, false
	default:
	}
	return c.src.Next()
}

// --- Polygon ---

// Polygon is a flat coordinate list: x0, y0, x1, y1, ...
type Polygon []float64

// Validate reports ErrOddPolygon for an odd coordinate count.
func (p Polygon) Validate() error {
	if len(p)%2 != 0 {
		return fmt.Errorf("tessel: polygon of %d coordinates: %w", len(p), ErrOddPolygon)
	}
	return nil
}

// Points returns a source walking the polygon two coordinates at a time.
func (p Polygon) Points() PolygonPoints {
	return PolygonPoints{coords: p}
}

// PolygonPoints walks a flat coordinate list. A trailing odd coordinate is
// never produced.
type PolygonPoints struct {
	coords []float64
	i      int
}

// Next returns the next coordinate pair.
func (p *PolygonPoints) Next() (float64, float64, bool) {
	if p.i+1 >= len(p.coords) {
		return 0, 0, false
	}
	j := p.i
	p.i += 2
	return p.coords[j], p.coords[j+1], true
}

// Reset rewinds to the first point.
func (p *PolygonPoints) Reset() { p.i = 0 }

// --- Ellipse ---

// Ellipse is an ellipse inscribed in Rect, approximated by Resolution points.
type Ellipse struct {
	Rect       Rect
	Resolution int
}

// Validate rejects a negative resolution. Resolutions below 3 are legal and
// tessellate to nothing.
func (e Ellipse) Validate() error {
	if e.Resolution < 0 {
		return fmt.Errorf("tessel: ellipse resolution %d: %w", e.Resolution, ErrResolution)
	}
	return nil
}

// Points returns a source producing exactly Resolution perimeter points,
// starting at angle 0 and advancing by 2π/Resolution.
func (e Ellipse) Points() EllipsePoints {
	cw, ch := 0.5*e.Rect.Width, 0.5*e.Rect.Height
	return EllipsePoints{
		cx: e.Rect.X + cw, cy: e.Rect.Y + ch,
		cw: cw, ch: ch,
		n: e.Resolution,
	}
}

// EllipsePoints produces points around an ellipse.
type EllipsePoints struct {
	cx, cy, cw, ch float64
	n, i           int
}

// Next returns the next perimeter point.
func (e *EllipsePoints) Next() (float64, float64, bool) {
	if e.i >= e.n {
		return 0, 0, false
	}
	angle := float64(e.i) / float64(e.n) * 2 * math.Pi
	e.i++
	sin, cos := math.Sincos(angle)
	return e.cx + cos*e.cw, e.cy + sin*e.ch, true
}

// Reset rewinds to the first point.
func (e *EllipsePoints) Reset() { e.i = 0 }

// --- RoundRect ---

// RoundRect is a rectangle whose corners are quarter circles of Radius, each
// sampled with CornerResolution points.
type RoundRect struct {
	Rect             Rect
	Radius           float64
	CornerResolution int
}

// Validate rejects a corner resolution below 2.
func (r RoundRect) Validate() error {
	if r.CornerResolution < 2 {
		return fmt.Errorf("tessel: round rect corner resolution %d: %w", r.CornerResolution, ErrResolution)
	}
	return nil
}

// Points returns a source producing 4*CornerResolution points. CornerResolution
// must be at least 2.
func (r RoundRect) Points() RoundRectPoints {
	return RoundRectPoints{rect: r.Rect, radius: r.Radius, res: r.CornerResolution}
}

// RoundRectPoints produces the four corner arcs of a round rectangle.
type RoundRectPoints struct {
	rect   Rect
	radius float64
	res, i int
}

// Next returns the next arc sample.
//
// Arcs run clockwise in screen space (Y down), one per corner:
//
//	k=0 phase 0     center (x+w-r, y+h-r)  bottom-right
//	k=1 phase π/2   center (x+r,   y+h-r)  bottom-left
//	k=2 phase π     center (x+r,   y+r)    top-left
//	k=3 phase 3π/2  center (x+w-r, y+r)    top-right
//
// The straight edges are the chords between consecutive arcs.
func (p *RoundRectPoints) Next() (float64, float64, bool) {
	res := p.res
	if p.i >= 4*res {
		return 0, 0, false
	}
	j := p.i
	p.i++

	x, y, w, h, r := p.rect.X, p.rect.Y, p.rect.Width, p.rect.Height, p.radius
	k := j / res
	step := float64(j-k*res) / float64(res-1) * (math.Pi / 2)

	var cx, cy, phase float64
	switch k {
	case 0:
		cx, cy, phase = x+w-r, y+h-r, 0
	case 1:
		cx, cy, phase = x+r, y+h-r, math.Pi/2
	case 2:
		cx, cy, phase = x+r, y+r, math.Pi
	default:
		cx, cy, phase = x+w-r, y+r, 3*math.Pi/2
	}
	sin, cos := math.Sincos(step + phase)
	return cx + cos*r, cy + sin*r, true
}

// Reset rewinds to the first point.
func (p *RoundRectPoints) Reset() { p.i = 0 }

// --- RoundBorder ---

// RoundBorder is a thick line of half-width Radius with semicircular caps,
// each cap sampled with CapResolution points.
type RoundBorder struct {
	Line          Line
	Radius        float64
	CapResolution int
}

// Validate rejects a cap resolution below 2.
func (b RoundBorder) Validate() error {
	if b.CapResolution < 2 {
		return fmt.Errorf("tessel: round border cap resolution %d: %w", b.CapResolution, ErrResolution)
	}
	return nil
}

// Local returns the transform placing the line's local frame, where the line
// runs from (0, 0) to (length, 0), onto the line's actual endpoints.
func (b RoundBorder) Local() Matrix {
	l := b.Line
	return Translate(l.X1, l.Y1).Multiply(Orient(l.X2-l.X1, l.Y2-l.Y1))
}

// Points returns a source producing 2*CapResolution points in the line's local
// frame (see Local). CapResolution must be at least 2.
func (b RoundBorder) Points() RoundBorderPoints {
	return RoundBorderPoints{length: b.Line.Len(), radius: b.Radius, res: b.CapResolution}
}

// RoundBorderPoints produces the two end caps of a round border line.
type RoundBorderPoints struct {
	length, radius float64
	res, i         int
}

// Next returns the next cap sample. The first half is the start cap around
// the origin, the second half the end cap around (length, 0). Both are offset
// by π/2 because the line is horizontal; with zero length the caps close into
// a full circle.
func (p *RoundBorderPoints) Next() (float64, float64, bool) {
	res := p.res
	if p.i >= 2*res {
		return 0, 0, false
	}
	j := p.i
	p.i++

	if j >= res {
		angle := float64(j-res)/float64(res-1)*math.Pi + math.Pi + math.Pi/2
		sin, cos := math.Sincos(angle)
		return p.length + cos*p.radius, sin * p.radius, true
	}
	angle := float64(j)/float64(res-1)*math.Pi + math.Pi/2
	sin, cos := math.Sincos(angle)
	return cos * p.radius, sin * p.radius, true
}

// Reset rewinds to the first point.
func (p *RoundBorderPoints) Reset() { p.i = 0 }

// --- Tween ---

// TweenPolygons is an animated polygon: a cyclic list of keyframes of equal
// length and a tween factor selecting a position in the cycle.
type TweenPolygons struct {
	Frames [][]float64
	Factor float64
}

// Validate rejects an empty frame list, odd-length frames, frames whose
// lengths differ from the first and a non-finite factor.
func (t TweenPolygons) Validate() error {
	if math.IsNaN(t.Factor) || math.IsInf(t.Factor, 0) {
		return fmt.Errorf("tessel: tween factor %v: %w", t.Factor, ErrFactor)
	}
	if len(t.Frames) == 0 {
		return fmt.Errorf("tessel: tween: %w", ErrNoFrames)
	}
	n := len(t.Frames[0])
	for i, f := range t.Frames {
		if len(f) != n {
			return fmt.Errorf("tessel: tween frame %d has %d coordinates, frame 0 has %d: %w",
				i, len(f), n, ErrFrameMismatch)
		}
	}
	if n%2 != 0 {
		return fmt.Errorf("tessel: tween frames of %d coordinates: %w", n, ErrOddPolygon)
	}
	return nil
}

// Points returns a source interpolating between the two frames the factor
// falls between. The factor is taken modulo 1 (negative values wrap to
// positive), scaled by the frame count, and the integer part selects the
// frame; the last frame blends back into the first.
func (t TweenPolygons) Points() TweenPoints {
	n := len(t.Frames)
	if n == 0 {
		return TweenPoints{}
	}
	frame, next, local := tweenFrames(t.Factor, n)
	return TweenPoints{
		from:  t.Frames[frame],
		to:    t.Frames[next],
		t:     local,
		count: len(t.Frames[0]),
	}
}

// tweenFrames maps a tween factor onto a frame pair and the blend between
// them. A non-finite factor selects the first frame.
func tweenFrames(factor float64, n int) (frame, next int, local float64) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return 0, 1 % n, 0
	}
	tw := math.Mod(factor, 1)
	if tw < 0 {
		tw++
	}
	tw *= float64(n)
	frame = int(tw)
	switch {
	case frame >= n:
		// Rounding of tw just below 1 can land on n.
		frame = n - 1
	case frame < 0:
		frame = 0
	}
	next = (frame + 1) % n
	return frame, next, tw - float64(frame)
}

// TweenPoints produces linearly interpolated points of two keyframes.
type TweenPoints struct {
	from, to []float64
	t        float64
	count, i int
}

// Next returns the next interpolated point.
func (p *TweenPoints) Next() (float64, float64, bool) {
	if p.i+1 >= p.count {
		return 0, 0, false
	}
	j := p.i
	p.i += 2
	return lerp(p.from[j], p.to[j], p.t), lerp(p.from[j+1], p.to[j+1], p.t), true
}

// Reset rewinds to the first point.
func (p *TweenPoints) Reset() { p.i = 0 }
