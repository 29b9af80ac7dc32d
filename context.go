package tessel

import (
	"fmt"
	"sync"
)

// Context carries the drawing state for one branch of a draw call tree: the
// current and base transforms, the fill color, and the animated polygon set
// with its tween factor.
//
// Context is a small value. Every With*/transform method returns a modified
// copy and leaves the receiver untouched, so a Context can be handed down a
// call tree and specialized at each level without affecting siblings. The
// polygon frames are shared by reference and must not be mutated while any
// derived Context is in use.
//
// Fills stream through a Tessellator taken from a package pool, or through
// the one set with WithTessellator. Either way a fill does not allocate once
// the Tessellator exists.
type Context struct {
	base        Matrix
	transform   Matrix
	color       Color
	tweenFactor float64
	polygons    [][]float64
	tess        *Tessellator
}

// NewContext returns a Context with identity transforms, white color, no
// polygon frames and a zero tween factor.
func NewContext() Context {
	return Context{
		base:      Identity(),
		transform: Identity(),
		color:     ColorWhite,
	}
}

// Transform returns the current transform.
func (c Context) Transform() Matrix { return c.transform }

// Base returns the stored view transform that View restores.
func (c Context) Base() Matrix { return c.base }

// Color returns the fill color.
func (c Context) Color() Color { return c.color }

// TweenFactor returns the animation factor used by Fill.
func (c Context) TweenFactor() float64 { return c.tweenFactor }

// Polygons returns the keyframes used by Fill.
func (c Context) Polygons() [][]float64 { return c.polygons }

// WithColor returns a copy of c with the fill color replaced.
func (c Context) WithColor(col Color) Context {
	c.color = col
	return c
}

// WithTransform returns a copy of c with the current transform replaced.
func (c Context) WithTransform(m Matrix) Context {
	c.transform = m
	return c
}

// WithTweenFactor returns a copy of c with the tween factor replaced.
func (c Context) WithTweenFactor(f float64) Context {
	c.tweenFactor = f
	return c
}

// WithPolygons returns a copy of c drawing the given keyframes on Fill.
func (c Context) WithPolygons(frames [][]float64) Context {
	c.polygons = frames
	return c
}

// WithTessellator returns a copy of c whose fills stream through t instead of
// a pooled Tessellator. Contexts sharing t must not fill concurrently. A nil
// t restores the pool.
func (c Context) WithTessellator(t *Tessellator) Context {
	c.tess = t
	return c
}

// Trans returns a copy of c translated by (x, y) in its current space.
func (c Context) Trans(x, y float64) Context {
	c.transform = c.transform.Multiply(Translate(x, y))
	return c
}

// Rot returns a copy of c rotated by angle radians in its current space.
func (c Context) Rot(angle float64) Context {
	c.transform = c.transform.Multiply(Rotate(angle))
	return c
}

// Scale returns a copy of c scaled by (sx, sy) in its current space.
func (c Context) Scale(sx, sy float64) Context {
	c.transform = c.transform.Multiply(Scale(sx, sy))
	return c
}

// View returns a copy of c with the current transform reset to the base
// transform.
func (c Context) View() Context {
	c.transform = c.base
	return c
}

// Reset returns a copy of c with the current transform set to identity. The
// base transform is kept.
func (c Context) Reset() Context {
	c.transform = Identity()
	return c
}

// StoreView returns a copy of c whose base transform is the current one.
func (c Context) StoreView() Context {
	c.base = c.transform
	return c
}

// Clear fills the back-end's target with the context color. Back-ends
// without clear support are left untouched.
func (c Context) Clear(b Backend) {
	if !b.SupportsClear() {
		return
	}
	r, g, bl, a := c.color.RGBA32()
	b.Clear(r, g, bl, a)
}

// Fill draws the context's polygon set at its tween factor.
//
// A fully transparent color draws nothing. A translucent color is drawn with
// alpha blending enabled for the duration of the call. If the back-end cannot
// draw colored triangle lists Fill returns an error wrapping ErrNoTriList,
// before any shape validation.
func (c Context) Fill(b Backend) error {
	tw := TweenPolygons{Frames: c.polygons, Factor: c.tweenFactor}
	t, err := c.begin(b, "tween", tw.Validate())
	if t == nil {
		return err
	}
	return c.end(b, "tween", t, t.tween(c.transform, tw, c.color, b.TriList))
}

// FillPolygon draws a convex polygon given as flat coordinates.
func (c Context) FillPolygon(b Backend, p Polygon) error {
	t, err := c.begin(b, "polygon", p.Validate())
	if t == nil {
		return err
	}
	return c.end(b, "polygon", t, t.polygon(c.transform, p, c.color, b.TriList))
}

// FillEllipse draws an ellipse.
func (c Context) FillEllipse(b Backend, e Ellipse) error {
	t, err := c.begin(b, "ellipse", e.Validate())
	if t == nil {
		return err
	}
	return c.end(b, "ellipse", t, t.ellipse(c.transform, e, c.color, b.TriList))
}

// FillRoundRect draws a rectangle with rounded corners.
func (c Context) FillRoundRect(b Backend, r RoundRect) error {
	t, err := c.begin(b, "round_rect", r.Validate())
	if t == nil {
		return err
	}
	return c.end(b, "round_rect", t, t.roundRect(c.transform, r, c.color, b.TriList))
}

// FillRoundBorder draws a thick line with round caps.
func (c Context) FillRoundBorder(b Backend, rb RoundBorder) error {
	t, err := c.begin(b, "round_border", rb.Validate())
	if t == nil {
		return err
	}
	return c.end(b, "round_border", t, t.roundBorder(c.transform, rb, c.color, b.TriList))
}

// FillSource draws an arbitrary point sequence as a triangle fan.
func (c Context) FillSource(b Backend, src PointSource) error {
	t, err := c.begin(b, "source", nil)
	if t == nil {
		return err
	}
	return c.end(b, "source", t, t.Stream(c.transform, src, c.color, b.TriList))
}

// FillRect draws an axis-aligned rectangle as one batch of two triangles.
func (c Context) FillRect(b Backend, r Rect) error {
	t, err := c.begin(b, "rect", nil)
	if t == nil {
		return err
	}
	return c.end(b, "rect", t, t.Rect(c.transform, r, c.color, b.TriList))
}

// tessPool backs fills on a Context without its own Tessellator.
var tessPool = sync.Pool{New: func() any { return new(Tessellator) }}

// begin runs the checks shared by every fill, in order: back-end capability,
// shape validity, transparency. When the fill should draw it switches alpha
// blending on for a translucent color and returns the Tessellator to stream
// through. A nil Tessellator means stop and return err.
func (c Context) begin(b Backend, shape string, invalid error) (*Tessellator, error) {
	if !b.SupportsTriList() {
		return nil, noTriList(shape)
	}
	if invalid != nil {
		return nil, invalid
	}
	// Complete transparency does not need to be rendered.
	if c.color.A == 0 {
		return nil, nil
	}
	if c.color.A != 1 {
		b.EnableAlphaBlend()
	}
	if c.tess != nil {
		return c.tess, nil
	}
	return tessPool.Get().(*Tessellator), nil
}

// end undoes begin once the shape has been streamed.
func (c Context) end(b Backend, shape string, t *Tessellator, st Stats) error {
	if c.color.A != 1 {
		b.DisableAlphaBlend()
	}
	if c.tess == nil {
		tessPool.Put(t)
	}
	logFill(shape, st)
	return nil
}

func noTriList(shape string) error {
	Logger().Warn("tessel: fill skipped", "shape", shape, "reason", ErrNoTriList)
	return fmt.Errorf("tessel: fill %s: %w", shape, ErrNoTriList)
}
