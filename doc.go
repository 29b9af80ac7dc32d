// Package tessel turns 2D shapes into colored triangle lists for
// [Ebitengine] and other immediate-mode back-ends.
//
// Shapes are never built as full vertex arrays. Each shape is a
// [PointSource] that produces its boundary one point at a time, and a
// [Tessellator] fans those points into fixed-size batches that are handed to
// a sink as soon as they fill up. Memory use is bounded by one batch no
// matter how many points a shape has.
//
// # Quick start
//
// Wrap a render target in a [Backend] and draw through a [Context]:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		b := tessel.NewEbitenBackend(screen)
//		ctx := tessel.NewContext().Trans(100, 80)
//		ctx.WithColor(tessel.Color{R: 1, G: 0.5, B: 0.2, A: 1}).
//			FillEllipse(b, tessel.Ellipse{Rect: tessel.Rect{Width: 64, Height: 32}, Resolution: 48})
//	}
//
// For headless rendering use [NewSoftwareBackend], which rasterizes on the
// CPU into an *image.RGBA.
//
// # Shapes
//
// Convex shapes supported out of the box:
//
//   - [Polygon]: a flat x0, y0, x1, y1, ... list
//   - [Ellipse]: inscribed in a rectangle
//   - [RoundRect]: a rectangle with four quarter-circle corners
//   - [RoundBorder]: a thick line segment with semicircular caps
//   - [TweenPolygons]: a cyclic set of keyframe polygons morphed by a factor
//
// Shape-level entry points ([Tessellator.Polygon], [Context.FillEllipse] and
// friends) validate their input and return errors wrapping the sentinels in
// errors.go. [Tessellator.Stream] accepts any PointSource as-is.
//
// Rectangles skip the tessellator entirely; see [RectVertices],
// [RectColors] and [RectUVs].
//
// # Context
//
// A [Context] is a small value holding the current transform, a stored view
// transform, the fill color and an animated polygon set. Every derivation
// (WithColor, Trans, Rot, ...) returns a copy, so a Context can be passed
// down a draw tree and specialized per branch. Fills skip fully transparent
// colors and enable alpha blending only for translucent ones.
//
// # Animation
//
// [FactorTween] and [ColorTween] drive a Context's tween factor and color
// over time using [gween] easing functions.
//
// # Logging
//
// The package logs through [log/slog]. Nothing is logged until a logger is
// installed with [SetLogger].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package tessel
