package tessel

import "fmt"

// BatchTriangles is the number of triangles a Tessellator buffers before it
// flushes: 738 vertex floats and 1476 color floats, about 8.6 KiB together.
const BatchTriangles = 123

const (
	vertexStride = 2 // x, y
	colorStride  = 4 // r, g, b, a

	batchVertexFloats = BatchTriangles * 3 * vertexStride
	batchColorFloats  = BatchTriangles * 3 * colorStride
)

// Sink receives one batch of a triangle list: vertices holds 6 floats and
// colors 12 floats per triangle. Both slices alias the Tessellator's scratch
// buffers and are overwritten as soon as the sink returns, so the sink must
// consume or copy them before returning and must not re-enter the same
// Tessellator.
type Sink func(vertices, colors []float32)

// Stats describes one Stream call.
type Stats struct {
	Points    int // points pulled from the source
	Triangles int // triangles emitted
	Batches   int // sink invocations
}

func (s Stats) String() string {
	return fmt.Sprintf("%d points, %d triangles, %d batches", s.Points, s.Triangles, s.Batches)
}

// Tessellator streams point sequences into fixed-size triangle-list batches.
// Its buffers are fixed arrays and the shape entry points keep their point
// sources inside it, so one Tessellator reused across calls tessellates any
// number of points without further heap allocation. The zero value is ready
// to use. A Tessellator must not be used from more than one goroutine at a
// time.
type Tessellator struct {
	vertices [batchVertexFloats]float32
	colors   [batchColorFloats]float32

	// Sources for the shape entry points.
	poly  PolygonPoints
	ell   EllipsePoints
	rrect RoundRectPoints
	rb    RoundBorderPoints
	tw    TweenPoints
}

// Stream fans the points of src into triangles anchored at the first point,
// transforms each vertex by m, colors it with c and hands the result to sink
// in batches of at most BatchTriangles triangles.
//
// N points produce N-2 triangles. With fewer than 3 points the sink is never
// called. The fan is only a correct fill for convex, consistently wound
// outlines; other input renders incorrectly but never fails.
func (t *Tessellator) Stream(m Matrix, src PointSource, c Color, sink Sink) Stats {
	var st Stats

	x, y, ok := src.Next()
	if !ok {
		return st
	}
	st.Points++
	fx, fy := m.apply32(x, y)

	x, y, ok = src.Next()
	if !ok {
		return st
	}
	st.Points++
	gx, gy := m.apply32(x, y)

	r, g, b, a := c.RGBA32()
	verts := &t.vertices
	cols := &t.colors
	i := 0
	for {
		x, y, ok = src.Next()
		if !ok {
			break
		}
		st.Points++
		px, py := m.apply32(x, y)

		vi := i * 3 * vertexStride
		verts[vi+0], verts[vi+1] = fx, fy
		verts[vi+2], verts[vi+3] = gx, gy
		verts[vi+4], verts[vi+5] = px, py
		gx, gy = px, py

		ci := i * 3 * colorStride
		for k := 0; k < 3*colorStride; k += colorStride {
			cols[ci+k+0] = r
			cols[ci+k+1] = g
			cols[ci+k+2] = b
			cols[ci+k+3] = a
		}

		i++
		st.Triangles++
		if i == BatchTriangles {
			sink(verts[:], cols[:])
			st.Batches++
			i = 0
		}
	}

	if i > 0 {
		sink(verts[:i*3*vertexStride], cols[:i*3*colorStride])
		st.Batches++
	}
	return st
}

// --- Shape entry points ---
//
// Each validates its shape and then streams it; see the shape types for the
// parameterizations.

// Polygon tessellates a flat coordinate list.
func (t *Tessellator) Polygon(m Matrix, p Polygon, c Color, sink Sink) (Stats, error) {
	if err := p.Validate(); err != nil {
		return Stats{}, err
	}
	return t.polygon(m, p, c, sink), nil
}

// Ellipse tessellates an ellipse.
func (t *Tessellator) Ellipse(m Matrix, e Ellipse, c Color, sink Sink) (Stats, error) {
	if err := e.Validate(); err != nil {
		return Stats{}, err
	}
	return t.ellipse(m, e, c, sink), nil
}

// RoundRect tessellates a round rectangle.
func (t *Tessellator) RoundRect(m Matrix, r RoundRect, c Color, sink Sink) (Stats, error) {
	if err := r.Validate(); err != nil {
		return Stats{}, err
	}
	return t.roundRect(m, r, c, sink), nil
}

// RoundBorder tessellates a round border line. m is applied after the line's
// local frame.
func (t *Tessellator) RoundBorder(m Matrix, b RoundBorder, c Color, sink Sink) (Stats, error) {
	if err := b.Validate(); err != nil {
		return Stats{}, err
	}
	return t.roundBorder(m, b, c, sink), nil
}

// Tween tessellates the interpolated frame of a tweened polygon set.
func (t *Tessellator) Tween(m Matrix, tw TweenPolygons, c Color, sink Sink) (Stats, error) {
	if err := tw.Validate(); err != nil {
		return Stats{}, err
	}
	return t.tween(m, tw, c, sink), nil
}

// Rect emits r as a single batch of two triangles through the Tessellator's
// buffers.
func (t *Tessellator) Rect(m Matrix, r Rect, c Color, sink Sink) Stats {
	verts := RectVertices(m, r)
	cols := RectColors(c)
	nv := copy(t.vertices[:], verts[:])
	nc := copy(t.colors[:], cols[:nv/vertexStride*colorStride])
	sink(t.vertices[:nv], t.colors[:nc])
	return Stats{Points: 4, Triangles: 2, Batches: 1}
}

func (t *Tessellator) polygon(m Matrix, p Polygon, c Color, sink Sink) Stats {
	t.poly = p.Points()
	return t.Stream(m, &t.poly, c, sink)
}

func (t *Tessellator) ellipse(m Matrix, e Ellipse, c Color, sink Sink) Stats {
	t.ell = e.Points()
	return t.Stream(m, &t.ell, c, sink)
}

func (t *Tessellator) roundRect(m Matrix, r RoundRect, c Color, sink Sink) Stats {
	t.rrect = r.Points()
	return t.Stream(m, &t.rrect, c, sink)
}

func (t *Tessellator) roundBorder(m Matrix, b RoundBorder, c Color, sink Sink) Stats {
	t.rb = b.Points()
	return t.Stream(m.Multiply(b.Local()), &t.rb, c, sink)
}

func (t *Tessellator) tween(m Matrix, tw TweenPolygons, c Color, sink Sink) Stats {
	t.tw = tw.Points()
	return t.Stream(m, &t.tw, c, sink)
}
