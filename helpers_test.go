package tessel

import "math"

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// batch is a copy of one sink invocation.
type batch struct {
	vertices []float32
	colors   []float32
}

// recorder collects sink batches. The sink copies because the tessellator
// reuses its buffers after the call returns.
type recorder struct {
	batches []batch
}

func (r *recorder) sink(vertices, colors []float32) {
	r.batches = append(r.batches, batch{
		vertices: append([]float32(nil), vertices...),
		colors:   append([]float32(nil), colors...),
	})
}

// vertices returns all batches concatenated.
func (r *recorder) vertices() []float32 {
	var out []float32
	for _, b := range r.batches {
		out = append(out, b.vertices...)
	}
	return out
}

func (r *recorder) colors() []float32 {
	var out []float32
	for _, b := range r.batches {
		out = append(out, b.colors...)
	}
	return out
}

// fakeBackend records every call as a string, plus the drawn batches.
type fakeBackend struct {
	noTriList bool
	noClear   bool
	calls     []string
	rec       recorder
	clear     [4]float32
}

func (f *fakeBackend) SupportsTriList() bool { return !f.noTriList }
func (f *fakeBackend) SupportsClear() bool   { return !f.noClear }
func (f *fakeBackend) EnableAlphaBlend()     { f.calls = append(f.calls, "enable") }
func (f *fakeBackend) DisableAlphaBlend()    { f.calls = append(f.calls, "disable") }

func (f *fakeBackend) TriList(vertices, colors []float32) {
	f.calls = append(f.calls, "trilist")
	f.rec.sink(vertices, colors)
}

func (f *fakeBackend) Clear(r, g, b, a float32) {
	f.calls = append(f.calls, "clear")
	f.clear = [4]float32{r, g, b, a}
}

// nopBackend accepts every call and draws nothing.
type nopBackend struct{}

func (nopBackend) SupportsTriList() bool    { return true }
func (nopBackend) SupportsClear() bool      { return true }
func (nopBackend) EnableAlphaBlend()        {}
func (nopBackend) DisableAlphaBlend()       {}
func (nopBackend) TriList(_, _ []float32)   {}
func (nopBackend) Clear(_, _, _, _ float32) {}

// regularPolygon returns n points on a circle of radius r around the origin.
func regularPolygon(n int, r float64) Polygon {
	p := make(Polygon, 0, n*2)
	for i := 0; i < n; i++ {
		a := float64(i) / float64(n) * 2 * math.Pi
		p = append(p, math.Cos(a)*r, math.Sin(a)*r)
	}
	return p
}

// drain pulls every point out of src.
func drain(src PointSource) []Vec2 {
	var out []Vec2
	for {
		x, y, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, Vec2{x, y})
	}
}
