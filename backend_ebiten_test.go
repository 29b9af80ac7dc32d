package tessel

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEbitenBackendBlendState(t *testing.T) {
	e := NewEbitenBackend(nil)
	if e.Blend() != BlendNone {
		t.Fatalf("initial blend = %v, want BlendNone", e.Blend())
	}
	e.EnableAlphaBlend()
	if e.Blend() != BlendNormal {
		t.Errorf("enabled blend = %v, want BlendNormal", e.Blend())
	}
	e.DisableAlphaBlend()
	if e.Blend() != BlendNone {
		t.Errorf("disabled blend = %v, want BlendNone", e.Blend())
	}

	for _, mode := range []BlendMode{BlendAdd, BlendMultiply} {
		e.AlphaBlend = mode
		e.EnableAlphaBlend()
		if e.Blend() != mode {
			t.Errorf("enabled blend = %v, want %v", e.Blend(), mode)
		}
		if got := e.drawOptions().Blend; got != mode.EbitenBlend() {
			t.Errorf("draw blend for %v = %+v, want %+v", mode, got, mode.EbitenBlend())
		}
		e.DisableAlphaBlend()
		if got := e.drawOptions().Blend; got != ebiten.BlendCopy {
			t.Errorf("draw blend after disable = %+v, want BlendCopy", got)
		}
	}
}

func TestBlendModeEbitenBlend(t *testing.T) {
	multiply := ebiten.Blend{
		BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
		BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
		BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}
	tests := []struct {
		mode BlendMode
		want ebiten.Blend
	}{
		{BlendNone, ebiten.BlendCopy},
		{BlendNormal, ebiten.BlendSourceOver},
		{BlendAdd, ebiten.BlendLighter},
		{BlendMultiply, multiply},
		{BlendMode(99), ebiten.BlendSourceOver},
	}
	for _, tt := range tests {
		if got := tt.mode.EbitenBlend(); got != tt.want {
			t.Errorf("BlendMode(%d).EbitenBlend() = %+v, want %+v", tt.mode, got, tt.want)
		}
	}
}

func TestEbitenBackendDrawsThroughContext(t *testing.T) {
	target := ebiten.NewImage(64, 64)
	b := NewEbitenBackend(target)
	NewContext().WithColor(Color{0.25, 0.5, 0.75, 1}).Clear(b)

	// One full batch plus one triangle.
	frames := [][]float64{regularPolygon(BatchTriangles+3, 30)}
	ctx := NewContext().Trans(32, 32).WithColor(Color{1, 0, 0, 0.5}).WithPolygons(frames)
	if err := ctx.Fill(b); err != nil {
		t.Fatal(err)
	}
	if b.DrawCalls() != 2 {
		t.Errorf("draw calls = %d, want 2", b.DrawCalls())
	}
	if b.Triangles() != BatchTriangles+1 {
		t.Errorf("triangles = %d, want %d", b.Triangles(), BatchTriangles+1)
	}
	if b.Blend() != BlendNone {
		t.Errorf("blend after fill = %v, want BlendNone", b.Blend())
	}
	if len(b.verts) != 3 {
		t.Errorf("last batch vertices = %d, want 3", len(b.verts))
	}

	if err := ctx.FillRect(b, Rect{0, 0, 8, 8}); err != nil {
		t.Fatal(err)
	}
	if b.DrawCalls() != 3 || b.Triangles() != BatchTriangles+3 {
		t.Errorf("after rect: draws = %d, triangles = %d", b.DrawCalls(), b.Triangles())
	}
}

func TestEbitenBackendClearColor(t *testing.T) {
	// Pixels cannot be read back before the game loop runs, so check the
	// color handed to Image.Fill.
	b := NewEbitenBackend(ebiten.NewImage(4, 4))
	NewContext().WithColor(Color{0.25, 0.5, 0.75, 1}).Clear(b)

	tests := []struct {
		r, g, bl, a float32
		want        color.NRGBA
	}{
		{0.25, 0.5, 0.75, 1, color.NRGBA{64, 128, 191, 255}},
		{0, 0, 0, 0, color.NRGBA{}},
		{-1, 2, 1, 0.5, color.NRGBA{0, 255, 255, 128}},
	}
	for _, tt := range tests {
		if got := clearColor(tt.r, tt.g, tt.bl, tt.a); got != tt.want {
			t.Errorf("clearColor(%v, %v, %v, %v) = %v, want %v", tt.r, tt.g, tt.bl, tt.a, got, tt.want)
		}
	}
}

func TestEbitenBackendFillVertices(t *testing.T) {
	e := NewEbitenBackend(nil)
	verts := []float32{1, 2, 3, 4, 5, 6}
	cols := []float32{
		1, 0.5, 0, 0.5,
		1, 0.5, 0, 0.5,
		1, 0.5, 0, 0.5,
	}
	e.fillVertices(verts, cols)

	if len(e.verts) != 3 || len(e.inds) != 3 {
		t.Fatalf("sizes = %d/%d, want 3/3", len(e.verts), len(e.inds))
	}
	for i, v := range e.verts {
		if v.DstX != verts[2*i] || v.DstY != verts[2*i+1] {
			t.Errorf("vertex %d dst = (%v, %v)", i, v.DstX, v.DstY)
		}
		if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 0 || v.ColorA != 0.5 {
			t.Errorf("vertex %d color = %v %v %v %v, want premultiplied", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
		if v.SrcX != 0.5 || v.SrcY != 0.5 {
			t.Errorf("vertex %d src = (%v, %v), want white pixel center", i, v.SrcX, v.SrcY)
		}
		if e.inds[i] != uint32(i) {
			t.Errorf("index %d = %d", i, e.inds[i])
		}
	}
}

func TestEbitenBackendBuffersShrinkAndRegrow(t *testing.T) {
	e := NewEbitenBackend(nil)
	big := make([]float32, 2*BatchTriangles*3)
	bigCols := make([]float32, 4*BatchTriangles*3)
	e.fillVertices(big, bigCols)
	e.fillVertices(make([]float32, 6), make([]float32, 12))
	if len(e.verts) != 3 {
		t.Errorf("verts = %d, want 3", len(e.verts))
	}
	e.fillVertices(big, bigCols)
	if len(e.inds) != BatchTriangles*3 {
		t.Fatalf("inds = %d, want %d", len(e.inds), BatchTriangles*3)
	}
	for i, idx := range e.inds {
		if idx != uint32(i) {
			t.Fatalf("index %d = %d after regrow", i, idx)
		}
	}
}

func TestStatsText(t *testing.T) {
	got := statsText(59.94, 60, 12, 3456)
	want := "FPS: 59.9\nTPS: 60.0\nDraws: 12\nTris: 3456"
	if got != want {
		t.Errorf("statsText = %q, want %q", got, want)
	}
}

func TestEbitenBackendResetCounters(t *testing.T) {
	e := NewEbitenBackend(nil)
	e.drawCalls, e.triangles = 3, 40
	e.ResetCounters()
	if e.DrawCalls() != 0 || e.Triangles() != 0 {
		t.Errorf("counters = %d/%d after reset", e.DrawCalls(), e.Triangles())
	}
}
