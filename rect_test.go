package tessel

import (
	"image"
	"testing"
)

func TestRectVertices(t *testing.T) {
	got := RectVertices(Translate(1, 2), Rect{10, 20, 30, 40})
	want := [12]float32{
		11, 22, 41, 22, 11, 62,
		41, 22, 41, 62, 11, 62,
	}
	if got != want {
		t.Errorf("RectVertices = %v, want %v", got, want)
	}
}

func TestRectColors(t *testing.T) {
	got := RectColors(Color{0.25, 0.5, 0.75, 1})
	for i := 0; i < len(got); i += 4 {
		if got[i] != 0.25 || got[i+1] != 0.5 || got[i+2] != 0.75 || got[i+3] != 1 {
			t.Fatalf("entry %d = %v", i/4, got[i:i+4])
		}
	}
}

func TestRectUVs(t *testing.T) {
	img := ImageRegion{
		Source:        image.Rect(16, 32, 48, 64),
		TextureWidth:  64,
		TextureHeight: 128,
	}
	got := RectUVs(img)
	want := [12]float32{
		0.25, 0.25, 0.75, 0.25, 0.25, 0.5,
		0.75, 0.25, 0.75, 0.5, 0.25, 0.5,
	}
	if got != want {
		t.Errorf("RectUVs = %v, want %v", got, want)
	}
}
