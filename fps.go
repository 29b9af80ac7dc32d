package tessel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// StatsOverlay displays FPS, TPS and the draw counters of an EbitenBackend.
// The text is refreshed every ~0.5 seconds into a small private image.
type StatsOverlay struct {
	// X, Y position the overlay on the screen.
	X, Y float64

	img     *ebiten.Image
	elapsed float64
	calls   int
	tris    int
}

// NewStatsOverlay creates an overlay sized for four lines of debug text.
func NewStatsOverlay() *StatsOverlay {
	// 140x64 is enough for "FPS: 60.0\nTPS: 60.0\nDraws: 999\nTris: 99999"
	return &StatsOverlay{img: ebiten.NewImage(140, 64), elapsed: 0.5}
}

// Update samples the back-end counters and redraws the text when due.
// Call it after the frame's fills and before b.ResetCounters.
func (o *StatsOverlay) Update(dt float64, b *EbitenBackend) {
	o.calls, o.tris = b.DrawCalls(), b.Triangles()
	o.elapsed += dt
	if o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, statsText(ebiten.ActualFPS(), ebiten.ActualTPS(), o.calls, o.tris))
}

// Draw composites the overlay onto screen.
func (o *StatsOverlay) Draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(o.X, o.Y)
	screen.DrawImage(o.img, &op)
}

func statsText(fps, tps float64, calls, tris int) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nDraws: %d\nTris: %d", fps, tps, calls, tris)
}
