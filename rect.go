package tessel

import "image"

// A rectangle is always exactly two triangles, so it bypasses the streaming
// tessellator. Vertex order for both triangles: TL-TR-BL, TR-BR-BL.

// RectVertices returns the 6 transformed vertices of r as a flat triangle list.
func RectVertices(m Matrix, r Rect) [12]float32 {
	x, y := r.X, r.Y
	x2, y2 := x+r.Width, y+r.Height
	tlx, tly := m.apply32(x, y)
	trx, try := m.apply32(x2, y)
	blx, bly := m.apply32(x, y2)
	brx, bry := m.apply32(x2, y2)
	return [12]float32{
		tlx, tly, trx, try, blx, bly,
		trx, try, brx, bry, blx, bly,
	}
}

// RectColors returns c repeated for 12 vertices (48 floats). Only the first
// 24 are needed for the 6 vertices of RectVertices; the extra entries let the
// same array back two rectangles' worth of colors.
func RectColors(c Color) [48]float32 {
	r, g, b, a := c.RGBA32()
	var out [48]float32
	for i := 0; i < len(out); i += colorStride {
		out[i+0] = r
		out[i+1] = g
		out[i+2] = b
		out[i+3] = a
	}
	return out
}

// ImageRegion is a sub-rectangle of a texture, in texels.
type ImageRegion struct {
	Source        image.Rectangle
	TextureWidth  int
	TextureHeight int
}

// RectUVs returns normalized texture coordinates for the region, in the same
// vertex order as RectVertices.
func RectUVs(img ImageRegion) [12]float32 {
	tw, th := float32(img.TextureWidth), float32(img.TextureHeight)
	x1 := float32(img.Source.Min.X) / tw
	y1 := float32(img.Source.Min.Y) / th
	x2 := float32(img.Source.Max.X) / tw
	y2 := float32(img.Source.Max.Y) / th
	return [12]float32{
		x1, y1, x2, y1, x1, y2,
		x2, y1, x2, y2, x1, y2,
	}
}
