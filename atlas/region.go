package atlas

import (
	"image"
	"math"
)

// Region is a rectangle of a texture in normalized UV coordinates.
// V grows downward, so V1 is the top edge and V2 the bottom edge.
type Region struct {
	U1, V1 float32
	U2, V2 float32
}

// NewRegion computes the UV rectangle covering the pixel rectangle
// (x, y, width, height) of a texWidth x texHeight texture.
func NewRegion(texWidth, texHeight, x, y, width, height float32) Region {
	u1 := x / texWidth
	v1 := y / texHeight
	return Region{
		U1: u1,
		V1: v1,
		U2: u1 + width/texWidth,
		V2: v1 + height/texHeight,
	}
}

// Rect maps the region back to pixels of a texWidth x texHeight texture.
func (r Region) Rect(texWidth, texHeight int) image.Rectangle {
	px := func(v float32, n int) int {
		return int(math.Round(float64(v) * float64(n)))
	}
	return image.Rect(px(r.U1, texWidth), px(r.V1, texHeight), px(r.U2, texWidth), px(r.V2, texHeight))
}
