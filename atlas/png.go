package atlas

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// WritePNG encodes the atlas as an opaque grayscale PNG, glyph coverage in
// white. It is meant for inspecting the layout.
func (a *Atlas) WritePNG(w io.Writer) error {
	img := image.NewRGBA(a.img.Rect)
	for y := 0; y < a.Size; y++ {
		for x := 0; x < a.Size; x++ {
			v := a.img.AlphaAt(x, y).A
			img.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return png.Encode(w, img)
}
