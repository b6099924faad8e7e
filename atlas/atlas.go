// Package atlas rasterizes the fixed ASCII character range of a font face
// into a single square alpha bitmap laid out as a grid of equal cells, and
// records the texture region of every cell.
package atlas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Metrics are the unscaled pixel measurements of a face.
type Metrics struct {
	Widths   [CharCount]float32 // advance of every slot
	MaxWidth float32
	Height   float32 // ascent + descent, rounded up
	Ascent   float32
	Descent  float32
}

// Atlas is an immutable glyph atlas. Build creates it once per face and
// size.
type Atlas struct {
	Size       int // side of the square texture
	CellWidth  int
	CellHeight int
	Cols, Rows int
	PadX, PadY int
	Metrics    Metrics

	img     *image.Alpha
	regions [CharCount]Region
	full    Region
}

// Measure reads the advance of every slot and the vertical metrics of face.
func Measure(face font.Face) Metrics {
	var m Metrics
	for i := 0; i < CharCount; i++ {
		adv, _ := face.GlyphAdvance(slotRune(i))
		w := fixedToFloat(adv)
		m.Widths[i] = w
		if w > m.MaxWidth {
			m.MaxWidth = w
		}
	}
	fm := face.Metrics()
	m.Height = float32(math.Ceil(float64(fixedToFloat(fm.Ascent + fm.Descent))))
	m.Ascent = float32(math.Ceil(float64(fixedToFloat(fm.Ascent))))
	m.Descent = float32(math.Ceil(float64(fixedToFloat(fm.Descent))))
	return m
}

// Build rasterizes face into a new atlas with padX/padY pixels of padding on
// each side of every glyph. It fails with a *CellSizeError when the
// resulting cell is out of bounds.
func Build(face font.Face, padX, padY int) (*Atlas, error) {
	m := Measure(face)
	cw := int(m.MaxWidth) + 2*padX
	ch := int(m.Height) + 2*padY
	if err := ValidateCell(cw, ch); err != nil {
		return nil, err
	}
	size := TextureSize(max(cw, ch))
	a := &Atlas{
		Size:       size,
		CellWidth:  cw,
		CellHeight: ch,
		Cols:       size / cw,
		PadX:       padX,
		PadY:       padY,
		Metrics:    m,
		img:        image.NewAlpha(image.Rect(0, 0, size, size)),
		full:       NewRegion(float32(size), float32(size), 0, 0, float32(size), float32(size)),
	}
	a.Rows = (CharCount + a.Cols - 1) / a.Cols

	d := &font.Drawer{Dst: a.img, Src: image.NewUniform(color.Alpha{255}), Face: face}
	baseline := (ch - 1) - int(m.Descent) - padY
	for i, origin := range a.cellOrigins() {
		d.Dot = fixed.Point26_6{X: fixed.I(origin.X + padX), Y: fixed.I(origin.Y + baseline)}
		d.DrawString(string(slotRune(i)))
		// Regions skip the last pixel row and column so neighbours never
		// share a texel.
		a.regions[i] = NewRegion(float32(size), float32(size),
			float32(origin.X), float32(origin.Y), float32(cw-1), float32(ch-1))
	}
	return a, nil
}

// cellOrigins returns the top-left corner of every slot, row-major.
func (a *Atlas) cellOrigins() []image.Point {
	pts := make([]image.Point, CharCount)
	x, y := 0, 0
	for i := range pts {
		pts[i] = image.Pt(x, y)
		x += a.CellWidth
		if x+a.CellWidth > a.Size {
			x = 0
			y += a.CellHeight
		}
	}
	return pts
}

// Image returns the rasterized atlas. Callers must not modify it.
func (a *Atlas) Image() *image.Alpha { return a.img }

// Region returns the region of slot i, which must be in [0, CharCount).
func (a *Atlas) Region(i int) Region { return a.regions[i] }

// RegionFor returns the region used to draw r.
func (a *Atlas) RegionFor(r rune) Region { return a.regions[Index(r)] }

// FullRegion covers the whole texture.
func (a *Atlas) FullRegion() Region { return a.full }

// CellRect is the pixel rectangle covered by the region of slot i.
func (a *Atlas) CellRect(i int) image.Rectangle {
	return a.regions[i].Rect(a.Size, a.Size)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
