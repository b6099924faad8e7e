package gltext

import (
	"github.com/go-gl/mathgl/mgl32"

	"go-gltext/atlas"
)

// SetScale sets a uniform scale for both axes.
func (f *Font) SetScale(s float32) { f.scaleX, f.scaleY = s, s }

// SetScaleXY sets the scale per axis.
func (f *Font) SetScaleXY(sx, sy float32) { f.scaleX, f.scaleY = sx, sy }

func (f *Font) ScaleX() float32 { return f.scaleX }
func (f *Font) ScaleY() float32 { return f.scaleY }

// SetSpace sets extra unscaled spacing between characters.
func (f *Font) SetSpace(s float32) { f.spaceX = s }

func (f *Font) Space() float32 { return f.spaceX }

// CharWidth is the scaled advance of r, excluding spacing.
func (f *Font) CharWidth(r rune) float32 {
	return f.atlas.Metrics.Widths[atlas.Index(r)] * f.scaleX
}

// MaxCharWidth is the scaled advance of the widest character.
func (f *Font) MaxCharWidth() float32 { return f.atlas.Metrics.MaxWidth * f.scaleX }

// CharHeight is the scaled font height. Every character has this height.
func (f *Font) CharHeight() float32 { return f.atlas.Metrics.Height * f.scaleY }

func (f *Font) Ascent() float32  { return f.atlas.Metrics.Ascent * f.scaleY }
func (f *Font) Descent() float32 { return f.atlas.Metrics.Descent * f.scaleY }

// ActualHeight is the scaled ascent plus descent.
func (f *Font) ActualHeight() float32 { return f.atlas.Metrics.Height * f.scaleY }

// Length is the width of text rendered with the current scale and spacing.
func (f *Font) Length(text string) float32 {
	var length float32
	n := 0
	for _, r := range text {
		length += f.atlas.Metrics.Widths[atlas.Index(r)] * f.scaleX
		n++
	}
	if n > 1 {
		length += float32(n-1) * f.spaceX * f.scaleX
	}
	return length
}

// Draw draws text with its bottom-left corner at (x, y).
func (f *Font) Draw(text string, x, y float32) {
	f.Draw3D(text, x, y, 0, 0, 0, 0)
}

// DrawRotated draws text at (x, y) rotated angleZ degrees around its
// anchor.
func (f *Font) DrawRotated(text string, x, y, angleZ float32) {
	f.Draw3D(text, x, y, 0, 0, 0, angleZ)
}

// Draw3D draws text at (x, y, z) rotated by the given angles in degrees.
// Rotations apply in Z, X, Y order.
func (f *Font) Draw3D(text string, x, y, z, angleX, angleY, angleZ float32) {
	f.mustDraw()
	a := f.atlas
	cellW := float32(a.CellWidth) * f.scaleX
	cellH := float32(a.CellHeight) * f.scaleY
	// Sprites are centred on their position; move the anchor to the centre
	// of the first cell, minus its padding.
	x += cellW/2 - float32(a.PadX)*f.scaleX
	y += cellH/2 - float32(a.PadY)*f.scaleY

	model := modelMatrix(x, y, z, angleX, angleY, angleZ)
	var cursor float32
	for _, r := range text {
		i := atlas.Index(r)
		f.batch.Draw(cursor, 0, cellW, cellH, a.Region(i), model)
		cursor += (a.Metrics.Widths[i] + f.spaceX) * f.scaleX
	}
}

// modelMatrix is translate(x, y, z) * rotZ * rotX * rotY.
func modelMatrix(x, y, z, angleX, angleY, angleZ float32) mgl32.Mat4 {
	return mgl32.Translate3D(x, y, z).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(angleZ))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(angleX))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(angleY)))
}

// DrawCentered draws text centred on (x, y) and returns its length.
func (f *Font) DrawCentered(text string, x, y float32) float32 {
	return f.DrawCentered3D(text, x, y, 0, 0, 0, 0)
}

// DrawCenteredRotated is DrawCentered with a rotation around Z.
func (f *Font) DrawCenteredRotated(text string, x, y, angleZ float32) float32 {
	return f.DrawCentered3D(text, x, y, 0, 0, 0, angleZ)
}

// DrawCentered3D draws text centred on (x, y, z) and returns its length.
func (f *Font) DrawCentered3D(text string, x, y, z, angleX, angleY, angleZ float32) float32 {
	length := f.Length(text)
	f.Draw3D(text, x-length/2, y-f.CharHeight()/2, z, angleX, angleY, angleZ)
	return length
}

// DrawCenteredX centres text horizontally on x and returns its length.
func (f *Font) DrawCenteredX(text string, x, y float32) float32 {
	length := f.Length(text)
	f.Draw(text, x-length/2, y)
	return length
}

// DrawCenteredY centres text vertically on y.
func (f *Font) DrawCenteredY(text string, x, y float32) {
	f.Draw(text, x, y-f.CharHeight()/2)
}

// DrawTexture draws the whole atlas in its own session, centred in a
// width x height area. It is a debugging aid.
func (f *Font) DrawTexture(width, height int, vp mgl32.Mat4) {
	size := f.atlas.Size
	f.BeginWhite(vp)
	f.batch.Draw(float32((width-size)/2), float32((height-size)/2),
		float32(size), float32(size), f.atlas.FullRegion(), mgl32.Ident4())
	f.End()
}
