// Package gputest provides an in-memory gpu.Device that records every call,
// for testing code that renders without a GL context.
package gputest

import (
	"errors"
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"go-gltext/gpu"
)

// Draw is one recorded DrawTriangles call with the state it used.
type Draw struct {
	IndexCount int
	Vertices   []float32
	Transforms []mgl32.Mat4
	Color      mgl32.Vec4
	Texture    *Texture
}

// Sprites is the number of quads covered by the draw.
func (d Draw) Sprites() int { return d.IndexCount / gpu.IndicesPerSprite }

// Device is a fake gpu.Device. Set ProgramErr or TextureErr to make the
// matching constructor fail.
type Device struct {
	ProgramErr error
	TextureErr error

	Programs []*Program
	Textures []*Texture
}

var _ gpu.Device = (*Device)(nil)

func (d *Device) NewProgram(maxSprites int) (gpu.Program, error) {
	if d.ProgramErr != nil {
		return nil, d.ProgramErr
	}
	p := &Program{MaxSpritesValue: maxSprites}
	d.Programs = append(d.Programs, p)
	return p, nil
}

func (d *Device) NewTexture(img *image.Alpha) (gpu.Texture, error) {
	if d.TextureErr != nil {
		return nil, d.TextureErr
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, gpu.ErrTextureSize
	}
	t := &Texture{W: b.Dx(), H: b.Dy(), Pix: append([]uint8(nil), img.Pix...)}
	d.Textures = append(d.Textures, t)
	return t, nil
}

// Texture is a recorded texture upload.
type Texture struct {
	W, H     int
	Pix      []uint8
	Releases int
}

func (t *Texture) Width() int  { return t.W }
func (t *Texture) Height() int { return t.H }
func (t *Texture) Release()    { t.Releases++ }

// Program records the calls made on it.
type Program struct {
	MaxSpritesValue int

	Indices      []uint16
	IndexUploads int
	Uses         int
	TextureBinds int
	Releases     int
	Draws        []Draw

	color      mgl32.Vec4
	texture    *Texture
	vertices   []float32
	transforms []mgl32.Mat4
}

var _ gpu.Program = (*Program)(nil)

// ErrUnexpected can be used as a canned failure.
var ErrUnexpected = errors.New("gputest: unexpected failure")

func (p *Program) MaxSprites() int { return p.MaxSpritesValue }

func (p *Program) SetIndices(indices []uint16) {
	p.Indices = append([]uint16(nil), indices...)
	p.IndexUploads++
}

func (p *Program) SetTransforms(transforms []mgl32.Mat4) {
	p.transforms = append([]mgl32.Mat4(nil), transforms...)
}

func (p *Program) SetVertices(vertices []float32) {
	p.vertices = append([]float32(nil), vertices...)
}

func (p *Program) DrawTriangles(indexCount int) {
	p.Draws = append(p.Draws, Draw{
		IndexCount: indexCount,
		Vertices:   p.vertices,
		Transforms: p.transforms,
		Color:      p.color,
		Texture:    p.texture,
	})
}

func (p *Program) Use() { p.Uses++ }

func (p *Program) SetColor(c mgl32.Vec4) { p.color = c }

func (p *Program) SetTexture(t gpu.Texture) {
	p.texture, _ = t.(*Texture)
	p.TextureBinds++
}

func (p *Program) Release() { p.Releases++ }
