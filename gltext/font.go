// Package gltext renders strings with a glyph atlas and a sprite batch.
//
// A Font is loaded once, then used in sessions:
//
//	f, err := gltext.Load(dev, gltext.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	f.Begin(1, 1, 1, 1, viewProjection)
//	f.Draw("Hello", 40, 40)
//	f.DrawCentered("Centered", 0, 0)
//	f.End()
//
// Positions are in model units with a bottom-left origin; (x, y) is the
// bottom-left corner of the string including descent. A Font must only be
// used from the goroutine that owns the GL context.
package gltext

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"

	"go-gltext/atlas"
	"go-gltext/batch"
	"go-gltext/gpu"
)

// Contract violations. Font methods panic with these.
var (
	ErrAlreadyDrawing = errors.New("gltext: Begin called while drawing")
	ErrNotDrawing     = errors.New("gltext: draw called outside Begin/End")
	ErrClosed         = errors.New("gltext: font is closed")
)

// Font is a loaded font ready for rendering. It owns its program, atlas
// texture and batch.
type Font struct {
	atlas *atlas.Atlas
	tex   gpu.Texture
	prog  gpu.Program
	batch *batch.SpriteBatch

	scaleX, scaleY float32
	spaceX         float32

	drawing bool
	closed  bool
}

// Load parses the font described by cfg, creates its program on dev and
// builds the font.
func Load(dev gpu.Device, cfg Config) (*Font, error) {
	cfg = cfg.withDefaults()
	face, err := cfg.LoadFace()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	prog, err := dev.NewProgram(cfg.MaxSprites)
	if err != nil {
		return nil, fmt.Errorf("gltext: create program: %w", err)
	}
	Logger().Debug("gltext: program created", "maxSprites", cfg.MaxSprites)

	f, err := New(dev, prog, face, cfg.PadX, cfg.PadY)
	if err != nil {
		return nil, err
	}
	Logger().Info("gltext: font loaded", "file", cfg.FontFile, "size", cfg.Size, "atlas", f.atlas.Size)
	return f, nil
}

// New builds the atlas for face, uploads it to dev and wraps prog. The
// font takes ownership of prog, which is released if New fails.
func New(dev gpu.Device, prog gpu.Program, face font.Face, padX, padY int) (*Font, error) {
	if err := batch.CheckCap(prog.MaxSprites()); err != nil {
		prog.Release()
		return nil, fmt.Errorf("gltext: %w", err)
	}
	a, err := atlas.Build(face, padX, padY)
	if err != nil {
		prog.Release()
		return nil, fmt.Errorf("gltext: build atlas: %w", err)
	}
	Logger().Debug("gltext: atlas built",
		"size", a.Size, "cellWidth", a.CellWidth, "cellHeight", a.CellHeight,
		"cols", a.Cols, "rows", a.Rows)

	tex, err := dev.NewTexture(a.Image())
	if err != nil {
		prog.Release()
		return nil, fmt.Errorf("gltext: upload atlas: %w", err)
	}
	return &Font{
		atlas:  a,
		tex:    tex,
		prog:   prog,
		batch:  batch.New(prog.MaxSprites(), prog),
		scaleX: 1,
		scaleY: 1,
	}, nil
}

// Close releases the program and atlas texture. Later calls do nothing.
func (f *Font) Close() {
	if f.closed {
		return
	}
	if f.drawing {
		Logger().Warn("gltext: font closed while drawing")
	}
	f.closed = true
	f.drawing = false
	f.tex.Release()
	f.prog.Release()
}

// Atlas returns the font's glyph atlas.
func (f *Font) Atlas() *atlas.Atlas { return f.atlas }

// Begin starts a render session tinted with (r, g, b, a) and projected by
// vp.
func (f *Font) Begin(r, g, b, a float32, vp mgl32.Mat4) {
	if f.closed {
		panic(ErrClosed)
	}
	if f.drawing {
		panic(ErrAlreadyDrawing)
	}
	f.drawing = true
	f.prog.Use()
	f.prog.SetColor(mgl32.Vec4{r, g, b, a})
	f.prog.SetTexture(f.tex)
	f.batch.Begin(vp)
}

// BeginWhite starts an opaque white session.
func (f *Font) BeginWhite(vp mgl32.Mat4) { f.Begin(1, 1, 1, 1, vp) }

// BeginAlpha starts a white session with the given alpha.
func (f *Font) BeginAlpha(alpha float32, vp mgl32.Mat4) { f.Begin(1, 1, 1, alpha, vp) }

// End flushes the session and returns the number of draw calls it made.
func (f *Font) End() int {
	f.mustDraw()
	f.drawing = false
	return f.batch.End()
}

func (f *Font) mustDraw() {
	if !f.drawing {
		panic(ErrNotDrawing)
	}
}
