// Package glmobile implements gpu.Device on OpenGL ES 2 through
// golang.org/x/mobile/gl. Every call goes through the gl.Context handed to
// NewDevice, on the goroutine that received it.
package glmobile

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"

	"go-gltext/gpu"
)

const (
	floatSize = 4
	stride    = gpu.VertexSize * floatSize
)

// Device creates programs and textures on a GLES context.
type Device struct {
	ctx gl.Context
}

var _ gpu.Device = (*Device)(nil)

func NewDevice(ctx gl.Context) *Device {
	return &Device{ctx: ctx}
}

func (d *Device) NewProgram(maxSprites int) (gpu.Program, error) {
	prog, err := glutil.CreateProgram(d.ctx,
		gpu.ShaderSource(glslVersion, maxSprites, vertexShader),
		gpu.ShaderSource(glslVersion, maxSprites, fragmentShader))
	if err != nil {
		return nil, fmt.Errorf("glmobile: %w", err)
	}
	p := &Program{
		ctx:        d.ctx,
		program:    prog,
		maxSprites: maxSprites,
		position:   d.ctx.GetAttribLocation(prog, gpu.AttribPosition),
		texCoord:   d.ctx.GetAttribLocation(prog, gpu.AttribTexCoord),
		mvpIndex:   d.ctx.GetAttribLocation(prog, gpu.AttribMVPIndex),
		color:      d.ctx.GetUniformLocation(prog, gpu.UniformColor),
		texture:    d.ctx.GetUniformLocation(prog, gpu.UniformTexture),
		mvp:        d.ctx.GetUniformLocation(prog, gpu.UniformMVPArray),
		vbo:        d.ctx.CreateBuffer(),
		ebo:        d.ctx.CreateBuffer(),
		mvpScratch: make([]float32, 0, maxSprites*16),
	}
	d.ctx.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	d.ctx.BufferInit(gl.ARRAY_BUFFER, maxSprites*gpu.VerticesPerSprite*stride, gl.DYNAMIC_DRAW)
	return p, nil
}

func (d *Device) NewTexture(img *image.Alpha) (gpu.Texture, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, gpu.ErrTextureSize
	}
	pix := make([]byte, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		pix = append(pix, img.Pix[off:off+w]...)
	}

	t := &Texture{ctx: d.ctx, tex: d.ctx.CreateTexture(), w: w, h: h}
	d.ctx.BindTexture(gl.TEXTURE_2D, t.tex)
	d.ctx.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	d.ctx.TexImage2D(gl.TEXTURE_2D, 0, gl.ALPHA, w, h, gl.ALPHA, gl.UNSIGNED_BYTE, pix)
	d.ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	d.ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	d.ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	d.ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return t, nil
}

// Texture is an ALPHA texture.
type Texture struct {
	ctx  gl.Context
	tex  gl.Texture
	w, h int
}

func (t *Texture) Width() int  { return t.w }
func (t *Texture) Height() int { return t.h }

func (t *Texture) Release() {
	if t.tex.Value == 0 {
		return
	}
	t.ctx.DeleteTexture(t.tex)
	t.tex = gl.Texture{}
}

// Program is the batch text program. GLES 2 has no vertex array objects, so
// attribute state is set on every draw.
type Program struct {
	ctx        gl.Context
	program    gl.Program
	maxSprites int

	position, texCoord, mvpIndex gl.Attrib
	color, texture, mvp          gl.Uniform

	vbo, ebo   gl.Buffer
	mvpScratch []float32
}

var _ gpu.Program = (*Program)(nil)

func (p *Program) MaxSprites() int { return p.maxSprites }

func (p *Program) Use() { p.ctx.UseProgram(p.program) }

func (p *Program) SetColor(c mgl32.Vec4) {
	p.ctx.Uniform4f(p.color, c[0], c[1], c[2], c[3])
}

func (p *Program) SetTexture(t gpu.Texture) {
	p.ctx.ActiveTexture(gl.TEXTURE0)
	p.ctx.BindTexture(gl.TEXTURE_2D, t.(*Texture).tex)
	p.ctx.Uniform1i(p.texture, 0)
}

func (p *Program) SetIndices(indices []uint16) {
	p.ctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
	p.ctx.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBytes(indices), gl.STATIC_DRAW)
}

func (p *Program) SetTransforms(transforms []mgl32.Mat4) {
	if len(transforms) == 0 {
		return
	}
	p.ctx.UniformMatrix4fv(p.mvp, flatten(p.mvpScratch[:0], transforms))
}

func (p *Program) SetVertices(vertices []float32) {
	if len(vertices) == 0 {
		return
	}
	p.ctx.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	p.ctx.BufferSubData(gl.ARRAY_BUFFER, 0, f32.Bytes(binary.LittleEndian, vertices...))
}

func (p *Program) DrawTriangles(indexCount int) {
	p.ctx.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	p.ctx.EnableVertexAttribArray(p.position)
	p.ctx.VertexAttribPointer(p.position, 2, gl.FLOAT, false, stride, 0)
	p.ctx.EnableVertexAttribArray(p.texCoord)
	p.ctx.VertexAttribPointer(p.texCoord, 2, gl.FLOAT, false, stride, 2*floatSize)
	p.ctx.EnableVertexAttribArray(p.mvpIndex)
	p.ctx.VertexAttribPointer(p.mvpIndex, 1, gl.FLOAT, false, stride, 4*floatSize)
	defer p.ctx.DisableVertexAttribArray(p.position)
	defer p.ctx.DisableVertexAttribArray(p.texCoord)
	defer p.ctx.DisableVertexAttribArray(p.mvpIndex)

	p.ctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
	p.ctx.DrawElements(gl.TRIANGLES, indexCount, gl.UNSIGNED_SHORT, 0)
}

func (p *Program) Release() {
	if p.program.Value == 0 {
		return
	}
	p.ctx.DeleteBuffer(p.vbo)
	p.vbo = gl.Buffer{}
	p.ctx.DeleteBuffer(p.ebo)
	p.ebo = gl.Buffer{}
	p.ctx.DeleteProgram(p.program)
	p.program = gl.Program{}
}
