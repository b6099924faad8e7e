// Package glcore implements gpu.Device on desktop OpenGL 3.3 core through
// go-gl. A context must be current and gl.Init must have succeeded before
// any call.
package glcore

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"go-gltext/gpu"
)

// ShaderError reports a failed compile or link with the driver's log.
type ShaderError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("glcore: %s shader: %s", e.Stage, strings.TrimRight(e.Log, "\x00\n"))
}

const (
	floatSize  = 4
	stride     = gpu.VertexSize * floatSize
	uint16Size = 2
)

// Program is the batch text program with its VAO and buffers.
type Program struct {
	id            uint32
	vao, vbo, ebo uint32
	maxSprites    int

	colorLoc   int32
	textureLoc int32
	mvpLoc     int32
}

var _ gpu.Program = (*Program)(nil)

func compileShader(stage string, src string, typ uint32) (uint32, error) {
	sh := gl.CreateShader(typ)
	cs, free := gl.Strs(src + "\x00")
	gl.ShaderSource(sh, 1, cs, nil)
	free()
	gl.CompileShader(sh)
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &l)
		logstr := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(sh, l, nil, gl.Str(logstr))
		gl.DeleteShader(sh)
		return 0, &ShaderError{Stage: stage, Log: logstr}
	}
	return sh, nil
}

func linkProgram(vs, fs uint32) (uint32, error) {
	p := gl.CreateProgram()
	gl.AttachShader(p, vs)
	gl.AttachShader(p, fs)
	gl.LinkProgram(p)
	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &l)
		logstr := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(p, l, nil, gl.Str(logstr))
		gl.DeleteProgram(p)
		return 0, &ShaderError{Stage: "link", Log: logstr}
	}
	return p, nil
}

func newProgram(maxSprites int) (*Program, error) {
	vs, err := compileShader("vertex", gpu.ShaderSource(glslVersion, maxSprites, vertexShader), gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader("fragment", gpu.ShaderSource(glslVersion, maxSprites, fragmentShader), gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)
	id, err := linkProgram(vs, fs)
	if err != nil {
		return nil, err
	}

	p := &Program{
		id:         id,
		maxSprites: maxSprites,
		colorLoc:   gl.GetUniformLocation(id, gl.Str(gpu.UniformColor+"\x00")),
		textureLoc: gl.GetUniformLocation(id, gl.Str(gpu.UniformTexture+"\x00")),
		mvpLoc:     gl.GetUniformLocation(id, gl.Str(gpu.UniformMVPArray+"\x00")),
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.GenBuffers(1, &p.ebo)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, maxSprites*gpu.VerticesPerSprite*stride, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(2*floatSize))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 1, gl.FLOAT, false, stride, gl.PtrOffset(4*floatSize))
	// The element buffer binding is part of VAO state.
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
	gl.BindVertexArray(0)
	return p, nil
}

func (p *Program) MaxSprites() int { return p.maxSprites }

func (p *Program) Use() { gl.UseProgram(p.id) }

func (p *Program) SetColor(c mgl32.Vec4) {
	gl.Uniform4f(p.colorLoc, c[0], c[1], c[2], c[3])
}

func (p *Program) SetTexture(t gpu.Texture) {
	tex := t.(*Texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.Uniform1i(p.textureLoc, 0)
}

func (p *Program) SetIndices(indices []uint16) {
	gl.BindVertexArray(p.vao)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*uint16Size, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.BindVertexArray(0)
}

func (p *Program) SetTransforms(transforms []mgl32.Mat4) {
	if len(transforms) == 0 {
		return
	}
	gl.UniformMatrix4fv(p.mvpLoc, int32(len(transforms)), false, &transforms[0][0])
}

func (p *Program) SetVertices(vertices []float32) {
	if len(vertices) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*floatSize, gl.Ptr(vertices))
}

func (p *Program) DrawTriangles(indexCount int) {
	gl.BindVertexArray(p.vao)
	gl.DrawElements(gl.TRIANGLES, int32(indexCount), gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Release deletes the program and its buffers. It is safe to call twice.
func (p *Program) Release() {
	if p.id == 0 {
		return
	}
	gl.DeleteBuffers(1, &p.vbo)
	gl.DeleteBuffers(1, &p.ebo)
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteProgram(p.id)
	*p = Program{}
}
