// Package gpu defines the graphics operations the text pipeline needs from a
// backend. Implementations live in glcore (desktop OpenGL 3.3) and glmobile
// (OpenGL ES 2 via golang.org/x/mobile).
//
// All methods must be called on the goroutine that owns the GL context.
package gpu

import (
	"errors"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex layout shared by the batch and the shaders.
const (
	VertexSize        = 5 // x, y, u, v, transform slot
	VerticesPerSprite = 4
	IndicesPerSprite  = 6
)

// Shader attribute and uniform names.
const (
	AttribPosition  = "a_Position"
	AttribTexCoord  = "a_TexCoordinate"
	AttribMVPIndex  = "a_MVPMatrixIndex"
	UniformColor    = "u_Color"
	UniformTexture  = "u_Texture"
	UniformMVPArray = "u_MVPMatrix"
)

// ErrTextureSize is returned for textures with an empty side.
var ErrTextureSize = errors.New("gpu: invalid texture size")

// Texture is an uploaded GPU texture.
type Texture interface {
	Width() int
	Height() int
	Release()
}

// Renderer receives the buffers of a sprite batch.
type Renderer interface {
	// SetIndices uploads the static index buffer.
	SetIndices(indices []uint16)
	// SetTransforms uploads one MVP matrix per sprite slot.
	SetTransforms(transforms []mgl32.Mat4)
	// SetVertices uploads interleaved vertices, VertexSize floats each.
	SetVertices(vertices []float32)
	// DrawTriangles draws indexCount indices as a triangle list.
	DrawTriangles(indexCount int)
}

// Program is a linked batch text shader program with its buffers.
type Program interface {
	Renderer
	// MaxSprites is the length of the shader's MVP uniform array.
	MaxSprites() int
	Use()
	SetColor(c mgl32.Vec4)
	// SetTexture binds t to texture unit 0 and points the sampler at it.
	SetTexture(t Texture)
	Release()
}

// Device creates programs and textures.
type Device interface {
	NewProgram(maxSprites int) (Program, error)
	NewTexture(img *image.Alpha) (Texture, error)
}
