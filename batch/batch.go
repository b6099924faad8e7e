// Package batch accumulates independently transformed textured quads and
// renders them with one indexed draw call per batch.
package batch

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"go-gltext/atlas"
	"go-gltext/gpu"
)

const floatsPerSprite = gpu.VerticesPerSprite * gpu.VertexSize

// MaxCap is the largest capacity whose vertices are addressable by uint16
// indices.
const MaxCap = (math.MaxUint16 + 1) / gpu.VerticesPerSprite

// ErrInvalidCapacity is matched by the error CheckCap returns.
var ErrInvalidCapacity = errors.New("batch: invalid sprite capacity")

// CheckCap reports whether maxSprites is a valid batch capacity.
func CheckCap(maxSprites int) error {
	if maxSprites <= 0 || maxSprites > MaxCap {
		return fmt.Errorf("%w %d", ErrInvalidCapacity, maxSprites)
	}
	return nil
}

// SpriteBatch holds up to Cap sprites. The caller binds the texture; the
// batch never changes texture state, including when it flushes early.
type SpriteBatch struct {
	r          gpu.Renderer
	maxSprites int

	vertices   []float32
	transforms []mgl32.Mat4
	numSprites int
	drawCalls  int

	viewProjection mgl32.Mat4
	active         bool
}

// New creates a batch for maxSprites sprites and uploads its index buffer
// to r. It panics if CheckCap rejects maxSprites.
func New(maxSprites int, r gpu.Renderer) *SpriteBatch {
	if err := CheckCap(maxSprites); err != nil {
		panic(err.Error())
	}
	b := &SpriteBatch{
		r:          r,
		maxSprites: maxSprites,
		vertices:   make([]float32, maxSprites*floatsPerSprite),
		transforms: make([]mgl32.Mat4, maxSprites),
	}
	r.SetIndices(Indices(maxSprites))
	return b
}

// Indices returns the triangle-list indices for n quads: {0,1,2,2,3,0}
// offset by 4 per quad.
func Indices(n int) []uint16 {
	indices := make([]uint16, n*gpu.IndicesPerSprite)
	for i, j := 0, uint16(0); i < len(indices); i, j = i+gpu.IndicesPerSprite, j+gpu.VerticesPerSprite {
		indices[i+0] = j
		indices[i+1] = j + 1
		indices[i+2] = j + 2
		indices[i+3] = j + 2
		indices[i+4] = j + 3
		indices[i+5] = j
	}
	return indices
}

// Cap is the number of sprites per draw call.
func (b *SpriteBatch) Cap() int { return b.maxSprites }

// Len is the number of sprites waiting for the next flush.
func (b *SpriteBatch) Len() int { return b.numSprites }

// Begin starts a batch that combines every sprite's model matrix with
// viewProjection.
func (b *SpriteBatch) Begin(viewProjection mgl32.Mat4) {
	if b.active {
		panic("batch: Begin called twice without End")
	}
	b.active = true
	b.numSprites = 0
	b.drawCalls = 0
	b.viewProjection = viewProjection
}

// Draw queues a width x height sprite centred at (x, y) in model space. A
// full batch is rendered and restarted first.
func (b *SpriteBatch) Draw(x, y, width, height float32, region atlas.Region, model mgl32.Mat4) {
	if !b.active {
		panic("batch: Draw called outside Begin/End")
	}
	if b.numSprites == b.maxSprites {
		b.flush()
	}

	hw, hh := width/2, height/2
	left, bottom := x-hw, y-hh
	right, top := x+hw, y+hh
	slot := float32(b.numSprites)

	v := b.vertices[b.numSprites*floatsPerSprite:][:floatsPerSprite]
	copy(v, []float32{
		left, bottom, region.U1, region.V2, slot,
		right, bottom, region.U2, region.V2, slot,
		right, top, region.U2, region.V1, slot,
		left, top, region.U1, region.V1, slot,
	})
	b.transforms[b.numSprites] = b.viewProjection.Mul4(model)
	b.numSprites++
}

// End renders the queued sprites and closes the batch. It returns the
// number of draw calls issued since Begin.
func (b *SpriteBatch) End() int {
	if !b.active {
		panic("batch: End called without Begin")
	}
	b.flush()
	b.active = false
	return b.drawCalls
}

func (b *SpriteBatch) flush() {
	if b.numSprites == 0 {
		return
	}
	b.r.SetTransforms(b.transforms[:b.numSprites])
	b.r.SetVertices(b.vertices[:b.numSprites*floatsPerSprite])
	b.r.DrawTriangles(b.numSprites * gpu.IndicesPerSprite)
	b.drawCalls++
	b.numSprites = 0
}
