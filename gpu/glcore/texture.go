package glcore

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"

	"go-gltext/gpu"
)

// Texture is a single-channel atlas texture.
type Texture struct {
	id   uint32
	w, h int
}

var _ gpu.Texture = (*Texture)(nil)

func newTexture(img *image.Alpha) (*Texture, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, gpu.ErrTextureSize
	}
	pix := img.Pix
	if img.Stride != w {
		pix = make([]uint8, w*h)
		for y := 0; y < h; y++ {
			copy(pix[y*w:(y+1)*w], img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):])
		}
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	// swizzle: red into alpha so sampling .a gives coverage
	gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_R, &[]int32{gl.ZERO}[0])
	gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_G, &[]int32{gl.ZERO}[0])
	gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_B, &[]int32{gl.ZERO}[0])
	gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_A, &[]int32{gl.RED}[0])
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &Texture{id: tex, w: w, h: h}, nil
}

func (t *Texture) Width() int  { return t.w }
func (t *Texture) Height() int { return t.h }

func (t *Texture) Release() {
	if t.id == 0 {
		return
	}
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}
