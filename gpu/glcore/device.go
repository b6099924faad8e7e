package glcore

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"

	"go-gltext/gpu"
)

// Device creates programs and textures in the current context.
type Device struct{}

var _ gpu.Device = Device{}

func (Device) NewProgram(maxSprites int) (gpu.Program, error) {
	p, err := newProgram(maxSprites)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (Device) NewTexture(img *image.Alpha) (gpu.Texture, error) {
	t, err := newTexture(img)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Version returns the GL_VERSION string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
