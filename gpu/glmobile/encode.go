package glmobile

import (
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"
)

// indexBytes encodes indices for an UNSIGNED_SHORT element buffer.
func indexBytes(indices []uint16) []byte {
	b := make([]byte, 0, len(indices)*2)
	for _, i := range indices {
		b = binary.LittleEndian.AppendUint16(b, i)
	}
	return b
}

// flatten appends the column-major elements of every matrix to dst.
func flatten(dst []float32, ms []mgl32.Mat4) []float32 {
	for i := range ms {
		dst = append(dst, ms[i][:]...)
	}
	return dst
}
