package glmobile

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIndexBytes(t *testing.T) {
	got := indexBytes([]uint16{0, 1, 0x0203})
	want := []byte{0, 0, 1, 0, 3, 2}
	if !bytes.Equal(got, want) {
		t.Errorf("indexBytes = %v, want %v", got, want)
	}
}

func TestFlatten(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3)
	got := flatten(nil, []mgl32.Mat4{mgl32.Ident4(), m})
	if len(got) != 32 {
		t.Fatalf("len = %d, want 32", len(got))
	}
	// Column-major: the translation sits in elements 12..14 of the matrix.
	if got[16+12] != 1 || got[16+13] != 2 || got[16+14] != 3 {
		t.Errorf("translation = %v", got[28:31])
	}
	if got[0] != 1 || got[5] != 1 || got[1] != 0 {
		t.Errorf("identity = %v", got[:16])
	}
}
