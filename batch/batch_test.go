package batch

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"go-gltext/atlas"
	"go-gltext/gpu/gputest"
)

func expectPanic(t *testing.T, substr string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", substr)
		}
		if msg, _ := r.(string); !strings.Contains(msg, substr) {
			t.Fatalf("panic = %v, want it to contain %q", r, substr)
		}
	}()
	f()
}

func TestIndices(t *testing.T) {
	got := Indices(2)
	want := []uint16{0, 1, 2, 2, 3, 0, 4, 5, 6, 6, 7, 4}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Indices(2)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestNewUploadsIndicesOnce(t *testing.T) {
	p := &gputest.Program{}
	b := New(24, p)
	if p.IndexUploads != 1 || len(p.Indices) != 24*6 {
		t.Fatalf("uploads = %d, len = %d", p.IndexUploads, len(p.Indices))
	}
	for frame := 0; frame < 3; frame++ {
		b.Begin(mgl32.Ident4())
		for i := 0; i < 30; i++ {
			b.Draw(0, 0, 1, 1, atlas.Region{}, mgl32.Ident4())
		}
		b.End()
	}
	if p.IndexUploads != 1 {
		t.Errorf("index buffer uploaded %d times, want 1", p.IndexUploads)
	}
	if b.Cap() != 24 {
		t.Errorf("Cap = %d", b.Cap())
	}
}

func TestNewInvalidCapacity(t *testing.T) {
	expectPanic(t, "invalid sprite capacity", func() { New(0, &gputest.Program{}) })
	expectPanic(t, "invalid sprite capacity", func() { New(16385, &gputest.Program{}) })
}

func TestCheckCap(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{-1, true},
		{0, true},
		{1, false},
		{24, false},
		{MaxCap, false},
		{MaxCap + 1, true},
		{20000, true},
	}
	for _, tt := range tests {
		err := CheckCap(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckCap(%d) = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("CheckCap(%d) error %v does not match ErrInvalidCapacity", tt.n, err)
		}
	}
	if MaxCap != 16384 {
		t.Errorf("MaxCap = %d, want 16384", MaxCap)
	}
}

func TestDrawVertices(t *testing.T) {
	p := &gputest.Program{}
	b := New(4, p)
	region := atlas.Region{U1: 0.1, V1: 0.2, U2: 0.3, V2: 0.4}
	b.Begin(mgl32.Ident4())
	b.Draw(0, 0, 2, 2, atlas.Region{}, mgl32.Ident4())
	b.Draw(10, 20, 4, 6, region, mgl32.Ident4())
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	b.End()

	if len(p.Draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(p.Draws))
	}
	d := p.Draws[0]
	if d.IndexCount != 12 || len(d.Vertices) != 40 {
		t.Fatalf("index count = %d, vertices = %d", d.IndexCount, len(d.Vertices))
	}
	want := []float32{
		8, 17, 0.1, 0.4, 1, // bottom-left
		12, 17, 0.3, 0.4, 1, // bottom-right
		12, 23, 0.3, 0.2, 1, // top-right
		8, 23, 0.1, 0.2, 1, // top-left
	}
	for i, w := range want {
		if got := d.Vertices[20+i]; got != w {
			t.Errorf("vertex float %d = %v, want %v", i, got, w)
		}
	}
	for i := 0; i < 4; i++ {
		if slot := d.Vertices[i*5+4]; slot != 0 {
			t.Errorf("first sprite vertex %d slot = %v, want 0", i, slot)
		}
	}
}

func TestDrawTransforms(t *testing.T) {
	p := &gputest.Program{}
	b := New(4, p)
	vp := mgl32.Ortho(-100, 100, -100, 100, 0.1, 100)
	model := mgl32.Translate3D(5, 6, 0).Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(30)))
	b.Begin(vp)
	b.Draw(0, 0, 1, 1, atlas.Region{}, model)
	b.Draw(0, 0, 1, 1, atlas.Region{}, mgl32.Ident4())
	b.End()

	tr := p.Draws[0].Transforms
	if len(tr) != 2 {
		t.Fatalf("transforms = %d, want 2", len(tr))
	}
	if !tr[0].ApproxEqual(vp.Mul4(model)) {
		t.Errorf("slot 0 = %v, want vp*model", tr[0])
	}
	if !tr[1].ApproxEqual(vp) {
		t.Errorf("slot 1 = %v, want vp", tr[1])
	}
}

func TestOverflowFlushes(t *testing.T) {
	const n = 24
	p := &gputest.Program{}
	b := New(n, p)
	b.Begin(mgl32.Ident4())
	for i := 0; i <= n; i++ {
		b.Draw(float32(i), 0, 1, 1, atlas.Region{}, mgl32.Ident4())
	}
	if calls := b.End(); calls != 2 {
		t.Errorf("End = %d draw calls, want 2", calls)
	}
	if len(p.Draws) != 2 {
		t.Fatalf("draws = %d, want 2", len(p.Draws))
	}
	if got := p.Draws[0].Sprites(); got != n {
		t.Errorf("first flush = %d sprites, want %d", got, n)
	}
	if got := p.Draws[1].Sprites(); got != 1 {
		t.Errorf("second flush = %d sprites, want 1", got)
	}
	second := p.Draws[1].Vertices
	if len(second) != 20 || second[0] != float32(n)-0.5 || second[4] != 0 {
		t.Errorf("restarted batch vertices = %v", second)
	}
	if p.TextureBinds != 0 {
		t.Errorf("batch bound textures %d times", p.TextureBinds)
	}
}

func TestEndEmpty(t *testing.T) {
	p := &gputest.Program{}
	b := New(4, p)
	b.Begin(mgl32.Ident4())
	if calls := b.End(); calls != 0 {
		t.Errorf("End = %d, want 0", calls)
	}
	if len(p.Draws) != 0 {
		t.Errorf("draws = %d, want 0", len(p.Draws))
	}
}

func TestExactCapacitySingleDraw(t *testing.T) {
	p := &gputest.Program{}
	b := New(3, p)
	b.Begin(mgl32.Ident4())
	for i := 0; i < 3; i++ {
		b.Draw(0, 0, 1, 1, atlas.Region{}, mgl32.Ident4())
	}
	if calls := b.End(); calls != 1 {
		t.Errorf("End = %d, want 1", calls)
	}
}

func TestContractViolations(t *testing.T) {
	b := New(4, &gputest.Program{})
	expectPanic(t, "outside Begin/End", func() {
		b.Draw(0, 0, 1, 1, atlas.Region{}, mgl32.Ident4())
	})
	expectPanic(t, "without Begin", func() { b.End() })

	b.Begin(mgl32.Ident4())
	expectPanic(t, "twice", func() { b.Begin(mgl32.Ident4()) })
	b.End()
	expectPanic(t, "outside Begin/End", func() {
		b.Draw(0, 0, 1, 1, atlas.Region{}, mgl32.Ident4())
	})
}
