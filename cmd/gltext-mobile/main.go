//go:build darwin || linux || windows

// Command gltext-mobile renders the atlas and a few strings on OpenGL ES 2
// through golang.org/x/mobile. Build it for Android with gomobile:
//
//	gomobile build -target=android ./cmd/gltext-mobile
//
// A font named Roboto-Regular.ttf in the assets directory is used when
// present; otherwise the Go Regular font is loaded.
package main

import (
	"fmt"
	"io"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/asset"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/gl"

	"go-gltext/gltext"
	"go-gltext/gpu/glmobile"
	"go-gltext/internal/fps"
)

const fontAsset = "Roboto-Regular.ttf"

func main() {
	app.Main(func(a app.App) {
		var (
			glctx gl.Context
			sz    size.Event
			s     *scene
		)
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					var err error
					if s, err = newScene(glctx); err != nil {
						log.Fatalln("load font:", err)
					}
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if s != nil {
						s.release()
						s = nil
					}
					glctx = nil
				}
			case size.Event:
				sz = e
				if glctx != nil {
					glctx.Viewport(0, 0, sz.WidthPx, sz.HeightPx)
				}
			case paint.Event:
				if glctx == nil || s == nil || e.External {
					continue
				}
				s.draw(glctx, sz)
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}

type scene struct {
	font    *gltext.Font
	counter *fps.Counter
}

func newScene(glctx gl.Context) (*scene, error) {
	cfg := gltext.DefaultConfig()
	cfg.FontData = readAsset(fontAsset)
	font, err := gltext.Load(glmobile.NewDevice(glctx), cfg)
	if err != nil {
		return nil, err
	}
	glctx.Enable(gl.BLEND)
	glctx.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	glctx.ClearColor(0.5, 0.5, 0.5, 1)
	return &scene{font: font, counter: fps.New()}, nil
}

// readAsset returns nil when the asset is missing so the default font is
// used.
func readAsset(name string) []byte {
	f, err := asset.Open(name)
	if err != nil {
		return nil
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		log.Println("read asset:", err)
		return nil
	}
	return data
}

func (s *scene) draw(glctx gl.Context, sz size.Event) {
	glctx.Clear(gl.COLOR_BUFFER_BIT)
	if sz.WidthPx == 0 || sz.HeightPx == 0 {
		return
	}
	s.counter.Update()
	w, h := float32(sz.WidthPx), float32(sz.HeightPx)
	vp := mgl32.Ortho(0, w, 0, h, -100, 100)
	f := s.font

	f.DrawTexture(sz.WidthPx, sz.HeightPx, vp)

	cx, cy := w/2, h/2
	f.Begin(1, 1, 1, 1, vp)
	f.DrawCentered3D("Test String 3D!", cx, cy, 0, 0, -30, 0)
	f.DrawRotated("Diagonal 1", cx+40, cy+40, 40)
	f.DrawRotated("Column 1", cx+100, cy+100, 90)
	f.End()

	f.Begin(0, 0, 1, 1, vp)
	f.Draw("More Lines...", cx+50, cy+200)
	f.DrawRotated("The End.", cx+50, cy+200+f.CharHeight(), 180)
	f.Draw(fmt.Sprintf("FPS: %.1f", s.counter.FPS()), 20, h-f.CharHeight()-20)
	f.End()
}

func (s *scene) release() {
	s.font.Close()
}
