// Command gltext opens a window and renders text through a glyph atlas and
// sprite batch on desktop OpenGL 3.3.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"go-gltext/gltext"
	"go-gltext/gpu/glcore"
	"go-gltext/internal/fps"
)

var (
	fontPath     string
	windowWidth  = 1024
	windowHeight = 768
	fontSize     = gltext.DefaultSize
	padding      = gltext.DefaultPadding
	useVSync     = true
	dumpAtlas    string
	verbose      bool
)

func init() { runtime.LockOSThread() }

func main() {
	flag.StringVar(&fontPath, "font", "", "Path to TTF/OTF font file (default Go Regular)")
	flag.IntVar(&windowWidth, "width", windowWidth, "Window width")
	flag.IntVar(&windowHeight, "height", windowHeight, "Window height")
	flag.IntVar(&fontSize, "size", fontSize, "Font pixel size")
	flag.IntVar(&padding, "pad", padding, "Glyph cell padding in pixels")
	flag.BoolVar(&useVSync, "vsync", useVSync, "Enable vsync")
	flag.StringVar(&dumpAtlas, "dump-atlas", "", "Write the glyph atlas to this PNG file")
	flag.BoolVar(&verbose, "v", false, "Log font loading details")
	flag.Parse()
	if verbose {
		gltext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if fontPath != "" {
		if _, err := os.Stat(fontPath); os.IsNotExist(err) {
			log.Fatalln("font not found:", fontPath)
		}
	}

	if err := glfw.Init(); err != nil {
		log.Fatalln("glfw init:", err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(windowWidth, windowHeight, "GL Text", nil, nil)
	if err != nil {
		log.Fatalln("create window:", err)
	}
	win.MakeContextCurrent()
	if useVSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if err := gl.Init(); err != nil {
		log.Fatalln("gl init:", err)
	}
	log.Println("GL version:", glcore.Version())

	cfg := gltext.DefaultConfig()
	cfg.FontFile = fontPath
	cfg.Size = float64(fontSize)
	cfg.PadX, cfg.PadY = padding, padding
	font, err := gltext.Load(glcore.Device{}, cfg)
	if err != nil {
		log.Fatalln("load font:", err)
	}
	defer font.Close()
	a := font.Atlas()
	log.Printf("atlas %dx%d, cell %dx%d", a.Size, a.Size, a.CellWidth, a.CellHeight)

	if dumpAtlas != "" {
		if err := writeAtlas(font, dumpAtlas); err != nil {
			log.Println("dump atlas failed:", err)
		}
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	width, height := windowWidth, windowHeight
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		width, height = w, h
		gl.Viewport(0, 0, int32(w), int32(h))
	})
	fw, fh := win.GetFramebufferSize()
	width, height = fw, fh
	gl.Viewport(0, 0, int32(fw), int32(fh))

	counter := fps.New()
	start := time.Now()
	frame := 0
	showAtlas := false
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyT:
			showAtlas = !showAtlas
		}
	})

	drawCalls := 0
	for !win.ShouldClose() {
		glfw.PollEvents()
		gl.ClearColor(0.08, 0.08, 0.08, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		counter.Update()

		// y grows upward, origin at the bottom-left of the window.
		vp := mgl32.Ortho(0, float32(width), 0, float32(height), -100, 100)
		if showAtlas {
			font.DrawTexture(width, height, vp)
			win.SwapBuffers()
			frame++
			continue
		}

		elapsed := time.Since(start).Seconds()
		wave := float32(math.Sin(elapsed*2) * 50)
		pulse := float32(0.5 + 0.5*math.Sin(elapsed*3))
		top := float32(height) - 50
		line := font.CharHeight()

		calls := 0
		font.Begin(1.0, 0.6, 0.2, 1, vp)
		font.Draw("GL Text - atlas and sprite batch", 50, top)
		calls += font.End()

		font.Begin(0.2, 0.8, 1.0, 1, vp)
		font.Draw(fmt.Sprintf("FPS: %.1f (VSync:%v)", counter.FPS(), useVSync), 50, top-line)
		font.Draw(fmt.Sprintf("Frame: %d", frame), 50, top-2*line)
		font.Draw(fmt.Sprintf("Draw Calls: %d", drawCalls), 50, top-3*line)
		calls += font.End()

		font.Begin(0.9, 0.9, 0.3, pulse, vp)
		font.Draw("abcdefghijklmnopqrstuvwxyz 0123456789", 50, top-5*line)
		font.Draw("Unknown glyphs: éè世", 50, top-6*line)
		calls += font.End()

		font.Begin(1, 1, 1, 1, vp)
		cx, cy := float32(width)/2, float32(height)/3
		font.DrawCentered3D("Test String 3D!", cx, cy, 0, 0, float32(elapsed*60), 0)
		font.DrawRotated("Diagonal 1", 300+wave, cy-80, 40)
		font.DrawRotated("Column 1", float32(width)-80, 100, 90)
		calls += font.End()

		drawCalls = calls
		win.SwapBuffers()
		frame++
	}
}

func writeAtlas(font *gltext.Font, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := font.Atlas().WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
