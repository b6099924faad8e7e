package gltext

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Config describes the font to load.
type Config struct {
	// FontFile is a TrueType or OpenType file. FontData takes precedence;
	// with neither set the Go Regular font is used.
	FontFile string
	FontData []byte

	Size    float64 // glyph pixel height at 72 DPI
	DPI     float64
	Hinting font.Hinting

	// Padding on each side of every glyph cell, in pixels.
	PadX, PadY int

	// MaxSprites is the number of glyphs rendered per draw call.
	MaxSprites int
}

// Defaults used for zero Config fields.
const (
	DefaultSize       = 30
	DefaultDPI        = 72
	DefaultPadding    = 2
	DefaultMaxSprites = 24
)

// DefaultConfig returns a config for the Go Regular font at DefaultSize.
func DefaultConfig() Config {
	return Config{
		Size:       DefaultSize,
		DPI:        DefaultDPI,
		Hinting:    font.HintingFull,
		PadX:       DefaultPadding,
		PadY:       DefaultPadding,
		MaxSprites: DefaultMaxSprites,
	}
}

func (c Config) withDefaults() Config {
	if c.Size <= 0 {
		c.Size = DefaultSize
	}
	if c.DPI <= 0 {
		c.DPI = DefaultDPI
	}
	if c.MaxSprites <= 0 {
		c.MaxSprites = DefaultMaxSprites
	}
	return c
}

func (c Config) fontData() ([]byte, error) {
	switch {
	case len(c.FontData) > 0:
		return c.FontData, nil
	case c.FontFile != "":
		return os.ReadFile(c.FontFile)
	default:
		return goregular.TTF, nil
	}
}

// LoadFace reads and parses the font described by c.
func (c Config) LoadFace() (font.Face, error) {
	c = c.withDefaults()
	data, err := c.fontData()
	if err != nil {
		return nil, fmt.Errorf("gltext: read font: %w", err)
	}
	return ParseFace(data, c.Size, c.DPI, c.Hinting)
}

// ParseFace parses TrueType data with freetype, falling back to the
// OpenType parser for fonts freetype rejects, such as CFF outlines.
func ParseFace(data []byte, size, dpi float64, hinting font.Hinting) (font.Face, error) {
	tt, ttErr := truetype.Parse(data)
	if ttErr == nil {
		return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: dpi, Hinting: hinting}), nil
	}
	ot, otErr := opentype.Parse(data)
	if otErr != nil {
		return nil, fmt.Errorf("gltext: parse font: %w", errors.Join(ttErr, otErr))
	}
	face, err := opentype.NewFace(ot, &opentype.FaceOptions{Size: size, DPI: dpi, Hinting: hinting})
	if err != nil {
		return nil, fmt.Errorf("gltext: parse font: %w", err)
	}
	return face, nil
}
