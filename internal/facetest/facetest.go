// Package facetest provides a deterministic font.Face for tests.
package facetest

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face has fixed integer advances and draws every non-space glyph as a solid
// box from the ascent line to the baseline.
type Face struct {
	Advance  int          // default advance in pixels
	Advances map[rune]int // per-rune overrides
	Ascent   int
	Descent  int
}

var _ font.Face = (*Face)(nil)

func (f *Face) advance(r rune) int {
	if a, ok := f.Advances[r]; ok {
		return a
	}
	return f.Advance
}

func (f *Face) Close() error { return nil }

func (f *Face) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	adv := f.advance(r)
	if r == ' ' {
		return image.Rectangle{}, image.Opaque, image.Point{}, fixed.I(adv), true
	}
	x, y := dot.X.Round(), dot.Y.Round()
	return image.Rect(x, y-f.Ascent, x+adv, y), image.Opaque, image.Point{}, fixed.I(adv), true
}

func (f *Face) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	adv := fixed.I(f.advance(r))
	b := fixed.Rectangle26_6{
		Min: fixed.Point26_6{Y: -fixed.I(f.Ascent)},
		Max: fixed.Point26_6{X: adv},
	}
	return b, adv, true
}

func (f *Face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	return fixed.I(f.advance(r)), true
}

func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (f *Face) Metrics() font.Metrics {
	return font.Metrics{
		Height:  fixed.I(f.Ascent + f.Descent),
		Ascent:  fixed.I(f.Ascent),
		Descent: fixed.I(f.Descent),
	}
}
