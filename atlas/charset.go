package atlas

// Fixed character range held by every atlas.
const (
	CharStart = 32  // first character (ASCII)
	CharEnd   = 126 // last character (ASCII)
	CharNone  = 32  // character rasterized into the unknown slot

	// CharCount includes the trailing unknown slot.
	CharCount   = (CharEnd - CharStart + 1) + 1
	CharUnknown = CharCount - 1
)

// Index returns the atlas slot for r. Runes outside the loaded range map to
// CharUnknown.
func Index(r rune) int {
	i := int(r) - CharStart
	if i < 0 || i >= CharCount {
		return CharUnknown
	}
	return i
}

// slotRune is the character rasterized into slot i.
func slotRune(i int) rune {
	if i == CharUnknown {
		return CharNone
	}
	return rune(CharStart + i)
}
