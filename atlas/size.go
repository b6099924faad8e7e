package atlas

// Cell size bounds in pixels, applied to the larger side of a cell.
const (
	MinCellSize = 6
	MaxCellSize = 180
)

// textureSteps maps the largest cell side to the square texture size.
// The steps are sized for CharCount cells; changing the character range
// needs a new table.
var textureSteps = [...]struct {
	maxCell int
	size    int
}{
	{24, 256},
	{40, 512},
	{80, 1024},
}

const largestTexture = 2048

// TextureSize returns the side of the square atlas texture used for cells
// whose larger side is maxCell pixels.
func TextureSize(maxCell int) int {
	for _, s := range textureSteps {
		if maxCell <= s.maxCell {
			return s.size
		}
	}
	return largestTexture
}

// ValidateCell checks a width x height cell against the size bounds.
func ValidateCell(width, height int) error {
	m := max(width, height)
	if width <= 0 || height <= 0 || m < MinCellSize || m > MaxCellSize {
		return &CellSizeError{Width: width, Height: height, Min: MinCellSize, Max: MaxCellSize}
	}
	return nil
}
