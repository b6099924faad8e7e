package gpu

import (
	"strconv"
	"strings"
)

// DefineMaxSprites is the preprocessor symbol holding the length of the
// MVP uniform array.
const DefineMaxSprites = "MAX_SPRITES"

// ShaderSource prefixes body with a #version line and the MAX_SPRITES
// define. The version must be the first line GLSL sees, so backends keep it
// out of their shader bodies.
func ShaderSource(version string, maxSprites int, body string) string {
	var sb strings.Builder
	sb.WriteString("#version " + version + "\n")
	sb.WriteString("#define " + DefineMaxSprites + " " + strconv.Itoa(maxSprites) + "\n")
	sb.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}
