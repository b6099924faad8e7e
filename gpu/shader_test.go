package gpu

import (
	"strings"
	"testing"
)

func TestShaderSource(t *testing.T) {
	tests := []struct {
		version    string
		maxSprites int
		body       string
		want       string
	}{
		{"330 core", 24, "void main() {}\n", "#version 330 core\n#define MAX_SPRITES 24\nvoid main() {}\n"},
		{"100", 8, "void main() {}", "#version 100\n#define MAX_SPRITES 8\nvoid main() {}\n"},
	}
	for _, tt := range tests {
		if got := ShaderSource(tt.version, tt.maxSprites, tt.body); got != tt.want {
			t.Errorf("ShaderSource(%q, %d) = %q, want %q", tt.version, tt.maxSprites, got, tt.want)
		}
	}
}

func TestShaderSourceVersionFirst(t *testing.T) {
	src := ShaderSource("330 core", 1, "uniform mat4 m[MAX_SPRITES];")
	if !strings.HasPrefix(src, "#version ") {
		t.Errorf("source does not start with #version: %q", src)
	}
	if strings.Count(src, "#version") != 1 {
		t.Errorf("source has more than one #version: %q", src)
	}
}
