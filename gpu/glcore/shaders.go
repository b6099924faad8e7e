package glcore

const glslVersion = "330 core"

const vertexShader = `
layout(location = 0) in vec2 a_Position;
layout(location = 1) in vec2 a_TexCoordinate;
layout(location = 2) in float a_MVPMatrixIndex;

uniform mat4 u_MVPMatrix[MAX_SPRITES];

out vec2 v_TexCoordinate;

void main() {
	int i = int(a_MVPMatrixIndex);
	v_TexCoordinate = a_TexCoordinate;
	gl_Position = u_MVPMatrix[i] * vec4(a_Position, 0.0, 1.0);
}
`

// The atlas is an R8 texture swizzled so coverage lands in alpha.
const fragmentShader = `
uniform sampler2D u_Texture;
uniform vec4 u_Color;

in vec2 v_TexCoordinate;
out vec4 fragColor;

void main() {
	fragColor = u_Color * vec4(1.0, 1.0, 1.0, texture(u_Texture, v_TexCoordinate).a);
}
`
