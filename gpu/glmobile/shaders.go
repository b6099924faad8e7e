package glmobile

const glslVersion = "100"

const vertexShader = `
attribute vec2 a_Position;
attribute vec2 a_TexCoordinate;
attribute float a_MVPMatrixIndex;

uniform mat4 u_MVPMatrix[MAX_SPRITES];

varying vec2 v_TexCoordinate;

void main() {
	int i = int(a_MVPMatrixIndex);
	v_TexCoordinate = a_TexCoordinate;
	gl_Position = u_MVPMatrix[i] * vec4(a_Position, 0.0, 1.0);
}
`

const fragmentShader = `
precision mediump float;

uniform sampler2D u_Texture;
uniform vec4 u_Color;

varying vec2 v_TexCoordinate;

void main() {
	gl_FragColor = u_Color * vec4(1.0, 1.0, 1.0, texture2D(u_Texture, v_TexCoordinate).a);
}
`
