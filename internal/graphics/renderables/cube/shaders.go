package cube

// VertexShader transforms each corner by model, view and projection and
// passes its color through.
const VertexShader = `
uniform mat4 uModelMatrix;
uniform mat4 uViewMatrix;
uniform mat4 uProjMatrix;
attribute vec4 aPosition;
attribute vec4 aColor;
varying vec4 vColor;
void main() {
	gl_Position = uProjMatrix * uViewMatrix * uModelMatrix * aPosition;
	vColor = aColor;
}
`

// FragmentShader writes the interpolated vertex color.
const FragmentShader = `
#ifdef GL_ES
precision mediump float;
#endif
varying vec4 vColor;
void main() {
	gl_FragColor = vColor;
}
`
