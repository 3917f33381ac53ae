package triangle

import (
	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"

	"github.com/aaronkistenmacher/MultiPoint/xform"
)

// Variant supplies the shaders for a renderer and sets the uniform that
// transforms the triangle.
type Variant interface {
	Name() string
	Shaders() (vertex, fragment string)

	// Apply uploads the transform uniform to program, which must be the
	// program currently in use.
	Apply(glctx gl.Context, program gl.Program) error
}

// DefaultAngle is the rotation, in degrees, drawn by the rotated demo.
const DefaultAngle = 90.0

// DefaultOffset is the translation drawn by the translated demo.
var DefaultOffset = f32.Vec3{0.5, 0.5, 0.5}

// Uniform names declared by the variant shaders.
const (
	RotationUniform    = "uXformMatrix"
	TranslationUniform = "uTranslation"
)

// Rotated rotates the triangle about the Z axis by Angle degrees.
type Rotated struct {
	Angle float32
}

func (Rotated) Name() string { return "rotated" }

func (Rotated) Shaders() (vertex, fragment string) {
	return rotatedVertexShader, rotatedFragmentShader
}

// Matrix returns the rotation in column-major order.
func (r Rotated) Matrix() []float32 {
	return xform.Serialize4(nil, xform.RotationZ(xform.Degrees(r.Angle)))
}

func (r Rotated) Apply(glctx gl.Context, program gl.Program) error {
	u := glctx.GetUniformLocation(program, RotationUniform)
	if u.Value < 0 {
		return &UniformNotFoundError{Name: RotationUniform}
	}
	glctx.UniformMatrix4fv(u, r.Matrix())
	return nil
}

// Translated offsets every vertex of the triangle by Offset.
type Translated struct {
	Offset f32.Vec3
}

func (Translated) Name() string { return "translated" }

func (Translated) Shaders() (vertex, fragment string) {
	return translatedVertexShader, translatedFragmentShader
}

// Vector returns the vec4 added to each vertex position.
func (t Translated) Vector() [4]float32 {
	return xform.Translation(t.Offset)
}

func (t Translated) Apply(glctx gl.Context, program gl.Program) error {
	u := glctx.GetUniformLocation(program, TranslationUniform)
	if u.Value < 0 {
		return &UniformNotFoundError{Name: TranslationUniform}
	}
	v := t.Vector()
	glctx.Uniform4f(u, v[0], v[1], v[2], v[3])
	return nil
}

const rotatedVertexShader = `#version 100

attribute vec4 aPosition;
uniform mat4 uXformMatrix;

void main() {
	gl_Position = uXformMatrix * aPosition;
}`

const rotatedFragmentShader = `#version 100
precision mediump float;

void main() {
	gl_FragColor = vec4(0.0, 0.25, 0.50, 1.0);
}`

const translatedVertexShader = `#version 100

attribute vec4 aPosition;
uniform vec4 uTranslation;

void main() {
	gl_Position = aPosition + uTranslation;
}`

const translatedFragmentShader = `#version 100
precision mediump float;

void main() {
	gl_FragColor = vec4(0.5, 0.0, 1.0, 1.0);
}`
