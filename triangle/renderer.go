/*
Package triangle renders a single static triangle transformed on the GPU by
one uniform.  A Renderer walks a fixed sequence of steps exactly once:

	Uninitialized -> ContextAcquired -> PipelineReady -> BuffersBound -> Rendered

Any failing step leaves the renderer Failed and nothing is drawn.

	r, err := triangle.New(glctx, triangle.Rotated{Angle: 90})
	if err != nil {
		return err
	}
	defer r.Release()
	if err := r.Render(); err != nil {
		log.Printf("render failed: %v", err)
	}
*/
package triangle

import (
	"fmt"
	"log/slog"

	"golang.org/x/mobile/gl"

	"github.com/aaronkistenmacher/MultiPoint/glprog"
)

// State is a step in the renderer's lifecycle.
type State int

// Renderer states, in the order they are reached.
const (
	Uninitialized State = iota
	ContextAcquired
	PipelineReady
	BuffersBound
	Rendered
	Failed
)

var stateNames = [...]string{
	Uninitialized:   "Uninitialized",
	ContextAcquired: "ContextAcquired",
	PipelineReady:   "PipelineReady",
	BuffersBound:    "BuffersBound",
	Rendered:        "Rendered",
	Failed:          "Failed",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Renderer owns the GL objects used to draw the triangle.  It is not safe
// for concurrent use; all calls must come from the goroutine which owns the
// GL context.
type Renderer struct {
	glctx   gl.Context
	variant Variant
	state   State

	program     gl.Program
	buffer      gl.Buffer
	position    gl.Attrib
	transformed bool
}

// New returns a renderer bound to glctx which will draw using variant.
func New(glctx gl.Context, variant Variant) (*Renderer, error) {
	if glctx == nil {
		return nil, ErrNoContext
	}
	if variant == nil {
		return nil, ErrNoVariant
	}
	r := &Renderer{glctx: glctx, variant: variant}
	r.advance(ContextAcquired)
	return r, nil
}

// State returns the last state reached.
func (r *Renderer) State() State { return r.state }

// Program returns the linked program.  It is the zero value until the
// pipeline is built.
func (r *Renderer) Program() gl.Program { return r.program }

// Render builds the pipeline, uploads the geometry, applies the transform
// and draws.  It stops at the first error.
func (r *Renderer) Render() error {
	steps := []func() error{
		r.BuildPipeline,
		r.UploadGeometry,
		r.ApplyTransform,
		r.Draw,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// BuildPipeline compiles and links the variant's shaders and makes the
// program current.
func (r *Renderer) BuildPipeline() error {
	if err := r.expect("BuildPipeline", ContextAcquired); err != nil {
		return err
	}
	vertex, fragment := r.variant.Shaders()
	program, err := glprog.Build(r.glctx, vertex, fragment)
	if err != nil {
		return r.fail("build pipeline", err)
	}
	r.program = program
	r.glctx.UseProgram(r.program)
	r.advance(PipelineReady, slog.Uint64("program", uint64(r.program.Value)))
	return nil
}

// UploadGeometry copies the triangle into a static vertex buffer and points
// the position attribute at it.
func (r *Renderer) UploadGeometry() error {
	if err := r.expect("UploadGeometry", PipelineReady); err != nil {
		return err
	}
	r.buffer = r.glctx.CreateBuffer()
	if r.buffer.Value == 0 {
		return r.fail("upload geometry", ErrBufferAllocation)
	}
	r.glctx.BindBuffer(gl.ARRAY_BUFFER, r.buffer)
	r.glctx.BufferData(gl.ARRAY_BUFFER, triangleVertexData, gl.STATIC_DRAW)

	r.position = r.glctx.GetAttribLocation(r.program, PositionAttrib)
	if int(r.position.Value) < 0 {
		return r.fail("upload geometry", &AttributeNotFoundError{Name: PositionAttrib})
	}
	r.glctx.VertexAttribPointer(r.position, coordsPerVertex, gl.FLOAT, false, 0, 0)
	r.glctx.EnableVertexAttribArray(r.position)
	r.advance(BuffersBound,
		slog.Uint64("buffer", uint64(r.buffer.Value)),
		slog.Int("vertices", VertexCount()))
	return nil
}

// ApplyTransform sets the variant's uniform on the current program.
func (r *Renderer) ApplyTransform() error {
	if err := r.expect("ApplyTransform", BuffersBound); err != nil {
		return err
	}
	if r.transformed {
		return ErrTransformApplied
	}
	if err := r.variant.Apply(r.glctx, r.program); err != nil {
		return r.fail("apply transform", err)
	}
	r.transformed = true
	Logger().Debug("transform applied", slog.String("variant", r.variant.Name()))
	return nil
}

// Draw clears the surface to opaque black and draws the triangle.  It must
// follow ApplyTransform.
func (r *Renderer) Draw() error {
	if err := r.expect("Draw", BuffersBound); err != nil {
		return err
	}
	if !r.transformed {
		return ErrNoTransform
	}
	r.glctx.ClearColor(0, 0, 0, 1)
	r.glctx.Clear(gl.COLOR_BUFFER_BIT)
	r.glctx.DrawArrays(gl.TRIANGLES, 0, VertexCount())
	r.advance(Rendered)
	return nil
}

// Release deletes the GL objects created by the renderer.  It may be called
// in any state, and more than once.
func (r *Renderer) Release() {
	if r.buffer.Value != 0 {
		r.glctx.DeleteBuffer(r.buffer)
		r.buffer = gl.Buffer{}
	}
	if r.program.Value != 0 {
		r.glctx.DeleteProgram(r.program)
		r.program = gl.Program{}
	}
}

func (r *Renderer) expect(op string, want State) error {
	if r.state != want {
		return &StateError{Op: op, Have: r.state, Want: want}
	}
	return nil
}

func (r *Renderer) advance(s State, attrs ...any) {
	r.state = s
	Logger().Debug("renderer state", append([]any{slog.String("state", s.String())}, attrs...)...)
}

func (r *Renderer) fail(stage string, err error) error {
	prev := r.state
	r.state = Failed
	Logger().Error("render aborted",
		slog.String("stage", stage),
		slog.String("state", prev.String()),
		slog.String("variant", r.variant.Name()),
		slog.Any("err", err))
	return fmt.Errorf("%s: %w", stage, err)
}
