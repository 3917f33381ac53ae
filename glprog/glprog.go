/*
Package glprog builds linked shader programs in a gl.Context from
golang.org/x/mobile/gl.  Unlike glutil.CreateProgram the failures are typed,
so callers can tell which stage failed and recover the driver's log.

	program, err := glprog.Build(glctx, vertexShader, fragmentShader)
	if err != nil {
		var cerr *glprog.CompileError
		if errors.As(err, &cerr) {
			log.Printf("%v shader log:\n%s", cerr.Stage, cerr.Log)
		}
		return err
	}
	glctx.UseProgram(program)
*/
package glprog

import (
	"errors"
	"fmt"

	"golang.org/x/mobile/gl"
)

// Stage identifies a programmable pipeline stage.
type Stage int

// Stages which make up a program.
const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Enum returns the shader type passed to CreateShader for s.
func (s Stage) Enum() gl.Enum {
	if s == Fragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// ErrNoProgram is returned when the context fails to allocate a program
// object.
var ErrNoProgram = errors.New("glprog: no programs available")

// CompileError is returned when a shader stage fails to compile.  Log holds
// the shader info log exactly as the driver reported it.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("glprog: %v shader compile failed: %s", e.Stage, e.Log)
}

// LinkError is returned when the compiled stages fail to link.  Log holds the
// program info log exactly as the driver reported it.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("glprog: program link failed: %s", e.Log)
}

// Build compiles vertexSrc and fragmentSrc and links them into a program.  On
// failure every object created along the way is deleted and the returned
// program is the zero value.
func Build(glctx gl.Context, vertexSrc, fragmentSrc string) (gl.Program, error) {
	program := glctx.CreateProgram()
	if program.Value == 0 {
		return gl.Program{}, ErrNoProgram
	}

	vertexShader, err := compile(glctx, Vertex, vertexSrc)
	if err != nil {
		glctx.DeleteProgram(program)
		return gl.Program{}, err
	}
	fragmentShader, err := compile(glctx, Fragment, fragmentSrc)
	if err != nil {
		glctx.DeleteShader(vertexShader)
		glctx.DeleteProgram(program)
		return gl.Program{}, err
	}

	glctx.AttachShader(program, vertexShader)
	glctx.AttachShader(program, fragmentShader)
	glctx.LinkProgram(program)

	// Flag shaders for deletion when program is unlinked.
	glctx.DeleteShader(vertexShader)
	glctx.DeleteShader(fragmentShader)

	if glctx.GetProgrami(program, gl.LINK_STATUS) == 0 {
		defer glctx.DeleteProgram(program)
		return gl.Program{}, &LinkError{Log: glctx.GetProgramInfoLog(program)}
	}
	return program, nil
}

func compile(glctx gl.Context, stage Stage, src string) (gl.Shader, error) {
	shader := glctx.CreateShader(stage.Enum())
	if shader.Value == 0 {
		return gl.Shader{}, &CompileError{Stage: stage, Log: "could not create shader"}
	}
	glctx.ShaderSource(shader, src)
	glctx.CompileShader(shader)
	if glctx.GetShaderi(shader, gl.COMPILE_STATUS) == 0 {
		defer glctx.DeleteShader(shader)
		return gl.Shader{}, &CompileError{Stage: stage, Log: glctx.GetShaderInfoLog(shader)}
	}
	return shader, nil
}
