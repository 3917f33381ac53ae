/*
Package gltest provides a recording gl.Context for tests that must run
without a GPU.

Context implements the subset of golang.org/x/mobile/gl.Context used to
build a program, upload vertex data, set uniforms and draw.  Calling any
other method panics.  Attribute and uniform locations are resolved from the
declarations in the attached shader sources, so a name only resolves when a
shader actually declares it.
*/
package gltest

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/mobile/gl"
)

// DrawCall records the arguments of a DrawArrays call.
type DrawCall struct {
	Mode  gl.Enum
	First int
	Count int
}

// AttribPointer records the arguments of a VertexAttribPointer call.
type AttribPointer struct {
	Attrib     gl.Attrib
	Buffer     gl.Buffer
	Size       int
	Type       gl.Enum
	Normalized bool
	Stride     int
	Offset     int
}

// Context is a fake gl.Context.  The zero value is not usable, call New.
type Context struct {
	// Embedded nil interface; methods not implemented below panic.
	gl.Context

	// Compile decides whether a shader compiles.  It defaults to
	// CheckSource.
	Compile func(ty gl.Enum, src string) (ok bool, log string)

	// LinkLog, when non-empty, makes every LinkProgram fail with this log.
	LinkLog string

	// Allocation failures.
	NoProgram bool
	NoShader  bool
	NoBuffer  bool

	// Calls lists the name of every GL method invoked, in order.
	Calls []string

	ClearColorValue [4]float32
	ClearMask       gl.Enum
	Draws           []DrawCall
	Pointers        []AttribPointer
	Enabled         map[gl.Attrib]bool
	BufferContents  map[gl.Buffer][]byte
	BufferUsage     map[gl.Buffer]gl.Enum
	Matrices        map[gl.Uniform][]float32
	Vectors         map[gl.Uniform][4]float32
	Current         gl.Program

	DeletedShaders  []gl.Shader
	DeletedPrograms []gl.Program
	DeletedBuffers  []gl.Buffer

	next     uint32
	shaders  map[uint32]*shader
	programs map[uint32]*program
	bound    gl.Buffer
}

type shader struct {
	ty       gl.Enum
	src      string
	compiled bool
	log      string
}

type program struct {
	attached []uint32
	linked   bool
	log      string
	attribs  []string
	uniforms []string
}

// New returns an empty fake context.
func New() *Context {
	return &Context{
		Compile:        CheckSource,
		Enabled:        map[gl.Attrib]bool{},
		BufferContents: map[gl.Buffer][]byte{},
		BufferUsage:    map[gl.Buffer]gl.Enum{},
		Matrices:       map[gl.Uniform][]float32{},
		Vectors:        map[gl.Uniform][4]float32{},
		shaders:        map[uint32]*shader{},
		programs:       map[uint32]*program{},
	}
}

// CheckSource is a crude stand-in for a GLSL compiler.  It accepts sources
// which define main and have balanced braces and parentheses.
func CheckSource(ty gl.Enum, src string) (bool, string) {
	if !strings.Contains(src, "void main") {
		return false, "ERROR: 0:1: 'main' : function not defined"
	}
	if strings.Count(src, "{") != strings.Count(src, "}") ||
		strings.Count(src, "(") != strings.Count(src, ")") {
		return false, "ERROR: 0:1: '' : syntax error"
	}
	return true, ""
}

// Called returns the number of times the GL method name was invoked.
func (c *Context) Called(name string) int {
	n := 0
	for _, call := range c.Calls {
		if call == name {
			n++
		}
	}
	return n
}

func (c *Context) record(name string) { c.Calls = append(c.Calls, name) }

func (c *Context) id() uint32 {
	c.next++
	return c.next
}

func (c *Context) CreateProgram() gl.Program {
	c.record("CreateProgram")
	if c.NoProgram {
		return gl.Program{}
	}
	id := c.id()
	c.programs[id] = &program{}
	return gl.Program{Init: true, Value: id}
}

func (c *Context) DeleteProgram(p gl.Program) {
	c.record("DeleteProgram")
	c.DeletedPrograms = append(c.DeletedPrograms, p)
	delete(c.programs, p.Value)
}

func (c *Context) CreateShader(ty gl.Enum) gl.Shader {
	c.record("CreateShader")
	if c.NoShader {
		return gl.Shader{}
	}
	id := c.id()
	c.shaders[id] = &shader{ty: ty}
	return gl.Shader{Value: id}
}

func (c *Context) DeleteShader(s gl.Shader) {
	c.record("DeleteShader")
	c.DeletedShaders = append(c.DeletedShaders, s)
}

func (c *Context) ShaderSource(s gl.Shader, src string) {
	c.record("ShaderSource")
	c.shader(s).src = src
}

func (c *Context) CompileShader(s gl.Shader) {
	c.record("CompileShader")
	sh := c.shader(s)
	sh.compiled, sh.log = c.Compile(sh.ty, sh.src)
}

func (c *Context) GetShaderi(s gl.Shader, pname gl.Enum) int {
	c.record("GetShaderi")
	if pname != gl.COMPILE_STATUS {
		panic(fmt.Sprintf("gltest: unsupported shader parameter %v", pname))
	}
	if c.shader(s).compiled {
		return 1
	}
	return 0
}

func (c *Context) GetShaderInfoLog(s gl.Shader) string {
	c.record("GetShaderInfoLog")
	return c.shader(s).log
}

func (c *Context) AttachShader(p gl.Program, s gl.Shader) {
	c.record("AttachShader")
	prog := c.program(p)
	prog.attached = append(prog.attached, s.Value)
}

func (c *Context) LinkProgram(p gl.Program) {
	c.record("LinkProgram")
	prog := c.program(p)
	if c.LinkLog != "" {
		prog.linked, prog.log = false, c.LinkLog
		return
	}
	var haveVertex, haveFragment bool
	prog.attribs, prog.uniforms = nil, nil
	for _, id := range prog.attached {
		sh := c.shaders[id]
		if sh == nil || !sh.compiled {
			prog.linked, prog.log = false, "ERROR: One or more attached shaders not successfully compiled"
			return
		}
		switch sh.ty {
		case gl.VERTEX_SHADER:
			haveVertex = true
			prog.attribs = append(prog.attribs, declared("attribute", sh.src)...)
		case gl.FRAGMENT_SHADER:
			haveFragment = true
		}
		prog.uniforms = append(prog.uniforms, declared("uniform", sh.src)...)
	}
	if !haveVertex || !haveFragment {
		prog.linked, prog.log = false, "ERROR: program requires a vertex and a fragment shader"
		return
	}
	prog.linked, prog.log = true, ""
}

func (c *Context) GetProgrami(p gl.Program, pname gl.Enum) int {
	c.record("GetProgrami")
	if pname != gl.LINK_STATUS {
		panic(fmt.Sprintf("gltest: unsupported program parameter %v", pname))
	}
	if c.program(p).linked {
		return 1
	}
	return 0
}

func (c *Context) GetProgramInfoLog(p gl.Program) string {
	c.record("GetProgramInfoLog")
	return c.program(p).log
}

func (c *Context) UseProgram(p gl.Program) {
	c.record("UseProgram")
	c.Current = p
}

func (c *Context) CreateBuffer() gl.Buffer {
	c.record("CreateBuffer")
	if c.NoBuffer {
		return gl.Buffer{}
	}
	return gl.Buffer{Value: c.id()}
}

func (c *Context) DeleteBuffer(b gl.Buffer) {
	c.record("DeleteBuffer")
	c.DeletedBuffers = append(c.DeletedBuffers, b)
}

func (c *Context) BindBuffer(target gl.Enum, b gl.Buffer) {
	c.record("BindBuffer")
	if target != gl.ARRAY_BUFFER {
		panic(fmt.Sprintf("gltest: unsupported buffer target %v", target))
	}
	c.bound = b
}

func (c *Context) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	c.record("BufferData")
	c.BufferContents[c.bound] = append([]byte(nil), src...)
	c.BufferUsage[c.bound] = usage
}

func (c *Context) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	c.record("GetAttribLocation")
	for i, attr := range c.program(p).attribs {
		if attr == name {
			return gl.Attrib{Value: uint(i)}
		}
	}
	return gl.Attrib{Value: ^uint(0)}
}

func (c *Context) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	c.record("VertexAttribPointer")
	c.Pointers = append(c.Pointers, AttribPointer{
		Attrib:     dst,
		Buffer:     c.bound,
		Size:       size,
		Type:       ty,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	})
}

func (c *Context) EnableVertexAttribArray(a gl.Attrib) {
	c.record("EnableVertexAttribArray")
	c.Enabled[a] = true
}

func (c *Context) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	c.record("GetUniformLocation")
	for i, u := range c.program(p).uniforms {
		if u == name {
			return gl.Uniform{Value: int32(i)}
		}
	}
	return gl.Uniform{Value: -1}
}

func (c *Context) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	c.record("UniformMatrix4fv")
	c.Matrices[dst] = append([]float32(nil), src...)
}

func (c *Context) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	c.record("Uniform4f")
	c.Vectors[dst] = [4]float32{v0, v1, v2, v3}
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	c.record("ClearColor")
	c.ClearColorValue = [4]float32{red, green, blue, alpha}
}

func (c *Context) Clear(mask gl.Enum) {
	c.record("Clear")
	c.ClearMask = mask
}

func (c *Context) DrawArrays(mode gl.Enum, first, count int) {
	c.record("DrawArrays")
	c.Draws = append(c.Draws, DrawCall{Mode: mode, First: first, Count: count})
}

func (c *Context) shader(s gl.Shader) *shader {
	sh, ok := c.shaders[s.Value]
	if !ok {
		panic(fmt.Sprintf("gltest: unknown shader %d", s.Value))
	}
	return sh
}

func (c *Context) program(p gl.Program) *program {
	prog, ok := c.programs[p.Value]
	if !ok {
		panic(fmt.Sprintf("gltest: unknown program %d", p.Value))
	}
	return prog
}

var declRE = regexp.MustCompile(`(?m)^\s*(attribute|uniform)\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+(\w+)\s*;`)

// declared returns the names of the qualifier variables declared in src.
func declared(qualifier, src string) []string {
	var names []string
	for _, m := range declRE.FindAllStringSubmatch(src, -1) {
		if m[1] == qualifier {
			names = append(names, m[2])
		}
	}
	return names
}
