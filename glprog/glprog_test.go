package glprog

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/mobile/gl"

	"github.com/aaronkistenmacher/MultiPoint/gltest"
)

const testVertexShader = `
attribute vec4 aPosition;
void main() {
	gl_Position = aPosition;
}`

const testFragmentShader = `
void main() {
	gl_FragColor = vec4(1.0, 0.0, 0.0, 1.0);
}`

const brokenFragmentShader = `
void main() {
	gl_FragColor = vec4(1.0, 0.0, 0.0, 1.0;
}`

func TestStage(t *testing.T) {
	tests := []struct {
		stage Stage
		name  string
		enum  gl.Enum
	}{
		{Vertex, "vertex", gl.VERTEX_SHADER},
		{Fragment, "fragment", gl.FRAGMENT_SHADER},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.name {
			t.Errorf("Stage(%d).String() = %q, want %q", int(tt.stage), got, tt.name)
		}
		if got := tt.stage.Enum(); got != tt.enum {
			t.Errorf("Stage(%d).Enum() = %v, want %v", int(tt.stage), got, tt.enum)
		}
	}
	if got := Stage(7).String(); got != "Stage(7)" {
		t.Errorf("Stage(7).String() = %q", got)
	}
}

func TestBuild(t *testing.T) {
	glctx := gltest.New()
	program, err := Build(glctx, testVertexShader, testFragmentShader)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if program.Value == 0 {
		t.Fatalf("Build returned a zero program")
	}
	if n := glctx.Called("AttachShader"); n != 2 {
		t.Errorf("AttachShader called %d times, want 2", n)
	}
	if n := len(glctx.DeletedShaders); n != 2 {
		t.Errorf("%d shaders flagged for deletion, want 2", n)
	}
	if n := len(glctx.DeletedPrograms); n != 0 {
		t.Errorf("%d programs deleted, want 0", n)
	}
}

func TestBuildCompileError(t *testing.T) {
	tests := []struct {
		name     string
		vertex   string
		fragment string
		stage    Stage
	}{
		{"vertex", "attribute vec4 aPosition;", testFragmentShader, Vertex},
		{"fragment", testVertexShader, brokenFragmentShader, Fragment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glctx := gltest.New()
			program, err := Build(glctx, tt.vertex, tt.fragment)
			var cerr *CompileError
			if !errors.As(err, &cerr) {
				t.Fatalf("Build error = %v, want *CompileError", err)
			}
			if cerr.Stage != tt.stage {
				t.Errorf("CompileError.Stage = %v, want %v", cerr.Stage, tt.stage)
			}
			_, wantLog := gltest.CheckSource(tt.stage.Enum(), map[Stage]string{Vertex: tt.vertex, Fragment: tt.fragment}[tt.stage])
			if cerr.Log != wantLog {
				t.Errorf("CompileError.Log = %q, want %q", cerr.Log, wantLog)
			}
			if msg := err.Error(); !strings.Contains(msg, tt.stage.String()) || !strings.Contains(msg, wantLog) {
				t.Errorf("error %q must name the %v stage and include its log", msg, tt.stage)
			}
			if program.Value != 0 {
				t.Errorf("Build returned program %v on failure", program)
			}
			if n := glctx.Called("LinkProgram"); n != 0 {
				t.Errorf("LinkProgram called %d times after a compile failure", n)
			}
			if n := len(glctx.DeletedPrograms); n != 1 {
				t.Errorf("%d programs deleted, want 1", n)
			}
		})
	}
}

func TestBuildCompileErrorDeletesVertexShader(t *testing.T) {
	glctx := gltest.New()
	_, err := Build(glctx, testVertexShader, brokenFragmentShader)
	if err == nil {
		t.Fatal("Build succeeded with a broken fragment shader")
	}
	if n := len(glctx.DeletedShaders); n != 2 {
		t.Errorf("%d shaders deleted, want both stages", n)
	}
}

func TestBuildLinkError(t *testing.T) {
	glctx := gltest.New()
	glctx.LinkLog = "error: varying 'color' not written by vertex shader"
	_, err := Build(glctx, testVertexShader, testFragmentShader)
	var lerr *LinkError
	if !errors.As(err, &lerr) {
		t.Fatalf("Build error = %v, want *LinkError", err)
	}
	if lerr.Log != glctx.LinkLog {
		t.Errorf("LinkError.Log = %q, want %q", lerr.Log, glctx.LinkLog)
	}
	if !strings.Contains(err.Error(), glctx.LinkLog) {
		t.Errorf("error %q does not include the link log", err)
	}
	if n := len(glctx.DeletedPrograms); n != 1 {
		t.Errorf("%d programs deleted, want 1", n)
	}
}

func TestBuildNoProgram(t *testing.T) {
	glctx := gltest.New()
	glctx.NoProgram = true
	_, err := Build(glctx, testVertexShader, testFragmentShader)
	if !errors.Is(err, ErrNoProgram) {
		t.Fatalf("Build error = %v, want ErrNoProgram", err)
	}
	if n := glctx.Called("CreateShader"); n != 0 {
		t.Errorf("CreateShader called %d times without a program", n)
	}
}

func TestBuildNoShader(t *testing.T) {
	glctx := gltest.New()
	glctx.NoShader = true
	_, err := Build(glctx, testVertexShader, testFragmentShader)
	var cerr *CompileError
	if !errors.As(err, &cerr) || cerr.Stage != Vertex {
		t.Fatalf("Build error = %v, want vertex *CompileError", err)
	}
}
