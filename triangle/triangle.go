// SPDX-License-Identifier: Unlicense OR MIT

// Package triangle draws a single white triangle with a minimal
// GL pipeline: one buffer upload, two shaders, one program and
// one draw call.
package triangle

import (
	"github.com/webgl-go/hellotriangle/internal/gl"
)

// Functions is the subset of a GL context used by Draw. It is
// implemented by the WebGL binding under js and by the go-gl
// binding on desktop.
type Functions interface {
	AttachShader(p gl.Program, s gl.Shader)
	BindBuffer(target gl.Enum, b gl.Buffer)
	BufferData(target gl.Enum, size int, usage gl.Enum, data []byte)
	Clear(mask gl.Enum)
	ClearColor(red, green, blue, alpha float32)
	CompileShader(s gl.Shader)
	CreateBuffer() gl.Buffer
	CreateProgram() gl.Program
	CreateShader(ty gl.Enum) gl.Shader
	DrawArrays(mode gl.Enum, first, count int)
	EnableVertexAttribArray(a gl.Attrib)
	GetProgrami(p gl.Program, pname gl.Enum) int
	GetProgramInfoLog(p gl.Program) string
	GetShaderi(s gl.Shader, pname gl.Enum) int
	GetShaderInfoLog(s gl.Shader) string
	LinkProgram(p gl.Program)
	ShaderSource(s gl.Shader, src string)
	UseProgram(p gl.Program)
	VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int)
}

// ContextFunc obtains the rendering context Draw issues its calls on.
type ContextFunc func() (Functions, error)

// vertices holds the triangle corners in normalized device
// coordinates, three floats (x, y, z) per vertex.
var vertices = [...]float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

const (
	componentsPerVertex = 3
	positionAttrib      = gl.Attrib(0)
)

// VertexCount is the number of vertices passed to the draw call.
const VertexCount = len(vertices) / componentsPerVertex

const VertexShader = `
    attribute vec4 position;

    void main() {
        gl_Position = position;
    }`

const FragmentShader = `
    void main() {
        gl_FragColor = vec4(1.0, 1.0, 1.0, 1.0);
    }
    `

// Draw obtains a context from open, uploads the triangle vertices, builds the
// shader program and issues one triangle draw call. Any failure
// aborts the sequence; calls already issued are not undone.
func Draw(open ContextFunc) error {
	ctx, err := open()
	if err != nil {
		return &Error{Kind: ContextError, Log: err.Error(), Err: err}
	}
	if ctx == nil {
		return &Error{Kind: ContextError, Log: "no rendering context"}
	}

	buf := ctx.CreateBuffer()
	if !buf.Valid() {
		return &Error{Kind: AllocationError, Log: "Failed to Create Buffer"}
	}
	ctx.BindBuffer(gl.ARRAY_BUFFER, buf)
	// The view aliases vertices; nothing may allocate between here
	// and the upload.
	data := gl.BytesView(vertices[:])
	ctx.BufferData(gl.ARRAY_BUFFER, len(data), gl.STATIC_DRAW, data)

	vs, err := compileShader(ctx, gl.VERTEX_SHADER, VertexShader)
	if err != nil {
		return err
	}
	fs, err := compileShader(ctx, gl.FRAGMENT_SHADER, FragmentShader)
	if err != nil {
		return err
	}
	prog, err := linkShaders(ctx, vs, fs)
	if err != nil {
		return err
	}
	ctx.UseProgram(prog)

	ctx.VertexAttribPointer(positionAttrib, componentsPerVertex, gl.FLOAT, false, 0, 0)
	ctx.EnableVertexAttribArray(positionAttrib)

	ctx.ClearColor(0, 0, 0, 1)
	ctx.Clear(gl.COLOR_BUFFER_BIT)

	ctx.DrawArrays(gl.TRIANGLES, 0, VertexCount)
	return nil
}

func compileShader(ctx Functions, typ gl.Enum, src string) (gl.Shader, error) {
	sh := ctx.CreateShader(typ)
	if !sh.Valid() {
		return gl.Shader{}, &Error{Kind: AllocationError, Log: "Failed to create Shader"}
	}
	ctx.ShaderSource(sh, src)
	ctx.CompileShader(sh)
	if ctx.GetShaderi(sh, gl.COMPILE_STATUS) == gl.FALSE {
		log := ctx.GetShaderInfoLog(sh)
		if log == "" {
			log = "Unknown error creating shader"
		}
		return gl.Shader{}, &Error{Kind: CompileError, Log: log}
	}
	return sh, nil
}

func linkShaders(ctx Functions, vs, fs gl.Shader) (gl.Program, error) {
	prog := ctx.CreateProgram()
	if !prog.Valid() {
		return gl.Program{}, &Error{Kind: AllocationError, Log: "Could not Create shader program"}
	}
	ctx.AttachShader(prog, vs)
	ctx.AttachShader(prog, fs)
	ctx.LinkProgram(prog)
	if ctx.GetProgrami(prog, gl.LINK_STATUS) == gl.FALSE {
		log := ctx.GetProgramInfoLog(prog)
		if log == "" {
			log = "Could not Link Shader, unknown error"
		}
		return gl.Program{}, &Error{Kind: LinkError, Log: log}
	}
	return prog, nil
}
