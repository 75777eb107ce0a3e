// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

// Package glfwgl implements the triangle GL functions with go-gl on
// a desktop OpenGL 2.1 context, such as one created by GLFW.
package glfwgl

import (
	"fmt"
	"strings"
	"unsafe"

	gogl "github.com/go-gl/gl/v2.1/gl"

	"github.com/webgl-go/hellotriangle/internal/gl"
)

// Functions issues GL calls on the context current on the calling
// thread.
type Functions struct{}

// NewFunctions loads the OpenGL entry points. A context must be
// current.
func NewFunctions() (*Functions, error) {
	if err := gogl.Init(); err != nil {
		return nil, fmt.Errorf("glfwgl: %w", err)
	}
	return new(Functions), nil
}

func (f *Functions) AttachShader(p gl.Program, s gl.Shader) {
	gogl.AttachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) BindBuffer(target gl.Enum, b gl.Buffer) {
	gogl.BindBuffer(uint32(target), uint32(b.V))
}

func (f *Functions) BufferData(target gl.Enum, size int, usage gl.Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = gogl.Ptr(data)
	}
	gogl.BufferData(uint32(target), size, p, uint32(usage))
}

func (f *Functions) Clear(mask gl.Enum) {
	gogl.Clear(uint32(mask))
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	gogl.ClearColor(red, green, blue, alpha)
}

func (f *Functions) CompileShader(s gl.Shader) {
	gogl.CompileShader(uint32(s.V))
}

func (f *Functions) CreateBuffer() gl.Buffer {
	var buf uint32
	gogl.GenBuffers(1, &buf)
	return gl.Buffer{V: uint(buf)}
}

func (f *Functions) CreateProgram() gl.Program {
	return gl.Program{V: uint(gogl.CreateProgram())}
}

func (f *Functions) CreateShader(ty gl.Enum) gl.Shader {
	return gl.Shader{V: uint(gogl.CreateShader(uint32(ty)))}
}

func (f *Functions) DrawArrays(mode gl.Enum, first, count int) {
	gogl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) EnableVertexAttribArray(a gl.Attrib) {
	gogl.EnableVertexAttribArray(uint32(a))
}

func (f *Functions) GetProgrami(p gl.Program, pname gl.Enum) int {
	var i int32
	gogl.GetProgramiv(uint32(p.V), uint32(pname), &i)
	return int(i)
}

func (f *Functions) GetProgramInfoLog(p gl.Program) string {
	var logLength int32
	gogl.GetProgramiv(uint32(p.V), gogl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gogl.GetProgramInfoLog(uint32(p.V), logLength, nil, gogl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (f *Functions) GetShaderi(s gl.Shader, pname gl.Enum) int {
	var i int32
	gogl.GetShaderiv(uint32(s.V), uint32(pname), &i)
	return int(i)
}

func (f *Functions) GetShaderInfoLog(s gl.Shader) string {
	var logLength int32
	gogl.GetShaderiv(uint32(s.V), gogl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gogl.GetShaderInfoLog(uint32(s.V), logLength, nil, gogl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (f *Functions) GetString(pname gl.Enum) string {
	return gogl.GoStr(gogl.GetString(uint32(pname)))
}

func (f *Functions) LinkProgram(p gl.Program) {
	gogl.LinkProgram(uint32(p.V))
}

func (f *Functions) ShaderSource(s gl.Shader, src string) {
	csources, free := gogl.Strs(src + "\x00")
	gogl.ShaderSource(uint32(s.V), 1, csources, nil)
	free()
}

func (f *Functions) UseProgram(p gl.Program) {
	gogl.UseProgram(uint32(p.V))
}

func (f *Functions) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	gogl.VertexAttribPointer(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), gogl.PtrOffset(offset))
}
