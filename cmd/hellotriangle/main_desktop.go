// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/webgl-go/hellotriangle/internal/gl"
	"github.com/webgl-go/hellotriangle/internal/glfwgl"
	"github.com/webgl-go/hellotriangle/triangle"
)

var (
	width  = flag.Int("width", 640, "window width")
	height = flag.Int("height", 480, "window height")
	title  = flag.String("title", "Hello Triangle", "window title")
)

func main() {
	flag.Parse()
	// Required by the OpenGL threading model.
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()

	// The embedded shaders are GLSL 1.10 compatible.
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(*width, *height, *title, nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	err = triangle.Draw(func() (triangle.Functions, error) {
		f, err := glfwgl.NewFunctions()
		if err != nil {
			return nil, err
		}
		logVersion(f)
		return f, nil
	})
	if err != nil {
		log.Fatal(err)
	}
	window.SwapBuffers()

	for !window.ShouldClose() {
		glfw.WaitEvents()
	}
}

func logVersion(f *glfwgl.Functions) {
	glVer := f.GetString(gl.VERSION)
	ver, err := gl.ParseGLVersion(glVer)
	if err != nil {
		log.Printf("hellotriangle: %v", err)
		return
	}
	log.Printf("hellotriangle: OpenGL %d.%d (%s)", ver[0], ver[1], f.GetString(gl.RENDERER))
}
