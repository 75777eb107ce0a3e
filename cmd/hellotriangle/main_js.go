// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"log"
	"syscall/js"

	"github.com/webgl-go/hellotriangle/internal/canvas"
	"github.com/webgl-go/hellotriangle/internal/gl"
	"github.com/webgl-go/hellotriangle/triangle"
)

func main() {
	js.Global().Set("drawTriangle", js.FuncOf(drawTriangle))
	// Keep the exported function alive for the host page.
	select {}
}

// drawTriangle is called by the host page as drawTriangle([canvasID]).
// It returns null on success and an Error carrying the failure
// message otherwise; panicking here would stop the Go program.
func drawTriangle(this js.Value, args []js.Value) interface{} {
	id := canvas.DefaultID
	if len(args) > 0 && args[0].Type() == js.TypeString {
		id = args[0].String()
	}
	err := triangle.Draw(func() (triangle.Functions, error) {
		ctx, err := canvas.CreateContext(id)
		if err != nil {
			return nil, err
		}
		f, err := gl.NewFunctions(ctx)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
	if err != nil {
		log.Printf("hellotriangle: %v", err)
		return js.Global().Get("Error").New(err.Error())
	}
	return js.Null()
}
