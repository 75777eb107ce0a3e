// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/webgl-go/hellotriangle/internal/gl"
)

// DefaultID is the element id used when the host page names none.
const DefaultID = "canvas"

// CreateContext returns a WebGL 1 context for the canvas element
// with the given id.
func CreateContext(id string) (gl.Context, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return gl.Context{}, errors.New("canvas: no document")
	}
	cnv := doc.Call("getElementById", id)
	if cnv.IsNull() {
		return gl.Context{}, fmt.Errorf("canvas: no element with id %q", id)
	}
	if cnv.Get("getContext").IsUndefined() {
		return gl.Context{}, fmt.Errorf("canvas: element %q is not a canvas", id)
	}
	ctx := cnv.Call("getContext", "webgl")
	if ctx.IsNull() {
		return gl.Context{}, errors.New("canvas: webgl is not supported")
	}
	return gl.Context(ctx), nil
}
