// SPDX-License-Identifier: Unlicense OR MIT

// Package canvas obtains a WebGL context from a canvas element of
// the host page. It is only available when GOOS=js.
package canvas
