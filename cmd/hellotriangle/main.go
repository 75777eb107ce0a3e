// SPDX-License-Identifier: Unlicense OR MIT

// Command hellotriangle draws a single white triangle. Built with
// GOOS=js GOARCH=wasm it exports drawTriangle to the host page; on
// desktop it opens a GLFW window and draws the same frame.
package main
