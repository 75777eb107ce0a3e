// SPDX-License-Identifier: Unlicense OR MIT

// Package gl holds the OpenGL ES 2 / WebGL 1 subset used to
// draw a triangle, together with the handle types shared by the
// browser and native backends.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ARRAY_BUFFER     = 0x8892
	COLOR_BUFFER_BIT = 0x4000
	COMPILE_STATUS   = 0x8b81
	FALSE            = 0
	FLOAT            = 0x1406
	FRAGMENT_SHADER  = 0x8b30
	INFO_LOG_LENGTH  = 0x8B84
	LINK_STATUS      = 0x8b82
	RENDERER         = 0x1F01
	STATIC_DRAW      = 0x88e4
	TRIANGLES        = 0x4
	TRUE             = 1
	VERSION          = 0x1f02
	VERTEX_SHADER    = 0x8b31
)
