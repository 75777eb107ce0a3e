// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesView(t *testing.T) {
	v := []float32{-0.5, 0.5, 1}
	b := BytesView(v)
	require.Len(t, b, 12)
	for i, f := range v {
		got := math.Float32frombits(binary.NativeEndian.Uint32(b[i*4:]))
		assert.Equal(t, f, got, "element %d", i)
	}
	assert.Nil(t, BytesView(nil))
}

func TestParseGLVersion(t *testing.T) {
	tests := []struct {
		in   string
		want [2]int
	}{
		{"OpenGL ES 3.0 Mesa 20.0.8", [2]int{3, 0}},
		{"WebGL 1.0 (OpenGL ES 2.0 Chromium)", [2]int{2, 0}},
		{"2.1 Metal - 76.3", [2]int{2, 1}},
	}
	for _, test := range tests {
		got, err := ParseGLVersion(test.in)
		if assert.NoError(t, err, test.in) {
			assert.Equal(t, test.want, got, test.in)
		}
	}
	_, err := ParseGLVersion("unknown")
	assert.Error(t, err)
}
