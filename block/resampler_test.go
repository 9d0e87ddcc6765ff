// {{{ Copyright (c) wbfm-go contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE. }}}

package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResamplerRatioReduced(t *testing.T) {
	r := NewResamplerReal(48000, 16000, 31)
	u, d := r.Ratio()
	assert.Equal(t, 1, u)
	assert.Equal(t, 3, d)
}

func TestResamplerOutputCountConverges(t *testing.T) {
	const sIn, sOut = 4000, 1000 // U=1, D=4
	r := NewResamplerReal(sIn, sOut, 63)

	src := make([]float32, 4000)
	for i := range src {
		src[i] = 1
	}
	var out []float32
	r.Process(&out, src)

	u, d := r.Ratio()
	want := len(src) * u / d
	require.InDelta(t, want, len(out), 1)
}

func TestResamplerUnityIsPlainFIR(t *testing.T) {
	r := NewResamplerReal(1000, 1000, 5)
	u, d := r.Ratio()
	require.Equal(t, 1, u)
	require.Equal(t, 1, d)

	src := []float32{1, 0, 0, 0, 0, 0, 0, 0}
	var out []float32
	r.Process(&out, src)
	assert.Len(t, out, len(src))
}

// vim: foldmethod=marker
