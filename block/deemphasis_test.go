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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDeEmphasisPole exercises a unit step response (tau=75us, R=44100Hz
// should settle to >=0.99 within ~8ms). alpha is checked against the
// exp(-1/(R*tau)) pole formula directly — see DESIGN.md for why.
func TestDeEmphasisPole(t *testing.T) {
	const rate = 44100.0
	const tau = 75e-6

	d := NewDeEmphasis(rate, tau)
	assert.InDelta(t, math.Exp(-1/(rate*tau)), d.alpha, 1e-6)

	samples := int(0.008 * rate)
	var y float32
	for i := 0; i < samples; i++ {
		var out []float32
		d.Process(&out, []float32{1})
		y = out[0]
	}
	assert.GreaterOrEqual(t, y, float32(0.99))
}

// TestDeEmphasisDCGain is the DC-gain invariant: a constant input settles
// to y=x (gain 1 at DC).
func TestDeEmphasisDCGain(t *testing.T) {
	d := NewDeEmphasis(44100, 75e-6)
	src := make([]float32, 10000)
	for i := range src {
		src[i] = 0.37
	}
	var out []float32
	d.Process(&out, src)
	assert.InDelta(t, 0.37, out[len(out)-1], 1e-3)
}

func TestDeEmphasisAlphaFormula(t *testing.T) {
	rate, tau := 48000.0, 50e-6
	d := NewDeEmphasis(rate, tau)
	want := float32(math.Exp(-1 / (rate * tau)))
	assert.InDelta(t, want, d.alpha, 1e-9)
}

// vim: foldmethod=marker
