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

// TestMixerBitExact mixes a real sine at frequency f down by Delta=-f (i.e.
// ProcessReal's fixed downshift by f), low-pass filters the result at a
// cutoff below f to strip the 2f image, and checks the surviving complex DC
// component has magnitude amp/2, the expected scaling of a single real
// sinusoid's positive-frequency image after a downshift-and-mix.
func TestMixerBitExact(t *testing.T) {
	const rate = 48000.0
	const f = 4000.0
	const amp = 0.8

	n := 4096
	sine := make([]float32, n)
	for i := range sine {
		sine[i] = amp * float32(math.Sin(2*math.Pi*f*float64(i)/rate))
	}

	mx := NewMixer(rate, f)
	var mixed []complex64
	mx.ProcessReal(&mixed, sine)

	const cutoff = 500.0 / rate // well below f, strips the 2f image
	const taps = 201
	fir := NewFIR(ComplexTaps(LowpassTaps(cutoff, taps)))
	var filtered []complex64
	fir.Process(&filtered, mixed)

	// Skip the FIR's group delay plus a settling margin.
	skip := taps/2 + 50
	var sumRe, sumIm float64
	count := 0
	for _, z := range filtered[skip:] {
		sumRe += float64(real(z))
		sumIm += float64(imag(z))
		count++
	}
	meanRe := sumRe / float64(count)
	meanIm := sumIm / float64(count)
	mag := math.Hypot(meanRe, meanIm)

	assert.InDelta(t, amp/2, mag, 1e-3)
}

// vim: foldmethod=marker
