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
	"math/cmplx"
)

// FMDemod is a quadrature FM discriminator: per input sample it computes
// the phase of the product of the previous sample's conjugate and the
// current sample, scaled to Hz of deviation.
//
//	y[n] = arg(conj(z[n-1]) * z[n]) * R / (2*pi*Delta)
//
// Grounded on teabreakninja-go-iq-decoder's Demodulator.Process
// (cmplx.Phase(conj(prev)*current)).
type FMDemod struct {
	rate  float64
	delta float64
	prev  complex64
}

// NewFMDemod constructs a discriminator for input sample rate R Hz and
// peak deviation delta Hz. The previous-sample state is initialized to
// 1+0j so the first output is simply the phase of the first input sample.
func NewFMDemod(rate, delta float64) *FMDemod {
	return &FMDemod{rate: rate, delta: delta, prev: complex(1, 0)}
}

// Process writes one output sample per input sample; the previous-sample
// state persists across calls, so a call with zero input samples simply
// emits nothing.
func (d *FMDemod) Process(dst *[]float32, src []complex64) {
	out := (*dst)[:0]
	scale := float32(d.rate / (2 * math.Pi * d.delta))
	for _, z := range src {
		phase := cmplx.Phase(cmplx.Conj(complex128(d.prev)) * complex128(z))
		out = append(out, float32(phase)*scale)
		d.prev = z
	}
	*dst = out
}

// vim: foldmethod=marker
