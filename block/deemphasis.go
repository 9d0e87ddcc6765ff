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

import "math"

// DeEmphasis is a single-pole IIR low-pass shaping the post-discriminator
// audio to the broadcast pre-emphasis curve's inverse (75 microseconds in
// the Americas, 50 microseconds elsewhere).
//
//	alpha = exp(-1/(R*tau))
//	y[n]  = alpha*y[n-1] + (1-alpha)*x[n], y[-1] = 0
//
// Grounded on teabreakninja-go-iq-decoder's Deemphasis.Filter, generalized
// from its dt/(tau+dt) discretization to the exact-pole form both sources
// agree the block must realize.
type DeEmphasis struct {
	alpha float32
	y     float32
}

// NewDeEmphasis constructs a de-emphasis filter for sample rate R Hz and
// time constant tau seconds.
func NewDeEmphasis(rate, tau float64) *DeEmphasis {
	return &DeEmphasis{alpha: float32(math.Exp(-1 / (rate * tau)))}
}

// Process applies the filter across src, writing the output into *dst.
func (d *DeEmphasis) Process(dst *[]float32, src []float32) {
	out := (*dst)[:0]
	for _, x := range src {
		d.y = d.alpha*d.y + (1-d.alpha)*x
		out = append(out, d.y)
	}
	*dst = out
}

// vim: foldmethod=marker
