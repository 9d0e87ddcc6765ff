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

import "github.com/wbfm-go/wbfm"

// Resampler is a polyphase rational resampler converting between input
// rate S_in and output rate S_out via integer upsample/downsample factors
// U/D (in lowest terms). It is equivalent to upsample-by-U, low-pass at
// min(1/(2U), 1/(2D)), downsample-by-D, but implemented without ever
// materializing the upsampled stream.
type Resampler[T wbfm.Sample] struct {
	u, d   int
	phases [][]T // U phases, each of length L
	length int   // L = ceil(N/U)

	state []T // ring of the last L input samples, state[0] = most recent
	p     int // phase accumulator, 0 <= p < D on entry to each input sample
}

// NewResamplerReal constructs a real-sample Resampler for rate conversion
// sIn -> sOut using n prototype taps.
func NewResamplerReal(sIn, sOut, n int) *Resampler[float32] {
	u, d := reduce(sIn, sOut)
	fc := 0.5 / float64(maxInt(u, d))
	proto := LowpassTaps(fc, n)
	for i := range proto {
		proto[i] *= float32(u)
	}
	return newResampler(u, d, proto)
}

// NewResamplerComplex constructs a complex-sample Resampler for rate
// conversion sIn -> sOut using n prototype taps.
func NewResamplerComplex(sIn, sOut, n int) *Resampler[complex64] {
	u, d := reduce(sIn, sOut)
	fc := 0.5 / float64(maxInt(u, d))
	proto := LowpassTaps(fc, n)
	for i := range proto {
		proto[i] *= float32(u)
	}
	return newResampler(u, d, ComplexTaps(proto))
}

func newResampler[T wbfm.Sample](u, d int, proto []T) *Resampler[T] {
	n := len(proto)
	l := (n + u - 1) / u
	phases := make([][]T, u)
	for ph := 0; ph < u; ph++ {
		phases[ph] = make([]T, l)
		for m := 0; m < l; m++ {
			idx := m*u + ph
			if idx < n {
				phases[ph][m] = proto[idx]
			}
		}
	}
	return &Resampler[T]{
		u:      u,
		d:      d,
		phases: phases,
		length: l,
		state:  make([]T, l),
	}
}

func reduce(a, b int) (u, d int) {
	g := gcd(a, b)
	return b / g, a / g
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Ratio returns the resampler's U, D factors.
func (r *Resampler[T]) Ratio() (u, d int) { return r.u, r.d }

// Process pushes each input sample through the polyphase bank, emitting
// zero or more output samples per input as the phase accumulator crosses
// U. *dst is reused/grown as needed.
func (r *Resampler[T]) Process(dst *[]T, src []T) {
	out := (*dst)[:0]
	l := r.length
	for _, x := range src {
		// push x onto the front of the state ring; oldest falls off the back
		copy(r.state[1:], r.state[:l-1])
		r.state[0] = x

		for r.p < r.u {
			var acc T
			phase := r.phases[r.p]
			for m := 0; m < l; m++ {
				acc = addT(acc, mulScale(r.state[m], phase[m]))
			}
			out = append(out, acc)
			r.p += r.d
		}
		r.p -= r.u
	}
	*dst = out
}

// vim: foldmethod=marker
