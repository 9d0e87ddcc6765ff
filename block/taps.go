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

// Package block implements the streaming DSP blocks of the FM receive
// graph: frequency translation (Mixer), FIR filtering, polyphase rational
// resampling, quadrature FM discrimination, and single-pole de-emphasis.
// Every block is single-threaded and synchronous; none allocates on its
// hot path after construction and none ever fails.
package block

import "math"

// LowpassTaps generates N windowed-sinc low-pass filter taps at normalized
// cutoff c (cycles/sample, 0<c<0.5), windowed with a Hamming window.
//
//	taps[n] = sinc(2c*(n - M/2)) * (0.54 - 0.46*cos(2*pi*n/M)), M = N-1
//
// The taps are then scaled so that they sum to 1 (unity gain at DC).
//
// Grounded on original_source/src/util.rs's lowpass_taps/sinc and
// block.rs's lowpass_real (both windowed-sinc with a Hamming window). The
// prototype's zero-centered `2*fc` tap differs from the formula above by a
// constant factor, which the DC normalization removes — see DESIGN.md.
func LowpassTaps(c float64, n int) []float32 {
	if n <= 1 {
		taps := make([]float32, n)
		for i := range taps {
			taps[i] = 1
		}
		return taps
	}
	m := float64(n - 1)
	raw := make([]float64, n)
	var sum float64
	for i := 0; i < n; i++ {
		x := float64(i) - m/2
		s := sinc(2 * c * x)
		w := 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/m)
		raw[i] = s * w
		sum += raw[i]
	}
	taps := make([]float32, n)
	for i, v := range raw {
		taps[i] = float32(v / sum)
	}
	return taps
}

// sinc is the normalized sinc function: sinc(0)=1, sinc(x)=sin(pi*x)/(pi*x)
// otherwise.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// ComplexTaps embeds real-valued taps into the real part of a complex64
// slice with zero imaginary, for filters operating on complex samples.
func ComplexTaps(real []float32) []complex64 {
	out := make([]complex64, len(real))
	for i, x := range real {
		out[i] = complex(x, 0)
	}
	return out
}

// vim: foldmethod=marker
