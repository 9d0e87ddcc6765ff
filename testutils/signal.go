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

// Package testutils provides synthetic signal generators used only by this
// module's own tests — a continuous-wave tone source and an FM-modulated
// complex IQ generator — so DSP blocks and graph assembly can be exercised
// without a HackRF attached.
//
// Grounded on hz.tools/sdr's testutils/cw.go (a continuous-wave synthetic
// Reader used by that repo's own stream tests), reimplemented against
// this module's float32/complex64 sample types rather than its
// multi-format sdr.Samples.
package testutils

import "math"

// Tone generates n samples of a real sine wave at freqHz against sampleRate,
// starting at phase 0.
func Tone(freqHz, sampleRate float64, n int) []float32 {
	out := make([]float32, n)
	w := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(math.Sin(w * float64(i)))
	}
	return out
}

// FMTone generates n complex samples of a carrier at carrierHz frequency-
// modulated by a single audio tone at msgHz with peak deviation deltaHz,
// sampled at sampleRate: exp(j*2*pi*(fc/R)*n + j*k*cumsum(m[n])/R).
func FMTone(carrierHz, msgHz, deltaHz, sampleRate float64, n int) (sig []complex64, msg []float64) {
	sig = make([]complex64, n)
	msg = make([]float64, n)
	k := 2 * math.Pi * deltaHz
	var cum float64
	for i := 0; i < n; i++ {
		m := math.Sin(2 * math.Pi * msgHz * float64(i) / sampleRate)
		msg[i] = m
		cum += m
		phase := 2*math.Pi*(carrierHz/sampleRate)*float64(i) + k*cum/sampleRate
		sig[i] = complex64(complex(math.Cos(phase), math.Sin(phase)))
	}
	return sig, msg
}

// vim: foldmethod=marker
