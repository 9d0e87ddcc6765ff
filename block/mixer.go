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

// Mixer performs frequency translation by a fixed shift via a running
// phase accumulator, as an oscillator multiply rather than a lookup table.
//
// The rotation direction is asymmetric between the real->complex and
// complex->complex variants, grounded in original_source/src/block.rs's
// MixerFilter: the real-input path downshifts by the shift frequency
// (multiply by e^{-j*phi}, emitting {re: i, im: -q} in the prototype's
// convention), the complex-input path upshifts (multiply by e^{+j*phi}).
// Graph assembly must preserve or compensate for this asymmetry, not "fix"
// it.
type Mixer struct {
	omega float64 // 2*pi*shift/rate, radians/sample
	phi   float64 // radians, kept in [0, 2*pi)
}

// NewMixer constructs a Mixer translating by shiftHz at sampleRate Hz.
func NewMixer(sampleRate, shiftHz float64) *Mixer {
	return &Mixer{omega: 2 * math.Pi * shiftHz / sampleRate}
}

// Reset zeroes the phase accumulator.
func (mx *Mixer) Reset() { mx.phi = 0 }

func (mx *Mixer) step() (sinPhi, cosPhi float64) {
	sinPhi, cosPhi = math.Sincos(mx.phi)
	mx.phi += mx.omega
	mx.phi = math.Mod(mx.phi, 2*math.Pi)
	if mx.phi < 0 {
		mx.phi += 2 * math.Pi
	}
	return
}

// ProcessReal downshifts a real input by the mixer's shift frequency,
// emitting complex64 y = x * (cos(phi) - j*sin(phi)).
func (mx *Mixer) ProcessReal(dst *[]complex64, src []float32) {
	out := (*dst)[:0]
	for _, x := range src {
		s, c := mx.step()
		out = append(out, complex(float32(x)*float32(c), -float32(x)*float32(s)))
	}
	*dst = out
}

// ProcessComplex upshifts a complex input by the mixer's shift frequency,
// emitting z * (cos(phi) + j*sin(phi)).
func (mx *Mixer) ProcessComplex(dst *[]complex64, src []complex64) {
	out := (*dst)[:0]
	for _, z := range src {
		s, c := mx.step()
		rot := complex(float32(c), float32(s))
		out = append(out, z*rot)
	}
	*dst = out
}

// vim: foldmethod=marker
