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

// FIR is a finite-impulse-response filter over real float32 or complex64
// samples, with a circular history buffer and the canonical convolution
// index order (confirmed against original_source/src/block.rs's
// FIRFilter): hist[(index + K - k) % K].
type FIR[T wbfm.Sample] struct {
	taps []T
	hist []T
	i    int
}

// NewFIR constructs a FIR filter owning a copy of taps, with zero-
// initialized history of the same length.
func NewFIR[T wbfm.Sample](taps []T) *FIR[T] {
	f := &FIR[T]{
		taps: append([]T(nil), taps...),
		hist: make([]T, len(taps)),
	}
	return f
}

// NumTaps returns K, the filter order.
func (f *FIR[T]) NumTaps() int { return len(f.taps) }

// Process writes one output sample per input sample into *dst, which is
// grown or reused from its existing backing array.
func (f *FIR[T]) Process(dst *[]T, src []T) {
	out := (*dst)[:0]
	k := len(f.taps)
	for _, x := range src {
		f.hist[f.i] = x

		var acc T
		for tap := 0; tap < k; tap++ {
			idx := (f.i + k - tap) % k
			acc = addT(acc, mulScale(f.hist[idx], f.taps[tap]))
		}
		out = append(out, acc)

		f.i = (f.i + 1) % k
	}
	*dst = out
}

// addT and mulScale implement add and multiply over the Sample constraint,
// specialized via a type switch rather than an operator-overload interface,
// since Go generics do not support arithmetic operators directly on
// type-parameterized values.
func addT[T wbfm.Sample](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		return any(av + any(b).(float32)).(T)
	case complex64:
		return any(av + any(b).(complex64)).(T)
	default:
		panic("block: unsupported sample type")
	}
}

func mulScale[T wbfm.Sample](hist, tap T) T {
	switch hv := any(hist).(type) {
	case float32:
		return any(hv * any(tap).(float32)).(T)
	case complex64:
		return any(hv * any(tap).(complex64)).(T)
	default:
		panic("block: unsupported sample type")
	}
}

// vim: foldmethod=marker
