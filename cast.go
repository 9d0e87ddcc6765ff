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

package wbfm

// ReadIQ8 drains a Stream[int8] of interleaved signed-byte IQ pairs into a
// []complex64 of normalized complex samples, converting signed-byte IQ to
// normalized f32 complex with a single copy on the hot path: it borrows the
// ring's readable region directly via Peek instead of staging through an
// intermediate buffer, and releases only the bytes it actually consumed.
//
// dst's length, not cap, determines how many complex samples (i.e. how many
// int8 pairs) are requested; it returns the number of complex samples
// actually written, which may be less than len(dst) if fewer are available
// yet (non-blocking) or equal once EOF/blocking has supplied them. If the
// view holds an odd number of bytes, the trailing byte is left unconsumed
// in the ring rather than paired against a future write.
func ReadIQ8(r *StreamReader[int8], dst []complex64) (int, error) {
	view, release, err := r.Peek()
	if err != nil {
		return 0, err
	}

	avail := view.Len()
	pairs := avail / 2
	if pairs > len(dst) {
		pairs = len(dst)
	}
	for i := 0; i < pairs; i++ {
		re := float32(view.At(2*i)) / 128
		im := float32(view.At(2*i+1)) / 128
		dst[i] = complex(re, im)
	}
	release(pairs * 2)
	return pairs, nil
}

// vim: foldmethod=marker
