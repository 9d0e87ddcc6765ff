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

// BufferBank holds two growable buffers and alternates which is "src" and
// which is "dst" on each call to Swap. The pipeline thread ping-pongs a
// block's input/output between bank buffers so each filter reads from one
// side while writing the other, at zero allocation per frame after
// warm-up.
//
// Grounded on original_source/src/util.rs's BufferBank<T> (and its
// near-duplicate in block.rs), whose swap() alternates (&mut buff0, &mut
// buff1) / (&mut buff1, &mut buff0) on a direction bit.
type BufferBank[T any] struct {
	a, b    []T
	towardB bool
}

// NewBufferBank constructs a bank with both sides pre-sized to capacity
// (grown lazily thereafter by append, same as any other block's dst slice,
// if a caller ever produces more than capacity items in one step).
func NewBufferBank[T any](capacity int) *BufferBank[T] {
	return &BufferBank[T]{
		a: make([]T, 0, capacity),
		b: make([]T, 0, capacity),
	}
}

// Swap returns (src, dst) with identities alternating between successive
// calls: src is the buffer written by the previous step (readable), dst is
// the other buffer (writable, contents unspecified — callers must fully
// overwrite it, truncating first if producing variable-length output).
func (bk *BufferBank[T]) Swap() (src, dst *[]T) {
	bk.towardB = !bk.towardB
	if bk.towardB {
		return &bk.a, &bk.b
	}
	return &bk.b, &bk.a
}

// vim: foldmethod=marker
