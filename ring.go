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

// RingBuffer is a fixed-capacity bounded queue over a contiguous backing
// array. It is not safe for concurrent use by itself; Stream wraps one with
// a mutex and condition variable to provide the SPSC transport.
//
// Grounded on original_source/src/ringbuf.rs's RingBuf<T>, generalized from
// bytes to any trivially-copyable sample type.
type RingBuffer[T any] struct {
	buf       []T
	r, w, s   int // read index, write index, current size
	overwrite bool
}

// NewRingBuffer constructs a RingBuffer of the given capacity. overwrite
// selects the put() behavior on a full buffer: true drops the oldest items
// to make room, false truncates the write.
func NewRingBuffer[T any](capacity int, overwrite bool) *RingBuffer[T] {
	if capacity <= 0 {
		panic("wbfm: ring buffer capacity must be positive")
	}
	return &RingBuffer[T]{
		buf:       make([]T, capacity),
		overwrite: overwrite,
	}
}

// Len returns the number of items currently held.
func (rb *RingBuffer[T]) Len() int { return rb.s }

// Capacity returns the fixed backing size C.
func (rb *RingBuffer[T]) Capacity() int { return len(rb.buf) }

// Put copies src into the ring. In non-overwrite mode it writes at most
// C-Len() items and returns the count actually written. In overwrite mode it
// writes all of src unconditionally, advancing the read pointer past any
// items it displaces, and always returns len(src).
//
// An empty src is a no-op that returns 0; higher layers (Stream) treat a
// zero-length request as caller error, not a RingBuffer concern.
func (rb *RingBuffer[T]) Put(src []T) int {
	if len(src) == 0 {
		return 0
	}
	c := len(rb.buf)

	if rb.overwrite {
		requested := len(src)
		write := src
		if len(write) > c {
			// Only the last C items can possibly survive; skip the rest.
			write = write[len(write)-c:]
		}
		n := len(write)
		rb.writeAt(rb.w, write)
		rb.w = (rb.w + n) % c
		rb.s += n
		if rb.s > c {
			drop := rb.s - c
			rb.r = (rb.r + drop) % c
			rb.s = c
		}
		return requested
	}

	free := c - rb.s
	n := len(src)
	if n > free {
		n = free
	}
	if n == 0 {
		return 0
	}
	rb.writeAt(rb.w, src[:n])
	rb.w = (rb.w + n) % c
	rb.s += n
	return n
}

// writeAt copies src into buf starting at index start, wrapping at most
// once, without touching r/w/s bookkeeping.
func (rb *RingBuffer[T]) writeAt(start int, src []T) {
	c := len(rb.buf)
	n := len(src)
	first := c - start
	if first >= n {
		copy(rb.buf[start:], src)
		return
	}
	copy(rb.buf[start:], src[:first])
	copy(rb.buf[:n-first], src[first:])
}

// Get reads min(len(dst), Len()) items starting at r into dst, wrapping at
// most once, and returns the count read. An empty dst is a no-op returning
// 0.
func (rb *RingBuffer[T]) Get(dst []T) int {
	if len(dst) == 0 {
		return 0
	}
	c := len(rb.buf)
	n := len(dst)
	if n > rb.s {
		n = rb.s
	}
	if n == 0 {
		return 0
	}
	first := c - rb.r
	if first >= n {
		copy(dst[:n], rb.buf[rb.r:rb.r+n])
	} else {
		copy(dst[:first], rb.buf[rb.r:])
		copy(dst[first:n], rb.buf[:n-first])
	}
	rb.r = (rb.r + n) % c
	rb.s -= n
	return n
}

// peekRuns returns up to two contiguous slices covering the readable region
// without copying or advancing r. Used by Stream's zero-copy Peek.
func (rb *RingBuffer[T]) peekRuns() (first, second []T) {
	if rb.s == 0 {
		return nil, nil
	}
	c := len(rb.buf)
	run := c - rb.r
	if run >= rb.s {
		return rb.buf[rb.r : rb.r+rb.s], nil
	}
	return rb.buf[rb.r:c], rb.buf[:rb.s-run]
}

// discard advances r past n previously peeked items without copying.
func (rb *RingBuffer[T]) discard(n int) {
	if n > rb.s {
		n = rb.s
	}
	c := len(rb.buf)
	rb.r = (rb.r + n) % c
	rb.s -= n
}

// vim: foldmethod=marker
