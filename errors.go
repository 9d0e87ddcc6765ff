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

import "errors"

// Sentinel errors returned by Stream and RingBuffer operations. They name a
// kind, not a type: callers compare with errors.Is.
var (
	// ErrInvalidInput covers zero-length I/O and contradictory stream
	// configuration (overwrite combined with block_write).
	ErrInvalidInput = errors.New("wbfm: invalid input")

	// ErrWouldBlock is returned by a non-blocking operation against an
	// empty (read) or full (write) stream.
	ErrWouldBlock = errors.New("wbfm: would block")

	// ErrClosed is returned by a write or drain against a closed writer
	// endpoint, or by a write or drain that was waiting when the reader
	// endpoint closed.
	ErrClosed = errors.New("wbfm: closed")

	// ErrDriver wraps an opaque hardware or audio driver failure,
	// propagated unchanged from the adapter that produced it.
	ErrDriver = errors.New("wbfm: driver error")

	// ErrFormat covers WAV codec errors and channel-count mismatches.
	ErrFormat = errors.New("wbfm: format error")
)

// vim: foldmethod=marker
