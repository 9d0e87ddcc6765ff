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

import (
	"io"
	"sync"
)

// Stream is a single-producer/single-consumer bounded transport built on a
// RingBuffer, with a configurable blocking policy at each end. It bridges a
// driver callback thread (producing) to the pipeline thread (consuming), or
// the pipeline thread to an audio-driver callback (consuming).
//
// Grounded on original_source/src/streambuf.rs's StreamBuf/StreamReader/
// StreamWriter, which uses the same mutex+condvar design; hz.tools/sdr's
// channel-based pipe.go is not used here because a bounded transport with
// peek/consume borrowing and an explicit blocking policy can't be
// expressed directly over a channel.
type Stream[T any] struct {
	mu   sync.Mutex
	cond *sync.Cond
	ring *RingBuffer[T]

	blockRead  bool
	blockWrite bool

	readClosed  bool
	writeClosed bool
}

// NewStream constructs a linked (reader, writer) pair sharing one Stream.
// overwrite and blockWrite together select the writer's full-buffer policy;
// overwrite combined with blockWrite is rejected as contradictory (overwrite
// drops the oldest item to accept a new one, so blocking never applies).
func NewStream[T any](capacity int, overwrite, blockWrite, blockRead bool) (*StreamReader[T], *StreamWriter[T], error) {
	if overwrite && blockWrite {
		return nil, nil, ErrInvalidInput
	}
	s := &Stream[T]{
		ring:       NewRingBuffer[T](capacity, overwrite),
		blockRead:  blockRead,
		blockWrite: blockWrite,
	}
	s.cond = sync.NewCond(&s.mu)
	return &StreamReader[T]{s: s}, &StreamWriter[T]{s: s}, nil
}

// StreamReader is the read endpoint of a Stream. Exactly one exists per
// Stream.
type StreamReader[T any] struct {
	s      *Stream[T]
	closed bool
}

// StreamWriter is the write endpoint of a Stream. Exactly one exists per
// Stream.
type StreamWriter[T any] struct {
	s      *Stream[T]
	closed bool
}

// Get reads up to len(dst) items into dst, returning the count read.
//
// If the stream blocks on read, Get waits while the ring is empty and the
// writer is still open. When the writer has closed and the ring has
// drained, Get returns (0, io.EOF) — the Go idiom for end-of-stream. A
// non-blocking reader against an empty, still-open stream returns
// ErrWouldBlock. An empty dst is ErrInvalidInput.
func (r *StreamReader[T]) Get(dst []T) (int, error) {
	if len(dst) == 0 {
		return 0, ErrInvalidInput
	}
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.ring.Len() == 0 {
		if s.writeClosed {
			return 0, io.EOF
		}
		if !s.blockRead {
			return 0, ErrWouldBlock
		}
		s.cond.Wait()
	}

	n := s.ring.Get(dst)
	if n > 0 {
		s.cond.Broadcast()
	}
	return n, nil
}

// Peek waits (per the same blocking policy as Get) for at least one
// readable item, then returns up to two contiguous borrowed runs covering
// the readable region of the ring, without copying, while still holding
// the stream's mutex. The caller must call the returned release func with
// the number of items it actually consumed before any other stream
// operation is attempted from the same goroutine, and must not block on
// another stream while the view is live — doing so risks deadlock, since
// the lock is held for the duration.
//
// Peek follows Get's blocking/EOF contract exactly: a non-blocking reader
// against an empty, still-open stream returns ErrWouldBlock; once the
// writer has closed and the ring has drained, it returns io.EOF. On either
// error the lock has already been released and release is a no-op.
func (r *StreamReader[T]) Peek() (view PeekView[T], release func(consumed int), err error) {
	s := r.s
	s.mu.Lock()

	for s.ring.Len() == 0 {
		if s.writeClosed {
			s.mu.Unlock()
			return PeekView[T]{}, noopRelease, io.EOF
		}
		if !s.blockRead {
			s.mu.Unlock()
			return PeekView[T]{}, noopRelease, ErrWouldBlock
		}
		s.cond.Wait()
	}

	first, second := s.ring.peekRuns()
	released := false
	release = func(consumed int) {
		if released {
			return
		}
		released = true
		if consumed > 0 {
			s.ring.discard(consumed)
			s.cond.Broadcast()
		}
		s.mu.Unlock()
	}
	return PeekView[T]{First: first, Second: second}, release, nil
}

func noopRelease(int) {}

// PeekView is a wrap-safe borrowed view over a Stream's readable region.
type PeekView[T any] struct {
	First  []T
	Second []T
}

// Len returns the total number of items visible in the view.
func (v PeekView[T]) Len() int { return len(v.First) + len(v.Second) }

// At returns the i'th item of the view, addressing across the First/Second
// split transparently.
func (v PeekView[T]) At(i int) T {
	if i < len(v.First) {
		return v.First[i]
	}
	return v.Second[i-len(v.First)]
}

// Close releases the endpoint, marking the stream's read side closed and
// waking any blocked writer so it can observe Closed/EOF convergence.
func (r *StreamReader[T]) Close() error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	s.readClosed = true
	s.cond.Broadcast()
	return nil
}

// Put writes up to len(src) items, returning the count accepted.
//
// A write against a closed writer endpoint is a programmer error and
// returns ErrClosed. If blockWrite is set and the ring is full, Put waits,
// returning ErrClosed if either endpoint closes meanwhile;
// a non-blocking, non-overwrite writer against a full ring returns
// ErrWouldBlock. In overwrite mode Put always accepts all of src and
// returns len(src).
func (w *StreamWriter[T]) Put(src []T) (int, error) {
	if len(src) == 0 {
		return 0, ErrInvalidInput
	}
	s := w.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeClosed {
		return 0, ErrClosed
	}

	for !s.ring.overwrite && s.ring.Len() == s.ring.Capacity() {
		if !s.blockWrite {
			return 0, ErrWouldBlock
		}
		if s.readClosed {
			return 0, ErrClosed
		}
		s.cond.Wait()
		if s.writeClosed {
			return 0, ErrClosed
		}
	}

	n := s.ring.Put(src)
	if n > 0 {
		s.cond.Broadcast()
	}
	return n, nil
}

// Drain blocks until the ring is empty, if blockWrite is set; otherwise it
// returns ErrWouldBlock immediately when the ring is non-empty. A drain
// against a closed writer endpoint, or one waiting when the reader
// closes, returns ErrClosed.
func (w *StreamWriter[T]) Drain() error {
	s := w.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeClosed {
		return ErrClosed
	}
	for s.ring.Len() != 0 {
		if !s.blockWrite {
			return ErrWouldBlock
		}
		if s.readClosed {
			return ErrClosed
		}
		s.cond.Wait()
	}
	return nil
}

// Close releases the endpoint, marking the stream's write side closed and
// waking any blocked reader so it can observe EOF once the ring drains.
func (w *StreamWriter[T]) Close() error {
	s := w.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	s.writeClosed = true
	s.cond.Broadcast()
	return nil
}

// vim: foldmethod=marker
