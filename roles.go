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

// Source produces a lazy, potentially infinite sequence of T into a
// caller-supplied buffer. Truncation policy (what to do when dst is larger
// than the data on hand) is the source's choice; Read returns the count
// actually produced.
//
// Grounded on original_source/src/traits.rs's Source<I> trait.
type Source[T any] interface {
	Read(dst []T) (int, error)
}

// Filter is a transducer: given an input slice it writes a deterministic
// output slice whose length is a function of input length, internal state,
// and block parameters. Process truncates *dst, appends the output to it
// (growing its backing array as needed), and leaves len(*dst) equal to the
// number of output samples written.
//
// Grounded on original_source/src/traits.rs's Filter<I,O> trait.
type Filter[I, O any] interface {
	Process(dst *[]O, src []I)
}

// Sink consumes O, blocking as needed to honor back-pressure.
//
// Grounded on original_source/src/traits.rs's Sink<O> trait.
type Sink[O any] interface {
	Write(src []O) error
}

// vim: foldmethod=marker
