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

// Package wbfm implements the streaming core of a wide-band FM receive
// pipeline: a producer/consumer ring-buffered stream that decouples
// hardware callback threads from the processing thread, and the
// composition primitives (buffer banks, the Source/Filter/Sink roles, the
// Sample numeric constraint) used to wire DSP blocks together without
// per-frame allocation.
//
// Subpackages provide the DSP blocks (wbfm/block), the hardware and audio
// adapters (wbfm/hackrf, wbfm/wav, wbfm/audio), and graph assembly
// (wbfm/receiver).
package wbfm

// vim: foldmethod=marker
