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

// Package wav implements WAV codec source and sink adapters: a file IQ
// source replaying mono (real) or stereo (complex I/Q) capture files
// through the same graph used for live hardware, and a WAV sink for
// off-line capture of either sample type.
//
// Grounded on teabreakninja-go-iq-decoder's cmd/go-audio-mini-project/
// main.go WAV ingestion path, rebuilt against go-audio/wav + go-audio/audio
// rather than that program's inline decode loop.
package wav

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/wbfm-go/wbfm"
)

var (
	_ wbfm.Source[float32]   = (*RealSource)(nil)
	_ wbfm.Source[complex64] = (*ComplexSource)(nil)
)

// RealSource reads a mono WAV file as a stream of normalized real float32
// samples, normalized by 2^bits_per_sample - 1.
type RealSource struct {
	dec *wav.Decoder
	f   io.ReadCloser
}

// ComplexSource reads a stereo WAV file as a stream of complex64 samples,
// taking (left, right) channels as (I, Q).
type ComplexSource struct {
	dec *wav.Decoder
	f   io.ReadCloser
}

// OpenRealSource opens path as a mono WAV IQ-free (real) source.
func OpenRealSource(path string) (*RealSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wbfm/wav: %w", err)
	}
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		f.Close()
		return nil, fmt.Errorf("wbfm/wav: %w: not a valid WAV file", wbfm.ErrFormat)
	}
	if dec.NumChans != 1 {
		f.Close()
		return nil, fmt.Errorf("wbfm/wav: %w: want mono, got %d channels", wbfm.ErrFormat, dec.NumChans)
	}
	return &RealSource{dec: dec, f: f}, nil
}

// OpenComplexSource opens path as a stereo WAV IQ source, (L,R) = (I,Q).
func OpenComplexSource(path string) (*ComplexSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wbfm/wav: %w", err)
	}
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		f.Close()
		return nil, fmt.Errorf("wbfm/wav: %w: not a valid WAV file", wbfm.ErrFormat)
	}
	if dec.NumChans != 2 {
		f.Close()
		return nil, fmt.Errorf("wbfm/wav: %w: want stereo, got %d channels", wbfm.ErrFormat, dec.NumChans)
	}
	return &ComplexSource{dec: dec, f: f}, nil
}

// SampleRate returns the file's declared sample rate.
func (s *RealSource) SampleRate() uint32 { return s.dec.SampleRate }

// SampleRate returns the file's declared sample rate.
func (s *ComplexSource) SampleRate() uint32 { return s.dec.SampleRate }

func normalize(v, bitDepth int) float32 {
	max := float32((int64(1) << uint(bitDepth-1)) - 1)
	return float32(v) / max
}

// Read implements wbfm.Source[float32]: it fills dst with up to len(dst)
// normalized samples, returning a short or empty count on EOF.
func (s *RealSource) Read(dst []float32) (int, error) {
	buf := &audio.IntBuffer{Format: &audio.Format{NumChannels: 1, SampleRate: int(s.dec.SampleRate)}, Data: make([]int, len(dst))}
	n, err := s.dec.PCMBuffer(buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("wbfm/wav: %w: %v", wbfm.ErrFormat, err)
	}
	for i := 0; i < n; i++ {
		dst[i] = normalize(buf.Data[i], int(s.dec.BitDepth))
	}
	return n, nil
}

// Read implements wbfm.Source[complex64]: each output sample consumes one
// stereo frame, (L,R) mapped to (I,Q).
func (s *ComplexSource) Read(dst []complex64) (int, error) {
	buf := &audio.IntBuffer{Format: &audio.Format{NumChannels: 2, SampleRate: int(s.dec.SampleRate)}, Data: make([]int, len(dst)*2)}
	n, err := s.dec.PCMBuffer(buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("wbfm/wav: %w: %v", wbfm.ErrFormat, err)
	}
	frames := n / 2
	for i := 0; i < frames; i++ {
		re := normalize(buf.Data[2*i], int(s.dec.BitDepth))
		im := normalize(buf.Data[2*i+1], int(s.dec.BitDepth))
		dst[i] = complex(re, im)
	}
	return frames, nil
}

// Close releases the underlying file.
func (s *RealSource) Close() error { return s.f.Close() }

// Close releases the underlying file.
func (s *ComplexSource) Close() error { return s.f.Close() }

// vim: foldmethod=marker
