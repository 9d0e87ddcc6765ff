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

package wav

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/wbfm-go/wbfm"
)

var _ wbfm.Sink[float32] = (*Sink)(nil)

// Sink writes recovered audio (or raw IQ capture) to a 16-bit PCM WAV file.
// It accepts f32 (mono) or complex (stereo), scaling f32 in [-1,+1] by
// i16::MAX.
//
// Grounded on original_source/src/block.rs's WavSink<D: Write+Seek> (hound
// crate), reimplemented over go-audio/wav since the module has no
// WAV-writing dependency of its own.
type Sink struct {
	enc      *wav.Encoder
	f        *os.File
	channels int
}

// CreateRealSink creates path as a mono 16-bit PCM WAV file at the given
// sample rate.
func CreateRealSink(path string, sampleRate int) (*Sink, error) {
	return createSink(path, sampleRate, 1)
}

// CreateComplexSink creates path as a stereo 16-bit PCM WAV file (I,Q) at
// the given sample rate.
func CreateComplexSink(path string, sampleRate int) (*Sink, error) {
	return createSink(path, sampleRate, 2)
}

func createSink(path string, sampleRate, channels int) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("wbfm/wav: %w", err)
	}
	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	return &Sink{enc: enc, f: f, channels: channels}, nil
}

func toI16(x float32) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int(math.Round(float64(x) * float64(math.MaxInt16)))
}

// Write implements wbfm.Sink[float32] for a mono sink.
func (s *Sink) Write(src []float32) error {
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: s.channels, SampleRate: int(s.enc.SampleRate)},
		Data:   make([]int, len(src)),
	}
	for i, x := range src {
		buf.Data[i] = toI16(x)
	}
	return s.enc.Write(buf)
}

// WriteComplex implements wbfm.Sink[complex64] for a stereo IQ sink.
func (s *Sink) WriteComplex(src []complex64) error {
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: s.channels, SampleRate: int(s.enc.SampleRate)},
		Data:   make([]int, len(src)*2),
	}
	for i, z := range src {
		buf.Data[2*i] = toI16(real(z))
		buf.Data[2*i+1] = toI16(imag(z))
	}
	return s.enc.Write(buf)
}

// Close flushes the WAV header and closes the file.
func (s *Sink) Close() error {
	if err := s.enc.Close(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}

// vim: foldmethod=marker
