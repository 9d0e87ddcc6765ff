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

// Package audio implements source/sink adapters against the default
// input/output device, via github.com/gordonklaus/portaudio. portaudio is
// used (rather than the pack's alternative ebitengine/oto) because it
// exposes a duplex device — both an input callback and an output callback —
// where oto is output-only.
//
// Grounded on doismellburning-samoyed's use of gordonklaus/portaudio for
// its own audio I/O (Initialize/Terminate lifecycle, callback-based
// streams); this package narrows that general pattern to a mono-float32,
// fixed-rate duplex device.
package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/wbfm-go/wbfm"
)

// Init must be called once before opening any Source/Sink, and Terminate
// once at process shutdown. Mirrors portaudio's own Initialize/Terminate
// contract.
func Init() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("wbfm/audio: %w: %v", wbfm.ErrDriver, err)
	}
	return nil
}

// Terminate releases portaudio's global state.
func Terminate() error {
	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("wbfm/audio: %w: %v", wbfm.ErrDriver, err)
	}
	return nil
}

// Sink plays mono float32 audio to the default output device. When the
// output callback starves (the writer endpoint has nothing buffered), it
// fills the frame with zeros rather than stale or garbage samples.
type Sink struct {
	stream *portaudio.Stream
	r      *wbfm.StreamReader[float32]
}

// OpenSink opens the default output device at sampleRate, mono, reading
// frames from r.
func OpenSink(r *wbfm.StreamReader[float32], sampleRate float64, framesPerBuffer int) (*Sink, error) {
	s := &Sink{r: r}
	cb := func(out []float32) {
		n, err := r.Get(out)
		if err != nil || n < len(out) {
			for i := n; i < len(out); i++ {
				out[i] = 0
			}
		}
	}
	stream, err := portaudio.OpenDefaultStream(0, 1, sampleRate, framesPerBuffer, cb)
	if err != nil {
		return nil, fmt.Errorf("wbfm/audio: %w: %v", wbfm.ErrDriver, err)
	}
	s.stream = stream
	return s, nil
}

// Start begins audio output.
func (s *Sink) Start() error {
	if err := s.stream.Start(); err != nil {
		return fmt.Errorf("wbfm/audio: %w: %v", wbfm.ErrDriver, err)
	}
	return nil
}

// Close stops the stream and closes the device.
func (s *Sink) Close() error {
	_ = s.stream.Stop()
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("wbfm/audio: %w: %v", wbfm.ErrDriver, err)
	}
	return nil
}

// Source captures mono float32 audio from the default input device,
// writing frames into w.
type Source struct {
	stream *portaudio.Stream
	w      *wbfm.StreamWriter[float32]
}

// OpenSource opens the default input device at sampleRate, mono, writing
// frames into w.
func OpenSource(w *wbfm.StreamWriter[float32], sampleRate float64, framesPerBuffer int) (*Source, error) {
	s := &Source{w: w}
	cb := func(in []float32) {
		_, _ = w.Put(in)
	}
	stream, err := portaudio.OpenDefaultStream(1, 0, sampleRate, framesPerBuffer, cb)
	if err != nil {
		return nil, fmt.Errorf("wbfm/audio: %w: %v", wbfm.ErrDriver, err)
	}
	s.stream = stream
	return s, nil
}

// Start begins audio capture.
func (s *Source) Start() error {
	if err := s.stream.Start(); err != nil {
		return fmt.Errorf("wbfm/audio: %w: %v", wbfm.ErrDriver, err)
	}
	return nil
}

// Close stops the stream and closes the device.
func (s *Source) Close() error {
	_ = s.stream.Stop()
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("wbfm/audio: %w: %v", wbfm.ErrDriver, err)
	}
	return nil
}

// vim: foldmethod=marker
