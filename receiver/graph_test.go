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

package receiver

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wbfm-go/wbfm"
	"github.com/wbfm-go/wbfm/testutils"
)

// fakeHw feeds a pre-generated complex signal into the hardware stream as
// signed-byte IQ, then closes the writer so the pipeline thread reaches
// EOF — standing in for a HackRF-attached wbfm/hackrf.Device in tests.
type fakeHw struct {
	sig []complex64
	w   *wbfm.StreamWriter[int8]
}

func (f *fakeHw) StartRx(ringCapacity int) (*wbfm.StreamReader[int8], error) {
	r, w, err := wbfm.NewStream[int8](ringCapacity, true, false, true)
	if err != nil {
		return nil, err
	}
	f.w = w

	raw := make([]int8, 0, len(f.sig)*2)
	for _, z := range f.sig {
		raw = append(raw, clampI8(real(z)*127), clampI8(imag(z)*127))
	}
	if _, err := w.Put(raw); err != nil {
		return nil, err
	}
	_ = w.Close()
	return r, nil
}

func (f *fakeHw) StopRx() error { return nil }

func clampI8(x float32) int8 {
	if x > 127 {
		x = 127
	} else if x < -127 {
		x = -127
	}
	return int8(x)
}

func TestGraphRunProducesAudio(t *testing.T) {
	cfg := Config{
		TuneHz:            0,
		HwSampleRate:      48000,
		IntermediateRate:  16000,
		AudioRate:         8000,
		ChannelFilterTaps: 31,
		AudioFilterTaps:   31,
		Deviation:         5000,
		DeemphasisTau:     75e-6,
		RingCapacityHw:    1 << 18,
		RingCapacityAudio: 1 << 16,
		BlockSize:         4096,
	}

	sig, _ := testutils.FMTone(0, 440, cfg.Deviation, cfg.HwSampleRate, 48000)
	hw := &fakeHw{sig: sig}

	g, err := New(cfg, hw, nil)
	require.NoError(t, err)

	require.NoError(t, g.Start())

	done := make(chan error, 1)
	go func() { done <- g.Run() }()

	// The audio stream's reader is non-blocking (the real audio driver
	// callback never waits), so a transient empty ring here is
	// ErrWouldBlock, not end-of-stream; only io.EOF, once Run closes the
	// writer, ends the poll.
	reader := g.AudioReader()
	var total int
	buf := make([]float32, 256)
	for {
		n, err := reader.Get(buf)
		total += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !errors.Is(err, wbfm.ErrWouldBlock) {
			require.NoError(t, err)
		}
	}

	require.NoError(t, <-done)
	require.Greater(t, total, 0, "graph should have produced some audio samples")
}

// vim: foldmethod=marker
