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
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/wbfm-go/wbfm"
	"github.com/wbfm-go/wbfm/block"
)

// HwSource is anything that can start delivering signed-byte IQ pairs and
// be stopped — Device in wbfm/hackrf satisfies this.
type HwSource interface {
	StartRx(ringCapacity int) (*wbfm.StreamReader[int8], error)
	StopRx() error
}

// AudioSink is anything that can consume the final f32 audio stream
// (Sink in wbfm/audio satisfies this).
type AudioSink interface {
	Start() error
	Close() error
}

// IQCapture accepts the raw, already-int8-to-complex64-converted hardware
// IQ for off-line recording — wav.Sink's WriteComplex satisfies this, and
// wav.ComplexSource can replay the resulting file.
type IQCapture interface {
	WriteComplex(src []complex64) error
}

// Graph is the assembled canonical FM receive pipeline: HwSource ->
// Stream(cplx i8) -> Mixer -> Resampler0 -> FMDemod -> Resampler1 ->
// DeEmphasis -> Stream(f32) -> AudioSink.
type Graph struct {
	cfg Config
	log *log.Logger

	hw       HwSource
	hwReader *wbfm.StreamReader[int8]

	mixer       *block.Mixer
	chanResamp  *block.Resampler[complex64]
	demod       *block.FMDemod
	audioResamp *block.Resampler[float32]
	deemph      *block.DeEmphasis

	audioWriter *wbfm.StreamWriter[float32]
	audioReader *wbfm.StreamReader[float32]

	capture IQCapture
	running bool
}

// SetCapture enables raw IQ recording: every block of hardware samples the
// pipeline thread pulls is also written to cap before entering the Mixer.
// Pass nil to disable (the default).
func (g *Graph) SetCapture(cap IQCapture) { g.capture = cap }

// New constructs a Graph from cfg and hw, wiring the DSP blocks per the
// derived sample-rate contract. It does not start RX; call Start for that.
func New(cfg Config, hw HwSource, logger *log.Logger) (*Graph, error) {
	if logger == nil {
		logger = log.Default()
	}

	g := &Graph{
		cfg: cfg,
		log: logger,
		hw:  hw,
	}

	g.mixer = block.NewMixer(cfg.HwSampleRate, cfg.TuneOffsetHz)
	g.chanResamp = block.NewResamplerComplex(int(cfg.HwSampleRate), int(cfg.IntermediateRate), cfg.ChannelFilterTaps)
	g.demod = block.NewFMDemod(cfg.IntermediateRate, cfg.Deviation)
	g.audioResamp = block.NewResamplerReal(int(cfg.IntermediateRate), int(cfg.AudioRate), cfg.AudioFilterTaps)
	g.deemph = block.NewDeEmphasis(cfg.AudioRate, cfg.DeemphasisTau)

	audioReader, audioWriter, err := wbfm.NewStream[float32](cfg.RingCapacityAudio, false, true, false)
	if err != nil {
		return nil, fmt.Errorf("wbfm/receiver: %w", err)
	}
	g.audioReader = audioReader
	g.audioWriter = audioWriter

	return g, nil
}

// AudioReader exposes the pipeline->audio stream's reader endpoint, for
// wiring into wbfm/audio.OpenSink.
func (g *Graph) AudioReader() *wbfm.StreamReader[float32] { return g.audioReader }

// Start begins the driver callback thread (via hw.StartRx) and returns
// once the hardware->pipeline stream is live. The caller must then run the
// pipeline thread with Run to drain it.
func (g *Graph) Start() error {
	r, err := g.hw.StartRx(g.cfg.RingCapacityHw)
	if err != nil {
		return fmt.Errorf("wbfm/receiver: %w", err)
	}
	g.hwReader = r
	g.running = true
	g.log.Info("receive graph started", "tune_hz", g.cfg.TuneHz, "hw_rate", g.cfg.HwSampleRate)
	return nil
}

// Stop halts the driver and closes the audio writer, letting the audio
// callback thread drain to silence.
func (g *Graph) Stop() error {
	if !g.running {
		return nil
	}
	g.running = false
	if err := g.hw.StopRx(); err != nil {
		g.log.Warn("stop_rx failed", "err", err)
	}
	return g.audioWriter.Close()
}

// Run drives the pipeline thread synchronously until the hardware stream
// reaches EOF or Stop is called from another goroutine. It runs on the
// caller's own thread, applying the block-by-block transform.
func (g *Graph) Run() error {
	// Whether the loop below exits cleanly (EOF) or on error, nothing more
	// will be written to the audio stream; closing here lets the audio
	// callback thread observe EOF instead of blocking forever.
	defer g.audioWriter.Close()

	hwBuf := make([]complex64, g.cfg.BlockSize)

	// cplxBank ping-pongs the Mixer->Resampler hand-off, floatBank the
	// FMDemod->Resampler->DeEmphasis hand-off: each Swap's dst becomes the
	// next Swap's src, so every block reads the prior block's output and
	// writes the bank's other side, at zero allocation per frame after
	// warm-up.
	cplxBank := wbfm.NewBufferBank[complex64](g.cfg.BlockSize)
	floatBank := wbfm.NewBufferBank[float32](g.cfg.BlockSize)

	for {
		n, err := wbfm.ReadIQ8(g.hwReader, hwBuf)
		if n == 0 {
			if errors.Is(err, io.EOF) {
				g.log.Info("hardware stream closed, pipeline thread exiting")
				return nil
			}
			return err
		}

		if g.capture != nil {
			if cerr := g.capture.WriteComplex(hwBuf[:n]); cerr != nil {
				g.log.Warn("IQ capture write failed", "err", cerr)
			}
		}

		_, mixedDst := cplxBank.Swap()
		g.mixer.ProcessComplex(mixedDst, hwBuf[:n])

		chanSrc, chanDst := cplxBank.Swap()
		g.chanResamp.Process(chanDst, *chanSrc)

		_, demodDst := floatBank.Swap()
		g.demod.Process(demodDst, *chanDst)

		audioSrc, audioDst := floatBank.Swap()
		g.audioResamp.Process(audioDst, *audioSrc)

		deemphSrc, deemphDst := floatBank.Swap()
		g.deemph.Process(deemphDst, *deemphSrc)

		if len(*deemphDst) > 0 {
			if _, werr := g.audioWriter.Put(*deemphDst); werr != nil {
				g.log.Warn("audio stream put failed", "err", werr)
			}
		}
	}
}

// vim: foldmethod=marker
