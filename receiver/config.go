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

// Package receiver assembles the canonical wide-band FM receive graph:
// HwSource -> Stream(cplx i8) -> Mixer -> Resampler0 -> FMDemod ->
// Resampler1 -> DeEmphasis -> Stream(f32) -> AudioSink, plus the typed
// Config that parameterizes it and the thread classes that drive it.
//
// Grounded on teabreakninja-go-iq-decoder's internal/config package (a
// typed Config struct constructed with New() defaults) and its
// cmd/go-audio-mini-project/main.go processIQ pipeline, which wires the
// same block sequence this package assembles.
package receiver

import "hz.tools/rf"

// Config holds every tunable parameter of the receive graph, constructed
// with defaults via New() and optionally overlaid from YAML (see
// config_yaml.go).
type Config struct {
	// TuneHz is the broadcast FM station's center frequency. There is no
	// default: it is the CLI's mandatory positional argument.
	TuneHz rf.Hz `yaml:"tune_hz"`

	// TuneOffsetHz is a digital fine-tuning correction applied by the
	// Mixer after the hardware has already been told to center on TuneHz
	// (useful for dodging a DC spike by offset-tuning the hardware and
	// recentering digitally). Defaults to 0: direct hardware tuning, no
	// digital shift.
	TuneOffsetHz float64 `yaml:"tune_offset_hz"`

	// HwSampleRate is the RF front-end's IQ sample rate in Hz.
	HwSampleRate float64 `yaml:"hw_sample_rate"`
	// IntermediateRate is the rate after the channel-select resampler,
	// feeding the FM discriminator.
	IntermediateRate float64 `yaml:"intermediate_rate"`
	// AudioRate is the final output sample rate (44.1kHz for CD-quality
	// mono audio).
	AudioRate float64 `yaml:"audio_rate"`

	// ChannelFilterTaps is the channel-select resampler's prototype tap
	// count (default 101).
	ChannelFilterTaps int `yaml:"channel_filter_taps"`
	// AudioFilterTaps is the audio-stage resampler's prototype tap count
	// (default 1001).
	AudioFilterTaps int `yaml:"audio_filter_taps"`

	// Deviation is the FM peak deviation in Hz (75kHz for broadcast FM).
	Deviation float64 `yaml:"deviation_hz"`
	// DeemphasisTau is the de-emphasis time constant in seconds (75us in
	// the Americas, 50us elsewhere).
	DeemphasisTau float64 `yaml:"deemphasis_tau"`

	// RingCapacityHw is the hardware->pipeline stream's ring capacity, in
	// signed bytes (two per complex IQ sample).
	RingCapacityHw int `yaml:"ring_capacity_hw"`
	// RingCapacityAudio is the pipeline->audio stream's ring capacity, in
	// real samples.
	RingCapacityAudio int `yaml:"ring_capacity_audio"`
	// BlockSize is the number of samples the pipeline thread pulls per
	// step.
	BlockSize int `yaml:"block_size"`

	// AmpEnable, LNAGainDB, RxVGAGainDB mirror the HackRF gain-stage API.
	AmpEnable   bool  `yaml:"amp_enable"`
	LNAGainDB   uint8 `yaml:"lna_gain_db"`
	RxVGAGainDB uint8 `yaml:"rx_vga_gain_db"`

	// WAVCapturePath, if non-empty, additionally records the raw hardware
	// IQ to a WAV file.
	WAVCapturePath string `yaml:"wav_capture_path,omitempty"`
}

// New returns a Config with the broadcast-FM defaults: 4Msps hardware rate
// (typical HackRF capture rate for a ~4MHz of bandwidth hop), a 240kHz
// intermediate rate (wide enough for the 200kHz FM channel bandwidth),
// 44.1kHz audio, 75us de-emphasis, 75kHz deviation, and conservative
// tap-count defaults for the two resampler stages.
func New() Config {
	return Config{
		HwSampleRate:      4_000_000,
		IntermediateRate:  240_000,
		AudioRate:         44_100,
		ChannelFilterTaps: 101,
		AudioFilterTaps:   1001,
		Deviation:         75_000,
		DeemphasisTau:     75e-6,
		RingCapacityHw:    1 << 20,
		RingCapacityAudio: 1 << 16,
		BlockSize:         8192,
		AmpEnable:         true,
		LNAGainDB:         24,
		RxVGAGainDB:       20,
	}
}

// vim: foldmethod=marker
