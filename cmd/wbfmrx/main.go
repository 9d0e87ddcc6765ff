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

// Command wbfmrx tunes a HackRF to a broadcast FM station and plays the
// recovered audio to the default output device. It takes a single
// mandatory positional argument, the tune frequency in Hz as a float; exit
// code 0 on clean shutdown, non-zero on unrecoverable setup error.
//
// Grounded on doismellburning-samoyed's CLI layering (spf13/pflag flags
// over a positional argument) and its charmbracelet/log usage for
// top-level diagnostics.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"hz.tools/rf"

	"github.com/wbfm-go/wbfm/audio"
	"github.com/wbfm-go/wbfm/hackrf"
	"github.com/wbfm-go/wbfm/receiver"
	"github.com/wbfm-go/wbfm/wav"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath = pflag.StringP("config", "c", "", "optional YAML tuning profile overlay")
		sampleRate = pflag.Float64("hw-sample-rate", 0, "override hardware IQ sample rate (Hz)")
		gain       = pflag.Uint8("lna-gain", 0, "override LNA gain (dB), 0 keeps profile/default")
		wavCapture = pflag.String("wav-capture", "", "additionally record raw IQ to this WAV file")
		verbose    = pflag.BoolP("verbose", "v", false, "debug logging")
	)
	pflag.Parse()

	logger := log.New(os.Stderr)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: wbfmrx [flags] <frequency-hz>")
		pflag.PrintDefaults()
		return 2
	}
	freq, err := strconv.ParseFloat(pflag.Arg(0), 64)
	if err != nil {
		logger.Error("invalid frequency argument", "value", pflag.Arg(0), "err", err)
		return 2
	}

	cfg := receiver.New()
	if *configPath != "" {
		if err := receiver.LoadOverlay(&cfg, *configPath); err != nil {
			logger.Error("loading config overlay", "err", err)
			return 1
		}
	}
	cfg.TuneHz = rf.Hz(freq)
	if *sampleRate > 0 {
		cfg.HwSampleRate = *sampleRate
	}
	if *gain > 0 {
		cfg.LNAGainDB = *gain
	}
	if *wavCapture != "" {
		cfg.WAVCapturePath = *wavCapture
	}

	if err := audio.Init(); err != nil {
		logger.Error("audio init", "err", err)
		return 1
	}
	defer audio.Terminate()

	dev, err := hackrf.Open()
	if err != nil {
		logger.Error("opening HackRF", "err", err)
		return 1
	}
	defer dev.Close()

	if err := configureDevice(dev, cfg); err != nil {
		logger.Error("configuring HackRF", "err", err)
		return 1
	}

	g, err := receiver.New(cfg, dev, logger)
	if err != nil {
		logger.Error("assembling receive graph", "err", err)
		return 1
	}

	if cfg.WAVCapturePath != "" {
		capture, err := wav.CreateComplexSink(cfg.WAVCapturePath, int(cfg.HwSampleRate))
		if err != nil {
			logger.Error("opening WAV capture", "err", err)
			return 1
		}
		defer capture.Close()
		g.SetCapture(capture)
	}

	sink, err := audio.OpenSink(g.AudioReader(), cfg.AudioRate, cfg.BlockSize)
	if err != nil {
		logger.Error("opening audio sink", "err", err)
		return 1
	}
	defer sink.Close()

	if err := g.Start(); err != nil {
		logger.Error("starting receive graph", "err", err)
		return 1
	}
	if err := sink.Start(); err != nil {
		logger.Error("starting audio sink", "err", err)
		return 1
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Info("shutting down")
		_ = g.Stop()
	}()

	if err := g.Run(); err != nil {
		logger.Error("receive graph exited", "err", err)
		return 1
	}
	return 0
}

func configureDevice(dev *hackrf.Device, cfg receiver.Config) error {
	if err := dev.SetSampleRate(uint32(cfg.HwSampleRate)); err != nil {
		return err
	}
	if err := dev.SetBasebandFilterBandwidth(uint32(cfg.IntermediateRate)); err != nil {
		return err
	}
	if err := dev.SetFreq(cfg.TuneHz); err != nil {
		return err
	}
	if err := dev.SetAmpEnable(cfg.AmpEnable); err != nil {
		return err
	}
	if err := dev.SetLNAGain(cfg.LNAGainDB); err != nil {
		return err
	}
	return dev.SetRxVGAGain(cfg.RxVGAGainDB)
}

// vim: foldmethod=marker
