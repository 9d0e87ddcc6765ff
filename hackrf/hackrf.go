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

// Package hackrf implements an RF driver over a HackRF One via cgo binding
// to libhackrf, covering open/set_sample_rate/set_baseband_filter_bandwidth/
// set_freq/set_amp_enable/set_lna_gain/set_rxvga_gain/start_rx/stop_rx. It
// is the module's one reference hardware backend.
package hackrf

/*
#cgo pkg-config: libhackrf
#include <libhackrf/hackrf.h>
#include <stdlib.h>

extern int goRxCallback(hackrf_transfer *transfer);

static int wbfm_hackrf_init(void) {
	return hackrf_init();
}

static int wbfm_hackrf_start_rx(hackrf_device *dev, void *ctx) {
	return hackrf_start_rx(dev, (hackrf_sample_block_cb_fn)goRxCallback, ctx);
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"hz.tools/rf"

	"github.com/wbfm-go/wbfm"
)

func init() {
	if rv := C.wbfm_hackrf_init(); rv != C.HACKRF_SUCCESS {
		// Library-level init failure is deferred to Open, not a package
		// init panic: this package must be importable on a machine with
		// no HackRF attached (tests, CI).
		initErr = rvToErr("hackrf_init", rv)
	}
}

var initErr error

// Device is an open HackRF handle. Grounded on hz.tools/sdr's hackrf.Board
// (hackrf/hackrf.go): same cgo-handle-wrapping shape, narrowed from that
// package's full Sdr/Receiver/Transmitter interface surface to the
// receive-only operations this graph needs.
type Device struct {
	dev   *C.hackrf_device
	cb    *rxCallbackState
	cbPtr unsafe.Pointer
}

// Open opens the first available HackRF device.
func Open() (*Device, error) {
	if initErr != nil {
		return nil, fmt.Errorf("wbfm/hackrf: %w: %v", wbfm.ErrDriver, initErr)
	}
	var dev *C.hackrf_device
	if rv := C.hackrf_open(&dev); rv != C.HACKRF_SUCCESS {
		return nil, rvToErr("hackrf_open", rv)
	}
	return &Device{dev: dev}, nil
}

// Close stops any active RX and releases the device.
func (d *Device) Close() error {
	if d.cb != nil {
		_ = d.StopRx()
	}
	if d.dev == nil {
		return nil
	}
	rv := C.hackrf_close(d.dev)
	d.dev = nil
	if rv != C.HACKRF_SUCCESS {
		return rvToErr("hackrf_close", rv)
	}
	return nil
}

// SetSampleRate configures the ADC sample rate in Hz.
func (d *Device) SetSampleRate(hz uint32) error {
	rv := C.hackrf_set_sample_rate(d.dev, C.double(hz))
	return rvToErr("hackrf_set_sample_rate", rv)
}

// SetBasebandFilterBandwidth configures the baseband filter bandwidth in Hz.
func (d *Device) SetBasebandFilterBandwidth(hz uint32) error {
	rv := C.hackrf_set_baseband_filter_bandwidth(d.dev, C.uint32_t(hz))
	return rvToErr("hackrf_set_baseband_filter_bandwidth", rv)
}

// SetFreq tunes the center frequency.
func (d *Device) SetFreq(freq rf.Hz) error {
	rv := C.hackrf_set_freq(d.dev, C.uint64_t(freq))
	return rvToErr("hackrf_set_freq", rv)
}

// SetAmpEnable toggles the front-end RF amplifier.
func (d *Device) SetAmpEnable(on bool) error {
	var v C.uint8_t
	if on {
		v = 1
	}
	rv := C.hackrf_set_amp_enable(d.dev, v)
	return rvToErr("hackrf_set_amp_enable", rv)
}

// SetLNAGain sets the IF (LNA) gain in dB, in 8dB steps up to 40.
func (d *Device) SetLNAGain(db uint8) error {
	rv := C.hackrf_set_lna_gain(d.dev, C.uint32_t(db))
	return rvToErr("hackrf_set_lna_gain", rv)
}

// SetRxVGAGain sets the baseband (VGA) gain in dB, in 2dB steps up to 62.
func (d *Device) SetRxVGAGain(db uint8) error {
	rv := C.hackrf_set_vga_gain(d.dev, C.uint32_t(db))
	return rvToErr("hackrf_set_vga_gain", rv)
}

func rvToErr(call string, rv C.int) error {
	if rv == C.HACKRF_SUCCESS {
		return nil
	}
	msg := C.GoString(C.hackrf_error_name(int32(rv)))
	return fmt.Errorf("wbfm/hackrf: %w: %s: %s", wbfm.ErrDriver, call, msg)
}

// vim: foldmethod=marker
