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

package hackrf

/*
#include <libhackrf/hackrf.h>
*/
import "C"

import (
	"unsafe"

	"github.com/mattn/go-pointer"

	"github.com/wbfm-go/wbfm"
)

// rxCallbackState is the Go-side state the cgo callback downcasts its
// type-erased user pointer back to. Grounded on hz.tools/sdr's
// hackrf/rx.go rxCallbackState{pipeReader,pipeWriter}: the driver thread
// only ever calls StreamWriter.Put, never touches the reader.
//
// C cannot carry a typed Go closure across the FFI boundary, so the
// boundary carries an opaque *C.void that mattn/go-pointer maps back to
// this struct inside the cgo export.
type rxCallbackState struct {
	w *wbfm.StreamWriter[int8]
}

//export goRxCallback
func goRxCallback(transfer *C.hackrf_transfer) C.int {
	state := pointer.Restore(transfer.rx_ctx).(*rxCallbackState)

	n := int(transfer.valid_length)
	buf := unsafe.Slice((*int8)(unsafe.Pointer(transfer.buffer)), n)

	// The driver thread must not allocate or block; the stream's overwrite
	// policy (set up by StartRx) guarantees Put never blocks here, only
	// drops the oldest samples if the pipeline is behind.
	_, _ = state.w.Put(buf)
	return 0
}

// StartRx begins streaming signed-byte IQ pairs from the device into the
// returned reader. The writer side is owned entirely by the driver
// callback thread; capacity and overwrite policy enforce that the driver
// must never block on the hardware->pipeline stream.
func (d *Device) StartRx(ringCapacity int) (*wbfm.StreamReader[int8], error) {
	r, w, err := wbfm.NewStream[int8](ringCapacity, true, false, true)
	if err != nil {
		return nil, err
	}
	d.cb = &rxCallbackState{w: w}
	ctx := pointer.Save(d.cb)

	if rv := C.wbfm_hackrf_start_rx(d.dev, ctx); rv != C.HACKRF_SUCCESS {
		pointer.Unref(ctx)
		d.cb = nil
		return nil, rvToErr("hackrf_start_rx", rv)
	}
	d.cbPtr = ctx
	return r, nil
}

// StopRx halts streaming, closes the stream's writer endpoint (so the
// reader observes EOF once it drains) and releases the callback's saved
// pointer.
func (d *Device) StopRx() error {
	if d.cb == nil {
		return nil
	}
	rv := C.hackrf_stop_rx(d.dev)
	_ = d.cb.w.Close()
	if d.cbPtr != nil {
		pointer.Unref(d.cbPtr)
		d.cbPtr = nil
	}
	d.cb = nil
	return rvToErr("hackrf_stop_rx", rv)
}

// vim: foldmethod=marker
