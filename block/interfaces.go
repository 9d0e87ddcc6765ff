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

package block

import "github.com/wbfm-go/wbfm"

// Compile-time checks that the concrete block types satisfy the Filter
// role for their instantiated sample types.
var (
	_ wbfm.Filter[float32, float32]     = (*FIR[float32])(nil)
	_ wbfm.Filter[complex64, complex64] = (*FIR[complex64])(nil)
	_ wbfm.Filter[float32, float32]     = (*Resampler[float32])(nil)
	_ wbfm.Filter[complex64, complex64] = (*Resampler[complex64])(nil)
	_ wbfm.Filter[complex64, float32]   = (*FMDemod)(nil)
	_ wbfm.Filter[float32, float32]     = (*DeEmphasis)(nil)
)

// vim: foldmethod=marker
