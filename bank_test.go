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

package wbfm

import "testing"

func TestBufferBankSwapAlternates(t *testing.T) {
	bk := NewBufferBank[float32](16)

	src1, dst1 := bk.Swap()
	if src1 == dst1 {
		t.Fatal("src and dst must be distinct buffers")
	}
	*dst1 = append(*dst1, 1, 2, 3)

	src2, dst2 := bk.Swap()
	if src2 != dst1 {
		t.Fatal("second swap's src must be first swap's dst")
	}
	if dst2 != src1 {
		t.Fatal("second swap's dst must be first swap's src")
	}
	if len(*src2) != 3 || (*src2)[0] != 1 {
		t.Fatalf("src2 should carry forward dst1's contents, got %v", *src2)
	}
}

// vim: foldmethod=marker
