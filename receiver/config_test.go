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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, 4_000_000.0, cfg.HwSampleRate)
	assert.Equal(t, 240_000.0, cfg.IntermediateRate)
	assert.Equal(t, 44_100.0, cfg.AudioRate)
	assert.Equal(t, 101, cfg.ChannelFilterTaps)
	assert.Equal(t, 1001, cfg.AudioFilterTaps)
	assert.Equal(t, 75_000.0, cfg.Deviation)
	assert.Equal(t, 75e-6, cfg.DeemphasisTau)
}

func TestLoadOverlayPreservesOmittedFields(t *testing.T) {
	cfg := New()

	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tune_hz: 101500000\nlna_gain_db: 32\n"), 0o644))

	require.NoError(t, LoadOverlay(&cfg, path))

	assert.EqualValues(t, 101500000.0, cfg.TuneHz)
	assert.EqualValues(t, 32, cfg.LNAGainDB)
	// fields not present in the overlay keep their New() defaults
	assert.Equal(t, 44_100.0, cfg.AudioRate)
	assert.Equal(t, 1001, cfg.AudioFilterTaps)
}

// vim: foldmethod=marker
