// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Title string `toml:"title"`
	Width int    `toml:"width"`
	VSync bool   `toml:"vsync"`
	Pools pools  `toml:"pools"`
}

type pools struct {
	Buffers int `toml:"buffers"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	in := settings{Title: "triangle", Width: 800, VSync: true, Pools: pools{Buffers: 2}}
	require.NoError(t, Save(&in, fn))

	var out settings
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
}

func TestOpenKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{"s.toml": {Data: []byte("width = 1024\n")}}
	out := settings{Title: "default", Width: 800}
	require.NoError(t, OpenFS(&out, fsys, "s.toml"))
	assert.Equal(t, "default", out.Title)
	assert.Equal(t, 1024, out.Width)
}

func TestReadUnknownField(t *testing.T) {
	var out settings
	err := Read(&out, strings.NewReader("hieght = 600\n"))
	assert.Error(t, err)
}

func TestOpenMissing(t *testing.T) {
	var out settings
	err := Open(&out, filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
