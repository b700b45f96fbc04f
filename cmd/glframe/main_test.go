// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"cogentcore.org/glframe/frame"
	"github.com/stretchr/testify/assert"
)

func TestRunBadArgs(t *testing.T) {
	assert.Equal(t, frame.ExitOK, run([]string{"--help"}))
	assert.Equal(t, frame.ExitFailure, run([]string{"--variant", "wireframe"}))
	assert.Equal(t, frame.ExitFailure, run([]string{"--no-such-flag"}))
	assert.Equal(t, frame.ExitFailure, run([]string{"extra"}))
	assert.Equal(t, frame.ExitFailure, run([]string{"-q", "--config", filepath.Join(t.TempDir(), "missing.toml")}))
}
