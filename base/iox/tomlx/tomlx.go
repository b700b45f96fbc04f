// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx reads and writes TOML files into Go values.
package tomlx

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given TOML file into v, which must be a pointer.
// Fields not present in the file keep their current values, so v can
// be pre-filled with defaults.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Read(v, bufio.NewReader(f)); err != nil {
		return fmt.Errorf("tomlx.Open %q: %w", filename, err)
	}
	return nil
}

// OpenFS is [Open] on the given filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	f, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Read(v, f); err != nil {
		return fmt.Errorf("tomlx.OpenFS %q: %w", filename, err)
	}
	return nil
}

// Read decodes TOML from r into v. Unknown keys are an error so that
// misspelled settings do not go unnoticed.
func Read(v any, r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Save writes v to the given file as TOML.
func Save(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	err = Write(v, bw)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Write encodes v as TOML to w.
func Write(v any, w io.Writer) error {
	return toml.NewEncoder(w).Encode(v)
}
