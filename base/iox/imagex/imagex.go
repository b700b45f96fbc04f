// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex opens image files and converts them into the
// tightly packed RGBA8 pixels that GPU texture uploads expect.
package imagex

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the supported image decoding formats.
type Formats int32

// The supported image formats.
const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

var formatNames = [...]string{"None", "PNG", "JPEG", "GIF", "TIFF", "BMP", "WebP"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatNames[f]
}

// ErrNotImage is returned when the content of a file is not a recognized
// image format, whatever its extension.
var ErrNotImage = errors.New("not an image")

// sniffLen is the number of header bytes filetype needs to match every
// type it knows.
const sniffLen = 261

// ExtToFormat returns a Format based on a filename extension or a decoder
// name, which can start with a . or not.
func ExtToFormat(ext string) (Formats, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	case "":
		return None, errors.New("imagex.ExtToFormat: ext is empty")
	}
	return None, fmt.Errorf("imagex.ExtToFormat: extension %q not recognized", ext)
}

// Open opens an image from the given filename. The format is inferred
// from the file content, not its name.
func Open(filename string) (image.Image, Formats, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer f.Close()
	im, format, err := Read(f)
	if err != nil {
		return nil, None, fmt.Errorf("imagex.Open %q: %w", filename, err)
	}
	return im, format, nil
}

// Read decodes an image from r. The header is checked first so that a
// file that is not an image at all reports [ErrNotImage] instead of a
// decoder-specific message.
func Read(r io.Reader) (image.Image, Formats, error) {
	br := bufio.NewReaderSize(r, 4096)
	head, _ := br.Peek(sniffLen)
	if len(head) == 0 {
		return nil, None, fmt.Errorf("%w: empty input", ErrNotImage)
	}
	if !filetype.IsImage(head) {
		kind, _ := filetype.Match(head)
		if kind == filetype.Unknown {
			return nil, None, ErrNotImage
		}
		return nil, None, fmt.Errorf("%w: content is %s", ErrNotImage, kind.MIME.Value)
	}
	im, name, err := image.Decode(br)
	if err != nil {
		return nil, None, err
	}
	format, err := ExtToFormat(name)
	if err != nil {
		return nil, None, err
	}
	return im, format, nil
}
