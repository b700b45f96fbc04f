// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glframe runs the frame renderer with a configurable variant,
// image and window.
//
// Usage:
//
//	glframe [--variant name] [--image file] [--config file.toml] [--frames n] [-v | --vv | -q]
//
// Flags override the values of the config file.
package main

import (
	"fmt"
	"os"
	"strings"

	"cogentcore.org/glframe/base/errors"
	"cogentcore.org/glframe/base/logx"
	"cogentcore.org/glframe/driver/desktop"
	"cogentcore.org/glframe/frame"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("glframe", pflag.ContinueOnError)
	var variant frame.Variants
	names := make([]string, 0, 5)
	for _, v := range frame.VariantsValues() {
		names = append(names, v.String())
	}
	fs.Var(&variant, "variant", "the variant to draw: "+strings.Join(names, ", "))
	image := fs.String("image", "", "the image file of textured variants (default boomer.png)")
	config := fs.String("config", "", "a TOML config file")
	frames := fs.Int("frames", 0, "stop after this many frames (0 runs until quit)")
	verbose := fs.BoolP("verbose", "v", false, "log info messages")
	veryVerbose := fs.Bool("vv", false, "log debug messages")
	quiet := fs.BoolP("quiet", "q", false, "log only errors")
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return frame.ExitOK
		}
		return frame.ExitFailure
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "glframe: unexpected arguments %q\n", fs.Args())
		return frame.ExitFailure
	}

	logx.UserLevel = logx.LevelFromFlags(*veryVerbose, *verbose, *quiet)
	logx.SetDefaultLogger()

	cfg := frame.DefaultConfig()
	if *config != "" {
		var err error
		cfg, err = frame.OpenConfig(*config)
		if errors.Log(err) != nil {
			return frame.ExitFailure
		}
	}
	if fs.Changed("variant") {
		cfg.Variant = variant
	}
	if *image != "" {
		cfg.Image = *image
	}
	if fs.Changed("frames") {
		cfg.MaxFrames = *frames
	}
	return desktop.Main(cfg)
}
