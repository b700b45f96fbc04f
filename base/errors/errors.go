// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides small helpers for handling errors at the edges
// of a program, where an error is either logged and passed on or is a
// programmer error that should panic. It re-exports the standard
// library functions so that it can be imported in place of it.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As is [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// Log logs the given error at the error level if it is non-nil,
// tagged with the file and line of the caller, and returns it.
// The intended usage is:
//
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error(), "at", callerInfo())
	}
	return err
}

// Log1 returns v and logs err if it is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error(), "at", callerInfo())
	}
	return v
}

// Must panics if err is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v, panicking if err is non-nil. It is meant for values
// that cannot fail in a correct build, such as embedded assets.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// callerInfo returns "file:line" of the function that called Log or Log1.
func callerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "?"
	}
	return file + ":" + strconv.Itoa(line)
}
