// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fsize

import (
	"errors"
	"fmt"
)

var (
	// ErrPathNotFound is returned, wrapped in an Error, when a path to be
	// measured or traversed does not exist.
	ErrPathNotFound = errors.New("path not found")
	// ErrNotAFile is returned, wrapped in an Error, when a directory is
	// passed to Measure.
	ErrNotAFile = errors.New("not a file")
)

// Error implements error and provides additional detail on the error
// encountered.
type Error struct {
	Path string
	Op   string
	Err  error
}

// Error implements error.
func (e *Error) Error() string {
	return "[" + e.Path + ": " + e.Op + "] " + e.Err.Error()
}

// Unwrap implements errors.Unwrap.
func (e *Error) Unwrap() error {
	return e.Err
}

// statError returns an Error for a failed Stat operation, not-exist errors
// are also reported as ErrPathNotFound.
func statError(fs FS, path string, err error) error {
	if fs.IsNotExist(err) {
		err = fmt.Errorf("%w: %w", ErrPathNotFound, err)
	}
	return &Error{Path: path, Op: "stat", Err: err}
}
