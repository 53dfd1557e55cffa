// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fsize

import (
	"context"

	"cloudeng.io/datasize"
)

// Measure returns the size of the file at path expressed in the best
// unit of the specified system. Symbolic links are followed. An Error
// wrapping ErrPathNotFound is returned if path does not exist and one
// wrapping ErrNotAFile if it is a directory.
func Measure(ctx context.Context, fs FS, path string, system datasize.System) (datasize.Size, error) {
	md, err := fs.Stat(ctx, path)
	if err != nil {
		return datasize.Size{}, statError(fs, path, err)
	}
	if md.IsDir {
		return datasize.Size{}, &Error{Path: path, Op: "measure", Err: ErrNotAFile}
	}
	size, err := datasize.FromBytes(float64(md.Size))
	if err != nil {
		return datasize.Size{}, &Error{Path: path, Op: "measure", Err: err}
	}
	return size.Best(system), nil
}

// MeasureLocal is like Measure for the local filesystem.
func MeasureLocal(path string, system datasize.System) (datasize.Size, error) {
	return Measure(context.Background(), LocalFS(), path, system)
}
