// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fsize provides support for measuring the sizes of files and for
// lazily walking directory trees to obtain the sizes of all of the files
// they contain. Symbolic links may optionally be followed, in which case
// the walk keeps track of the directories it has visited so that cycles
// created by links are never traversed more than once.
//
// The filesystem is accessed via the FS interface, LocalFS provides an
// implementation for the local filesystem.
package fsize

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Metadata represents the information required to measure and traverse
// a filesystem entry.
type Metadata struct {
	// IsDir is true if the entry, or the target of a symbolic link, is
	// a directory.
	IsDir bool
	// IsSymlink is true if the entry itself is a symbolic link.
	IsSymlink bool
	// Size is the size in bytes of the entry or the target of a symbolic
	// link.
	Size int64
	// RealPath is the absolute path of the entry with all symbolic links
	// resolved.
	RealPath string
}

// FS represents the interface that is implemented by filesystems to be
// measured and traversed.
type FS interface {
	// Stat returns the Metadata for path. Symbolic links are followed to
	// obtain the size and type of their targets but IsSymlink reports
	// whether path itself is a link. For a dangling link Stat returns
	// Metadata with IsSymlink set and a not-exist error.
	Stat(ctx context.Context, path string) (Metadata, error)

	// ReadDir returns the names of the entries in the directory path,
	// sorted by name.
	ReadDir(ctx context.Context, path string) ([]string, error)

	// Join is like filepath.Join for the filesystem supported by this
	// filesystem.
	Join(components ...string) string

	// IsNotExist returns true if the specified error, as returned by the
	// filesystem's implementation, is a result of the object not existing.
	IsNotExist(err error) bool
}

type localfs struct{}

// LocalFS returns an instance of FS that provides access to the local
// filesystem.
func LocalFS() FS {
	return &localfs{}
}

func (f *localfs) Stat(_ context.Context, path string) (Metadata, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Metadata{}, err
	}
	md := Metadata{IsSymlink: info.Mode()&os.ModeSymlink == os.ModeSymlink}
	if md.IsSymlink {
		if info, err = os.Stat(path); err != nil {
			return md, err
		}
	}
	md.IsDir = info.IsDir()
	md.Size = info.Size()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return md, err
	}
	if md.RealPath, err = filepath.Abs(resolved); err != nil {
		return md, err
	}
	return md, nil
}

func (f *localfs) ReadDir(_ context.Context, path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

func (f *localfs) Join(components ...string) string {
	return filepath.Join(components...)
}

func (f *localfs) IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
