// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fsizetestutil provides an in-memory implementation of fsize.FS
// for use in tests. It supports files, directories and symbolic links,
// including dangling links and links that form cycles, and can be
// configured to return errors for specific paths.
package fsizetestutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"cloudeng.io/datasize/fsize"
)

// ErrTooManyLinks is returned when resolving a path requires following
// more than MaxLinks symbolic links.
var ErrTooManyLinks = errors.New("too many levels of symbolic links")

// MaxLinks is the maximum number of symbolic links followed when
// resolving a path.
const MaxLinks = 40

// FSOption represents an option to configure a new in-memory FS.
type FSOption func(o *fsOptions)

type fsOptions struct {
	statErrs    map[string]error
	readDirErrs map[string]error
}

// WithStatError requests that Stat return err for path.
func WithStatError(path string, err error) FSOption {
	return func(o *fsOptions) {
		o.statErrs[filepath.Clean(path)] = err
	}
}

// WithReadDirError requests that ReadDir return err for path.
func WithReadDirError(path string, err error) FSOption {
	return func(o *fsOptions) {
		o.readDirErrs[filepath.Clean(path)] = err
	}
}

type node struct {
	dir  bool
	size int64
	link string
}

// FS is an in-memory filesystem rooted at "/". All paths are absolute.
type FS struct {
	fsOptions
	mu       sync.Mutex
	nodes    map[string]*node
	nReadDir int
}

var _ fsize.FS = (*FS)(nil)

// New returns a new, empty, in-memory filesystem.
func New(opts ...FSOption) *FS {
	m := &FS{
		fsOptions: fsOptions{
			statErrs:    map[string]error{},
			readDirErrs: map[string]error{},
		},
		nodes: map[string]*node{"/": {dir: true}},
	}
	for _, fn := range opts {
		fn(&m.fsOptions)
	}
	return m
}

// AddDir creates the directory path and any missing parents.
func (m *FS) AddDir(path string) *FS {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mkdirAll(filepath.Clean(path))
	return m
}

// AddFile creates a file of the specified size, creating any missing
// parent directories.
func (m *FS) AddFile(path string, size int64) *FS {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.mkdirAll(filepath.Dir(path))
	m.nodes[path] = &node{size: size}
	return m
}

// AddSymlink creates a symbolic link at path that refers to target. A
// relative target is interpreted relative to the directory containing
// the link. The target need not exist.
func (m *FS) AddSymlink(path, target string) *FS {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.mkdirAll(filepath.Dir(path))
	m.nodes[path] = &node{link: target}
	return m
}

// ReadDirCalls returns the number of calls made to ReadDir.
func (m *FS) ReadDirCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nReadDir
}

func (m *FS) mkdirAll(path string) {
	for p := path; ; p = filepath.Dir(p) {
		if _, ok := m.nodes[p]; !ok {
			m.nodes[p] = &node{dir: true}
		}
		if p == "/" || p == "." {
			return
		}
	}
}

func notExist(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
}

// resolve returns the real path for path, following symbolic links
// in every component, including the last.
func (m *FS) resolve(path string, depth int) (string, error) {
	if depth > MaxLinks {
		return "", &fs.PathError{Op: "stat", Path: path, Err: ErrTooManyLinks}
	}
	cur := "/"
	for _, part := range strings.Split(filepath.Clean(path), "/") {
		if len(part) == 0 {
			continue
		}
		next := filepath.Join(cur, part)
		n, ok := m.nodes[next]
		if !ok {
			return "", notExist("stat", path)
		}
		if len(n.link) > 0 {
			target := n.link
			if !filepath.IsAbs(target) {
				target = filepath.Join(cur, target)
			}
			resolved, err := m.resolve(target, depth+1)
			if err != nil {
				return "", err
			}
			next = resolved
		}
		cur = next
	}
	return cur, nil
}

// Stat implements fsize.FS.
func (m *FS) Stat(_ context.Context, path string) (fsize.Metadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err := m.statErrs[path]; err != nil {
		return fsize.Metadata{}, err
	}
	if !filepath.IsAbs(path) {
		return fsize.Metadata{}, notExist("stat", path)
	}
	var md fsize.Metadata
	if path != "/" {
		parent, err := m.resolve(filepath.Dir(path), 0)
		if err != nil {
			return md, err
		}
		n, ok := m.nodes[filepath.Join(parent, filepath.Base(path))]
		if !ok {
			return md, notExist("stat", path)
		}
		md.IsSymlink = len(n.link) > 0
	}
	resolved, err := m.resolve(path, 0)
	if err != nil {
		return md, err
	}
	n := m.nodes[resolved]
	md.IsDir = n.dir
	md.Size = n.size
	md.RealPath = resolved
	return md, nil
}

// ReadDir implements fsize.FS.
func (m *FS) ReadDir(_ context.Context, path string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nReadDir++
	path = filepath.Clean(path)
	if err := m.readDirErrs[path]; err != nil {
		return nil, err
	}
	resolved, err := m.resolve(path, 0)
	if err != nil {
		return nil, err
	}
	if !m.nodes[resolved].dir {
		return nil, fmt.Errorf("readdir %v: not a directory", path)
	}
	var names []string
	for p := range m.nodes {
		if p != "/" && filepath.Dir(p) == resolved {
			names = append(names, filepath.Base(p))
		}
	}
	slices.Sort(names)
	return names, nil
}

// Join implements fsize.FS.
func (m *FS) Join(components ...string) string {
	return filepath.Join(components...)
}

// IsNotExist implements fsize.FS.
func (m *FS) IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
