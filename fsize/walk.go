// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fsize

import (
	"cmp"
	"context"
	"iter"
	"path/filepath"
	"slices"

	"cloudeng.io/datasize"
	"cloudeng.io/datasize/diskusage"
	"cloudeng.io/logging/ctxlog"
)

// Entry represents a single file encountered by a walk.
type Entry struct {
	Path string
	Size datasize.Size
}

// Option represents options accepted by NewWalker.
type Option func(o *options)

type options struct {
	followSymlinks bool
	relative       bool
	relativeTo     string
	pattern        string
	best           bool
	system         datasize.System
	calculator     diskusage.Calculator
}

// FollowSymlinks controls whether symbolic links are followed. When they
// are not, links to files are not reported and links to directories are
// not traversed.
func FollowSymlinks(v bool) Option {
	return func(o *options) {
		o.followSymlinks = v
	}
}

// RelativeTo requests that paths be reported relative to dir, "." refers
// to the current working directory. By default paths are fully resolved
// absolute paths.
func RelativeTo(dir string) Option {
	return func(o *options) {
		o.relative = true
		o.relativeTo = dir
	}
}

// WithFilter restricts the files reported to those whose base name
// matches pattern as per filepath.Match. Directories are always traversed.
func WithFilter(pattern string) Option {
	return func(o *options) {
		o.pattern = pattern
	}
}

// WithBestUnit requests that sizes be reported in the best unit of the
// specified system rather than in bytes.
func WithBestUnit(system datasize.System) Option {
	return func(o *options) {
		o.best = true
		o.system = system
	}
}

// WithOnDiskSize requests that file sizes be converted to the space they
// occupy on disk using the supplied calculator.
func WithOnDiskSize(calc diskusage.Calculator) Option {
	return func(o *options) {
		o.calculator = calc
	}
}

// Walker traverses a directory tree reporting the sizes of the files
// it contains. A Walker holds no state between walks and may be used
// for any number of walks.
type Walker struct {
	fs   FS
	opts options
}

// NewWalker returns a Walker for the specified filesystem.
func NewWalker(fs FS, opts ...Option) *Walker {
	w := &Walker{fs: fs}
	for _, fn := range opts {
		fn(&w.opts)
	}
	return w
}

// Walk returns an iterator over the files in the tree rooted at root.
// Directories are traversed depth first with the entries in each
// directory visited in lexicographic order, directories being ordered
// as if their names had a trailing separator, so that the files are
// reported in lexicographic order of the paths traversed to reach them.
// Symbolic links are always followed for root itself and a root that is
// a file yields that file only. When following links a directory is
// entered at most once, however it is reached. The first error
// encountered is yielded and ends the iteration.
func (w *Walker) Walk(ctx context.Context, root string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		sc := w.Scanner(ctx, root)
		for sc.Scan() {
			if !yield(sc.Entry(), nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(Entry{}, err)
		}
	}
}

// Walk is like Walker.Walk for the local filesystem.
func Walk(ctx context.Context, root string, opts ...Option) iter.Seq2[Entry, error] {
	return NewWalker(LocalFS(), opts...).Walk(ctx, root)
}

// Scanner returns a Scanner for the tree rooted at root that reports
// the same files, in the same order, as Walk.
func (w *Walker) Scanner(ctx context.Context, root string) *Scanner {
	return &Scanner{
		ctx:     ctx,
		w:       w,
		root:    root,
		visited: map[string]struct{}{},
	}
}

// Scanner provides a pull-based interface to a walk in the style of
// bufio.Scanner.
//
//	sc := walker.Scanner(ctx, root)
//	for sc.Scan() {
//		entry := sc.Entry()
//		...
//	}
//	if err := sc.Err(); err != nil {
//		...
//	}
type Scanner struct {
	ctx     context.Context
	w       *Walker
	root    string
	base    string
	started bool
	done    bool
	stack   []*frame
	visited map[string]struct{}
	entry   Entry
	err     error
}

type child struct {
	name string
	md   Metadata
	err  error
}

type frame struct {
	dir      string
	children []child
	next     int
}

// Scan advances to the next file, returning false when there are no
// more files or an error is encountered.
func (sc *Scanner) Scan() bool {
	if sc.done {
		return false
	}
	if !sc.started {
		sc.started = true
		found, err := sc.start()
		if err != nil {
			return sc.fail(err)
		}
		if found {
			return true
		}
	}
	for len(sc.stack) > 0 {
		top := sc.stack[len(sc.stack)-1]
		if top.next >= len(top.children) {
			sc.stack = sc.stack[:len(sc.stack)-1]
			continue
		}
		c := top.children[top.next]
		top.next++
		found, err := sc.visit(top.dir, c)
		if err != nil {
			return sc.fail(err)
		}
		if found {
			return true
		}
	}
	sc.done = true
	return false
}

// Entry returns the file most recently found by Scan.
func (sc *Scanner) Entry() Entry {
	return sc.entry
}

// Err returns the error, if any, that ended the scan.
func (sc *Scanner) Err() error {
	return sc.err
}

func (sc *Scanner) fail(err error) bool {
	sc.err = err
	sc.done = true
	sc.stack = nil
	return false
}

func (sc *Scanner) start() (bool, error) {
	opts := &sc.w.opts
	if _, err := filepath.Match(opts.pattern, ""); err != nil {
		return false, &Error{Path: opts.pattern, Op: "filter", Err: err}
	}
	if opts.relative {
		base, err := filepath.Abs(opts.relativeTo)
		if err != nil {
			return false, &Error{Path: opts.relativeTo, Op: "abs", Err: err}
		}
		sc.base = base
	}
	md, err := sc.w.fs.Stat(sc.ctx, sc.root)
	if err != nil {
		return false, statError(sc.w.fs, sc.root, err)
	}
	if !md.IsDir {
		return sc.file(sc.root, filepath.Base(sc.root), md)
	}
	sc.visited[md.RealPath] = struct{}{}
	return false, sc.push(sc.root)
}

func (sc *Scanner) visit(dir string, c child) (bool, error) {
	fs := sc.w.fs
	opts := &sc.w.opts
	path := fs.Join(dir, c.name)
	logger := ctxlog.Logger(sc.ctx)
	if c.md.IsSymlink && !opts.followSymlinks {
		logger.Debug("skipping symbolic link", "path", path)
		return false, nil
	}
	if c.err != nil {
		return false, statError(fs, path, c.err)
	}
	if !c.md.IsDir {
		return sc.file(path, c.name, c.md)
	}
	if _, ok := sc.visited[c.md.RealPath]; ok && opts.followSymlinks {
		logger.Debug("skipping previously visited directory", "path", path, "real_path", c.md.RealPath)
		return false, nil
	}
	sc.visited[c.md.RealPath] = struct{}{}
	return false, sc.push(path)
}

func (sc *Scanner) file(path, name string, md Metadata) (bool, error) {
	opts := &sc.w.opts
	if len(opts.pattern) > 0 {
		if matched, _ := filepath.Match(opts.pattern, name); !matched {
			return false, nil
		}
	}
	entry, err := sc.newEntry(path, md)
	if err != nil {
		return false, err
	}
	sc.entry = entry
	return true, nil
}

// newEntry returns the entry for a file, its path is the file's real path
// unless relative paths were requested, in which case it is the path
// traversed to reach the file relative to the base directory.
func (sc *Scanner) newEntry(path string, md Metadata) (Entry, error) {
	opts := &sc.w.opts
	size, err := diskusage.Size(opts.calculator, md.Size)
	if err != nil {
		return Entry{}, &Error{Path: path, Op: "size", Err: err}
	}
	if opts.best {
		size = size.Best(opts.system)
	}
	if !opts.relative {
		return Entry{Path: md.RealPath, Size: size}, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Entry{}, &Error{Path: path, Op: "abs", Err: err}
	}
	rel, err := filepath.Rel(sc.base, abs)
	if err != nil {
		return Entry{}, &Error{Path: path, Op: "rel", Err: err}
	}
	return Entry{Path: rel, Size: size}, nil
}

// push reads the directory and the metadata for all of its entries and
// pushes a new frame onto the stack. Stat errors are recorded against
// each entry and reported when that entry is visited.
func (sc *Scanner) push(dir string) error {
	if err := sc.ctx.Err(); err != nil {
		return err
	}
	fs := sc.w.fs
	names, err := fs.ReadDir(sc.ctx, dir)
	if err != nil {
		return &Error{Path: dir, Op: "readdir", Err: err}
	}
	children := make([]child, len(names))
	for i, name := range names {
		md, err := fs.Stat(sc.ctx, fs.Join(dir, name))
		children[i] = child{name: name, md: md, err: err}
	}
	slices.SortFunc(children, func(a, b child) int {
		return cmp.Compare(a.sortKey(), b.sortKey())
	})
	sc.stack = append(sc.stack, &frame{dir: dir, children: children})
	return nil
}

func (c child) sortKey() string {
	if c.err == nil && c.md.IsDir {
		return c.name + string(filepath.Separator)
	}
	return c.name
}
