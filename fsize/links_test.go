// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fsize_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"cloudeng.io/datasize/fsize"
	"cloudeng.io/datasize/fsize/fsizetestutil"
)

func newLinkedFS(opts ...fsizetestutil.FSOption) *fsizetestutil.FS {
	return fsizetestutil.New(opts...).
		AddFile("/r/a/1", 1).
		AddFile("/r/b/2", 2).
		AddSymlink("/r/a/to-b", "/r/b").
		AddSymlink("/r/b/to-a", "../a").
		AddSymlink("/r/b/self", ".").
		AddSymlink("/r/b/file-link", "2").
		AddSymlink("/r/z", "/r/b")
}

func TestWalkMutualLinks(t *testing.T) {
	ctx := context.Background()
	mfs := newLinkedFS()

	walker := fsize.NewWalker(mfs, fsize.RelativeTo("/r"), fsize.FollowSymlinks(true))
	entries := collect(t, walker.Walk(ctx, "/r"))
	// b is entered via a/to-b, so neither b nor z is walked again.
	if got, want := paths(entries), []string{
		"a/1",
		"a/to-b/2",
		"a/to-b/file-link",
	}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Absolute paths are resolved, a link to a file is still reported
	// as a separate entry.
	entries = collect(t, fsize.NewWalker(mfs, fsize.FollowSymlinks(true)).Walk(ctx, "/r"))
	if got, want := paths(entries), []string{"/r/a/1", "/r/b/2", "/r/b/2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	entries = collect(t, walker.Walk(ctx, "/r/b"))
	if got, want := paths(entries), []string{
		"b/2",
		"b/file-link",
		"b/to-a/1",
	}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	walker = fsize.NewWalker(mfs, fsize.RelativeTo("/r"))
	entries = collect(t, walker.Walk(ctx, "/r"))
	if got, want := paths(entries), []string{"a/1", "b/2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWalkLinkLoops(t *testing.T) {
	ctx := context.Background()
	mfs := fsizetestutil.New().
		AddFile("/d/f", 1).
		AddSymlink("/d/l1", "l2").
		AddSymlink("/d/l2", "l1")

	entries := collect(t, fsize.NewWalker(mfs).Walk(ctx, "/d"))
	if got, want := paths(entries), []string{"/d/f"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	var err error
	for _, err = range fsize.NewWalker(mfs, fsize.FollowSymlinks(true)).Walk(ctx, "/d") {
		if err != nil {
			break
		}
	}
	if !errors.Is(err, fsizetestutil.ErrTooManyLinks) {
		t.Errorf("expected a too many links error: %v", err)
	}
}

func TestWalkErrors(t *testing.T) {
	ctx := context.Background()
	errBoom := errors.New("boom")

	for _, tc := range []struct {
		opt  fsizetestutil.FSOption
		path string
		op   string
	}{
		{fsizetestutil.WithReadDirError("/r/b", errBoom), "/r/b", "readdir"},
		{fsizetestutil.WithStatError("/r/b", errBoom), "/r/b", "stat"},
		{fsizetestutil.WithReadDirError("/r", errBoom), "/r", "readdir"},
		{fsizetestutil.WithStatError("/r", errBoom), "/r", "stat"},
	} {
		mfs := newLinkedFS(tc.opt)
		var (
			found []string
			errs  []error
		)
		for entry, err := range fsize.NewWalker(mfs).Walk(ctx, "/r") {
			if err != nil {
				errs = append(errs, err)
				continue
			}
			found = append(found, entry.Path)
		}
		if got, want := len(errs), 1; got != want {
			t.Errorf("%v: got %v, want %v", tc.path, got, want)
			continue
		}
		var ferr *fsize.Error
		if !errors.As(errs[0], &ferr) || !errors.Is(errs[0], errBoom) {
			t.Errorf("%v: unexpected error: %v", tc.path, errs[0])
			continue
		}
		if got, want := ferr.Path, tc.path; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := ferr.Op, tc.op; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		// Files that precede the failure are still reported.
		if tc.path == "/r/b" {
			if got, want := found, []string{"/r/a/1"}; !reflect.DeepEqual(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		}
	}
}

func TestWalkEarlyTermination(t *testing.T) {
	ctx := context.Background()
	mfs := newLinkedFS()
	walker := fsize.NewWalker(mfs, fsize.FollowSymlinks(true))
	for entry, err := range walker.Walk(ctx, "/r") {
		if err != nil {
			t.Fatal(err)
		}
		if got, want := entry.Path, "/r/a/1"; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		break
	}
	if got, want := mfs.ReadDirCalls(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Walks are restartable and share no state.
	first := collect(t, walker.Walk(ctx, "/r"))
	second := collect(t, walker.Walk(ctx, "/r"))
	if !reflect.DeepEqual(first, second) || len(first) != 3 {
		t.Errorf("got %v, want %v", second, first)
	}
}

func TestWalkCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mfs := newLinkedFS()
	var (
		n   int
		err error
	)
	for _, err = range fsize.NewWalker(mfs).Walk(ctx, "/r") {
		if err != nil {
			break
		}
		n++
		cancel()
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected a context canceled error: %v", err)
	}
	if got, want := n, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScanner(t *testing.T) {
	ctx := context.Background()
	mfs := newLinkedFS()
	walker := fsize.NewWalker(mfs, fsize.FollowSymlinks(true))
	sc := walker.Scanner(ctx, "/r")
	var scanned []fsize.Entry
	for sc.Scan() {
		scanned = append(scanned, sc.Entry())
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	if sc.Scan() {
		t.Errorf("scan should not succeed once complete")
	}
	if got, want := scanned, collect(t, walker.Walk(ctx, "/r")); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
