// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fsize_test

import (
	"bytes"
	"iter"
	"os"
	"path/filepath"
	"testing"

	"cloudeng.io/datasize/fsize"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte{'x'}, size), 0600); err != nil {
		t.Fatal(err)
	}
}

func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(link), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}
}

// createTestTree creates the following and returns its root:
//
//	file_sizes/bytes.test (38 bytes)
//	file_sizes/kbytes.test (1024 bytes)
//	listdir/10_byte_file
//	listdir_nosymlinks/depth1/depth2/10_byte_file
//	listdir_nosymlinks/depth1/depth2/1024_byte_file
//	listdir_symlinks/10_byte_file_link -> ../listdir/10_byte_file
//	listdir_symlinks/depth1/depth2/10_byte_file
func createTestTree(t *testing.T) string {
	root := tempDir(t)
	writeFile(t, filepath.Join(root, "file_sizes", "bytes.test"), 38)
	writeFile(t, filepath.Join(root, "file_sizes", "kbytes.test"), 1024)
	writeFile(t, filepath.Join(root, "listdir", "10_byte_file"), 10)
	writeFile(t, filepath.Join(root, "listdir_nosymlinks", "depth1", "depth2", "10_byte_file"), 10)
	writeFile(t, filepath.Join(root, "listdir_nosymlinks", "depth1", "depth2", "1024_byte_file"), 1024)
	writeFile(t, filepath.Join(root, "listdir_symlinks", "depth1", "depth2", "10_byte_file"), 10)
	symlink(t, filepath.Join("..", "listdir", "10_byte_file"), filepath.Join(root, "listdir_symlinks", "10_byte_file_link"))
	return root
}

// tempDir returns a temporary directory with any symbolic links in its
// path resolved.
func tempDir(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func collect(t *testing.T, seq iter.Seq2[fsize.Entry, error]) []fsize.Entry {
	t.Helper()
	var entries []fsize.Entry
	for entry, err := range seq {
		if err != nil {
			t.Fatal(err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func paths(entries []fsize.Entry) []string {
	p := make([]string, len(entries))
	for i, e := range entries {
		p[i] = e.Path
	}
	return p
}
