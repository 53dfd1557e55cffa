// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fsize

import (
	"iter"

	"cloudeng.io/datasize"
)

// Summary represents the totals for a walk.
type Summary struct {
	Files   int
	Total   datasize.Size
	Largest Entry
}

// Summarize consumes the supplied walk and returns the number of files
// found, their total size and the largest file. The totals accumulated
// before an error is encountered are returned along with that error.
func Summarize(seq iter.Seq2[Entry, error]) (Summary, error) {
	var s Summary
	for entry, err := range seq {
		if err != nil {
			return s, err
		}
		if s.Files == 0 || entry.Size.Greater(s.Largest.Size) {
			s.Largest = entry
		}
		s.Files++
		s.Total = s.Total.Add(entry.Size)
	}
	return s, nil
}
