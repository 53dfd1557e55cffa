// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datasize provides a value type for digital storage quantities,
// bits and bytes, expressed in either the binary NIST system (KiB = 1024 B)
// or the decimal SI system (kB = 1000 B).
//
// A Size records the magnitude and Unit it was created with, but equality,
// ordering and arithmetic are defined on its canonical byte count so that
// sizes in different units and systems can be freely mixed:
//
//	a := datasize.Must(datasize.KiB.Of(1))
//	b := datasize.Must(datasize.KB.Of(1.024))
//	a.Equal(b) // true
//	a.Add(b)   // 2048 B
//
// The best representation of a size within a system is the largest unit
// whose value is at least one; it is used for default rendering:
//
//	datasize.Must(datasize.FromBytes(1536)).Render(datasize.NIST, 2) // "1.50 KiB"
//	datasize.Must(datasize.FromBytes(1536)).Render(datasize.SI, 2)   // "1.54 kB"
//
// Arithmetic on Size values always returns plain Byte values; use To or
// Best to choose another unit. The Apply function supports arithmetic on
// operands whose types are only known at run time, such as those parsed
// from a command line, and reports undefined combinations, eg. multiplying
// two sizes, as errors.
package datasize
