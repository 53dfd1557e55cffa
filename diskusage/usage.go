// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package diskusage provides calculators that estimate the space a file
// occupies on disk given its size in bytes, accounting for block
// allocation and striping.
package diskusage

import "cloudeng.io/datasize"

// Calculator converts a file size, in bytes, into the number of bytes
// used to store it.
type Calculator interface {
	OnDiskSize(size int64) int64
}

// OnDiskSize is a function that implements Calculator.
type OnDiskSize func(int64) int64

// OnDiskSize implements Calculator.
func (fn OnDiskSize) OnDiskSize(size int64) int64 {
	return fn(size)
}

// Identity reports the file size unchanged.
type Identity struct{}

func (i Identity) OnDiskSize(size int64) int64 {
	return size
}

// Simple rounds sizes up to a whole number of blocks.
type Simple struct {
	BlockSize int64
}

func (s Simple) OnDiskSize(size int64) int64 {
	return roundUp(size, s.BlockSize)
}

// RAID0 rounds sizes up to a whole number of stripes with any non-empty
// file occupying at least one stripe on every disk.
type RAID0 struct {
	StripeSize int64
	NumStripes int
}

func (r0 RAID0) OnDiskSize(size int64) int64 {
	if size <= 0 {
		return 0
	}
	raw := roundUp(size, r0.StripeSize)
	striped := int64(r0.NumStripes) * r0.StripeSize
	if striped > raw {
		return striped
	}
	return raw
}

func roundUp(size, block int64) int64 {
	if size <= 0 || block <= 0 {
		return max(size, 0)
	}
	return ((size + block - 1) / block) * block
}

// Size applies the calculator to the byte count of s and returns the
// result as a Size in bytes.
func Size(calc Calculator, size int64) (datasize.Size, error) {
	if calc == nil {
		calc = Identity{}
	}
	return datasize.FromBytes(float64(calc.OnDiskSize(size)))
}
