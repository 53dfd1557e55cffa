// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datasize

import (
	"math"
	"sort"
)

// BestUnit returns the largest unit of the specified system such that
// the given number of bytes is at least one of that unit. Byte (or Bit)
// is returned for values smaller than the first prefix and the largest
// prefix is returned for values beyond it. Exact powers select the
// larger unit, ie. 1024 bytes is 1 KiB. If bits is true a bit unit is
// selected using the equivalent number of bits. Negative values select
// the unit for their absolute value. Any system other than SI is
// treated as NIST.
func BestUnit(bytes float64, system System, bits bool) Unit {
	v := math.Abs(bytes)
	if bits {
		v *= 8
	}
	if math.IsNaN(v) {
		v = 0
	}
	scales, units := nistScales, nistByteUnits
	switch {
	case system == SI && bits:
		scales, units = siScales, siBitUnits
	case system == SI:
		scales, units = siScales, siByteUnits
	case bits:
		units = nistBitUnits
	}
	// Find the first scale that exceeds v, the one before it is the
	// largest that v is greater than or equal to.
	i := sort.Search(len(scales), func(i int) bool { return scales[i] > v })
	if i == 0 {
		return units[0]
	}
	return units[i-1]
}

// DecimalUnitForSize returns the SI byte unit best suited to size.
func DecimalUnitForSize(size int64) Unit {
	return BestUnit(float64(size), SI, false)
}

// BinaryUnitForSize returns the NIST byte unit best suited to size.
func BinaryUnitForSize(size int64) Unit {
	return BestUnit(float64(size), NIST, false)
}
