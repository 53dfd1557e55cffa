// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datasize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parse parses a size of the form <number>[ ]<symbol>, eg. "1.5 KiB",
// "10kB" or "1,024 B". Commas are ignored and a number without a
// symbol is a count of bytes. Infinite, NaN and out of range numbers
// are reported as a MagnitudeError.
func Parse(val string) (Size, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(val), ",", "")
	// "Inf" and "NaN" would otherwise be taken as unit symbols.
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil && (math.IsInf(v, 0) || math.IsNaN(v)) {
		return Size{}, &MagnitudeError{Value: v}
	}
	num, sym := splitSize(trimmed)
	if len(num) == 0 {
		return Size{}, fmt.Errorf("invalid size %q: missing number", val)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0) {
			return Size{}, &MagnitudeError{Value: v}
		}
		return Size{}, fmt.Errorf("invalid size %q: %w", val, err)
	}
	u := Byte
	if len(sym) > 0 {
		if u, err = LookupUnit(sym); err != nil {
			return Size{}, err
		}
	}
	return New(v, u)
}

// splitSize splits val into its numeric part and the trailing unit
// symbol, if any.
func splitSize(val string) (number, symbol string) {
	i := len(val)
	for i > 0 && unicode.IsLetter(rune(val[i-1])) {
		i--
	}
	return strings.TrimSpace(val[:i]), val[i:]
}

// ParseToBytes is like Parse but returns the canonical byte count.
func ParseToBytes(val string) (float64, error) {
	s, err := Parse(val)
	if err != nil {
		return 0, err
	}
	return s.Bytes(), nil
}
