// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datasize

import (
	"fmt"
	"strings"
)

// System represents a unit system, ie. the base and prefix table used to
// scale bits and bytes.
type System uint8

const (
	// NIST is the binary system, each prefix step is a factor of 1024.
	NIST System = iota + 1
	// SI is the decimal system, each prefix step is a factor of 1000.
	SI
)

type prefix struct {
	name     string // KB style symbol prefix, empty for the unprefixed unit.
	exponent int    // power of the system's base.
}

var (
	nistPrefixes = []prefix{
		{"", 0}, {"Ki", 10}, {"Mi", 20}, {"Gi", 30}, {"Ti", 40},
		{"Pi", 50}, {"Ei", 60}, {"Zi", 70}, {"Yi", 80},
	}
	siPrefixes = []prefix{
		{"", 0}, {"k", 3}, {"M", 6}, {"G", 9}, {"T", 12},
		{"P", 15}, {"E", 18}, {"Z", 21}, {"Y", 24},
	}
)

// Base returns 2 for NIST and 10 for SI.
func (s System) Base() int {
	switch s {
	case NIST:
		return 2
	case SI:
		return 10
	}
	return 0
}

// Valid returns true if s is one of NIST or SI.
func (s System) Valid() bool {
	return s == NIST || s == SI
}

func (s System) String() string {
	switch s {
	case NIST:
		return "NIST"
	case SI:
		return "SI"
	}
	return fmt.Sprintf("System(%d)", uint8(s))
}

func (s System) prefixes() []prefix {
	if s == SI {
		return siPrefixes
	}
	return nistPrefixes
}

// Units returns the byte units of the system ordered from smallest to
// largest, starting with Byte.
func (s System) Units() []Unit {
	return s.units(false)
}

// BitUnits returns the bit units of the system ordered from smallest to
// largest, starting with Bit.
func (s System) BitUnits() []Unit {
	return s.units(true)
}

func (s System) units(bits bool) []Unit {
	switch {
	case s == SI && bits:
		return append([]Unit(nil), siBitUnits...)
	case s == SI:
		return append([]Unit(nil), siByteUnits...)
	case bits:
		return append([]Unit(nil), nistBitUnits...)
	}
	return append([]Unit(nil), nistByteUnits...)
}

// ParseSystem parses the name of a system, case insensitively. Both
// "NIST" and "binary" name the NIST system, "SI" and "decimal" the
// SI system.
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nist", "binary", "base2":
		return NIST, nil
	case "si", "decimal", "base10":
		return SI, nil
	}
	return 0, fmt.Errorf("unrecognised unit system: %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s System) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid unit system: %v", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *System) UnmarshalText(text []byte) error {
	sys, err := ParseSystem(string(text))
	if err != nil {
		return err
	}
	*s = sys
	return nil
}
