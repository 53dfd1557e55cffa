// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datasize

import (
	"cmp"
	"math"
)

// Size is an immutable quantity of storage expressed in a specific unit.
// The zero value is zero bytes.
//
// Comparison and arithmetic are defined in terms of the size's canonical
// byte count and hence are independent of the unit and system that a
// size is expressed in.
type Size struct {
	value float64
	unit  Unit
}

// New returns a Size of v in unit u. The magnitude must be finite and
// non-negative, negative sizes only arise as the result of subtraction.
func New(v float64, u Unit) (Size, error) {
	if !u.Valid() {
		return Size{}, &UnknownUnitError{Symbol: u.String()}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Size{}, &MagnitudeError{Value: v}
	}
	return Size{value: v, unit: u}, nil
}

// FromBytes returns a Size of n bytes.
func FromBytes(n float64) (Size, error) {
	return New(n, Byte)
}

// FromBits returns a Size of n bits.
func FromBits(n float64) (Size, error) {
	return New(n, Bit)
}

// Must panics if err is not nil and otherwise returns s.
func Must(s Size, err error) Size {
	if err != nil {
		panic(err)
	}
	return s
}

// ofBytes returns a Size of n bytes without validating n.
func ofBytes(n float64) Size {
	return Size{value: n, unit: Byte}
}

// Value returns the magnitude of the size in its own unit.
func (s Size) Value() float64 {
	return s.value
}

// Unit returns the unit that the size is expressed in.
func (s Size) Unit() Unit {
	return s.unit
}

// System returns the system of the size's unit. NIST is returned for
// the unprefixed Byte and Bit units.
func (s Size) System() System {
	if sys := s.unit.System(); sys.Valid() {
		return sys
	}
	return NIST
}

// Bytes returns the canonical byte count of the size.
func (s Size) Bytes() float64 {
	return s.value * s.unit.byteScale()
}

// Bits returns the size as a number of bits.
func (s Size) Bits() float64 {
	return s.Bytes() * 8
}

// To returns the size expressed in unit u. The canonical byte count is
// unchanged. An invalid unit is treated as Byte.
func (s Size) To(u Unit) Size {
	if !u.Valid() {
		u = Byte
	}
	if u == s.unit {
		return s
	}
	if u.IsBit() {
		// Scale the bit count directly rather than via bytes to avoid
		// an extra rounding step.
		return Size{value: s.Bits() / u.Scale(), unit: u}
	}
	return Size{value: s.Bytes() / u.Scale(), unit: u}
}

// Best returns the size expressed in the largest unit of the specified
// system for which its value is at least one, see BestUnit. Bit sizes
// are expressed in bit units, byte sizes in byte units.
func (s Size) Best(system System) Size {
	return s.To(BestUnit(s.Bytes(), system, s.unit.IsBit()))
}

// Compare returns -1, 0 or +1 depending on whether s is less than, equal
// to or greater than o.
func (s Size) Compare(o Size) int {
	return cmp.Compare(s.Bytes(), o.Bytes())
}

// Equal returns true if s and o have the same canonical byte count,
// regardless of their units.
func (s Size) Equal(o Size) bool {
	return s.Bytes() == o.Bytes()
}

// Less returns true if s < o.
func (s Size) Less(o Size) bool {
	return s.Bytes() < o.Bytes()
}

// LessOrEqual returns true if s <= o.
func (s Size) LessOrEqual(o Size) bool {
	return s.Bytes() <= o.Bytes()
}

// Greater returns true if s > o.
func (s Size) Greater(o Size) bool {
	return s.Bytes() > o.Bytes()
}

// GreaterOrEqual returns true if s >= o.
func (s Size) GreaterOrEqual(o Size) bool {
	return s.Bytes() >= o.Bytes()
}

// IsZero returns true for a size of zero bytes.
func (s Size) IsZero() bool {
	return s.value == 0
}
