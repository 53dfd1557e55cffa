// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datasize

import (
	"fmt"
	"math"
)

// Unit identifies a unit of size: whether it counts bits or bytes, its
// prefix and the system that prefix belongs to. The unprefixed units,
// Byte and Bit, are common to both systems.
type Unit uint16

const (
	prefixMask  Unit = 0x0f
	bitFlag     Unit = 0x10
	systemShift      = 5

	nist = Unit(NIST) << systemShift
	si   = Unit(SI) << systemShift
)

// Unprefixed units.
const (
	Byte Unit = 0
	Bit  Unit = bitFlag
)

// NIST (base 2) byte units.
const (
	KiB = nist + iota + 1
	MiB
	GiB
	TiB
	PiB
	EiB
	ZiB
	YiB
)

// NIST (base 2) bit units.
const (
	Kib = KiB | bitFlag
	Mib = MiB | bitFlag
	Gib = GiB | bitFlag
	Tib = TiB | bitFlag
	Pib = PiB | bitFlag
	Eib = EiB | bitFlag
	Zib = ZiB | bitFlag
	Yib = YiB | bitFlag
)

// SI (base 10) byte units. KB is rendered with its SI symbol, kB.
const (
	KB = si + iota + 1
	MB
	GB
	TB
	PB
	EB
	ZB
	YB
)

// SI (base 10) bit units. Kb is rendered with its SI symbol, kb.
const (
	Kb = KB | bitFlag
	Mb = MB | bitFlag
	Gb = GB | bitFlag
	Tb = TB | bitFlag
	Pb = PB | bitFlag
	Eb = EB | bitFlag
	Zb = ZB | bitFlag
	Yb = YB | bitFlag
)

var (
	nistByteUnits = []Unit{Byte, KiB, MiB, GiB, TiB, PiB, EiB, ZiB, YiB}
	nistBitUnits  = []Unit{Bit, Kib, Mib, Gib, Tib, Pib, Eib, Zib, Yib}
	siByteUnits   = []Unit{Byte, KB, MB, GB, TB, PB, EB, ZB, YB}
	siBitUnits    = []Unit{Bit, Kb, Mb, Gb, Tb, Pb, Eb, Zb, Yb}

	// Scales indexed by prefix, computed once so that every lookup of the
	// same unit yields exactly the same float64.
	nistScales = scales(nistPrefixes, 2)
	siScales   = scales(siPrefixes, 10)

	symbols = map[string]Unit{}
)

func scales(prefixes []prefix, base int) []float64 {
	s := make([]float64, len(prefixes))
	for i, p := range prefixes {
		if base == 2 {
			s[i] = math.Ldexp(1, p.exponent)
			continue
		}
		s[i] = math.Pow10(p.exponent)
	}
	return s
}

func init() {
	for _, table := range [][]Unit{nistByteUnits, nistBitUnits, siByteUnits, siBitUnits} {
		for _, u := range table {
			symbols[u.Symbol()] = u
		}
	}
	// Common alternative spellings.
	symbols["Byte"] = Byte
	symbols["byte"] = Byte
	symbols["bytes"] = Byte
	symbols["b"] = Bit
	symbols["Bit"] = Bit
	symbols["bits"] = Bit
	symbols["KB"] = KB
	symbols["Kb"] = Kb
}

// LookupUnit returns the unit with the specified symbol, eg. "KiB",
// "kB" or "Mib". The symbols "B" and "bit" denote the unprefixed
// units.
func LookupUnit(symbol string) (Unit, error) {
	if u, ok := symbols[symbol]; ok {
		return u, nil
	}
	return 0, &UnknownUnitError{Symbol: symbol}
}

func (u Unit) index() int {
	return int(u & prefixMask)
}

// Valid returns true if u is one of the units defined by this package.
func (u Unit) Valid() bool {
	idx := u.index()
	if u&^(prefixMask|bitFlag|Unit(0x3)<<systemShift) != 0 {
		return false
	}
	switch u.System() {
	case 0:
		return idx == 0
	case NIST, SI:
		return idx > 0 && idx < len(nistPrefixes)
	}
	return false
}

// IsBit returns true for bit units.
func (u Unit) IsBit() bool {
	return u&bitFlag != 0
}

// System returns the system that the unit's prefix belongs to, or
// zero for the unprefixed Byte and Bit units.
func (u Unit) System() System {
	return System(u >> systemShift)
}

// Exponent returns the power of the unit's system base that the unit
// scales by, eg. 10 for KiB and 3 for kB.
func (u Unit) Exponent() int {
	if u.index() == 0 {
		return 0
	}
	return u.System().prefixes()[u.index()].exponent
}

// Scale returns the number of bytes, or bits for bit units, in one unit.
func (u Unit) Scale() float64 {
	idx := u.index()
	switch u.System() {
	case NIST:
		return nistScales[idx]
	case SI:
		return siScales[idx]
	}
	return 1
}

// byteScale returns the number of bytes in one unit.
func (u Unit) byteScale() float64 {
	if u.IsBit() {
		return u.Scale() / 8
	}
	return u.Scale()
}

// Symbol returns the unit's symbol, eg. "B", "bit", "KiB", "kB", "Mib".
func (u Unit) Symbol() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint16(u))
	}
	name := u.System().prefixes()[u.index()].name
	switch {
	case u.index() == 0 && u.IsBit():
		return "bit"
	case u.IsBit():
		return name + "b"
	}
	return name + "B"
}

func (u Unit) String() string {
	return u.Symbol()
}

// Of returns a Size of v in unit u. The magnitude must be finite and
// non-negative.
func (u Unit) Of(v float64) (Size, error) {
	return New(v, u)
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("invalid unit: %d", uint16(u))
	}
	return []byte(u.Symbol()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	nu, err := LookupUnit(string(text))
	if err != nil {
		return err
	}
	*u = nu
	return nil
}
