// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datasize

import (
	"fmt"
	"io"
	"strconv"
)

// Render returns the best representation of s in the specified system
// formatted with precision decimal places followed by a space and the
// unit's symbol, eg. "1.00 KiB". A zero size is rendered in the smallest
// unit, "0.00 B".
func (s Size) Render(system System, precision int) string {
	if precision < 0 {
		precision = 0
	}
	b := s.Best(system)
	return strconv.FormatFloat(b.value, 'f', precision, 64) + " " + b.unit.Symbol()
}

// String returns the best representation of s in its own system with two
// decimal places.
func (s Size) String() string {
	return s.Render(s.System(), 2)
}

// Format implements fmt.Formatter. The f, F, e, E, g and G verbs format
// the size in its own unit, honouring width and precision, with a
// default precision of 2. The v and s verbs use String.
func (s Size) Format(f fmt.State, verb rune) {
	switch verb {
	case 'f', 'F', 'e', 'E', 'g', 'G':
		width, ok := f.Width()
		if !ok {
			width = 0
		}
		prec, ok := f.Precision()
		if !ok {
			prec = 2
		}
		fmt.Fprintf(f, "%*.*"+string(verb)+" %s", width, prec, s.value, s.unit)
	case 'v', 's':
		if f.Flag('#') {
			fmt.Fprintf(f, "datasize.Size{%v %v}", strconv.FormatFloat(s.value, 'g', -1, 64), s.unit)
			return
		}
		io.WriteString(f, s.String()) //nolint:errcheck
	case 'q':
		io.WriteString(f, strconv.Quote(s.String())) //nolint:errcheck
	default:
		fmt.Fprintf(f, "%%!%c(datasize.Size=%s)", verb, s.String())
	}
}

// MarshalText implements encoding.TextMarshaler. The size is encoded in
// its own unit without loss of precision, eg. "1.5 MiB".
func (s Size) MarshalText() ([]byte, error) {
	if !s.unit.Valid() {
		return nil, &UnknownUnitError{Symbol: s.unit.String()}
	}
	return []byte(strconv.FormatFloat(s.value, 'g', -1, 64) + " " + s.unit.Symbol()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (s *Size) UnmarshalText(text []byte) error {
	ns, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = ns
	return nil
}
