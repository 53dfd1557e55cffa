// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datasize

// Add returns s + o in bytes.
func (s Size) Add(o Size) Size {
	return ofBytes(s.Bytes() + o.Bytes())
}

// Sub returns s - o in bytes. The result is negative if o is larger
// than s.
func (s Size) Sub(o Size) Size {
	return ofBytes(s.Bytes() - o.Bytes())
}

// Mul returns s * f in bytes.
func (s Size) Mul(f float64) Size {
	return ofBytes(s.Bytes() * f)
}

// Div returns s / f in bytes. An OperationError is returned if f is zero.
func (s Size) Div(f float64) (Size, error) {
	if f == 0 {
		return Size{}, &OperationError{Op: OpDiv, Reason: "division by zero"}
	}
	return ofBytes(s.Bytes() / f), nil
}

// Ratio returns the dimensionless ratio s / o. An OperationError is
// returned if o is zero.
func (s Size) Ratio(o Size) (float64, error) {
	d := o.Bytes()
	if d == 0 {
		return 0, &OperationError{Op: OpDiv, Reason: "division by a zero size"}
	}
	return s.Bytes() / d, nil
}

// Sum returns the total of the supplied sizes in bytes.
func Sum(sizes ...Size) Size {
	var t float64
	for _, s := range sizes {
		t += s.Bytes()
	}
	return ofBytes(t)
}
