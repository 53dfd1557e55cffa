// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datasize

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is an arithmetic operator understood by Apply.
type Op rune

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

// ParseOp parses one of "+", "-", "*", "x" or "/".
func ParseOp(s string) (Op, error) {
	switch s {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "*", "x":
		return OpMul, nil
	case "/":
		return OpDiv, nil
	}
	return 0, &OperationError{Op: Op(firstRune(s)), Reason: "unsupported operator"}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// Operand is either a Size or a dimensionless scalar.
type Operand struct {
	size   Size
	scalar float64
	isSize bool
}

// SizeOperand returns an Operand for s.
func SizeOperand(s Size) Operand {
	return Operand{size: s, isSize: true}
}

// ScalarOperand returns an Operand for the dimensionless value f.
func ScalarOperand(f float64) Operand {
	return Operand{scalar: f}
}

// Size returns the operand's Size and true if it is a size.
func (o Operand) Size() (Size, bool) {
	return o.size, o.isSize
}

// Scalar returns the operand's value and true if it is a scalar.
func (o Operand) Scalar() (float64, bool) {
	return o.scalar, !o.isSize
}

func (o Operand) String() string {
	if o.isSize {
		return o.size.String()
	}
	return strconv.FormatFloat(o.scalar, 'g', -1, 64)
}

// ParseOperand parses val as a scalar if it is a plain number and
// otherwise as a Size.
func ParseOperand(val string) (Operand, error) {
	trimmed := strings.TrimSpace(val)
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return ScalarOperand(f), nil
	}
	s, err := Parse(trimmed)
	if err != nil {
		return Operand{}, err
	}
	return SizeOperand(s), nil
}

// Apply evaluates a op b. Sizes may be added to and subtracted from
// each other, multiplied or divided by a scalar, and divided by another
// size to yield a scalar ratio. Sizes are always returned in bytes. All
// other combinations, including multiplying two sizes and dividing by
// zero, result in an OperationError.
func Apply(a Operand, op Op, b Operand) (Operand, error) {
	switch {
	case a.isSize && b.isSize:
		return applySizes(a.size, op, b.size)
	case a.isSize:
		return applySizeScalar(a.size, op, b.scalar)
	case b.isSize:
		if op == OpMul {
			return SizeOperand(b.size.Mul(a.scalar)), nil
		}
		return Operand{}, &OperationError{Op: op, Reason: fmt.Sprintf("a size cannot be the right hand operand of %q with a scalar", string(op))}
	}
	return applyScalars(a.scalar, op, b.scalar)
}

func applySizes(a Size, op Op, b Size) (Operand, error) {
	switch op {
	case OpAdd:
		return SizeOperand(a.Add(b)), nil
	case OpSub:
		return SizeOperand(a.Sub(b)), nil
	case OpDiv:
		r, err := a.Ratio(b)
		if err != nil {
			return Operand{}, err
		}
		return ScalarOperand(r), nil
	case OpMul:
		return Operand{}, &OperationError{Op: op, Reason: "sizes cannot be multiplied"}
	}
	return Operand{}, &OperationError{Op: op, Reason: "unsupported operator"}
}

func applySizeScalar(a Size, op Op, f float64) (Operand, error) {
	switch op {
	case OpMul:
		return SizeOperand(a.Mul(f)), nil
	case OpDiv:
		s, err := a.Div(f)
		if err != nil {
			return Operand{}, err
		}
		return SizeOperand(s), nil
	case OpAdd, OpSub:
		return Operand{}, &OperationError{Op: op, Reason: "a scalar cannot be added to or subtracted from a size"}
	}
	return Operand{}, &OperationError{Op: op, Reason: "unsupported operator"}
}

func applyScalars(a float64, op Op, b float64) (Operand, error) {
	switch op {
	case OpAdd:
		return ScalarOperand(a + b), nil
	case OpSub:
		return ScalarOperand(a - b), nil
	case OpMul:
		return ScalarOperand(a * b), nil
	case OpDiv:
		if b == 0 {
			return Operand{}, &OperationError{Op: op, Reason: "division by zero"}
		}
		return ScalarOperand(a / b), nil
	}
	return Operand{}, &OperationError{Op: op, Reason: "unsupported operator"}
}
