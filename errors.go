// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datasize

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMagnitude is matched by errors.Is for all MagnitudeErrors.
	ErrInvalidMagnitude = errors.New("invalid magnitude")
	// ErrUnknownUnit is matched by errors.Is for all UnknownUnitErrors.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrInvalidOperation is matched by errors.Is for all OperationErrors.
	ErrInvalidOperation = errors.New("invalid operation")
)

// MagnitudeError is returned when a size is constructed from a negative,
// NaN or infinite magnitude.
type MagnitudeError struct {
	Value float64
}

func (e *MagnitudeError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidMagnitude, e.Value)
}

func (e *MagnitudeError) Is(target error) bool {
	return target == ErrInvalidMagnitude
}

// UnknownUnitError is returned for unit symbols that are not defined
// by either system.
type UnknownUnitError struct {
	Symbol string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownUnit, e.Symbol)
}

func (e *UnknownUnitError) Is(target error) bool {
	return target == ErrUnknownUnit
}

// OperationError is returned for arithmetic that is undefined, such as
// multiplying two sizes or dividing by zero.
type OperationError struct {
	Op     Op
	Reason string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrInvalidOperation, string(e.Op), e.Reason)
}

func (e *OperationError) Is(target error) bool {
	return target == ErrInvalidOperation
}
