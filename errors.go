// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a position lies outside the root area.
	ErrOutOfBounds = errors.New("position outside root area")

	// ErrDimensionMismatch is returned when a position has the wrong number
	// of coordinates.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidCapacity  = errors.New("invalid max items per node")
	ErrDuplicateID      = errors.New("duplicate id")

	// ErrIntegrity is wrapped by every failure reported by IntegrityCheck.
	ErrIntegrity = errors.New("integrity check failed")
)

// OutOfBoundsError describes the first axis on which a position left the
// root area. Ordinal is the coordinate after the signed bias was applied.
type OutOfBoundsError struct {
	Axis    int
	Ordinal uint64
	Limit   uint64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: axis %d ordinal %d not below %d", ErrOutOfBounds, e.Axis, e.Ordinal, e.Limit)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

func dimensionMismatch(expected, actual int) error {
	return fmt.Errorf("%w: expected %d coordinates, got %d", ErrDimensionMismatch, expected, actual)
}

func integrityError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIntegrity, fmt.Sprintf(format, args...))
}
