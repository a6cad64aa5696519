package quantity

import (
	"errors"
	"fmt"
)

// Domain errors for quantity construction and arithmetic. Every error is
// fatal to the operation that raised it; there are no partial results.
var (
	// ErrMalformedShorthand indicates a shorthand string without exactly one
	// '=' separator or without a numeric magnitude.
	ErrMalformedShorthand = errors.New("quantity: malformed shorthand declaration")

	// ErrAmbiguousConstruction indicates a value supplied without a unit, or
	// a unit without a value, alongside a plain name.
	ErrAmbiguousConstruction = errors.New("quantity: value and unit must be supplied together or both omitted")

	// ErrMissingDimension indicates an unregistered unit symbol supplied
	// without an explicit dimension vector.
	ErrMissingDimension = errors.New("quantity: unregistered unit requires an explicit dimension vector")

	// ErrFamilyMismatch indicates a conversion attempted on a quantity whose
	// unit belongs to no catalog family.
	ErrFamilyMismatch = errors.New("quantity: conversion requires a resolved unit family")

	// ErrDimensionMismatch indicates add/subtract/compare across
	// incompatible dimension vectors.
	ErrDimensionMismatch = errors.New("quantity: incompatible dimension vectors")

	// ErrDivisionByZero indicates a division whose divisor magnitude is zero.
	ErrDivisionByZero = errors.New("quantity: division by zero magnitude")

	// ErrInvalidExponent indicates a power operation whose exponent is not a
	// number.
	ErrInvalidExponent = errors.New("quantity: exponent must be an integer or float")

	// ErrInvalidOperand indicates an operand that is neither a *Quantity nor
	// a number.
	ErrInvalidOperand = errors.New("quantity: operand must be a quantity or a number")
)

// OpError wraps a domain error with the operation and operand names that
// raised it.
type OpError struct {
	Op      string
	Left    string
	Right   string
	Wrapped error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%v (in %q %s %q)", e.Wrapped, e.Left, e.Op, e.Right)
}

func (e *OpError) Unwrap() error {
	return e.Wrapped
}
