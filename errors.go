package fixnum

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

var (
	// ErrIntegerOverflow is reported when a value or an intermediate result
	// does not fit in the width of the type.
	ErrIntegerOverflow = errors.New("integer overflow")

	// ErrLossyConversion is reported when converting between native integers,
	// Uint and Int, or Ints of different widths, would not preserve the value.
	ErrLossyConversion = errors.New("lossy conversion")

	ErrDivisionByZero  = errors.New("division by zero")
	ErrEmptyDigits     = errors.New("no digits")
	ErrInvalidBase     = errors.New("invalid base")
	ErrIndexOutOfRange = errors.New("index out of range")
)

var (
	// ParseError wraps every error returned while parsing text. Malformed
	// input wraps a *DigitError, ErrEmptyDigits or ErrInvalidBase; input that
	// is well formed but out of range wraps ErrIntegerOverflow.
	ParseError = errs.Class("fixnum: parse")

	// ConversionError wraps ErrLossyConversion.
	ConversionError = errs.Class("fixnum: conversion")

	// ArithmeticError wraps the values passed to panic by the arithmetic
	// methods that have no way to report failure: ErrIntegerOverflow for the
	// bare operator forms (Add, Sub, ...) and ErrDivisionByZero.
	ArithmeticError = errs.Class("fixnum: arithmetic")
)

// DigitError reports a character that is not a valid digit in Base.
type DigitError struct {
	Input string
	Pos   int
	Char  byte
	Base  int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("invalid digit %q at position %d for base %d", e.Char, e.Pos, e.Base)
}

func overflowPanic(op string) error {
	return ArithmeticError.Wrap(fmt.Errorf("%s: %w", op, ErrIntegerOverflow))
}

func indexError(kind string, i, limit uint) error {
	return fmt.Errorf("fixnum: %s index %d out of range [0, %d): %w", kind, i, limit, ErrIndexOutOfRange)
}

func errLossy() error { return ConversionError.Wrap(ErrLossyConversion) }
