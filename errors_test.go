package fixnum

import (
	"errors"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestErrorClasses(t *testing.T) {
	tt := assert.WrapTB(t)

	_, err := IntFromDecString[W8]("300")
	tt.MustAssert(ParseError.Has(err), err)
	tt.MustAssert(!ConversionError.Has(err))
	tt.MustAssert(errors.Is(err, ErrIntegerOverflow))

	_, err = IntFrom[W8](300)
	tt.MustAssert(ConversionError.Has(err), err)
	tt.MustAssert(!ParseError.Has(err))
	tt.MustAssert(errors.Is(err, ErrLossyConversion))
	tt.MustAssert(!errors.Is(err, ErrIntegerOverflow))

	err = catchPanic(func() { IntMax[W8]().Add(IntOne[W8]()) })
	tt.MustAssert(ArithmeticError.Has(err), err)
	tt.MustAssert(errors.Is(err, ErrIntegerOverflow))
	tt.MustAssert(!errors.Is(err, ErrDivisionByZero))

	err = catchPanic(func() { IntOne[W8]().Rem(IntZero[W8]()) })
	tt.MustAssert(ArithmeticError.Has(err), err)
	tt.MustAssert(errors.Is(err, ErrDivisionByZero))
}

func TestErrorMessages(t *testing.T) {
	tt := assert.WrapTB(t)

	err := catchPanic(func() { IntMin[W16]().Neg() })
	tt.MustEqual("fixnum: arithmetic: neg: integer overflow", err.Error())

	_, err = IntFromDecString[W16]("12a4")
	var digitErr *DigitError
	tt.MustAssert(errors.As(err, &digitErr))
	tt.MustEqual(DigitError{Input: "12a4", Pos: 2, Char: 'a', Base: 10}, *digitErr)
	tt.MustEqual(`fixnum: parse: invalid digit 'a' at position 2 for base 10`, err.Error())

	_, err = IntFrom[W16](1 << 20)
	tt.MustEqual("fixnum: conversion: lossy conversion", err.Error())
}
