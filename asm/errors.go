// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "fmt"

// locatedError is implemented by every assembler error that points at
// source text.
type locatedError interface {
	error
	location() Location
}

// An UnexpectedTokenError reports a token the grammar cannot accept.
type UnexpectedTokenError struct {
	Expected string
	Loc      Location
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token, expected %s", e.Expected)
}

func (e *UnexpectedTokenError) location() Location { return e.Loc }

// An UnexpectedEOFError reports input that ends mid-statement.
type UnexpectedEOFError struct {
	Expected string
	Loc      Location
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected end of file, expected %s", e.Expected)
}

func (e *UnexpectedEOFError) location() Location { return e.Loc }

// An UnknownMnemonicError reports an identifier in instruction position
// that names no instruction or pseudo-instruction.
type UnknownMnemonicError struct {
	Mnemonic string
	Loc      Location
}

func (e *UnknownMnemonicError) Error() string {
	return fmt.Sprintf("unexpected instruction mnemonic %q", e.Mnemonic)
}

func (e *UnknownMnemonicError) location() Location { return e.Loc }

// An InvalidGprError reports an operand that is not r0-r7.
type InvalidGprError struct {
	Name string
	Loc  Location
}

func (e *InvalidGprError) Error() string {
	return fmt.Sprintf("invalid general purpose register name %q", e.Name)
}

func (e *InvalidGprError) location() Location { return e.Loc }

// An InvalidCrError reports an operand that is not a control register
// name.
type InvalidCrError struct {
	Name string
	Loc  Location
}

func (e *InvalidCrError) Error() string {
	return fmt.Sprintf("invalid control register name %q", e.Name)
}

func (e *InvalidCrError) location() Location { return e.Loc }

// A ValueOutOfRangeError reports an expression result that does not fit
// where it is used, and arithmetic overflow inside expressions.
type ValueOutOfRangeError struct {
	Loc Location
}

func (e *ValueOutOfRangeError) Error() string {
	return "value out of range"
}

func (e *ValueOutOfRangeError) location() Location { return e.Loc }

// An UndefinedSymbolError reports a name that no visible scope defines.
type UndefinedSymbolError struct {
	Name string
	Loc  Location
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("undefined symbol %q", e.Name)
}

func (e *UndefinedSymbolError) location() Location { return e.Loc }

// A NegativeShiftError reports a shift by a negative amount.
type NegativeShiftError struct {
	Loc Location
}

func (e *NegativeShiftError) Error() string {
	return "negative shift amount"
}

func (e *NegativeShiftError) location() Location { return e.Loc }

// A SymbolRedefinitionError reports a name defined twice in one scope
// during the first pass.
type SymbolRedefinitionError struct {
	Name     string
	Loc      Location
	Previous Location
}

func (e *SymbolRedefinitionError) Error() string {
	return fmt.Sprintf("redefinition of symbol %q", e.Name)
}

func (e *SymbolRedefinitionError) location() Location { return e.Loc }

// A SymbolChangedValueError reports a symbol whose second-pass value or
// kind differs from the first pass.
type SymbolChangedValueError struct {
	Name string
	Loc  Location
}

func (e *SymbolChangedValueError) Error() string {
	return fmt.Sprintf("symbol %q changed value in second pass", e.Name)
}

func (e *SymbolChangedValueError) location() Location { return e.Loc }

// A GeneralError is an assembler error that fits no other kind (bad
// symbol names, include cycles).
type GeneralError struct {
	Msg string
	Loc Location
}

func (e *GeneralError) Error() string { return e.Msg }

func (e *GeneralError) location() Location { return e.Loc }
