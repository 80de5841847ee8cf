// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Expression evaluation. This is a precedence climbing parser/evaluator;
// it touches the rest of the assembler only through the symbol lookup
// callback, which makes it easy to test against a plain function.

package asm

import "math"

// A symbolLookup resolves a (possibly dotted) name to its value. It
// reports false for undefined names.
type symbolLookup func(name string) (int32, bool)

// evalExpression parses and evaluates one expression from the stream. The
// returned location covers the whole expression. Evaluation errors
// short-circuit the rest of the expression.
func evalExpression(ts *tokenStream, lookup symbolLookup) (int32, Location, error) {
	v, loc, err := evalValue(ts, lookup)
	if err != nil {
		return 0, loc, err
	}
	return evalBinary(ts, lookup, v, loc, 0)
}

const expectedValue = "`(`, `+`, `-`, `!`, `~`, identifier or number"

// evalValue evaluates a single value: an atom (number, name or
// parenthesized subexpression) or a unary operator applied to a value.
func evalValue(ts *tokenStream, lookup symbolLookup) (int32, Location, error) {
	t, ok := ts.next()
	if !ok {
		return 0, ts.eofLocation(), &UnexpectedEOFError{Expected: expectedValue, Loc: ts.eofLocation()}
	}
	loc := ts.location(t)
	switch t.kind {
	case tokNumber:
		return t.num, loc, nil
	case tokIdentifier:
		v, ok := lookup(t.text)
		if !ok {
			return 0, loc, &UndefinedSymbolError{Name: t.text, Loc: loc}
		}
		return v, loc, nil
	case tokLParen:
		v, _, err := evalExpression(ts, lookup)
		if err != nil {
			return 0, loc, err
		}
		closeLoc, err := expectToken(ts, tokRParen)
		if err != nil {
			return 0, loc, err
		}
		return v, loc.extendTo(closeLoc), nil
	case tokPlus:
		v, vloc, err := evalValue(ts, lookup)
		return v, loc.extendTo(vloc), err
	case tokMinus:
		v, vloc, err := evalValue(ts, lookup)
		if err != nil {
			return 0, loc, err
		}
		result := loc.extendTo(vloc)
		if v == math.MinInt32 {
			return 0, result, &ValueOutOfRangeError{Loc: result}
		}
		return -v, result, nil
	case tokNot:
		v, vloc, err := evalValue(ts, lookup)
		if err != nil {
			return 0, loc, err
		}
		return boolValue(v == 0), loc.extendTo(vloc), nil
	case tokBitNot:
		v, vloc, err := evalValue(ts, lookup)
		if err != nil {
			return 0, loc, err
		}
		return ^v, loc.extendTo(vloc), nil
	default:
		return 0, loc, &UnexpectedTokenError{Expected: expectedValue, Loc: loc}
	}
}

// evalBinary is the climbing loop: it keeps folding operators whose
// precedence is at least minPrecedence into lhs, recursing for
// higher-precedence right-hand sides.
func evalBinary(ts *tokenStream, lookup symbolLookup, lhs int32, lhsLoc Location, minPrecedence int) (int32, Location, error) {
	for {
		t, ok := ts.peek()
		if !ok {
			return lhs, lhsLoc, nil
		}
		opPrecedence, isOp := binaryPrecedence(t.kind)
		if !isOp || opPrecedence < minPrecedence {
			return lhs, lhsLoc, nil
		}
		op, _ := ts.next()

		rhs, rhsLoc, err := evalValue(ts, lookup)
		if err != nil {
			return 0, rhsLoc, err
		}
		for {
			nt, ok := ts.peek()
			if !ok {
				break
			}
			nextPrecedence, isOp := binaryPrecedence(nt.kind)
			if !isOp || nextPrecedence <= opPrecedence {
				break
			}
			rhs, rhsLoc, err = evalBinary(ts, lookup, rhs, rhsLoc, opPrecedence+1)
			if err != nil {
				return 0, rhsLoc, err
			}
		}

		lhs, lhsLoc, err = evalBinaryOperator(lhs, lhsLoc, rhs, rhsLoc, op.kind)
		if err != nil {
			return 0, lhsLoc, err
		}
	}
}

// binaryPrecedence returns a binary operator's precedence, loosely
// following the C table. Non-operators report false.
func binaryPrecedence(kind tokenKind) (int, bool) {
	switch kind {
	case tokLogicalOr:
		return 0, true
	case tokLogicalAnd:
		return 1, true
	case tokBitOr, tokBitXor, tokBitAnd:
		return 2, true
	case tokEq, tokNeq, tokLt, tokGt, tokLe, tokGe:
		return 3, true
	case tokShl, tokShr:
		return 4, true
	case tokPlus, tokMinus:
		return 5, true
	case tokAsterisk, tokSlash, tokPercent:
		return 6, true
	default:
		return 0, false
	}
}

func boolValue(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// evalBinaryOperator applies one binary operator with checked arithmetic.
func evalBinaryOperator(lhs int32, lhsLoc Location, rhs int32, rhsLoc Location, op tokenKind) (int32, Location, error) {
	loc := lhsLoc.extendTo(rhsLoc)
	outOfRange := func() (int32, Location, error) {
		return 0, loc, &ValueOutOfRangeError{Loc: loc}
	}

	switch op {
	case tokAsterisk:
		v := int64(lhs) * int64(rhs)
		if v < math.MinInt32 || v > math.MaxInt32 {
			return outOfRange()
		}
		return int32(v), loc, nil
	case tokSlash:
		if rhs == 0 || (lhs == math.MinInt32 && rhs == -1) {
			return outOfRange()
		}
		return lhs / rhs, loc, nil
	case tokPercent:
		if rhs == 0 || (lhs == math.MinInt32 && rhs == -1) {
			return outOfRange()
		}
		return lhs % rhs, loc, nil
	case tokPlus:
		v := int64(lhs) + int64(rhs)
		if v < math.MinInt32 || v > math.MaxInt32 {
			return outOfRange()
		}
		return int32(v), loc, nil
	case tokMinus:
		v := int64(lhs) - int64(rhs)
		if v < math.MinInt32 || v > math.MaxInt32 {
			return outOfRange()
		}
		return int32(v), loc, nil
	case tokShl, tokShr:
		if rhs < 0 {
			return 0, loc, &NegativeShiftError{Loc: rhsLoc}
		}
		if rhs >= 32 {
			return outOfRange()
		}
		if op == tokShl {
			return lhs << uint32(rhs), loc, nil
		}
		return lhs >> uint32(rhs), loc, nil
	case tokEq:
		return boolValue(lhs == rhs), loc, nil
	case tokNeq:
		return boolValue(lhs != rhs), loc, nil
	case tokLt:
		return boolValue(lhs < rhs), loc, nil
	case tokGt:
		return boolValue(lhs > rhs), loc, nil
	case tokLe:
		return boolValue(lhs <= rhs), loc, nil
	case tokGe:
		return boolValue(lhs >= rhs), loc, nil
	case tokLogicalAnd:
		return boolValue(lhs != 0 && rhs != 0), loc, nil
	case tokLogicalOr:
		return boolValue(lhs != 0 || rhs != 0), loc, nil
	case tokBitAnd:
		return lhs & rhs, loc, nil
	case tokBitXor:
		return lhs ^ rhs, loc, nil
	case tokBitOr:
		return lhs | rhs, loc, nil
	}
	return 0, loc, &UnexpectedTokenError{Expected: "binary operator", Loc: loc}
}

// expectToken consumes one token of the given kind.
func expectToken(ts *tokenStream, kind tokenKind) (Location, error) {
	t, ok := ts.next()
	if !ok {
		return ts.eofLocation(), &UnexpectedEOFError{Expected: kind.String(), Loc: ts.eofLocation()}
	}
	if t.kind != kind {
		return ts.location(t), &UnexpectedTokenError{Expected: kind.String(), Loc: ts.location(t)}
	}
	return ts.location(t), nil
}
