// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "fmt"

// A tokenKind identifies one lexical token class.
type tokenKind byte

const (
	tokIdentifier tokenKind = iota
	tokNumber
	tokString
	tokColon
	tokComma
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokLt
	tokGt
	tokEq
	tokNeq
	tokLe
	tokGe
	tokAssign
	tokPlus
	tokMinus
	tokAsterisk
	tokSlash
	tokPercent
	tokShl
	tokShr
	tokLogicalAnd
	tokLogicalOr
	tokNot
	tokBitAnd
	tokBitOr
	tokBitXor
	tokBitNot
	tokSemicolon
	tokEol
	tokInvalid
)

var tokenKindNames = map[tokenKind]string{
	tokIdentifier: "identifier",
	tokNumber:     "number",
	tokString:     "string",
	tokColon:      "`:`",
	tokComma:      "`,`",
	tokLParen:     "`(`",
	tokRParen:     "`)`",
	tokLBrace:     "`{`",
	tokRBrace:     "`}`",
	tokLt:         "`<`",
	tokGt:         "`>`",
	tokEq:         "`==`",
	tokNeq:        "`!=`",
	tokLe:         "`<=`",
	tokGe:         "`>=`",
	tokAssign:     "`=`",
	tokPlus:       "`+`",
	tokMinus:      "`-`",
	tokAsterisk:   "`*`",
	tokSlash:      "`/`",
	tokPercent:    "`%`",
	tokShl:        "`<<`",
	tokShr:        "`>>`",
	tokLogicalAnd: "`&&`",
	tokLogicalOr:  "`||`",
	tokNot:        "`!`",
	tokBitAnd:     "`&`",
	tokBitOr:      "`|`",
	tokBitXor:     "`^`",
	tokBitNot:     "`~`",
	tokSemicolon:  "`;`",
	tokEol:        "end of line",
	tokInvalid:    "invalid token",
}

func (k tokenKind) String() string {
	if s, ok := tokenKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", byte(k))
}

// A span is a byte range into one source file.
type span struct {
	start int
	end   int
}

// A token is one lexical token with its source span. The text field holds
// the raw identifier text, num the parsed numeric literal, str the decoded
// string literal.
type token struct {
	kind tokenKind
	text string
	num  int32
	str  string
	span span
}
