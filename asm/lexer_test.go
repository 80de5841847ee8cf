// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "testing"

type simpleToken struct {
	kind tokenKind
	text string
	num  int32
	str  string
}

func simplify(tokens []token) []simpleToken {
	out := make([]simpleToken, len(tokens))
	for i, t := range tokens {
		out[i] = simpleToken{kind: t.kind, text: t.text, num: t.num, str: t.str}
	}
	return out
}

func checkTokens(t *testing.T, src string, want []simpleToken) {
	t.Helper()
	got := simplify(tokenize(src))
	if len(got) != len(want) {
		t.Fatalf("tokenize(%q) = %+v, want %+v", src, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("tokenize(%q)[%d] = %+v, want %+v", src, i, got[i], want[i])
		}
	}
}

func ident(s string) simpleToken  { return simpleToken{kind: tokIdentifier, text: s} }
func number(n int32) simpleToken  { return simpleToken{kind: tokNumber, num: n} }
func str(s string) simpleToken    { return simpleToken{kind: tokString, str: s} }
func punct(k tokenKind) simpleToken { return simpleToken{kind: k} }

func TestTokenizeIdentifiers(t *testing.T) {
	checkTokens(t, "abcd", []simpleToken{ident("abcd")})
	checkTokens(t, ".abcd1", []simpleToken{ident(".abcd1")})
	checkTokens(t, "_123", []simpleToken{ident("_123")})
	checkTokens(t, "a.b.c", []simpleToken{ident("a.b.c")})
}

func TestTokenizeNumbers(t *testing.T) {
	checkTokens(t, "0", []simpleToken{number(0)})
	checkTokens(t, "123", []simpleToken{number(123)})
	checkTokens(t, "0x1_23", []simpleToken{number(0x123)})
	checkTokens(t, "0b1010", []simpleToken{number(10)})
	checkTokens(t, "0o17", []simpleToken{number(15)})
	checkTokens(t, "0XFF", []simpleToken{number(255)})
	checkTokens(t, "2_147_483_647", []simpleToken{number(2147483647)})

	// Out of range and malformed literals become invalid tokens.
	checkTokens(t, "2_147_483_648", []simpleToken{punct(tokInvalid)})
	checkTokens(t, "0x", []simpleToken{punct(tokInvalid)})

	// A non-digit splits the literal.
	checkTokens(t, "0xefg123", []simpleToken{number(0xef), ident("g123")})
	checkTokens(t, "0b0123", []simpleToken{number(1), number(23)})
}

func TestTokenizeStrings(t *testing.T) {
	checkTokens(t, `"abc"`, []simpleToken{str("abc")})
	checkTokens(t, `"\u{1f44d}"`, []simpleToken{str("\U0001F44D")})
	checkTokens(t, `"\u{1F44D}"`, []simpleToken{str("\U0001F44D")})
	checkTokens(t, `"\\a\"b\nc\rd\te\0f\u{20}"`, []simpleToken{str("\\a\"b\nc\rd\te\x00f ")})

	checkTokens(t, `"\q"`, []simpleToken{punct(tokInvalid), punct(tokInvalid)})
	checkTokens(t, `"\u{aX}"`, []simpleToken{punct(tokInvalid), ident("X"), punct(tokRBrace), punct(tokInvalid)})
	checkTokens(t, `"\u20"`, []simpleToken{punct(tokInvalid), number(20), punct(tokInvalid)})

	// Unescaped newline ends the string token; the newline lexes on its
	// own.
	checkTokens(t, "\"abc\ndef\"", []simpleToken{
		punct(tokInvalid), punct(tokEol), ident("def"), punct(tokInvalid),
	})
}

func TestTokenizeOperators(t *testing.T) {
	checkTokens(t, "123 + 456", []simpleToken{number(123), punct(tokPlus), number(456)})
	checkTokens(t, "<<>><= >= == != && || = <", []simpleToken{
		punct(tokShl), punct(tokShr), punct(tokLe), punct(tokGe),
		punct(tokEq), punct(tokNeq), punct(tokLogicalAnd), punct(tokLogicalOr),
		punct(tokAssign), punct(tokLt),
	})
	checkTokens(t, "a&b|c^~d", []simpleToken{
		ident("a"), punct(tokBitAnd), ident("b"), punct(tokBitOr),
		ident("c"), punct(tokBitXor), punct(tokBitNot), ident("d"),
	})
}

func TestTokenizeLinesAndComments(t *testing.T) {
	checkTokens(t, "abc\ndef;ghi", []simpleToken{
		ident("abc"), punct(tokEol), ident("def"), punct(tokSemicolon), ident("ghi"),
	})
	checkTokens(t, "abc#comment\ndef", []simpleToken{
		ident("abc"), punct(tokEol), ident("def"),
	})
	checkTokens(t, "abc\n   \t\n#comment\n  #comment\ndef", []simpleToken{
		ident("abc"), punct(tokEol), punct(tokEol), punct(tokEol), punct(tokEol), ident("def"),
	})
}

func TestTokenizeSpans(t *testing.T) {
	tokens := tokenize("ab 12")
	if tokens[0].span != (span{0, 2}) || tokens[1].span != (span{3, 5}) {
		t.Errorf("spans = %+v", tokens)
	}
}

// No input may crash the tokenizer.
func TestTokenizeRobustness(t *testing.T) {
	inputs := []string{
		"", "\n", "\"", "\"\\", "\"\\u", "\"\\u{", "\"\\u{}", "0b", "0o_", "@$`",
		"\x00\x01\x02", "0x_ _", "#", "# only a comment",
	}
	for _, src := range inputs {
		tokenize(src)
	}
}
