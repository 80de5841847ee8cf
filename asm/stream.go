// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// A tokenStream walks one file's tokens with lookahead. The parser peeks
// up to two tokens (to tell labels and assignments from instructions)
// before committing to a production.
type tokenStream struct {
	file   FileID
	tokens []token
	pos    int
	srcLen int
}

func newTokenStream(file FileID, f *sourceFile) *tokenStream {
	return &tokenStream{file: file, tokens: f.tokens, srcLen: len(f.src)}
}

// next consumes and returns the next token.
func (ts *tokenStream) next() (token, bool) {
	if ts.pos >= len(ts.tokens) {
		return token{}, false
	}
	t := ts.tokens[ts.pos]
	ts.pos++
	return t, true
}

// peek returns the next token without consuming it.
func (ts *tokenStream) peek() (token, bool) {
	if ts.pos >= len(ts.tokens) {
		return token{}, false
	}
	return ts.tokens[ts.pos], true
}

// peek2 returns the token after the next one.
func (ts *tokenStream) peek2() (token, bool) {
	if ts.pos+1 >= len(ts.tokens) {
		return token{}, false
	}
	return ts.tokens[ts.pos+1], true
}

// location converts a token's span to a Location in this stream's file.
func (ts *tokenStream) location(t token) Location {
	return Location{File: ts.file, Start: t.span.start, End: t.span.end}
}

// eofLocation points at the end of the file.
func (ts *tokenStream) eofLocation() Location {
	return Location{File: ts.file, Start: ts.srcLen, End: ts.srcLen}
}
