// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/pickle16/pickle16/arch"
)

// A parser consumes one file's token stream, updating the shared assembler
// state. Statement-level errors are recorded and parsing resumes at the
// next statement boundary, so a single run reports as many problems as it
// can.
type parser struct {
	a     *Assembler
	state *state
	ts    *tokenStream
}

// parseTop parses a whole file: scope content, which must exhaust the
// stream. A leftover token here is an unmatched `}`.
func (p *parser) parseTop() {
	p.scopeContent()
	if t, ok := p.ts.next(); ok {
		p.a.recordError(&UnexpectedTokenError{
			Expected: "`{`, `;`, end of line, identifier or end of file",
			Loc:      p.ts.location(t),
		})
	}
}

// scopeContent is the statement loop. It returns at end of input or at a
// `}` (which the caller consumes).
func (p *parser) scopeContent() {
	for {
		t, ok := p.ts.peek()
		if !ok {
			return
		}
		switch t.kind {
		case tokEol, tokSemicolon:
			p.ts.next()
		case tokRBrace:
			return
		case tokLBrace:
			p.statement((*parser).anonymousScope)
		case tokIdentifier:
			t2, ok2 := p.ts.peek2()
			switch {
			case ok2 && t2.kind == tokColon:
				p.statement((*parser).label)
			case ok2 && t2.kind == tokAssign:
				p.statement((*parser).assignment)
			case strings.HasPrefix(t.text, "."):
				p.statement((*parser).pseudoInstruction)
			default:
				p.statement((*parser).instruction)
			}
		default:
			p.a.recordError(&UnexpectedTokenError{
				Expected: "`{`, `;`, end of line or identifier",
				Loc:      p.ts.location(t),
			})
			p.ts.next()
			p.resync()
		}
	}
}

// statement runs one production, recording its error and resynchronizing
// at the next statement boundary on failure.
func (p *parser) statement(fn func(*parser) error) {
	if err := fn(p); err != nil {
		p.a.recordError(err)
		p.resync()
	}
}

// resync skips tokens until a statement boundary: past an Eol or `;`, or
// up to a `}` so scope ends still match.
func (p *parser) resync() {
	for {
		t, ok := p.ts.peek()
		if !ok {
			return
		}
		if t.kind == tokRBrace {
			return
		}
		p.ts.next()
		if t.kind == tokEol || t.kind == tokSemicolon {
			return
		}
	}
}

// label parses `name:` and `name: { ... }`. A braced label attaches the
// new scope to the symbol, and the symbol itself is defined in the
// enclosing scope so qualified names can reach into it.
func (p *parser) label() error {
	id, idLoc, err := p.identifier()
	if err != nil {
		return err
	}
	colonLoc, err := p.expect(tokColon)
	if err != nil {
		return err
	}
	loc := idLoc.extendTo(colonLoc)

	if t, ok := p.ts.peek(); ok && t.kind == tokLBrace {
		p.ts.next()
		outer := p.state.activeScopes[len(p.state.activeScopes)-1]
		inner := p.state.pushScope()
		if err := p.state.defineSymbolIn(outer, id, p.state.currentPCSymbol(inner, loc)); err != nil {
			p.a.recordError(err)
		}
		p.scopeContent()
		return p.scopeEnd()
	}

	return p.state.defineSymbol(id, p.state.currentPCSymbol(noScope, loc))
}

// assignment parses `name = expression`.
func (p *parser) assignment() error {
	id, idLoc, err := p.identifier()
	if err != nil {
		return err
	}
	if _, err := p.expect(tokAssign); err != nil {
		return err
	}
	value, valueLoc, err := evalExpression(p.ts, p.lookup)
	if err != nil {
		return err
	}
	return p.state.defineSymbol(id, &symbol{
		kind:      symbolFree,
		value:     value,
		definedAt: idLoc.extendTo(valueLoc),
	})
}

// anonymousScope parses `{ ... }`.
func (p *parser) anonymousScope() error {
	if _, err := p.expect(tokLBrace); err != nil {
		return err
	}
	p.state.pushScope()
	p.scopeContent()
	return p.scopeEnd()
}

func (p *parser) scopeEnd() error {
	p.state.popScope()
	_, err := p.expect(tokRBrace)
	return err
}

// instruction parses a mnemonic and its operand list through the
// generated parse arms, then emits the encoded word.
func (p *parser) instruction() error {
	mnemonic, loc, err := p.identifier()
	if err != nil {
		return err
	}
	inst, known, err := p.parseMnemonic(mnemonic)
	if err != nil {
		return err
	}
	if !known {
		return &UnknownMnemonicError{Mnemonic: mnemonic, Loc: loc}
	}
	p.a.logLine(loc, "instruction %s -> %#06x", inst, inst.Encode())
	p.state.emitWord(inst.Encode())
	return nil
}

// identifier consumes an identifier token.
func (p *parser) identifier() (string, Location, error) {
	t, ok := p.ts.next()
	if !ok {
		return "", p.ts.eofLocation(), &UnexpectedEOFError{Expected: "identifier", Loc: p.ts.eofLocation()}
	}
	loc := p.ts.location(t)
	if t.kind != tokIdentifier {
		return "", loc, &UnexpectedTokenError{Expected: "identifier", Loc: loc}
	}
	return t.text, loc, nil
}

// expect consumes one token of the given kind.
func (p *parser) expect(kind tokenKind) (Location, error) {
	return expectToken(p.ts, kind)
}

// lookup is the expression evaluator's symbol callback. During the first
// pass unresolved names optimistically evaluate to zero so forward
// references can assemble; the second pass resolves them for real and the
// changed-value check catches anything that moved.
func (p *parser) lookup(name string) (int32, bool) {
	if v, ok := p.state.lookup(name); ok {
		return v, true
	}
	if p.state.firstPass {
		return 0, true
	}
	return 0, false
}

// gprOperand parses a general purpose register name.
func (p *parser) gprOperand() (arch.Gpr, error) {
	t, ok := p.ts.next()
	if !ok {
		return 0, &UnexpectedEOFError{Expected: "register name", Loc: p.ts.eofLocation()}
	}
	loc := p.ts.location(t)
	if t.kind != tokIdentifier {
		return 0, &UnexpectedTokenError{Expected: "register name", Loc: loc}
	}
	g, ok := arch.ParseGpr(t.text)
	if !ok {
		return 0, &InvalidGprError{Name: t.text, Loc: loc}
	}
	return g, nil
}

// crOperand parses a control register name. Names are case sensitive.
func (p *parser) crOperand() (arch.ControlRegister, error) {
	t, ok := p.ts.next()
	if !ok {
		return 0, &UnexpectedEOFError{Expected: "control register name", Loc: p.ts.eofLocation()}
	}
	loc := p.ts.location(t)
	if t.kind != tokIdentifier {
		return 0, &UnexpectedTokenError{Expected: "control register name", Loc: loc}
	}
	cr, ok := arch.ParseControlRegister(t.text)
	if !ok {
		return 0, &InvalidCrError{Name: t.text, Loc: loc}
	}
	return cr, nil
}

// immS8 parses an expression as a signed immediate of the given field
// width, casting through int8.
func (p *parser) immS8(bits uint) (int8, error) {
	v, loc, err := p.immediate(bits, true)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt8 || v > math.MaxInt8 {
		return 0, &ValueOutOfRangeError{Loc: loc}
	}
	return int8(v), nil
}

// immS16 parses an expression as a signed immediate of the given field
// width, casting through int16.
func (p *parser) immS16(bits uint) (int16, error) {
	v, loc, err := p.immediate(bits, true)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, &ValueOutOfRangeError{Loc: loc}
	}
	return int16(v), nil
}

// immU8 parses an expression as an unsigned immediate of the given field
// width, casting through uint8.
func (p *parser) immU8(bits uint) (uint8, error) {
	v, loc, err := p.immediate(bits, false)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > math.MaxUint8 {
		return 0, &ValueOutOfRangeError{Loc: loc}
	}
	return uint8(v), nil
}

// immU16 parses an expression as an unsigned immediate of the given field
// width, casting through uint16.
func (p *parser) immU16(bits uint) (uint16, error) {
	v, loc, err := p.immediate(bits, false)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > math.MaxUint16 {
		return 0, &ValueOutOfRangeError{Loc: loc}
	}
	return uint16(v), nil
}

// immediate evaluates an operand expression and range-checks it against
// the exact field width.
func (p *parser) immediate(bits uint, signed bool) (int32, Location, error) {
	v, loc, err := evalExpression(p.ts, p.lookup)
	if err != nil {
		return 0, loc, err
	}
	var lo, hi int32
	if signed {
		lo = -(1 << (bits - 1))
		hi = 1<<(bits-1) - 1
	} else {
		lo = 0
		hi = 1<<bits - 1
	}
	if v < lo || v > hi {
		return 0, loc, &ValueOutOfRangeError{Loc: loc}
	}
	return v, loc, nil
}

// pseudoInstruction dispatches the dot directives.
func (p *parser) pseudoInstruction() error {
	mnemonic, loc, err := p.identifier()
	if err != nil {
		return err
	}
	switch mnemonic {
	case ".db":
		return p.parseDb()
	case ".dw":
		return p.parseDw()
	case ".dd":
		return p.parseDd()
	case ".include":
		return p.parseInclude()
	case ".section":
		return p.parseSection()
	default:
		return &UnknownMnemonicError{Mnemonic: mnemonic, Loc: loc}
	}
}

// parseDb emits byte data: expressions in -128..255 and strings as their
// UTF-8 bytes, packed big endian two per word and zero padded to a word
// boundary.
func (p *parser) parseDb() error {
	var bytes []byte
	for {
		if t, ok := p.ts.peek(); ok && t.kind == tokString {
			p.ts.next()
			bytes = append(bytes, t.str...)
		} else {
			v, loc, err := evalExpression(p.ts, p.lookup)
			if err != nil {
				return err
			}
			if v < -128 || v > 255 {
				return &ValueOutOfRangeError{Loc: loc}
			}
			bytes = append(bytes, byte(v))
		}
		if t, ok := p.ts.peek(); ok && t.kind == tokComma {
			p.ts.next()
			continue
		}
		break
	}
	if len(bytes)%2 != 0 {
		bytes = append(bytes, 0)
	}
	for i := 0; i < len(bytes); i += 2 {
		p.state.emitWord(arch.Word(bytes[i])<<8 | arch.Word(bytes[i+1]))
	}
	return nil
}

// parseDw emits one word per expression.
func (p *parser) parseDw() error {
	for {
		v, loc, err := evalExpression(p.ts, p.lookup)
		if err != nil {
			return err
		}
		if v < math.MinInt16 || v > math.MaxUint16 {
			return &ValueOutOfRangeError{Loc: loc}
		}
		p.state.emitWord(arch.Word(uint32(v)))
		if t, ok := p.ts.peek(); ok && t.kind == tokComma {
			p.ts.next()
			continue
		}
		return nil
	}
}

// parseDd emits two words per expression, high word first, matching the
// big-endian byte order of image files.
func (p *parser) parseDd() error {
	for {
		v, _, err := evalExpression(p.ts, p.lookup)
		if err != nil {
			return err
		}
		u := uint32(v)
		p.state.emitWord(arch.Word(u >> 16))
		p.state.emitWord(arch.Word(u))
		if t, ok := p.ts.peek(); ok && t.kind == tokComma {
			p.ts.next()
			continue
		}
		return nil
	}
}

// parseInclude lexes and parses another file in place. Includes resolve
// relative to the including file and may nest; a cycle is an error.
func (p *parser) parseInclude() error {
	t, ok := p.ts.next()
	if !ok {
		return &UnexpectedEOFError{Expected: "file name string", Loc: p.ts.eofLocation()}
	}
	loc := p.ts.location(t)
	if t.kind != tokString {
		return &UnexpectedTokenError{Expected: "file name string", Loc: loc}
	}
	path := t.str
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(p.a.cache.Name(p.ts.file)), path)
	}
	return p.a.parseInclude(path, loc)
}

// parseSection switches the output section: `.section name` or
// `.section name, start`.
func (p *parser) parseSection() error {
	name, _, err := p.identifier()
	if err != nil {
		return err
	}
	haveStart := false
	var start arch.Word
	if t, ok := p.ts.peek(); ok && t.kind == tokComma {
		p.ts.next()
		v, loc, err := evalExpression(p.ts, p.lookup)
		if err != nil {
			return err
		}
		if v < 0 || v > math.MaxUint16 {
			return &ValueOutOfRangeError{Loc: loc}
		}
		start, haveStart = arch.Word(v), true
	}
	p.state.switchSection(name, start, haveStart)
	return nil
}
