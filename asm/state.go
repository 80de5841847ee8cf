// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strings"

	"github.com/pickle16/pickle16/arch"
)

// scopePathSep separates scope components in qualified names. Symbol names
// themselves must not contain it.
const scopePathSep = ":"

// A scopeID indexes the state's scope arena. Scopes form a tree; the
// arena avoids pointer cycles between parent and child links.
type scopeID int

// A sectionID indexes the state's section list.
type sectionID int

const noScope scopeID = -1

// A symbolKind tags the two symbol variants.
type symbolKind byte

const (
	// symbolLocation marks a label: a section-relative offset, possibly
	// with an attached scope.
	symbolLocation symbolKind = iota
	// symbolFree marks a plain value assignment.
	symbolFree
)

// A symbol is one entry of a scope's table.
type symbol struct {
	kind symbolKind

	// symbolLocation
	section       sectionID
	offset        arch.Word
	attachedScope scopeID

	// symbolFree
	value int32

	definedAt Location
}

// equalValue reports whether two definitions agree: the second pass
// requires every symbol to be re-defined with an identical kind and value.
func (s *symbol) equalValue(other *symbol) bool {
	if s.kind != other.kind {
		return false
	}
	switch s.kind {
	case symbolLocation:
		return s.section == other.section && s.offset == other.offset &&
			s.attachedScope == other.attachedScope
	default:
		return s.value == other.value
	}
}

// A scope is one node of the scope tree.
type scope struct {
	parent  scopeID
	symbols map[string]*symbol
}

// A section is a named stream of output words with a start address.
type section struct {
	name         string
	startAddress arch.Word
	data         []arch.Word
}

// state is the assembler's mutable core: the scope tree, the section
// table, and the pass flag. It survives from the first pass into the
// second so symbol values can be compared between them.
type state struct {
	firstPass bool

	scopes       []*scope
	activeScopes []scopeID // root..current path
	scopeOrder   []scopeID // creation order, replayed by the second pass
	nextScope    int

	sections       []*section
	sectionNames   map[string]sectionID
	currentSection sectionID
}

func newState() *state {
	s := &state{
		firstPass:    true,
		sectionNames: make(map[string]sectionID),
	}
	root := s.allocScope(noScope)
	s.activeScopes = []scopeID{root}
	text := s.allocSection(".text", 0)
	s.currentSection = text
	return s
}

func (s *state) allocScope(parent scopeID) scopeID {
	id := scopeID(len(s.scopes))
	s.scopes = append(s.scopes, &scope{parent: parent, symbols: make(map[string]*symbol)})
	return id
}

func (s *state) allocSection(name string, start arch.Word) sectionID {
	id := sectionID(len(s.sections))
	s.sections = append(s.sections, &section{name: name, startAddress: start})
	s.sectionNames[name] = id
	return id
}

// startSecondPass rewinds everything the parser rebuilds — section data,
// the active scope path, the scope replay cursor — while keeping the scope
// tree and symbol tables for the changed-value check.
func (s *state) startSecondPass() {
	s.firstPass = false
	s.activeScopes = s.activeScopes[:1]
	s.nextScope = 0
	for _, sec := range s.sections {
		sec.data = sec.data[:0]
	}
	s.currentSection = s.sectionNames[".text"]
}

// pushScope enters a new scope. The first pass allocates; the second pass
// re-enters the same scopes in creation order, which is identical because
// parsing is deterministic.
func (s *state) pushScope() scopeID {
	var id scopeID
	if s.firstPass {
		id = s.allocScope(s.activeScopes[len(s.activeScopes)-1])
		s.scopeOrder = append(s.scopeOrder, id)
	} else {
		id = s.scopeOrder[s.nextScope]
	}
	s.nextScope++
	s.activeScopes = append(s.activeScopes, id)
	return id
}

func (s *state) popScope() {
	s.activeScopes = s.activeScopes[:len(s.activeScopes)-1]
}

// currentPCSymbol builds the Location symbol for a label defined here.
func (s *state) currentPCSymbol(attachedScope scopeID, definedAt Location) *symbol {
	return &symbol{
		kind:          symbolLocation,
		section:       s.currentSection,
		offset:        arch.Word(len(s.sections[s.currentSection].data)),
		attachedScope: attachedScope,
		definedAt:     definedAt,
	}
}

// defineSymbol installs a symbol in the current scope. The first pass
// rejects duplicates; the second pass instead requires the re-definition
// to match the first pass exactly.
func (s *state) defineSymbol(name string, sym *symbol) error {
	return s.defineSymbolIn(s.activeScopes[len(s.activeScopes)-1], name, sym)
}

// defineSymbolIn installs a symbol in a specific scope. Labels that open a
// scope are defined in the scope that encloses them, not the one they
// attach.
func (s *state) defineSymbolIn(target scopeID, name string, sym *symbol) error {
	if strings.Contains(name, scopePathSep) {
		return &GeneralError{
			Msg: "symbol definition can't contain path separators",
			Loc: sym.definedAt,
		}
	}
	active := s.scopes[target]
	previous := active.symbols[name]
	if s.firstPass {
		if previous != nil {
			return &SymbolRedefinitionError{
				Name:     name,
				Loc:      sym.definedAt,
				Previous: previous.definedAt,
			}
		}
		active.symbols[name] = sym
		return nil
	}
	if previous == nil || !previous.equalValue(sym) {
		return &SymbolChangedValueError{Name: name, Loc: sym.definedAt}
	}
	return nil
}

// symbolValue computes a symbol's value: free symbols carry theirs, labels
// are section start plus offset.
func (s *state) symbolValue(sym *symbol) int32 {
	if sym.kind == symbolFree {
		return sym.value
	}
	return int32(s.sections[sym.section].startAddress) + int32(sym.offset)
}

// lookup resolves a possibly dotted name. The first component is searched
// along the active scope path from the innermost scope outward; later
// components descend through attached label scopes. A whole-name match
// wins over path resolution, since label names may themselves contain
// dots.
func (s *state) lookup(name string) (int32, bool) {
	if sym := s.lookupWhole(name); sym != nil {
		return s.symbolValue(sym), true
	}
	if i := strings.IndexByte(name, '.'); i > 0 {
		first, rest := name[:i], name[i+1:]
		sym := s.lookupWhole(first)
		for sym != nil && rest != "" {
			if sym.kind != symbolLocation || sym.attachedScope == noScope {
				return 0, false
			}
			component := rest
			if j := strings.IndexByte(rest, '.'); j >= 0 {
				component, rest = rest[:j], rest[j+1:]
			} else {
				rest = ""
			}
			sym = s.scopes[sym.attachedScope].symbols[component]
		}
		if sym != nil {
			return s.symbolValue(sym), true
		}
	}
	return 0, false
}

func (s *state) lookupWhole(name string) *symbol {
	for i := len(s.activeScopes) - 1; i >= 0; i-- {
		if sym := s.scopes[s.activeScopes[i]].symbols[name]; sym != nil {
			return sym
		}
	}
	return nil
}

// emitWord appends a word to the current section.
func (s *state) emitWord(w arch.Word) {
	sec := s.sections[s.currentSection]
	sec.data = append(sec.data, w)
}

// switchSection makes the named section current, creating it on first
// use.
func (s *state) switchSection(name string, start arch.Word, haveStart bool) {
	id, ok := s.sectionNames[name]
	if !ok {
		var addr arch.Word
		if haveStart {
			addr = start
		}
		id = s.allocSection(name, addr)
	}
	s.currentSection = id
}
