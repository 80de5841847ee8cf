// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asm implements the two-pass pickle16 assembler.
//
// The first pass parses every input file, assigning addresses and building
// the symbol table; forward references optimistically evaluate to zero.
// The second pass re-parses everything against the now complete table and
// requires every symbol to come out with the same value and kind, which
// catches layouts that shifted under a forward reference.
package asm

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pickle16/pickle16/arch"
)

var errParse = errors.New("parse error")

// A SectionResult describes one assembled section.
type SectionResult struct {
	Name         string
	StartAddress arch.Word
	Data         []arch.Word
}

// A Result holds the output of an assembly: the placed word image and the
// individual sections.
type Result struct {
	Image    []arch.Word
	Sections []SectionResult
}

// An Assembler assembles one or more source files into a word image. It is
// created fresh per job and discarded after emission.
type Assembler struct {
	cache   *SourceCache
	state   *state
	roots   []FileID
	errs    []error
	verbose bool

	including []string // active include chain, for cycle detection
}

// New creates an empty assembler. With verbose set it traces its work to
// stdout.
func New(verbose bool) *Assembler {
	return &Assembler{
		cache:   NewSourceCache(),
		state:   newState(),
		verbose: verbose,
	}
}

// AddFile adds an input file to the assembly.
func (a *Assembler) AddFile(path string) error {
	id, err := a.cache.AddFile(path)
	if err != nil {
		return err
	}
	a.roots = append(a.roots, id)
	return nil
}

// AddSource adds an in-memory input under a display name.
func (a *Assembler) AddSource(name, src string) {
	a.roots = append(a.roots, a.cache.AddSnippet(name, src))
}

// Errors returns the diagnostics collected so far.
func (a *Assembler) Errors() []error {
	return a.errs
}

// WriteErrors renders every diagnostic through the source cache.
func (a *Assembler) WriteErrors(w io.Writer) {
	for _, err := range a.errs {
		fmt.Fprintln(w, a.cache.FormatError(err))
	}
}

// Assemble runs both passes and composes the image. On any recorded
// diagnostic it returns errParse; the details are available from Errors
// and WriteErrors.
func (a *Assembler) Assemble() (*Result, error) {
	a.logSection("Pass 1")
	for _, id := range a.roots {
		a.parseFile(id)
	}
	if len(a.errs) > 0 {
		return nil, errParse
	}

	a.logSection("Pass 2")
	a.state.startSecondPass()
	for _, id := range a.roots {
		a.parseFile(id)
	}
	if len(a.errs) > 0 {
		return nil, errParse
	}

	a.logSection("Emitting image")
	result, err := a.emit()
	if err != nil {
		a.recordError(err)
		return nil, errParse
	}
	return result, nil
}

func (a *Assembler) parseFile(id FileID) {
	a.log("parsing %s", a.cache.Name(id))
	p := &parser{a: a, state: a.state, ts: newTokenStream(id, a.cache.files[id])}
	p.parseTop()
}

// parseInclude parses an included file in place, guarding against include
// cycles.
func (a *Assembler) parseInclude(path string, loc Location) error {
	for _, active := range a.including {
		if active == path {
			return &GeneralError{Msg: fmt.Sprintf("include cycle through %q", path), Loc: loc}
		}
	}
	id, err := a.cache.AddFile(path)
	if err != nil {
		return &GeneralError{Msg: err.Error(), Loc: loc}
	}
	a.including = append(a.including, path)
	a.parseFile(id)
	a.including = a.including[:len(a.including)-1]
	return nil
}

// emit places every non-empty section at its start address in one image.
// Sections must not overlap.
func (a *Assembler) emit() (*Result, error) {
	var sections []*section
	for _, s := range a.state.sections {
		if len(s.data) > 0 {
			sections = append(sections, s)
		}
	}
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].startAddress < sections[j].startAddress
	})

	result := &Result{}
	end := 0
	for _, s := range sections {
		start := int(s.startAddress)
		if start < end {
			return nil, fmt.Errorf("section %s at %#06x overlaps the previous section", s.name, s.startAddress)
		}
		for end < start {
			result.Image = append(result.Image, 0)
			end++
		}
		result.Image = append(result.Image, s.data...)
		end += len(s.data)

		result.Sections = append(result.Sections, SectionResult{
			Name:         s.name,
			StartAddress: s.startAddress,
			Data:         s.data,
		})
		a.log("section %-10s start=%#06x words=%d", s.name, s.startAddress, len(s.data))
	}
	return result, nil
}

func (a *Assembler) recordError(err error) {
	a.errs = append(a.errs, err)
}

// In verbose mode, log a line to standard output.
func (a *Assembler) log(format string, args ...any) {
	if a.verbose {
		fmt.Printf(format, args...)
		fmt.Println()
	}
}

// In verbose mode, log a line attached to a source location.
func (a *Assembler) logLine(loc Location, format string, args ...any) {
	if a.verbose {
		detail := fmt.Sprintf(format, args...)
		fmt.Printf("%s:%d..%d | %s\n", a.cache.Name(loc.File), loc.Start, loc.End, detail)
	}
}

// In verbose mode, log a section header.
func (a *Assembler) logSection(name string) {
	if a.verbose {
		fmt.Println(strings.Repeat("-", len(name)+6))
		fmt.Printf("-- %s --\n", name)
		fmt.Println(strings.Repeat("-", len(name)+6))
	}
}

// AssembleFiles is the convenience entry used by the command line tool:
// it assembles the named files and writes diagnostics to w on failure.
func AssembleFiles(paths []string, verbose bool, w io.Writer) (*Result, error) {
	a := New(verbose)
	for _, path := range paths {
		if err := a.AddFile(path); err != nil {
			fmt.Fprintln(w, err)
			return nil, errParse
		}
	}
	result, err := a.Assemble()
	if err != nil {
		a.WriteErrors(w)
		return nil, err
	}
	return result, nil
}

// AssembleString assembles a single in-memory source, mainly for tests and
// the documentation examples.
func AssembleString(src string) (*Result, []error) {
	a := New(false)
	a.AddSource("<input>", src)
	result, err := a.Assemble()
	if err != nil {
		return nil, a.Errors()
	}
	return result, nil
}
