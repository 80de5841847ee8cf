// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// A FileID identifies one file in a SourceCache.
type FileID int

// A Location is a byte range within one source file. Every assembler error
// carries one so diagnostics can point at source text.
type Location struct {
	File  FileID
	Start int
	End   int
}

// extendTo combines two ordered locations in the same file into one
// covering both. An empty location yields the other.
func (l Location) extendTo(other Location) Location {
	if l.Start == l.End {
		return other
	}
	if other.Start == other.End {
		return l
	}
	return Location{File: l.File, Start: l.Start, End: other.End}
}

// A sourceFile is one cached input: its name, source text, token stream
// and line table.
type sourceFile struct {
	name       string
	src        string
	tokens     []token
	lineStarts []int
}

// A SourceCache owns every input file of an assembly, keyed by id. Files
// are tokenized once when added; both passes and all diagnostics work from
// the cache.
type SourceCache struct {
	files  []*sourceFile
	byPath map[string]FileID
}

// NewSourceCache creates an empty cache.
func NewSourceCache() *SourceCache {
	return &SourceCache{byPath: make(map[string]FileID)}
}

// AddFile reads and tokenizes a file from disk. Adding the same path twice
// returns the original id, which keeps file ids stable across the two
// passes when sources pull in includes.
func (c *SourceCache) AddFile(path string) (FileID, error) {
	if id, ok := c.byPath[path]; ok {
		return id, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	id := c.AddSnippet(path, string(src))
	c.byPath[path] = id
	return id, nil
}

// AddSnippet tokenizes an in-memory source under the given display name.
func (c *SourceCache) AddSnippet(name, src string) FileID {
	f := &sourceFile{
		name:       name,
		src:        src,
		tokens:     tokenize(src),
		lineStarts: lineStarts(src),
	}
	c.files = append(c.files, f)
	return FileID(len(c.files) - 1)
}

// Name returns a file's display name.
func (c *SourceCache) Name(id FileID) string {
	return c.files[id].name
}

func lineStarts(src string) []int {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// position converts a byte offset to 1-based line and column numbers.
func (f *sourceFile) position(offset int) (line, col int) {
	i := sort.SearchInts(f.lineStarts, offset+1) - 1
	return i + 1, offset - f.lineStarts[i] + 1
}

// lineText returns the text of a 1-based line without its newline.
func (f *sourceFile) lineText(line int) string {
	start := f.lineStarts[line-1]
	end := len(f.src)
	if line < len(f.lineStarts) {
		end = f.lineStarts[line] - 1
	}
	return strings.TrimSuffix(f.src[start:end], "\r")
}

// FormatError renders a diagnostic as file:line:col with the source line
// and a caret marking the range. Errors without a location render as-is.
func (c *SourceCache) FormatError(err error) string {
	located, ok := err.(locatedError)
	if !ok {
		return err.Error()
	}
	loc := located.location()
	if int(loc.File) >= len(c.files) {
		return err.Error()
	}
	f := c.files[loc.File]
	line, col := f.position(loc.Start)
	text := f.lineText(line)

	width := loc.End - loc.Start
	if width < 1 {
		width = 1
	}
	if max := len(text) - (col - 1); width > max {
		width = max
	}
	if width < 1 {
		width = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d: error: %s\n", f.name, line, col, err.Error())
	fmt.Fprintf(&b, "  %s\n", text)
	fmt.Fprintf(&b, "  %s%s", strings.Repeat(" ", col-1), strings.Repeat("^", width))
	return b.String()
}
