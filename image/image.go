// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package image loads and saves pickle16 memory images in Intel-HEX form.
// Record parsing is done by gohex; this package adds the platform rules:
// byte segments must be word aligned, the composed image starts at offset
// zero, gaps fill with zero words, and bytes pair big-endian into words.
package image

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/marcinbor85/gohex"

	"github.com/pickle16/pickle16/arch"
)

// A Segment is a run of bytes at a byte offset in the image.
type Segment struct {
	Offset uint32
	Data   []byte
}

// End returns the offset one past the segment's last byte.
func (s Segment) End() uint32 {
	return s.Offset + uint32(len(s.Data))
}

// Image loading errors.
var (
	ErrEmpty   = errors.New("no data found in image")
	ErrOffset  = errors.New("image does not start at offset 0")
	ErrOverlap = errors.New("image segments are overlapping")
)

// An OddRecordError reports a segment that is not aligned to word
// boundaries. Words are two bytes, so offsets and sizes must be even.
type OddRecordError struct {
	Offset uint32
	Size   uint32
}

func (e *OddRecordError) Error() string {
	return fmt.Sprintf("only even offsets and even record sizes are supported (%#09x+%dB)", e.Offset, e.Size)
}

// An UnsupportedRecordError wraps a record-level parse failure. Only data,
// extended linear address and end-of-file records are meaningful here.
type UnsupportedRecordError struct {
	Err error
}

func (e *UnsupportedRecordError) Error() string {
	return fmt.Sprintf("unsupported or malformed ihex record: %v", e.Err)
}

func (e *UnsupportedRecordError) Unwrap() error {
	return e.Err
}

// ReadSegments parses Intel-HEX records into byte segments, sorted by
// offset. Empty data records are skipped. Overlapping records fail.
func ReadSegments(r io.Reader) ([]Segment, error) {
	m := gohex.NewMemory()
	if err := m.ParseIntelHex(r); err != nil {
		return nil, &UnsupportedRecordError{Err: err}
	}
	var segments []Segment
	for _, s := range m.GetDataSegments() {
		if len(s.Data) == 0 {
			continue
		}
		segments = append(segments, Segment{Offset: s.Address, Data: s.Data})
	}
	sort.Slice(segments, func(i, j int) bool { return segments[i].Offset < segments[j].Offset })
	return segments, nil
}

// Compose checks segment alignment and placement and concatenates the
// segments into a word image, zero-filling internal gaps. Byte pairs are
// big endian.
func Compose(segments []Segment) ([]arch.Word, error) {
	if len(segments) == 0 {
		return nil, ErrEmpty
	}
	for _, s := range segments {
		if s.Offset%2 != 0 || len(s.Data)%2 != 0 {
			return nil, &OddRecordError{Offset: s.Offset, Size: uint32(len(s.Data))}
		}
	}
	if segments[0].Offset != 0 {
		return nil, ErrOffset
	}

	var words []arch.Word
	end := uint32(0)
	for _, s := range segments {
		if s.Offset < end {
			return nil, ErrOverlap
		}
		for i := uint32(0); i < (s.Offset-end)/2; i++ {
			words = append(words, 0)
		}
		for i := 0; i < len(s.Data); i += 2 {
			words = append(words, arch.Word(s.Data[i])<<8|arch.Word(s.Data[i+1]))
		}
		end = s.End()
	}
	return words, nil
}

// Read loads a complete word image from Intel-HEX text.
func Read(r io.Reader) ([]arch.Word, error) {
	segments, err := ReadSegments(r)
	if err != nil {
		return nil, err
	}
	return Compose(segments)
}

// Load loads a word image from a file.
func Load(path string) ([]arch.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Write emits a word image as Intel-HEX, big endian, starting at offset
// zero.
func Write(w io.Writer, words []arch.Word) error {
	buf := make([]byte, 0, len(words)*2)
	for _, word := range words {
		buf = append(buf, byte(word>>8), byte(word))
	}
	m := gohex.NewMemory()
	if err := m.AddBinary(0, buf); err != nil {
		return err
	}
	return m.DumpIntelHex(w, 16)
}

// Save writes a word image to a file.
func Save(path string, words []arch.Word) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, words); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
