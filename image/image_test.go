// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package image

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/pickle16/pickle16/arch"
)

func TestReadSegmentsSingle(t *testing.T) {
	segments, err := ReadSegments(strings.NewReader(":040010001122334442\n:00000001FF\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Segment{{Offset: 0x0010, Data: []byte{0x11, 0x22, 0x33, 0x44}}}
	if !reflect.DeepEqual(segments, want) {
		t.Errorf("segments = %+v", segments)
	}
}

func TestReadSegmentsExtendedAddress(t *testing.T) {
	src := ":040010001122334442\n:02000004FFFFFC\n:040010001122334442\n:00000001FF\n"
	segments, err := ReadSegments(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 2 {
		t.Fatalf("segment count = %d", len(segments))
	}
	if segments[0].Offset != 0x00000010 || segments[1].Offset != 0xffff0010 {
		t.Errorf("offsets = %#08x, %#08x", segments[0].Offset, segments[1].Offset)
	}

	// The low-level segment loader succeeds, but composing a full image
	// fails: the image does not start at offset zero.
	if _, err := Compose(segments); !errors.Is(err, ErrOffset) {
		t.Errorf("Compose error = %v, want ErrOffset", err)
	}
}

func TestComposeHappyPath(t *testing.T) {
	words, err := Compose([]Segment{
		{Offset: 0, Data: []byte{0x11, 0x22, 0x33, 0x44}},
		{Offset: 8, Data: []byte{0xaa, 0xbb}},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []arch.Word{0x1122, 0x3344, 0, 0, 0xaabb}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("words = %04x", words)
	}
}

func TestComposeErrors(t *testing.T) {
	if _, err := Compose(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty: %v", err)
	}
	if _, err := Compose([]Segment{{Offset: 2, Data: []byte{1, 2}}}); !errors.Is(err, ErrOffset) {
		t.Errorf("offset: %v", err)
	}
	if _, err := Compose([]Segment{
		{Offset: 0, Data: []byte{1, 2, 3, 4}},
		{Offset: 2, Data: []byte{5, 6}},
	}); !errors.Is(err, ErrOverlap) {
		t.Errorf("overlap: %v", err)
	}

	var odd *OddRecordError
	_, err := Compose([]Segment{{Offset: 0, Data: []byte{1, 2}}, {Offset: 0x11 * 2, Data: []byte{1}}})
	if !errors.As(err, &odd) {
		t.Errorf("odd size: %v", err)
	}
}

func TestComposeOddOffset(t *testing.T) {
	segments, err := ReadSegments(strings.NewReader(":040011001122334441\n:00000001FF\n"))
	if err != nil {
		t.Fatal(err)
	}
	var odd *OddRecordError
	if _, err := Compose(segments); !errors.As(err, &odd) {
		t.Fatalf("error = %v, want OddRecordError", err)
	}
	if odd.Offset != 0x11 || odd.Size != 4 {
		t.Errorf("detail = %+v", odd)
	}
}

func TestUnsupportedRecordType(t *testing.T) {
	_, err := ReadSegments(strings.NewReader(":020000021200EA\n:00000001FF\n"))
	var unsupported *UnsupportedRecordError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want UnsupportedRecordError", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	words := []arch.Word{0x0000, 0x1829, 0x1019, 0xffff, 0xabcd}
	var buf bytes.Buffer
	if err := Write(&buf, words); err != nil {
		t.Fatal(err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, words) {
		t.Errorf("round trip = %04x, want %04x", got, words)
	}
}
