package hldemo

import (
	"errors"
	"testing"
)

func TestReaderBounds(t *testing.T) {
	t.Parallel()

	r := newReader([]byte{1, 0, 0, 0, 0xff})
	v, err := r.readI32()
	if err != nil || v != 1 {
		t.Fatalf("readI32: got %d, %v", v, err)
	}
	_, err = r.readI32()
	var nm *NeedMoreBytesError
	if !errors.As(err, &nm) || nm.Count != 3 {
		t.Fatalf("short readI32: got %v, want 3 more bytes", err)
	}
	if r.off != 4 {
		t.Fatalf("failed read moved the cursor to %d", r.off)
	}
	b, err := r.readI8()
	if err != nil || b != -1 {
		t.Fatalf("readI8: got %d, %v", b, err)
	}
}

func TestReaderReadBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      []byte
		max     int32
		want    string
		need    int
		known   bool
		wantLen bool
	}{
		{name: "ok", in: []byte{3, 0, 0, 0, 'a', 'b', 'c', 'd'}, max: -1, want: "abc"},
		{name: "empty", in: []byte{0, 0, 0, 0}, max: 8, want: ""},
		{name: "prefix cut", in: []byte{3, 0}, max: -1, need: 0},
		{name: "body cut", in: []byte{5, 0, 0, 0, 'a'}, max: -1, need: 4, known: true},
		{name: "over max", in: []byte{9, 0, 0, 0}, max: 8, wantLen: true},
		{name: "negative", in: []byte{0xff, 0xff, 0xff, 0xff}, max: -1, wantLen: true},
	}

	for _, tt := range tests {
		r := newReader(tt.in)
		got, err := r.readBytes("test", 0, tt.max)
		switch {
		case tt.wantLen:
			if !errors.Is(err, ErrInvalidLength) {
				t.Fatalf("%s: got %v, want ErrInvalidLength", tt.name, err)
			}
		case tt.need > 0 || tt.name == "prefix cut":
			var nm *NeedMoreBytesError
			if !errors.As(err, &nm) {
				t.Fatalf("%s: got %v, want *NeedMoreBytesError", tt.name, err)
			}
			if nm.Known() != tt.known || nm.Count != tt.need {
				t.Fatalf("%s: got count=%d known=%v", tt.name, nm.Count, nm.Known())
			}
		default:
			if err != nil {
				t.Fatalf("%s: %v", tt.name, err)
			}
			if string(got) != tt.want {
				t.Fatalf("%s: got %q want %q", tt.name, got, tt.want)
			}
		}
	}
}

func TestReaderSeek(t *testing.T) {
	t.Parallel()

	r := newReader(make([]byte, 10))
	if err := r.seek(10); err != nil {
		t.Fatalf("seek to end: %v", err)
	}
	err := r.seek(12)
	var nm *NeedMoreBytesError
	if !errors.As(err, &nm) || nm.Count != 2 {
		t.Fatalf("seek past end: got %v", err)
	}
}

func TestCString(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"c1a0\x00\x00\x00": "c1a0",
		"no terminator":    "no terminator",
		"\x00leading":      "",
		"a\x00b\x00":       "a",
	}
	for in, want := range tests {
		if got := CString([]byte(in)); got != want {
			t.Fatalf("CString(%q): got %q want %q", in, got, want)
		}
	}
}

func TestFrameTypeString(t *testing.T) {
	t.Parallel()

	if got := FrameNetMsgStart.String(); got != "NetMsg Start" {
		t.Fatalf("got %q", got)
	}
	if got := FrameType(12).String(); got != "type(12)" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{
			err:  &DecodeError{Region: RegionHeader, Entry: -1, Err: ErrInvalidMagic},
			want: "couldn't decode the demo header: invalid magic value",
		},
		{
			err:  &DecodeError{Region: RegionDirectory, Entry: -1, Offset: 100, Err: &EntryCountError{Count: 0}},
			want: "couldn't decode the demo directory at offset 100: invalid entry count: 0 (expected from 1 to 1024)",
		},
		{
			err:  &DecodeError{Region: RegionFrames, Entry: 1, Offset: 544, Err: &FrameTypeError{Type: 10}},
			want: "couldn't decode the frame stream of entry 1 at offset 544: invalid frame type: 10",
		},
		{
			err:  &DecodeError{Region: RegionFrames, Entry: -1, Offset: 544, Err: &FrameTypeError{Type: 10}},
			want: "couldn't decode the frame stream at offset 544: invalid frame type: 10",
		},
		{
			err:  &NeedMoreBytesError{},
			want: "need more bytes (unknown amount)",
		},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Fatalf("got %q\nwant %q", got, tt.want)
		}
	}
}
