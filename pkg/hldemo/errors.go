package hldemo

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMagic        = errors.New("invalid magic value")
	ErrUnsupportedProtocol = errors.New("unsupported demo protocol")
	ErrInvalidEntryCount   = errors.New("invalid directory entry count")
	ErrInvalidFrameType    = errors.New("invalid frame type")
	ErrInvalidLength       = errors.New("invalid length")
	ErrNeedMoreBytes       = errors.New("need more bytes")
	ErrMissingTerminator   = errors.New("no terminator found before end of input")
)

// Region names the part of the file a DecodeError comes from.
type Region int

const (
	RegionHeader Region = iota
	RegionDirectory
	RegionFrames
)

func (r Region) String() string {
	switch r {
	case RegionHeader:
		return "header"
	case RegionDirectory:
		return "directory"
	case RegionFrames:
		return "frames"
	default:
		return fmt.Sprintf("region(%d)", int(r))
	}
}

// DecodeError is the outer layer of every error returned by Decode and
// DecodeMetadata. Err holds the specific cause.
type DecodeError struct {
	Region Region
	// Entry is the directory entry whose frame stream failed, or -1.
	Entry int
	// Offset is the absolute byte offset the failing region starts at.
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	switch e.Region {
	case RegionHeader:
		return "couldn't decode the demo header: " + e.Err.Error()
	case RegionDirectory:
		return fmt.Sprintf("couldn't decode the demo directory at offset %d: %v", e.Offset, e.Err)
	case RegionFrames:
		if e.Entry < 0 {
			return fmt.Sprintf("couldn't decode the frame stream at offset %d: %v", e.Offset, e.Err)
		}
		return fmt.Sprintf("couldn't decode the frame stream of entry %d at offset %d: %v", e.Entry, e.Offset, e.Err)
	default:
		return fmt.Sprintf("couldn't decode the demo (%s): %v", e.Region, e.Err)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ProtocolError reports a demo protocol other than SupportedDemoProtocol.
type ProtocolError struct {
	Protocol int32
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unsupported protocol: %d (only protocol %d is supported)", e.Protocol, SupportedDemoProtocol)
}

func (e *ProtocolError) Unwrap() error { return ErrUnsupportedProtocol }

// EntryCountError reports a directory entry count outside
// [MinDirectoryEntries, MaxDirectoryEntries].
type EntryCountError struct {
	Count int32
}

func (e *EntryCountError) Error() string {
	return fmt.Sprintf("invalid entry count: %d (expected from %d to %d)", e.Count, MinDirectoryEntries, MaxDirectoryEntries)
}

func (e *EntryCountError) Unwrap() error { return ErrInvalidEntryCount }

// FrameTypeError reports a frame type tag above MaxFrameType.
type FrameTypeError struct {
	Type uint8
}

func (e *FrameTypeError) Error() string {
	return fmt.Sprintf("invalid frame type: %d", e.Type)
}

func (e *FrameTypeError) Unwrap() error { return ErrInvalidFrameType }

// LengthError reports a length prefix outside its allowed range. Max is
// negative when only the remaining input bounds the field.
type LengthError struct {
	Field  string
	Length int32
	Min    int32
	Max    int32
}

func (e *LengthError) Error() string {
	if e.Max < 0 {
		return fmt.Sprintf("invalid %s length: %d (expected at least %d)", e.Field, e.Length, e.Min)
	}
	return fmt.Sprintf("invalid %s length: %d (expected from %d to %d)", e.Field, e.Length, e.Min, e.Max)
}

func (e *LengthError) Unwrap() error { return ErrInvalidLength }

// NeedMoreBytesError reports that the input ended early. Count is the exact
// shortfall, or zero when it depends on a value that could not be read.
type NeedMoreBytesError struct {
	Count int
}

func (e *NeedMoreBytesError) Error() string {
	if e.Count <= 0 {
		return "need more bytes (unknown amount)"
	}
	return fmt.Sprintf("need %d more bytes", e.Count)
}

func (e *NeedMoreBytesError) Unwrap() error { return ErrNeedMoreBytes }

// Known reports whether the shortfall is known.
func (e *NeedMoreBytesError) Known() bool { return e.Count > 0 }

func needMoreBytes(n int) error {
	return &NeedMoreBytesError{Count: n}
}
