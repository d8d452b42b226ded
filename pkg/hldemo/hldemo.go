// Package hldemo decodes demo recordings written by the GoldSrc engine.
//
// A demo is a fixed header, a directory of recording segments and, for every
// directory entry, a stream of time-stamped frames that ends with a
// NextSection frame. Decoding never copies payload bytes: every []byte field
// of a decoded structure is a view into the caller's buffer, so the buffer
// must stay valid (and, when memory-mapped, mapped) for as long as the
// decoded values are in use.
package hldemo

// Format constants must never change.
const (
	// Magic is the tag at the start of every demo file.
	Magic = "HLDEMO"

	// SupportedDemoProtocol is the only demo protocol version this package decodes.
	SupportedDemoProtocol int32 = 5

	// MinDirectoryEntries and MaxDirectoryEntries bound the directory entry count.
	MinDirectoryEntries int32 = 1
	MaxDirectoryEntries int32 = 1024

	// MinMessageLength and MaxMessageLength bound the network message buffer.
	MinMessageLength int32 = 0
	MaxMessageLength int32 = 65536
)

// On-disk sizes of the fixed regions.
const (
	magicSize       = 8 // "HLDEMO" + 2 reserved bytes
	nameSize        = 260
	headerSize      = magicSize + 4 + 4 + nameSize + nameSize + 4 + 4
	descriptionSize = 64
	entrySize       = 4 + descriptionSize + 4 + 4 + 4 + 4 + 4 + 4
	commandSize     = 64
	skyNameSize     = 32
	frameHeaderSize = 1 + 4 + 4
)
