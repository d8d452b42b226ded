package hldemo

import "bytes"

// PeekHeader decodes the header at the start of buf. It is a peek: the
// directory offset it returns is absolute, so decoding continues from there
// rather than from the end of the header.
func PeekHeader(buf []byte) (Header, error) {
	h, err := decodeHeader(newReader(buf))
	if err != nil {
		return Header{}, &DecodeError{Region: RegionHeader, Entry: -1, Err: err}
	}
	return h, nil
}

func decodeHeader(r *reader) (Header, error) {
	var h Header
	if err := readMagic(r); err != nil {
		return h, err
	}

	protocol, err := r.readI32()
	if err != nil {
		return h, err
	}
	if protocol != SupportedDemoProtocol {
		return h, &ProtocolError{Protocol: protocol}
	}
	h.DemoProtocol = protocol

	if h.NetProtocol, err = r.readI32(); err != nil {
		return h, err
	}
	if h.MapName, err = r.readN(nameSize); err != nil {
		return h, err
	}
	if h.GameDir, err = r.readN(nameSize); err != nil {
		return h, err
	}
	if h.MapCRC, err = r.readU32(); err != nil {
		return h, err
	}
	if h.DirectoryOffset, err = r.readI32(); err != nil {
		return h, err
	}
	return h, nil
}

// readMagic checks the magic tag and skips the two reserved bytes after it.
func readMagic(r *reader) error {
	n := min(len(Magic), r.remaining())
	if !bytes.Equal(r.buf[r.off:r.off+n], []byte(Magic[:n])) {
		return ErrInvalidMagic
	}
	return r.skip(magicSize)
}
