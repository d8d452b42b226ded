package hldemo

import (
	"encoding/binary"
	"math"
)

// reader is a bounds-checked little-endian cursor over the demo buffer.
// Slices returned by readN alias the buffer.
type reader struct {
	buf []byte
	off int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

// seek moves the cursor to an absolute offset.
func (r *reader) seek(off uint32) error {
	if uint64(off) > uint64(len(r.buf)) {
		return needMoreBytes(int(uint64(off) - uint64(len(r.buf))))
	}
	r.off = int(off)
	return nil
}

func (r *reader) readN(n int) ([]byte, error) {
	if n < 0 {
		return nil, needMoreBytes(0)
	}
	if rem := r.remaining(); n > rem {
		return nil, needMoreBytes(n - rem)
	}
	b := r.buf[r.off : r.off+n : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) skip(n int) error {
	_, err := r.readN(n)
	return err
}

func (r *reader) readU8() (uint8, error) {
	b, err := r.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) readI8() (int8, error) {
	v, err := r.readU8()
	return int8(v), err
}

func (r *reader) readU16() (uint16, error) {
	b, err := r.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *reader) readI16() (int16, error) {
	v, err := r.readU16()
	return int16(v), err
}

func (r *reader) readU32() (uint32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) readI32() (int32, error) {
	v, err := r.readU32()
	return int32(v), err
}

func (r *reader) readF32() (float32, error) {
	u, err := r.readU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

func (r *reader) readVec3() (Vec3, error) {
	var v Vec3
	b, err := r.readN(12)
	if err != nil {
		return v, err
	}
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}

func (r *reader) readI32x4() ([4]int32, error) {
	var v [4]int32
	b, err := r.readN(16)
	if err != nil {
		return v, err
	}
	for i := range v {
		v[i] = int32(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}

// readBytes reads an i32 length prefix followed by that many bytes. The
// declared length is checked against [min, max] before anything else is
// read. A max below zero means the remaining input is the only bound.
func (r *reader) readBytes(field string, min, max int32) ([]byte, error) {
	if r.remaining() < 4 {
		// The total shortfall depends on the prefix we cannot read yet.
		return nil, needMoreBytes(0)
	}
	n, err := r.readI32()
	if err != nil {
		return nil, err
	}
	if n < min || (max >= 0 && n > max) {
		return nil, &LengthError{Field: field, Length: n, Min: min, Max: max}
	}
	return r.readN(int(n))
}
