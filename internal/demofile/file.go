// Package demofile loads demo files into memory for decoding.
package demofile

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

var ErrTooLarge = errors.New("demofile: file too large to map")

// File is a read-only demo file image. Values decoded from Bytes() alias
// the image and must not be used after Close.
type File struct {
	data    []byte
	mmapped bool
}

// Open maps path read-only. If mmap is unavailable it falls back to reading
// the whole file.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size64 := st.Size()
	if size64 > int64(int(^uint(0)>>1)) {
		return nil, ErrTooLarge
	}
	size := int(size64)
	if size == 0 {
		// mmap rejects empty mappings.
		return &File{data: []byte{}}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err == nil {
		return &File{data: data, mmapped: true}, nil
	}

	data, err = readAllAt(f, size)
	if err != nil {
		return nil, err
	}
	return &File{data: data}, nil
}

// OpenReaderAt loads a demo image from a random-access reader without mmap.
func OpenReaderAt(r io.ReaderAt, size int64) (*File, error) {
	if size < 0 || size > int64(int(^uint(0)>>1)) {
		return nil, ErrTooLarge
	}
	data, err := readAllAt(r, int(size))
	if err != nil {
		return nil, err
	}
	return &File{data: data}, nil
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}

// Bytes returns the file image.
func (f *File) Bytes() []byte {
	if f == nil {
		return nil
	}
	return f.data
}

// Size returns the length of the image in bytes.
func (f *File) Size() int { return len(f.Bytes()) }

// Mapped reports whether the image is backed by mmap.
func (f *File) Mapped() bool { return f != nil && f.mmapped }

// Close releases the mapping, if any.
func (f *File) Close() error {
	if f == nil || f.data == nil {
		return nil
	}
	var err error
	if f.mmapped {
		err = unix.Munmap(f.data)
	}
	f.data = nil
	f.mmapped = false
	return err
}
