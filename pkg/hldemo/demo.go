package hldemo

import "golang.org/x/sync/errgroup"

// Options tunes DecodeWithOptions.
type Options struct {
	// SkipFrames decodes only the header and directory.
	SkipFrames bool
	// Workers bounds how many entry frame streams are decoded at once.
	// Values below 2 decode sequentially.
	Workers int
}

// Decode decodes the header, the directory and every frame stream in buf.
func Decode(buf []byte) (*Demo, error) {
	return DecodeWithOptions(buf, Options{})
}

// DecodeMetadata decodes the header and directory only. It costs
// O(entries) regardless of recording length.
func DecodeMetadata(buf []byte) (*Demo, error) {
	return DecodeWithOptions(buf, Options{SkipFrames: true})
}

// DecodeWithOptions decodes buf as configured by opts. Frame streams are
// independent, so with Workers > 1 they are decoded concurrently against
// the shared buffer; the result is the same as a sequential decode,
// including which error is reported when several entries are corrupt.
func DecodeWithOptions(buf []byte, opts Options) (*Demo, error) {
	header, err := PeekHeader(buf)
	if err != nil {
		return nil, err
	}

	var dir Directory
	switch {
	case opts.SkipFrames:
		dir, err = DecodeDirectory(buf, header.DirectoryOffset)
	case opts.Workers > 1:
		dir, err = decodeDirectoryParallel(buf, header.DirectoryOffset, opts.Workers)
	default:
		dir, err = DecodeDirectoryWithFrames(buf, header.DirectoryOffset)
	}
	if err != nil {
		return nil, err
	}

	return &Demo{Header: header, Directory: dir}, nil
}

func decodeDirectoryParallel(buf []byte, off int32, workers int) (Directory, error) {
	dir, err := DecodeDirectory(buf, off)
	if err != nil {
		return Directory{}, err
	}

	errs := make([]error, len(dir.Entries))
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range dir.Entries {
		g.Go(func() error {
			errs[i] = dir.decodeEntryFrames(buf, i)
			return errs[i]
		})
	}
	if g.Wait() == nil {
		return dir, nil
	}
	for _, err := range errs {
		if err != nil {
			return Directory{}, err
		}
	}
	return dir, nil
}
