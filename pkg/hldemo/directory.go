package hldemo

// DecodeDirectory decodes the directory at the absolute offset off. Every
// entry's Frames is left empty.
func DecodeDirectory(buf []byte, off int32) (Directory, error) {
	dir, err := decodeDirectory(buf, off)
	if err != nil {
		return Directory{}, &DecodeError{Region: RegionDirectory, Entry: -1, Offset: int64(uint32(off)), Err: err}
	}
	return dir, nil
}

// DecodeDirectoryWithFrames decodes the directory at off and then the frame
// stream of every entry, in file order.
func DecodeDirectoryWithFrames(buf []byte, off int32) (Directory, error) {
	dir, err := DecodeDirectory(buf, off)
	if err != nil {
		return Directory{}, err
	}
	for i := range dir.Entries {
		if err := dir.decodeEntryFrames(buf, i); err != nil {
			return Directory{}, err
		}
	}
	return dir, nil
}

func decodeDirectory(buf []byte, off int32) (Directory, error) {
	r := newReader(buf)
	if err := r.seek(uint32(off)); err != nil {
		return Directory{}, err
	}

	count, err := r.readI32()
	if err != nil {
		return Directory{}, err
	}
	if count < MinDirectoryEntries || count > MaxDirectoryEntries {
		return Directory{}, &EntryCountError{Count: count}
	}

	entries := make([]DirectoryEntry, count)
	for i := range entries {
		if entries[i], err = decodeEntry(r); err != nil {
			return Directory{}, err
		}
	}
	return Directory{Entries: entries}, nil
}

func decodeEntry(r *reader) (DirectoryEntry, error) {
	var (
		e   DirectoryEntry
		err error
	)
	// Entries are fixed-size, so fail with the exact shortfall up front.
	if rem := r.remaining(); rem < entrySize {
		return e, needMoreBytes(entrySize - rem)
	}
	if e.Type, err = r.readI32(); err != nil {
		return e, err
	}
	if e.Description, err = r.readN(descriptionSize); err != nil {
		return e, err
	}
	if e.Flags, err = r.readI32(); err != nil {
		return e, err
	}
	if e.CDTrack, err = r.readI32(); err != nil {
		return e, err
	}
	if e.TrackTime, err = r.readF32(); err != nil {
		return e, err
	}
	if e.FrameCount, err = r.readI32(); err != nil {
		return e, err
	}
	if e.Offset, err = r.readI32(); err != nil {
		return e, err
	}
	if e.FileLength, err = r.readI32(); err != nil {
		return e, err
	}
	return e, nil
}

// decodeEntryFrames fills in the frames of entry i.
func (d *Directory) decodeEntryFrames(buf []byte, i int) error {
	e := &d.Entries[i]
	frames, err := decodeFrames(buf, e.Offset)
	if err != nil {
		return &DecodeError{Region: RegionFrames, Entry: i, Offset: int64(uint32(e.Offset)), Err: err}
	}
	e.Frames = frames
	return nil
}
