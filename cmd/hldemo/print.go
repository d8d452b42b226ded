package main

import (
	"fmt"
	"io"

	"github.com/samcharles93/hldemo/internal/summary"
	"github.com/samcharles93/hldemo/pkg/hldemo"
)

func printDemo(w io.Writer, d *hldemo.Demo) {
	printHeader(w, &d.Header)
	fmt.Fprintln(w)
	printDirectory(w, &d.Directory)
}

func printHeader(w io.Writer, h *hldemo.Header) {
	fmt.Fprintln(w, "Header:")
	fmt.Fprintf(w, "\tDemo protocol: %d\n", h.DemoProtocol)
	fmt.Fprintf(w, "\tNet protocol: %d\n", h.NetProtocol)
	fmt.Fprintf(w, "\tMap name: %s\n", h.MapNameString())
	fmt.Fprintf(w, "\tGame dir: %s\n", h.GameDirString())
	fmt.Fprintf(w, "\tMap CRC: %d\n", h.MapCRC)
	fmt.Fprintf(w, "\tDirectory offset: %d\n", h.DirectoryOffset)
}

func printDirectory(w io.Writer, dir *hldemo.Directory) {
	fmt.Fprintln(w, "Directory:")
	for i := range dir.Entries {
		e := &dir.Entries[i]
		fmt.Fprintln(w, "\tEntry:")
		fmt.Fprintf(w, "\t\tType: %d\n", e.Type)
		fmt.Fprintf(w, "\t\tDescription: %s\n", e.DescriptionString())
		fmt.Fprintf(w, "\t\tFlags: %d\n", e.Flags)
		fmt.Fprintf(w, "\t\tCD track: %d\n", e.CDTrack)
		fmt.Fprintf(w, "\t\tTime: %g\n", e.TrackTime)
		fmt.Fprintf(w, "\t\tFrame count: %d\n", e.FrameCount)
		fmt.Fprintf(w, "\t\tOffset: %d\n", e.Offset)
		fmt.Fprintf(w, "\t\tLength: %d\n", e.FileLength)
	}
}

// printFrames dumps the frames of every entry, or only of entry when it is
// not negative. limit caps frames per entry; zero prints all.
func printFrames(w io.Writer, d *hldemo.Demo, entry, limit int) error {
	entries := d.Directory.Entries
	if entry >= len(entries) {
		return fmt.Errorf("entry %d out of range (demo has %d entries)", entry, len(entries))
	}
	for i := range entries {
		if entry >= 0 && i != entry {
			continue
		}
		e := &entries[i]
		fmt.Fprintf(w, "Entry %d:\n", i)
		for _, f := range summary.Frames(e, 0, limit) {
			fmt.Fprintf(w, "\tf=%d t=%g type=%s", f.Index, f.Time, f.Type)
			if f.Detail != "" {
				fmt.Fprintf(w, " %s", f.Detail)
			}
			fmt.Fprintln(w)
		}
		if limit > 0 && len(e.Frames) > limit {
			fmt.Fprintf(w, "\t... %d more\n", len(e.Frames)-limit)
		}
		fmt.Fprintln(w)
	}
	return nil
}
