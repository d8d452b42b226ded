// Package summary turns decoded demos into printable, JSON-friendly reports.
package summary

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/samcharles93/hldemo/pkg/hldemo"
)

// Demo summarises a decoded demo.
type Demo struct {
	DemoProtocol    int32   `json:"demo_protocol"`
	NetProtocol     int32   `json:"net_protocol"`
	MapName         string  `json:"map_name"`
	GameDir         string  `json:"game_dir"`
	MapCRC          uint32  `json:"map_crc"`
	DirectoryOffset int32   `json:"directory_offset"`
	Entries         []Entry `json:"entries"`
	// FramesDecoded is false for metadata-only decodes.
	FramesDecoded bool    `json:"frames_decoded"`
	TotalFrames   int     `json:"total_frames"`
	Duration      float32 `json:"duration"`
}

// Entry summarises one directory entry. Fields after FileLength are only
// filled when frames were decoded.
type Entry struct {
	Index       int     `json:"index"`
	Type        int32   `json:"type"`
	Description string  `json:"description"`
	Flags       int32   `json:"flags"`
	CDTrack     int32   `json:"cd_track"`
	TrackTime   float32 `json:"track_time"`
	FrameCount  int32   `json:"frame_count"`
	Offset      int32   `json:"offset"`
	FileLength  int32   `json:"file_length"`

	Frames          int            `json:"frames,omitempty"`
	FrameTypes      map[string]int `json:"frame_types,omitempty"`
	FirstTime       float32        `json:"first_time,omitempty"`
	LastTime        float32        `json:"last_time,omitempty"`
	MaxFrameIndex   int32          `json:"max_frame_index,omitempty"`
	MessageBytes    int            `json:"message_bytes,omitempty"`
	ConsoleCommands []string       `json:"console_commands,omitempty"`
	Sounds          []string       `json:"sounds,omitempty"`
	// OutOfOrder counts frames whose time is earlier than the frame before.
	OutOfOrder int `json:"out_of_order,omitempty"`
}

// Frame is a one-line view of a frame.
type Frame struct {
	Position int     `json:"position"`
	Type     string  `json:"type"`
	Time     float32 `json:"time"`
	Index    int32   `json:"index"`
	Detail   string  `json:"detail,omitempty"`
}

// Build summarises d. framesDecoded tells whether d came from a full decode;
// a metadata-only decode has no frames to count.
func Build(d *hldemo.Demo, framesDecoded bool) Demo {
	out := Demo{
		DemoProtocol:    d.Header.DemoProtocol,
		NetProtocol:     d.Header.NetProtocol,
		MapName:         d.Header.MapNameString(),
		GameDir:         d.Header.GameDirString(),
		MapCRC:          d.Header.MapCRC,
		DirectoryOffset: d.Header.DirectoryOffset,
		Entries:         make([]Entry, 0, len(d.Directory.Entries)),
		FramesDecoded:   framesDecoded,
	}
	for i := range d.Directory.Entries {
		e := BuildEntry(&d.Directory.Entries[i], i)
		out.TotalFrames += e.Frames
		out.Duration += e.TrackTime
		out.Entries = append(out.Entries, e)
	}
	return out
}

// BuildEntry summarises entry e at directory position i.
func BuildEntry(e *hldemo.DirectoryEntry, i int) Entry {
	out := Entry{
		Index:       i,
		Type:        e.Type,
		Description: e.DescriptionString(),
		Flags:       e.Flags,
		CDTrack:     e.CDTrack,
		TrackTime:   e.TrackTime,
		FrameCount:  e.FrameCount,
		Offset:      e.Offset,
		FileLength:  e.FileLength,
		Frames:      len(e.Frames),
	}
	if len(e.Frames) == 0 {
		return out
	}

	out.FrameTypes = make(map[string]int)
	out.FirstTime = e.Frames[0].Time
	out.LastTime = e.Frames[len(e.Frames)-1].Time
	for j := range e.Frames {
		f := &e.Frames[j]
		out.FrameTypes[f.Type.String()]++
		out.MaxFrameIndex = max(out.MaxFrameIndex, f.Index)
		if j > 0 && f.Time < e.Frames[j-1].Time {
			out.OutOfOrder++
		}
		switch d := f.Data.(type) {
		case *hldemo.NetMsgData:
			out.MessageBytes += len(d.Msg)
		case *hldemo.ConsoleCommandData:
			out.ConsoleCommands = append(out.ConsoleCommands, d.CommandString())
		case *hldemo.SoundData:
			out.Sounds = append(out.Sounds, hldemo.CString(d.Sample))
		}
	}
	return out
}

// Frames lists up to limit frames of e starting at position offset. A limit
// of zero or less lists everything after offset.
func Frames(e *hldemo.DirectoryEntry, offset, limit int) []Frame {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(e.Frames) {
		return []Frame{}
	}
	end := len(e.Frames)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	out := make([]Frame, 0, end-offset)
	for i := offset; i < end; i++ {
		f := &e.Frames[i]
		out = append(out, Frame{
			Position: i,
			Type:     f.Type.String(),
			Time:     f.Time,
			Index:    f.Index,
			Detail:   Detail(f),
		})
	}
	return out
}

// Detail returns the short, type-specific description printed next to a
// frame, or "" when the frame type has none.
func Detail(f *hldemo.Frame) string {
	switch d := f.Data.(type) {
	case *hldemo.ConsoleCommandData:
		return "command=" + strconv.Quote(d.CommandString())
	case *hldemo.DemoBufferData:
		return fmt.Sprintf("size=%d", len(d.Buffer))
	case *hldemo.NetMsgData:
		return fmt.Sprintf("size=%d seq=%d", len(d.Msg), d.OutgoingSequence)
	case *hldemo.SoundData:
		return fmt.Sprintf("sample=%q channel=%d volume=%g", hldemo.CString(d.Sample), d.Channel, d.Volume)
	case *hldemo.WeaponAnimData:
		return fmt.Sprintf("anim=%d body=%d", d.Anim, d.Body)
	case *hldemo.EventData:
		return fmt.Sprintf("event=%d entity=%d", d.Index, d.Args.EntityIndex)
	case *hldemo.ClientData:
		return fmt.Sprintf("origin=%v fov=%g", d.Origin, d.FOV)
	default:
		return ""
	}
}

// Marshal encodes v as JSON, indented when pretty is set.
func Marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
