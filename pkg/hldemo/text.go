package hldemo

import "bytes"

// CString returns the text of a NUL-padded region up to its first NUL.
func CString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// MapNameString returns the map name without its NUL padding.
func (h *Header) MapNameString() string { return CString(h.MapName) }

// GameDirString returns the game directory without its NUL padding.
func (h *Header) GameDirString() string { return CString(h.GameDir) }

// DescriptionString returns the entry description without its NUL padding.
func (e *DirectoryEntry) DescriptionString() string { return CString(e.Description) }

// CommandString returns the console command without its NUL padding.
func (d *ConsoleCommandData) CommandString() string { return CString(d.Command) }

// SkyNameString returns the sky texture name without its NUL padding.
func (m *MoveVars) SkyNameString() string { return CString(m.SkyName) }

// Sentinel reports whether f ends its frame stream.
func (f *Frame) Sentinel() bool { return f.Type == FrameNextSection }
