package hldemo

import (
	"encoding/binary"
	"math"
)

// demoBuilder assembles synthetic demo files for tests.
type demoBuilder struct {
	buf []byte
}

func (b *demoBuilder) len() int32 { return int32(len(b.buf)) }

func (b *demoBuilder) u8(v uint8) *demoBuilder {
	b.buf = append(b.buf, v)
	return b
}

func (b *demoBuilder) u16(v uint16) *demoBuilder {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
	return b
}

func (b *demoBuilder) i16(v int16) *demoBuilder { return b.u16(uint16(v)) }

func (b *demoBuilder) u32(v uint32) *demoBuilder {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
	return b
}

func (b *demoBuilder) i32(v int32) *demoBuilder { return b.u32(uint32(v)) }

func (b *demoBuilder) f32(v float32) *demoBuilder { return b.u32(math.Float32bits(v)) }

func (b *demoBuilder) vec3(x, y, z float32) *demoBuilder { return b.f32(x).f32(y).f32(z) }

func (b *demoBuilder) raw(p []byte) *demoBuilder {
	b.buf = append(b.buf, p...)
	return b
}

// padded writes s followed by NULs up to n bytes.
func (b *demoBuilder) padded(s string, n int) *demoBuilder {
	p := make([]byte, n)
	copy(p, s)
	return b.raw(p)
}

func (b *demoBuilder) header(protocol int32) *demoBuilder {
	return b.raw([]byte("HLDEMO\x00\x00")).
		i32(protocol).
		i32(48).
		padded("c1a0", nameSize).
		padded("valve", nameSize).
		u32(0xdeadbeef).
		i32(0) // directory offset, patched by setDirectoryOffset
}

func (b *demoBuilder) setDirectoryOffset(off int32) {
	binary.LittleEndian.PutUint32(b.buf[headerSize-4:], uint32(off))
}

type testEntry struct {
	typ         int32
	description string
	frameCount  int32
	offset      int32
	length      int32
}

func (b *demoBuilder) directory(entries ...testEntry) *demoBuilder {
	b.i32(int32(len(entries)))
	for _, e := range entries {
		b.i32(e.typ).
			padded(e.description, descriptionSize).
			i32(0).
			i32(-1).
			f32(2.5).
			i32(e.frameCount).
			i32(e.offset).
			i32(e.length)
	}
	return b
}

func (b *demoBuilder) frameHeader(t FrameType, time float32, index int32) *demoBuilder {
	return b.u8(uint8(t)).f32(time).i32(index)
}

func (b *demoBuilder) nextSection(time float32, index int32) *demoBuilder {
	return b.frameHeader(FrameNextSection, time, index)
}

func (b *demoBuilder) consoleCommand(time float32, index int32, cmd string) *demoBuilder {
	return b.frameHeader(FrameConsoleCommand, time, index).padded(cmd, commandSize)
}

func (b *demoBuilder) clientData(time float32, index int32) *demoBuilder {
	return b.frameHeader(FrameClientData, time, index).
		vec3(1, 2, 3).
		vec3(0, 90, 0).
		i32(0x10).
		f32(90)
}

func (b *demoBuilder) event(time float32, index int32) *demoBuilder {
	return b.frameHeader(FrameEvent, time, index).
		i32(1).i32(26).f32(0.5).
		i32(2).i32(7).
		vec3(1, 1, 1).vec3(2, 2, 2).vec3(3, 3, 3).
		i32(1).f32(0.25).f32(0.75).
		i32(11).i32(12).i32(1).i32(0)
}

func (b *demoBuilder) weaponAnim(time float32, index int32) *demoBuilder {
	return b.frameHeader(FrameWeaponAnim, time, index).i32(3).i32(1)
}

func (b *demoBuilder) sound(time float32, index int32, sample string) *demoBuilder {
	return b.frameHeader(FrameSound, time, index).
		i32(6).
		i32(int32(len(sample))).raw([]byte(sample)).
		f32(0.8).f32(1).i32(0).i32(100)
}

func (b *demoBuilder) demoBuffer(time float32, index int32, p []byte) *demoBuilder {
	return b.frameHeader(FrameDemoBuffer, time, index).i32(int32(len(p))).raw(p)
}

// netMsg writes a network message frame whose message buffer is msg. The
// declared length is len(msg) unless declared is non-nil.
func (b *demoBuilder) netMsg(t FrameType, time float32, index int32, msg []byte, declared *int32) *demoBuilder {
	b.frameHeader(t, time, index).f32(time)

	// RefParams
	for i := 0; i < 5; i++ {
		b.vec3(float32(i), float32(i), float32(i))
	}
	b.f32(0.01).f32(time)
	b.i32(0).i32(0).i32(0).i32(1).i32(0) // intermission paused spectator onground waterlevel
	b.vec3(0, 0, 0).vec3(10, 20, 30).vec3(0, 0, 28)
	b.f32(0)
	b.vec3(0, 45, 0)
	b.i32(100) // health
	b.vec3(0, 0, 0)
	b.f32(120)
	b.vec3(0, 0, 0)
	b.i32(1).i32(1).i32(0).i32(900).i32(1).i32(1).i32(0).i32(0).i32(0)
	b.i32(0).i32(0).i32(640).i32(480) // viewport
	b.i32(0).i32(7)

	// UserCmd
	b.i16(-20).u8(10).u8(0xff)
	b.vec3(0, 45, 0).f32(400).f32(-400).f32(0)
	b.u8(0xfd).u8(0xff) // lightlevel -3, padding
	b.u16(0x0401).u8(101).u8(2).u16(0xffff)
	b.i32(-1).vec3(5, 6, 7)

	// MoveVars
	b.f32(800)
	for i := 0; i < 15; i++ {
		b.f32(float32(i))
	}
	b.i32(1).padded("desert", skyNameSize)
	for i := 0; i < 8; i++ {
		b.f32(float32(i))
	}

	b.vec3(10, 20, 58).i32(42)

	for i := int32(1); i <= 7; i++ {
		b.i32(i * 10)
	}
	n := int32(len(msg))
	if declared != nil {
		n = *declared
	}
	return b.i32(n).raw(msg)
}

// singleEntryDemo returns a demo with one directory entry whose frame stream
// is written by frames.
func singleEntryDemo(frames func(b *demoBuilder)) []byte {
	b := &demoBuilder{}
	b.header(SupportedDemoProtocol)
	start := b.len()
	frames(b)
	end := b.len()
	b.setDirectoryOffset(end)
	b.directory(testEntry{typ: 1, description: "Playback", frameCount: 2, offset: start, length: end - start})
	return b.buf
}
