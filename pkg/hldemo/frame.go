package hldemo

import (
	"errors"
	"fmt"
)

// FrameHeader precedes every frame payload.
type FrameHeader struct {
	Type  FrameType
	Time  float32
	Index int32
}

type payloadDecoder func(r *reader) (FrameData, error)

// payloadDecoders is indexed by frame type. Both network message types share
// one layout; Frame.Type tells them apart.
var payloadDecoders = [MaxFrameType + 1]payloadDecoder{
	FrameNetMsgStart:    decodeNetMsg,
	FrameNetMsg:         decodeNetMsg,
	FrameDemoStart:      decodeDemoStart,
	FrameConsoleCommand: decodeConsoleCommand,
	FrameClientData:     decodeClientData,
	FrameNextSection:    decodeNextSection,
	FrameEvent:          decodeEvent,
	FrameWeaponAnim:     decodeWeaponAnim,
	FrameSound:          decodeSound,
	FrameDemoBuffer:     decodeDemoBuffer,
}

// DecodeFrames decodes the frame stream starting at the absolute offset off.
// The stream ends with the first NextSection frame, which is included as the
// last element.
func DecodeFrames(buf []byte, off int32) ([]Frame, error) {
	frames, err := decodeFrames(buf, off)
	if err != nil {
		return nil, &DecodeError{Region: RegionFrames, Entry: -1, Offset: int64(uint32(off)), Err: err}
	}
	return frames, nil
}

func decodeFrames(buf []byte, off int32) ([]Frame, error) {
	r := newReader(buf)
	if err := r.seek(uint32(off)); err != nil {
		return nil, err
	}

	var frames []Frame
	for {
		start := r.off
		if r.remaining() == 0 {
			return nil, fmt.Errorf("frame %d at offset %d: %w: %w", len(frames), start, ErrMissingTerminator, needMoreBytes(0))
		}
		f, err := decodeFrame(r)
		if err != nil {
			if errors.Is(err, ErrNeedMoreBytes) {
				return nil, fmt.Errorf("frame %d at offset %d: %w: %w", len(frames), start, ErrMissingTerminator, err)
			}
			return nil, fmt.Errorf("frame %d at offset %d: %w", len(frames), start, err)
		}
		frames = append(frames, f)
		if f.Type == FrameNextSection {
			return frames, nil
		}
	}
}

func decodeFrameHeader(r *reader) (FrameHeader, error) {
	var h FrameHeader
	tag, err := r.readU8()
	if err != nil {
		return h, err
	}
	if FrameType(tag) > MaxFrameType {
		return h, &FrameTypeError{Type: tag}
	}
	h.Type = FrameType(tag)
	if h.Time, err = r.readF32(); err != nil {
		return h, err
	}
	if h.Index, err = r.readI32(); err != nil {
		return h, err
	}
	return h, nil
}

func decodeFrame(r *reader) (Frame, error) {
	h, err := decodeFrameHeader(r)
	if err != nil {
		return Frame{}, err
	}
	data, err := payloadDecoders[h.Type](r)
	if err != nil {
		return Frame{}, fmt.Errorf("%s payload: %w", h.Type, err)
	}
	return Frame{
		Type:  h.Type,
		Time:  h.Time,
		Index: h.Index,
		Data:  data,
	}, nil
}
