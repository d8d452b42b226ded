package hldemo

import "fmt"

// Vec3 is an x, y, z triple as stored on disk.
type Vec3 [3]float32

// Demo is a decoded recording.
type Demo struct {
	Header    Header
	Directory Directory
}

// Header is the fixed-size region at the start of the file.
type Header struct {
	DemoProtocol int32
	NetProtocol  int32
	// MapName and GameDir are the raw NUL-padded 260-byte regions.
	MapName         []byte
	GameDir         []byte
	MapCRC          uint32
	DirectoryOffset int32
}

// Directory lists the recording segments in file order.
type Directory struct {
	Entries []DirectoryEntry
}

// DirectoryEntry describes one recording segment. FrameCount and FileLength
// are advertised by the file and are not checked against the decoded frames.
type DirectoryEntry struct {
	Type        int32
	Description []byte
	Flags       int32
	CDTrack     int32
	TrackTime   float32
	FrameCount  int32
	Offset      int32
	FileLength  int32

	// Frames is empty after DecodeMetadata.
	Frames []Frame
}

// FrameType is the tag that selects a frame's payload layout.
type FrameType uint8

const (
	FrameNetMsgStart FrameType = iota
	FrameNetMsg
	FrameDemoStart
	FrameConsoleCommand
	FrameClientData
	FrameNextSection
	FrameEvent
	FrameWeaponAnim
	FrameSound
	FrameDemoBuffer

	// MaxFrameType is the highest valid frame type tag.
	MaxFrameType = FrameDemoBuffer
)

func (t FrameType) String() string {
	switch t {
	case FrameNetMsgStart:
		return "NetMsg Start"
	case FrameNetMsg:
		return "NetMsg"
	case FrameDemoStart:
		return "DemoStart"
	case FrameConsoleCommand:
		return "ConsoleCommand"
	case FrameClientData:
		return "ClientData"
	case FrameNextSection:
		return "NextSection"
	case FrameEvent:
		return "Event"
	case FrameWeaponAnim:
		return "WeaponAnim"
	case FrameSound:
		return "Sound"
	case FrameDemoBuffer:
		return "DemoBuffer"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// Frame is one time-stamped record of a frame stream.
type Frame struct {
	Type FrameType
	// Time is in seconds since the start of the stream.
	Time  float32
	Index int32
	Data  FrameData
}

// FrameData is the payload of a frame. The concrete type is one of
// *NetMsgData, DemoStartData, *ConsoleCommandData, *ClientData,
// NextSectionData, *EventData, *WeaponAnimData, *SoundData or
// *DemoBufferData.
type FrameData interface {
	frameData()
}

// DemoStartData marks the start of playback. It has no payload.
type DemoStartData struct{}

// NextSectionData ends a frame stream. It has no payload.
type NextSectionData struct{}

type ConsoleCommandData struct {
	// Command is the raw NUL-padded 64-byte region.
	Command []byte
}

type ClientData struct {
	Origin     Vec3
	ViewAngles Vec3
	WeaponBits int32
	FOV        float32
}

type EventData struct {
	Flags int32
	Index int32
	Delay float32
	Args  EventArgs
}

type EventArgs struct {
	Flags       int32
	EntityIndex int32
	Origin      Vec3
	Angles      Vec3
	Velocity    Vec3
	Ducking     int32
	FParam1     float32
	FParam2     float32
	IParam1     int32
	IParam2     int32
	BParam1     int32
	BParam2     int32
}

type WeaponAnimData struct {
	Anim int32
	Body int32
}

type SoundData struct {
	Channel     int32
	Sample      []byte
	Attenuation float32
	Volume      float32
	Flags       int32
	Pitch       int32
}

type DemoBufferData struct {
	Buffer []byte
}

// NetMsgData is shared by FrameNetMsgStart and FrameNetMsg frames.
type NetMsgData struct {
	Info                         NetMsgInfo
	IncomingSequence             int32
	IncomingAcknowledged         int32
	IncomingReliableAcknowledged int32
	IncomingReliableSequence     int32
	OutgoingSequence             int32
	ReliableSequence             int32
	LastReliableSequence         int32
	Msg                          []byte
}

type NetMsgInfo struct {
	Timestamp float32
	RefParams RefParams
	UserCmd   UserCmd
	MoveVars  MoveVars
	View      Vec3
	ViewModel int32
}

// RefParams is the client's view state at the time of the message.
type RefParams struct {
	ViewOrg        Vec3
	ViewAngles     Vec3
	Forward        Vec3
	Right          Vec3
	Up             Vec3
	FrameTime      float32
	Time           float32
	Intermission   int32
	Paused         int32
	Spectator      int32
	OnGround       int32
	WaterLevel     int32
	SimVel         Vec3
	SimOrg         Vec3
	ViewHeight     Vec3
	IdealPitch     float32
	ClViewAngles   Vec3
	Health         int32
	CrosshairAngle Vec3
	ViewSize       float32
	PunchAngle     Vec3
	MaxClients     int32
	ViewEntity     int32
	PlayerNum      int32
	MaxEntities    int32
	DemoPlayback   int32
	Hardware       int32
	Smoothing      int32
	PtrCmd         int32
	PtrMoveVars    int32
	Viewport       [4]int32
	NextView       int32
	OnlyClientDraw int32
}

// UserCmd is the input snapshot sent with the message.
type UserCmd struct {
	LerpMsec       int16
	Msec           uint8
	ViewAngles     Vec3
	ForwardMove    float32
	SideMove       float32
	UpMove         float32
	LightLevel     int8
	Buttons        uint16
	Impulse        int8
	WeaponSelect   int8
	ImpactIndex    int32
	ImpactPosition Vec3
}

// MoveVars holds the movement tunables in effect.
type MoveVars struct {
	Gravity           float32
	StopSpeed         float32
	MaxSpeed          float32
	SpectatorMaxSpeed float32
	Accelerate        float32
	AirAccelerate     float32
	WaterAccelerate   float32
	Friction          float32
	EdgeFriction      float32
	WaterFriction     float32
	EntGravity        float32
	Bounce            float32
	StepSize          float32
	MaxVelocity       float32
	ZMax              float32
	WaveHeight        float32
	Footsteps         int32
	// SkyName is the raw NUL-padded 32-byte region.
	SkyName   []byte
	RollAngle float32
	RollSpeed float32
	SkyColorR float32
	SkyColorG float32
	SkyColorB float32
	SkyVecX   float32
	SkyVecY   float32
	SkyVecZ   float32
}

func (*NetMsgData) frameData()         {}
func (DemoStartData) frameData()       {}
func (*ConsoleCommandData) frameData() {}
func (*ClientData) frameData()         {}
func (NextSectionData) frameData()     {}
func (*EventData) frameData()          {}
func (*WeaponAnimData) frameData()     {}
func (*SoundData) frameData()          {}
func (*DemoBufferData) frameData()     {}
