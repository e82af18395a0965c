package protocol

// Command is an opcode the console puts on the wire.
type Command byte

const (
	CmdProbe       Command = 0x00
	CmdPoll        Command = 0x40
	CmdOrigin      Command = 0x41
	CmdRecalibrate Command = 0x42
	CmdReset       Command = 0xFF
)

// FrameLen returns how many bytes the console sends for c, opcode included,
// or 0 when the opcode is not one this controller understands.
func (c Command) FrameLen() int {
	switch c {
	case CmdProbe, CmdOrigin, CmdReset:
		return 1
	case CmdPoll, CmdRecalibrate:
		return 3
	}
	return 0
}

// ResponseLen returns how many bytes the controller answers c with.
func (c Command) ResponseLen() int {
	switch c {
	case CmdProbe, CmdReset:
		return IdentityLen
	case CmdPoll:
		return ReportLen
	case CmdOrigin, CmdRecalibrate:
		return OriginReportLen
	}
	return 0
}

// ParseCommand validates a complete command frame and returns its opcode.
func ParseCommand(frame []byte) (Command, error) {
	if len(frame) == 0 {
		return 0, ErrLengthMismatch
	}
	c := Command(frame[0])
	switch want := c.FrameLen(); {
	case want == 0:
		return c, ErrUnknownCommand
	case want != len(frame):
		return c, ErrLengthMismatch
	}
	return c, nil
}

// Rumble is the motor command carried in the low bits of the last poll byte.
type Rumble uint8

const (
	RumbleStop  Rumble = 0
	RumbleOn    Rumble = 1
	RumbleBrake Rumble = 2
)

// PollRumble extracts the rumble command from a poll frame. Frames too
// short to carry one read as RumbleStop.
func PollRumble(frame []byte) Rumble {
	if len(frame) < 3 {
		return RumbleStop
	}
	return Rumble(frame[2] & 0x03)
}
