package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLengths(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		frameLen int
		respLen  int
	}{
		{name: "probe", cmd: CmdProbe, frameLen: 1, respLen: IdentityLen},
		{name: "reset", cmd: CmdReset, frameLen: 1, respLen: IdentityLen},
		{name: "poll", cmd: CmdPoll, frameLen: 3, respLen: ReportLen},
		{name: "origin", cmd: CmdOrigin, frameLen: 1, respLen: OriginReportLen},
		{name: "recalibrate", cmd: CmdRecalibrate, frameLen: 3, respLen: OriginReportLen},
		{name: "unknown", cmd: Command(0x55), frameLen: 0, respLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.frameLen, tt.cmd.FrameLen())
			assert.Equal(t, tt.respLen, tt.cmd.ResponseLen())
		})
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		frame   []byte
		want    Command
		wantErr error
	}{
		{name: "probe", frame: []byte{0x00}, want: CmdProbe},
		{name: "poll", frame: []byte{0x40, 0x03, 0x00}, want: CmdPoll},
		{name: "origin", frame: []byte{0x41}, want: CmdOrigin},
		{name: "recalibrate", frame: []byte{0x42, 0x03, 0x01}, want: CmdRecalibrate},
		{name: "reset", frame: []byte{0xFF}, want: CmdReset},
		{name: "empty", frame: nil, wantErr: ErrLengthMismatch},
		{name: "truncated poll", frame: []byte{0x40, 0x03}, wantErr: ErrLengthMismatch},
		{name: "overlong probe", frame: []byte{0x00, 0x01}, wantErr: ErrLengthMismatch},
		{name: "unknown opcode", frame: []byte{0x55}, wantErr: ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.frame)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPollRumble(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
		want  Rumble
	}{
		{name: "motor off", frame: []byte{0x40, 0x03, 0x00}, want: RumbleStop},
		{name: "motor on", frame: []byte{0x40, 0x03, 0x01}, want: RumbleOn},
		{name: "brake", frame: []byte{0x40, 0x03, 0x02}, want: RumbleBrake},
		{name: "upper bits ignored", frame: []byte{0x40, 0x03, 0xF9}, want: RumbleOn},
		{name: "short frame", frame: []byte{0x41}, want: RumbleStop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PollRumble(tt.frame))
		})
	}
}
