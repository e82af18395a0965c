//go:build !rp2040

package joybus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacadeProbeToPollSession(t *testing.T) {
	ctl, codec := NewController()
	require.NoError(t, ctl.Initialise())

	ctl.Store().Press(ButtonA | ButtonStart)
	ctl.Store().SetTriggers(0x20, 0xC0)

	var rumble Rumble
	ctl.OnRumble(func(r Rumble) { rumble = r })

	// A console session: identify, fetch origin, then poll.
	codec.InjectFrame([]byte{0x00})
	for ctl.Service() {
	}
	codec.InjectFrame([]byte{0x41})
	for ctl.Service() {
	}
	codec.InjectFrame([]byte{0x40, 0x03, 0x01})
	for ctl.Service() {
	}

	sent := codec.Sent()
	require.Len(t, sent, 3)
	assert.Equal(t, []byte{0x09, 0x00, 0x03}, sent[0])
	assert.Len(t, sent[1], 10)

	report := ctl.Store().Snapshot().Report()
	assert.Equal(t, report[:], sent[2])
	assert.Equal(t, RumbleOn, rumble)

	polls, framing, dropped := ctl.Stats()
	assert.Equal(t, uint32(1), polls)
	assert.Zero(t, framing)
	assert.Zero(t, dropped)
}

func TestFacadeStateRoundTrip(t *testing.T) {
	ctl, _ := NewController()

	st := ctl.Store().Snapshot()
	assert.Zero(t, st.Buttons)
	assert.Equal(t, uint8(AxisCentre), st.StickX)
	assert.Equal(t, uint8(AxisCentre), st.StickY)

	ctl.Store().Press(ButtonZ)
	assert.True(t, ctl.Store().Snapshot().Pressed(ButtonZ))
	ctl.Store().Release(ButtonZ)
	assert.False(t, ctl.Store().Snapshot().Pressed(ButtonZ))
}
