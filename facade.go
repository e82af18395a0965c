// Package joybus provides a façade to access the controller protocol layer.
package joybus

import (
	"github.com/mvik/joybus/protocol"
	"github.com/mvik/joybus/transport"
)

// The actual implementation is split into build-tag specific files:
// - constructors_rp2040.go - for the RP2040 target (//go:build rp2040)
// - constructors_host.go - for development/testing (//go:build !rp2040)

// Re-export types so callers need only import this package
type (
	Button     = protocol.Button
	State      = protocol.State
	Store      = protocol.Store
	Command    = protocol.Command
	Rumble     = protocol.Rumble
	Controller = transport.Controller
)

// Error constants exposed in the public API
var (
	ErrFraming        = protocol.ErrFraming
	ErrPulseWidth     = protocol.ErrPulseWidth
	ErrUnknownCommand = protocol.ErrUnknownCommand
	ErrLengthMismatch = protocol.ErrLengthMismatch
	ErrQueueFull      = protocol.ErrQueueFull
)

// Constants exposed in the public API
const (
	ButtonA      = protocol.ButtonA
	ButtonB      = protocol.ButtonB
	ButtonX      = protocol.ButtonX
	ButtonY      = protocol.ButtonY
	ButtonStart  = protocol.ButtonStart
	ButtonDLeft  = protocol.ButtonDLeft
	ButtonDRight = protocol.ButtonDRight
	ButtonDDown  = protocol.ButtonDDown
	ButtonDUp    = protocol.ButtonDUp
	ButtonZ      = protocol.ButtonZ
	ButtonR      = protocol.ButtonR
	ButtonL      = protocol.ButtonL

	RumbleStop  = protocol.RumbleStop
	RumbleOn    = protocol.RumbleOn
	RumbleBrake = protocol.RumbleBrake

	AxisCentre = protocol.AxisCentre
)
