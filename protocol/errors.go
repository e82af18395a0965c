package protocol

import "errors"

var (
	ErrFraming        = errors.New("frame ended mid-byte")
	ErrPulseWidth     = errors.New("pulse width outside tolerance")
	ErrUnknownCommand = errors.New("unrecognised command opcode")
	ErrLengthMismatch = errors.New("command length wrong for opcode")
	ErrQueueFull      = errors.New("codec queue full")
)
