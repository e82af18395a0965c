//go:build !rp2040

// This file is built only for non-embedded targets (host-based testing).
package joybus

import (
	"github.com/mvik/joybus/driver/loopback"
	"github.com/mvik/joybus/protocol"
	"github.com/mvik/joybus/transport"
)

// NewController wires a controller engine to an in-memory loopback codec.
// The codec is returned alongside the engine so tests can put frames on
// the virtual line and inspect what was sent back.
func NewController() (*transport.Controller, *loopback.Codec) {
	codec := loopback.New()
	return transport.NewControllerWithCodec(codec, protocol.NewStore()), codec
}
