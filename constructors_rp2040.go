//go:build rp2040

// This file is built only for the RP2040 target (real PIO hardware).
package joybus

import (
	"machine"

	"github.com/mvik/joybus/driver/pio"
	"github.com/mvik/joybus/protocol"
	"github.com/mvik/joybus/transport"
)

// NewController wires a controller engine to a PIO signal codec on the
// given data pin. Call Initialise on the result before serving the line.
func NewController(pin machine.Pin) (*transport.Controller, error) {
	codec, err := pio.New(pin)
	if err != nil {
		return nil, err
	}
	return transport.NewControllerWithCodec(codec, protocol.NewStore()), nil
}
