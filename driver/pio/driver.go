//go:build rp2040

// Package pio implements the signal codec on an RP2040 PIO state machine.
// The state machine owns all bit timing; the host only moves queue words
// and flips the machine between its receive and transmit programmes.
package pio

import (
	"device/rp"
	"machine"
	"time"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	proto "github.com/mvik/joybus/protocol"
	"github.com/mvik/joybus/transport"
)

// Codec couples one data pin to a claimed state machine.
type Codec struct {
	sm     rp2pio.StateMachine
	pin    machine.Pin
	offset uint8
}

var _ transport.SignalCodec = (*Codec)(nil)

// New claims a state machine on PIO0 for the given data pin.
func New(pin machine.Pin) (*Codec, error) {
	sm, err := rp2pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, err
	}
	return &Codec{sm: sm, pin: pin}, nil
}

// Configure loads the programme, hands the pin to the PIO block and starts
// the machine at the receive entry with the line released.
func (c *Codec) Configure() error {
	p := c.sm.PIO()

	offset, err := p.AddProgram(joybusInstructions, joybusOrigin)
	if err != nil {
		return err
	}
	c.offset = offset

	c.pin.Configure(machine.PinConfig{Mode: p.PinMode()})

	whole, frac, err := rp2pio.ClkDivFromFrequency(proto.CodecHz, machine.CPUFrequency())
	if err != nil {
		return err
	}

	cfg := joybusProgramDefaultConfig(offset)
	cfg.SetClkDivIntFrac(whole, frac)
	cfg.SetInShift(false, true, 2)
	cfg.SetOutShift(false, false, 9)

	// Every pin group watches or drives the same line: set for the level
	// and direction writes, out for mov pins, in for wait/sample, and the
	// jmp pin for the idle watch.
	cfg.SetOutPins(c.pin, 1)
	cfg.PinCtrl = cfg.PinCtrl&^uint32(rp.PIO0_SM0_PINCTRL_OUT_BASE_Msk|
		rp.PIO0_SM0_PINCTRL_OUT_COUNT_Msk|
		rp.PIO0_SM0_PINCTRL_IN_BASE_Msk) |
		uint32(c.pin)<<rp.PIO0_SM0_PINCTRL_OUT_BASE_Pos |
		1<<rp.PIO0_SM0_PINCTRL_OUT_COUNT_Pos |
		uint32(c.pin)<<rp.PIO0_SM0_PINCTRL_IN_BASE_Pos
	cfg.ExecCtrl = cfg.ExecCtrl&^uint32(rp.PIO0_SM0_EXECCTRL_JMP_PIN_Msk) |
		uint32(c.pin)<<rp.PIO0_SM0_EXECCTRL_JMP_PIN_Pos

	c.sm.Init(offset+joybusRxEntry, cfg)
	c.sm.SetEnabled(true)
	return nil
}

// ReadBit pops one receive queue word if the machine has pushed any.
func (c *Codec) ReadBit() (uint32, bool) {
	if c.sm.IsRxFIFOEmpty() {
		return 0, false
	}
	return c.sm.RxGet(), true
}

// WriteWord queues one transmit word, rejecting it when the queue is full.
func (c *Codec) WriteWord(w uint32) error {
	if c.sm.IsTxFIFOFull() {
		return proto.ErrQueueFull
	}
	c.sm.TxPut(w)
	return nil
}

// BeginTransmit holds the turnaround gap, confirms the console has released
// the line and restarts the machine at the transmit entry. Any receive
// words still queued, the command's own stop bit included, are dropped.
func (c *Codec) BeginTransmit() {
	start := time.Now()
	for time.Since(start) < proto.TxGuard {
	}
	for !c.pin.Get() {
	}
	c.restartAt(joybusTxEntry)
}

// Reset abandons whatever the machine was doing and returns it to the
// receive entry with both queues empty and the line released.
func (c *Codec) Reset() {
	c.restartAt(joybusRxEntry)
}

func (c *Codec) restartAt(entry uint8) {
	c.sm.SetEnabled(false)
	c.sm.ClearFIFOs()
	c.sm.Restart()
	// An unconditional jmp encodes as its target address.
	c.sm.Exec(uint16(c.offset + entry))
	c.sm.SetEnabled(true)
}
