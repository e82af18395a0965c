package transport

import (
	"runtime"

	proto "github.com/mvik/joybus/protocol"
)

// EngineState names the phases of one console exchange.
type EngineState uint8

const (
	StateIdle EngineState = iota
	StateReceiving
	StateDecoding
	StateBuilding
	StateTransmitting
)

// txSpinBudget bounds how often a transmit push retries against a full
// queue before the exchange is abandoned. The codec drains a word every
// nine bit times, so this is already far more patience than a live line
// ever needs.
const txSpinBudget = 4096

// Controller runs the console side of the exchange: collect a command
// frame, decode it, answer it from the state store. One goroutine owns it;
// none of its methods are safe to call concurrently with Service or Run.
type Controller struct {
	codec SignalCodec
	store *proto.Store
	asm   proto.Assembler

	state  EngineState
	cmd    [proto.MaxCommandLen]byte
	cmdLen int
	want   int // frame length promised by the opcode; 0 while unknown

	onRumble func(proto.Rumble)

	polls         uint32
	framingErrors uint32
	droppedFrames uint32
}

// NewControllerWithCodec wires an engine to a codec and a state store.
func NewControllerWithCodec(codec SignalCodec, store *proto.Store) *Controller {
	return &Controller{codec: codec, store: store}
}

// Initialise configures the codec. The engine listens from here on.
func (c *Controller) Initialise() error {
	return c.codec.Configure()
}

// OnRumble registers the motor callback. It runs on the engine's goroutine
// right after a poll response is queued and must not block.
func (c *Controller) OnRumble(cb func(proto.Rumble)) { c.onRumble = cb }

// Store returns the state store the engine answers polls from.
func (c *Controller) Store() *proto.Store { return c.store }

// State returns the current engine phase.
func (c *Controller) State() EngineState { return c.state }

// Stats returns how many polls were answered and how many frames were lost
// to framing errors or drops.
func (c *Controller) Stats() (polls, framingErrors, dropped uint32) {
	return c.polls, c.framingErrors, c.droppedFrames
}

// Service drains the receive queue once and never blocks. A complete
// command is decoded and answered within the same call, so responses start
// inside the console's reply window provided Service runs at least once
// per bit queue depth. Returns true when any word was consumed.
func (c *Controller) Service() bool {
	worked := false
	for {
		word, ok := c.codec.ReadBit()
		if !ok {
			return worked
		}
		worked = true
		c.step(word)
	}
}

// Run services the engine forever.
func (c *Controller) Run() {
	for {
		if !c.Service() {
			runtime.Gosched()
		}
	}
}

func (c *Controller) step(word uint32) {
	ev, b, err := c.asm.Feed(word)
	if err != nil {
		c.framingErrors++
		c.abort()
		return
	}

	switch ev {
	case proto.EventNone:
		if c.state == StateIdle {
			c.state = StateReceiving
		}

	case proto.EventByte:
		c.state = StateReceiving
		if c.cmdLen == len(c.cmd) {
			// Longer than any recognised frame.
			c.droppedFrames++
			c.abort()
			return
		}
		c.cmd[c.cmdLen] = b
		c.cmdLen++
		if c.cmdLen == 1 {
			c.want = proto.Command(b).FrameLen()
		}
		// Recognised opcodes promise their length, so the frame is
		// complete without waiting for the stop bit to be decoded.
		if c.want != 0 && c.cmdLen == c.want {
			c.finish()
		}

	case proto.EventFrameEnd:
		if c.want == 0 && c.cmdLen > 0 {
			// Unknown opcode: the frame is over, drop it silently.
			c.droppedFrames++
		} else if c.cmdLen != 0 {
			// Recognised opcode but the console stopped short.
			c.framingErrors++
		}
		c.resetFrame()
	}
}

// finish runs decode, build and transmit for the collected frame.
func (c *Controller) finish() {
	c.state = StateDecoding
	cmd, err := proto.ParseCommand(c.cmd[:c.cmdLen])
	if err != nil {
		c.droppedFrames++
		c.abort()
		return
	}

	c.state = StateBuilding
	var buf [proto.OriginReportLen]byte
	var n int
	switch cmd {
	case proto.CmdProbe, proto.CmdReset:
		id := proto.Identity()
		n = copy(buf[:], id[:])
	case proto.CmdPoll:
		r := c.store.Snapshot().Report()
		n = copy(buf[:], r[:])
	case proto.CmdOrigin:
		r := c.store.Origin().OriginReport()
		n = copy(buf[:], r[:])
	case proto.CmdRecalibrate:
		r := c.store.Recalibrate().OriginReport()
		n = copy(buf[:], r[:])
	}

	if !c.transmit(buf[:n]) {
		return
	}

	if cmd == proto.CmdPoll {
		c.polls++
		if c.onRumble != nil {
			c.onRumble(proto.PollRumble(c.cmd[:c.cmdLen]))
		}
	}
	c.resetFrame()
}

// transmit queues the whole response. The codec meters the words onto the
// line and falls back to receive after the stop pulse.
func (c *Controller) transmit(resp []byte) bool {
	c.state = StateTransmitting
	c.codec.BeginTransmit()
	for i, b := range resp {
		w := proto.TxWord(b, i == len(resp)-1)
		spins := 0
		for c.codec.WriteWord(w) != nil {
			spins++
			if spins > txSpinBudget {
				c.droppedFrames++
				c.abort()
				return false
			}
		}
	}
	return true
}

// resetFrame clears the frame in progress and returns to Idle.
func (c *Controller) resetFrame() {
	c.cmdLen = 0
	c.want = 0
	c.asm.Reset()
	c.state = StateIdle
}

// abort additionally resets the codec, dropping whatever is on the queues.
func (c *Controller) abort() {
	c.codec.Reset()
	c.cmdLen = 0
	c.want = 0
	c.asm.Reset()
	c.state = StateIdle
}
