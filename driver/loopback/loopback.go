//go:build !rp2040

// Package loopback implements a host-side signal codec: pulse trains go in,
// queue words come out, with the same bounded queues as the hardware block.
package loopback

import (
	"sync"

	proto "github.com/mvik/joybus/protocol"
	"github.com/mvik/joybus/transport"
)

const (
	// ringSize is the backing array; the effective depth is configurable
	// down to the hardware's four words for overflow tests.
	ringSize      = 64
	hardwareDepth = 4
)

// Codec is an in-memory SignalCodec. The zero value is not ready; use New.
type Codec struct {
	mu       sync.Mutex
	rx       wordRing
	tx       wordRing
	transmit bool
	stallTx  bool
	overflow bool
	noise    int

	frames  [][]byte
	current []byte
}

var _ transport.SignalCodec = (*Codec)(nil)

// New returns a codec with a generous receive queue. Tests that model the
// hardware's four-word queue should call SetQueueDepth.
func New() *Codec {
	c := &Codec{}
	c.rx.depth = ringSize
	c.tx.depth = hardwareDepth
	return c
}

// SetQueueDepth limits the receive queue to n words, as the hardware FIFO
// would. Takes effect for subsequent injections.
func (c *Codec) SetQueueDepth(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 1 {
		n = 1
	}
	if n > ringSize {
		n = ringSize
	}
	c.rx.depth = n
}

// Configure starts the codec in receive mode.
func (c *Codec) Configure() error {
	c.Reset()
	return nil
}

// ReadBit pops one receive queue word.
func (c *Codec) ReadBit() (uint32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rx.pop()
}

// BeginTransmit switches to transmit mode. There is no real line to settle
// here, so only the queue discipline is modelled: both directions are
// dropped, exactly as the hardware restart does.
func (c *Codec) BeginTransmit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rx.clear()
	c.tx.clear()
	c.current = c.current[:0]
	c.transmit = true
}

// WriteWord accepts one transmit word. Unless the codec is stalled the word
// drains immediately into the frame log; the stop flag closes the frame and
// drops the codec back to receive mode.
func (c *Codec) WriteWord(w uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stallTx {
		if !c.tx.push(w) {
			return proto.ErrQueueFull
		}
		return nil
	}

	c.current = append(c.current, byte(w>>proto.TxWordDataShift))
	if w&proto.TxWordStopFlag != 0 {
		frame := make([]byte, len(c.current))
		copy(frame, c.current)
		c.frames = append(c.frames, frame)
		c.current = c.current[:0]
		c.transmit = false
	}
	return nil
}

// Reset drops both queues and forces receive mode.
func (c *Codec) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rx.clear()
	c.tx.clear()
	c.current = c.current[:0]
	c.transmit = false
}

// StallTx freezes the transmit queue so pushes back up, as a dead line
// would make the hardware queue do.
func (c *Codec) StallTx(stall bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stallTx = stall
}

// InjectWord queues one raw receive word, exactly as the signal programme
// would push it. A full queue latches the overflow flag and the word is
// lost, which is how a stalled hardware push presents to the engine.
func (c *Codec) InjectWord(w uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.rx.push(w) {
		c.overflow = true
	}
}

// InjectPulse classifies one pulse and queues the resulting bit.
// Out-of-tolerance pulses count as noise and queue nothing.
func (c *Codec) InjectPulse(p proto.Pulse) {
	bit, err := proto.Classify(p)
	if err != nil {
		c.mu.Lock()
		c.noise++
		c.mu.Unlock()
		return
	}
	c.InjectWord(uint32(bit))
}

// InjectBits queues the nominal pulses for the given bits.
func (c *Codec) InjectBits(bits ...proto.Bit) {
	for _, b := range bits {
		c.InjectPulse(b.Pulse())
	}
}

// InjectIdle marks the line idle, ending any frame in flight.
func (c *Codec) InjectIdle() {
	c.InjectWord(proto.RxWordEnd)
}

// InjectFrame puts a complete command on the virtual line: data bits MSB
// first, the stop bit, then the idle gap.
func (c *Codec) InjectFrame(frame []byte) {
	for _, b := range frame {
		for i := 7; i >= 0; i-- {
			if b>>uint(i)&1 == 1 {
				c.InjectPulse(proto.BitOne.Pulse())
			} else {
				c.InjectPulse(proto.BitZero.Pulse())
			}
		}
	}
	c.InjectPulse(proto.BitStop.Pulse())
	c.InjectIdle()
}

// Sent returns copies of the response frames transmitted so far.
func (c *Codec) Sent() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]byte, len(c.frames))
	for i, f := range c.frames {
		cp := make([]byte, len(f))
		copy(cp, f)
		out[i] = cp
	}
	return out
}

// Overflow reports whether any injected word was lost to a full queue.
func (c *Codec) Overflow() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.overflow
}

// Noise returns how many injected pulses were rejected as noise.
func (c *Codec) Noise() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.noise
}

// Transmitting reports whether the codec is in transmit mode.
func (c *Codec) Transmitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transmit
}

type wordRing struct {
	data  [ringSize]uint32
	head  int // next pop
	tail  int // next push
	count int
	depth int
}

func (r *wordRing) push(w uint32) bool {
	if r.count >= r.depth {
		return false
	}
	r.data[r.tail] = w
	r.tail = (r.tail + 1) % ringSize
	r.count++
	return true
}

func (r *wordRing) pop() (uint32, bool) {
	if r.count == 0 {
		return 0, false
	}
	w := r.data[r.head]
	r.head = (r.head + 1) % ringSize
	r.count--
	return w, true
}

func (r *wordRing) clear() {
	r.head = 0
	r.tail = 0
	r.count = 0
}
