package protocol

// Event classifies the outcome of feeding one receive word to the Assembler.
type Event uint8

const (
	EventNone     Event = iota // bit absorbed, byte still incomplete
	EventByte                  // eight bits folded into a byte
	EventFrameEnd              // stop bit plus idle line: frame over
)

// Assembler folds the codec's per-bit receive words into command bytes,
// MSB first. The wire stop bit reaches it as a trailing one-bit followed by
// the end-of-frame word; Feed absorbs that pair into EventFrameEnd.
type Assembler struct {
	shift uint8
	nbits uint8
}

// Feed consumes one receive queue word. The returned byte is meaningful
// only for EventByte. A non-nil error means the frame was malformed; the
// assembler has already reset and the caller should discard the frame.
func (a *Assembler) Feed(word uint32) (Event, byte, error) {
	switch word {
	case RxWordZero, RxWordOne:
		a.shift = a.shift<<1 | uint8(word)
		a.nbits++
		if a.nbits < 8 {
			return EventNone, 0, nil
		}
		b := a.shift
		a.Reset()
		return EventByte, b, nil
	case RxWordEnd:
		if a.nbits == 1 && a.shift == 1 {
			a.Reset()
			return EventFrameEnd, 0, nil
		}
		// Idle in any other position: the frame stopped mid-byte, or
		// ended with no stop bit at all.
		a.Reset()
		return EventNone, 0, ErrFraming
	}
	a.Reset()
	return EventNone, 0, ErrFraming
}

// Pending returns how many bits of the current byte have arrived.
func (a *Assembler) Pending() int { return int(a.nbits) }

// Reset discards any partial byte.
func (a *Assembler) Reset() {
	a.shift = 0
	a.nbits = 0
}

// TxWord packs one response byte into its transmit queue word. The codec
// shifts out the top nine bits: data MSB first, then the stop flag.
func TxWord(b byte, last bool) uint32 {
	w := uint32(b) << TxWordDataShift
	if last {
		w |= TxWordStopFlag
	}
	return w
}
