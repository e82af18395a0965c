package protocol

import "time"

// Joybus line timing, controller side. Every bit occupies BitPeriod on the
// wire: a low pulse whose width carries the value, then high for the rest.
// Layout:
//   0 bit: 3us low | 1us high
//   1 bit: 1us low | 3us high
//   stop:  1us low | 2us driven high, then the line is released
// The line idles high; the console end provides the pull-up.
const (
	BitPeriod = 4 * time.Microsecond
	ZeroLow   = 3 * time.Microsecond
	OneLow    = 1 * time.Microsecond
	StopLow   = 1 * time.Microsecond
	StopHigh  = 2 * time.Microsecond

	// Receive decision point, measured from the falling edge. Sits midway
	// between the two nominal low widths.
	SampleOffset = 2 * time.Microsecond

	// Largest deviation of a low pulse beyond the nominal widths before
	// the pulse counts as line noise rather than a bit.
	PulseTolerance = 750 * time.Nanosecond

	// High line for this long after a bit means the frame is over. Longer
	// than a bit period, far shorter than the gap between exchanges.
	IdleTimeout = 6 * time.Microsecond

	// Guard after the final command bit before the response may pull the
	// line low, so the console's stop bit is clear of the wire.
	TxGuard = 4 * time.Microsecond
)

// Codec clock. The signal programme spends exactly CyclesPerBit cycles on
// each bit, which pins the state machine at CyclesPerBit/BitPeriod = 10MHz.
const (
	CodecHz      = 10_000_000
	CyclesPerBit = 40
)

// Receive queue words, one per decoded bit.
const (
	RxWordZero = 0x0
	RxWordOne  = 0x1
	RxWordEnd  = 0x2 // line idle; the bit before this was the stop bit
)

// Transmit queue words carry one response byte plus a stop flag,
// left-aligned so the codec shifts out exactly nine bits: data MSB first,
// then the flag.
const (
	TxWordDataShift = 24
	TxWordStopFlag  = 1 << 23
)

// Frame sizes (bytes).
const (
	MaxCommandLen   = 3
	IdentityLen     = 3
	ReportLen       = 8
	OriginReportLen = 10
)

// Poll report layout:
//   0: A(0x01) | B(0x02) | X(0x04) | Y(0x08) | Start(0x10)
//   1: DLeft(0x01) | DRight(0x02) | DDown(0x04) | DUp(0x08) | Z(0x10) | R(0x20) | L(0x40)
//   2-3: stick X, Y    4-5: C-stick X, Y    6-7: L, R triggers
const (
	ReportFlagBit = 0x80 // always set in report byte 1
	AxisCentre    = 0x80
)
